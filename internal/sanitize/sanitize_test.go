package sanitize

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Bare object unchanged",
			input:    `{"a": 1}`,
			expected: `{"a": 1}`,
		},
		{
			name:     "JSON fence stripped",
			input:    "```json\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "Uppercase fence label stripped",
			input:    "```JSON\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "Bare fence stripped",
			input:    "```\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "Leading prose removed",
			input:    "Here is the extracted data:\n{\"a\": 1}",
			expected: `{"a": 1}`,
		},
		{
			name:     "Trailing prose removed",
			input:    "{\"a\": 1}\nLet me know if you need anything else.",
			expected: `{"a": 1}`,
		},
		{
			name:     "Prose on both sides",
			input:    "Sure! ```json\n{\"name\": \"Ada\"}\n``` Hope that helps.",
			expected: `{"name": "Ada"}`,
		},
		{
			name:     "Nested braces kept intact",
			input:    "result: {\"outer\": {\"inner\": [1, 2]}} done",
			expected: `{"outer": {"inner": [1, 2]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExtractJSON_NoObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty string", ""},
		{"Whitespace only", "   \n\t"},
		{"Plain refusal text", "I cannot extract any data from this document."},
		{"Array without object", `[1, 2, 3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractJSON(tt.input)
			var noJSON *NoJSONFoundError
			require.ErrorAs(t, err, &noJSON)
		})
	}
}

func TestObject(t *testing.T) {
	var payload struct {
		Name string `json:"name"`
	}
	err := Object("```json\n{\"name\": \"Ada\"}\n```", &payload)
	require.NoError(t, err)
	assert.Equal(t, "Ada", payload.Name)
}

func TestObject_MalformedJSON(t *testing.T) {
	var payload map[string]any
	err := Object(`{"name": "Ada", "skills": [}`, &payload)

	var malformed *MalformedJSONError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Raw, `"name"`, "raw output should be preserved for diagnostics")
	assert.Error(t, errors.Unwrap(malformed))
}

func TestObject_TruncatedObject(t *testing.T) {
	var payload map[string]any
	err := Object("{ invalid json", &payload)

	var malformed *MalformedJSONError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Raw, "{ invalid json")
}

func TestObject_NoJSON(t *testing.T) {
	var payload map[string]any
	err := Object("no structured output here", &payload)

	var noJSON *NoJSONFoundError
	require.ErrorAs(t, err, &noJSON)
}
