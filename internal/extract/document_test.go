package extract

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDOCX assembles a minimal DOCX container holding the given
// document.xml body.
func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestDocument_DOCX(t *testing.T) {
	docXML := `<w:document><w:body>` +
		`<w:p><w:r><w:t>Ada Lovelace</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Analyst</w:t><w:tab/><w:t>London</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	text, err := Document(buildDOCX(t, docXML), MediaTypeDOCX)
	require.NoError(t, err)

	assert.Contains(t, text, "Ada Lovelace")
	assert.Contains(t, text, "Analyst")
	assert.Contains(t, text, "London")
	lines := bytes.Split([]byte(text), []byte("\n"))
	assert.Len(t, lines, 2, "paragraph boundaries should become newlines")
}

func TestDocument_DOCXWithoutDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<w:styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = Document(buf.Bytes(), MediaTypeDOCX)
	var extractErr *Error
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, ReasonUndecodable, extractErr.Reason)
}

func TestDocument_CorruptContainer(t *testing.T) {
	_, err := Document([]byte("this is not a zip archive"), MediaTypeDOCX)
	var extractErr *Error
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, ReasonUndecodable, extractErr.Reason)
}

func TestDocument_UnsupportedMediaType(t *testing.T) {
	tests := []struct {
		name      string
		mediaType string
	}{
		{"Plain text", "text/plain"},
		{"Legacy Word", "application/msword"},
		{"Empty media type", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Document([]byte("irrelevant"), tt.mediaType)
			var extractErr *Error
			require.ErrorAs(t, err, &extractErr)
			assert.Equal(t, ReasonUnsupportedType, extractErr.Reason)
		})
	}
}

func TestCheckMinLength(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		min     int
		wantErr bool
	}{
		{"Long enough", "a meaningful amount of resume text here", 20, false},
		{"Exactly at the minimum", "12345", 5, false},
		{"Too short", "hi", 50, true},
		{"Whitespace does not count", "   \n\t   ", 1, true},
		{"Padding does not rescue short text", "  ab  ", 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckMinLength(tt.text, tt.min)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			var extractErr *Error
			require.ErrorAs(t, err, &extractErr)
			assert.Equal(t, ReasonTooShort, extractErr.Reason)
		})
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Space runs collapse", "a    b\t\tc", "a b c"},
		{"Newline runs collapse", "a\n\n\nb", "a\nb"},
		{"Non-breaking spaces become spaces", "a  b", "a b"},
		{"Surrounding whitespace trimmed", "  a b  \n", "a b"},
		{"Single newlines survive", "line one\nline two", "line one\nline two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeWhitespace(tt.input))
		})
	}
}
