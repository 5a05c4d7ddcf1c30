package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name         string
		task         Task
		inputs       Inputs
		userContains []string
	}{
		{
			name:         "Parse resume",
			task:         TaskParseResume,
			inputs:       Inputs{ResumeText: "ADA LOVELACE - ANALYST"},
			userContains: []string{"ADA LOVELACE - ANALYST"},
		},
		{
			name:         "Extract job",
			task:         TaskExtractJob,
			inputs:       Inputs{JobText: "We are hiring a backend engineer."},
			userContains: []string{"We are hiring a backend engineer."},
		},
		{
			name:         "Tailor",
			task:         TaskTailor,
			inputs:       Inputs{ResumeText: "RESUME BODY", JobText: "JOB BODY"},
			userContains: []string{"RESUME BODY", "JOB BODY"},
		},
		{
			name:         "Tailor with changes",
			task:         TaskTailorWithChanges,
			inputs:       Inputs{ResumeJSON: `{"skills":["Go"]}`, JobText: "JOB BODY"},
			userContains: []string{`{"skills":["Go"]}`, "JOB BODY"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			system, user, err := Build(tt.task, tt.inputs)
			require.NoError(t, err)
			assert.NotEmpty(t, system, "system prompt should be populated")
			for _, want := range tt.userContains {
				assert.Contains(t, user, want)
			}
			assert.NotContains(t, user, "{{.", "all placeholders should be filled")
		})
	}
}

func TestBuild_Deterministic(t *testing.T) {
	in := Inputs{ResumeText: "RESUME BODY", JobText: "JOB BODY"}

	system1, user1, err := Build(TaskTailor, in)
	require.NoError(t, err)
	system2, user2, err := Build(TaskTailor, in)
	require.NoError(t, err)

	assert.Equal(t, system1, system2)
	assert.Equal(t, user1, user2)
}

func TestBuild_UnknownTask(t *testing.T) {
	_, _, err := Build(Task("summarize"), Inputs{})
	require.Error(t, err)
}

func TestFormat(t *testing.T) {
	got := Format("Resume:\n{{.ResumeText}}\nJob:\n{{.JobText}}", map[string]string{
		"ResumeText": "A",
		"JobText":    "B",
	})
	assert.Equal(t, "Resume:\nA\nJob:\nB", got)
}

func TestFormat_LeavesUnknownPlaceholders(t *testing.T) {
	got := Format("{{.Missing}}", map[string]string{"Other": "x"})
	assert.Equal(t, "{{.Missing}}", got)
}
