package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangeRecordValidate(t *testing.T) {
	idx := 0
	original := "previous text"

	tests := []struct {
		name   string
		record ChangeRecord
		reason string
	}{
		{
			name:   "Valid skill addition",
			record: ChangeRecord{ID: "c1", Section: SectionSkills, Type: ChangeAdded, New: "Go"},
			reason: "",
		},
		{
			name:   "Valid experience rephrase",
			record: ChangeRecord{ID: "c2", Section: SectionExperience, Type: ChangeRephrased, ExperienceIndex: &idx, Original: &original, New: "shipped the service"},
			reason: "",
		},
		{
			name:   "Valid reorder",
			record: ChangeRecord{ID: "c3", Section: SectionProjects, Type: ChangeReordered, New: "Project A, Project B"},
			reason: "",
		},
		{
			name:   "Missing id",
			record: ChangeRecord{Section: SectionSkills, Type: ChangeAdded, New: "Go"},
			reason: "missing id",
		},
		{
			name:   "Unknown section",
			record: ChangeRecord{ID: "c1", Section: "awards", Type: ChangeAdded, New: "x"},
			reason: "unknown section: awards",
		},
		{
			name:   "Unknown change type",
			record: ChangeRecord{ID: "c1", Section: SectionSkills, Type: "deleted", New: "x"},
			reason: "unknown change type: deleted",
		},
		{
			name:   "Missing new value",
			record: ChangeRecord{ID: "c1", Section: SectionSkills, Type: ChangeAdded},
			reason: "missing new value",
		},
		{
			name:   "Rephrase without original",
			record: ChangeRecord{ID: "c1", Section: SectionSummary, Type: ChangeRephrased, New: "x"},
			reason: "rephrased change without original value",
		},
		{
			name:   "Experience change without index",
			record: ChangeRecord{ID: "c1", Section: SectionExperience, Type: ChangeAdded, New: "x"},
			reason: "experience change without experienceIndex",
		},
		{
			name:   "Index outside experience section",
			record: ChangeRecord{ID: "c1", Section: SectionSkills, Type: ChangeAdded, ExperienceIndex: &idx, New: "x"},
			reason: "experienceIndex set on non-experience section",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.reason, tt.record.Validate())
		})
	}
}
