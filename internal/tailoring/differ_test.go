package tailoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Kariqs/jobland-api/internal/types"
)

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func TestProduceChanges_KeepsValidRecordsInOrder(t *testing.T) {
	changeLog := []types.ChangeRecord{
		{ID: "c1", Section: types.SectionSkills, Type: types.ChangeAdded, New: "Go"},
		{ID: "c2", Section: types.SectionSummary, Type: types.ChangeRephrased, Original: strPtr("old"), New: "new"},
		{ID: "c3", Section: types.SectionExperience, Type: types.ChangeRephrased, ExperienceIndex: intPtr(0), Original: strPtr("did x"), New: "did y"},
	}

	got := ProduceChanges(changeLog)
	assert.Len(t, got, 3)
	assert.Equal(t, "c1", got[0].ID)
	assert.Equal(t, "c2", got[1].ID)
	assert.Equal(t, "c3", got[2].ID)
}

func TestProduceChanges_DropsInvalidRecords(t *testing.T) {
	tests := []struct {
		name   string
		record types.ChangeRecord
	}{
		{
			name:   "Missing id",
			record: types.ChangeRecord{Section: types.SectionSkills, Type: types.ChangeAdded, New: "Go"},
		},
		{
			name:   "Unknown section",
			record: types.ChangeRecord{ID: "c1", Section: "hobbies", Type: types.ChangeAdded, New: "Go"},
		},
		{
			name:   "Unknown change type",
			record: types.ChangeRecord{ID: "c1", Section: types.SectionSkills, Type: "improved", New: "Go"},
		},
		{
			name:   "Rephrased without original",
			record: types.ChangeRecord{ID: "c1", Section: types.SectionSummary, Type: types.ChangeRephrased, New: "new"},
		},
		{
			name:   "Experience change without index",
			record: types.ChangeRecord{ID: "c1", Section: types.SectionExperience, Type: types.ChangeAdded, New: "did y"},
		},
		{
			name:   "Index on non-experience section",
			record: types.ChangeRecord{ID: "c1", Section: types.SectionSkills, Type: types.ChangeAdded, ExperienceIndex: intPtr(1), New: "Go"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProduceChanges([]types.ChangeRecord{tt.record})
			assert.Empty(t, got)
		})
	}
}

func TestProduceChanges_FiltersMixedLog(t *testing.T) {
	changeLog := []types.ChangeRecord{
		{ID: "c1", Section: types.SectionSkills, Type: types.ChangeAdded, New: "Go"},
		{ID: "", Section: types.SectionSkills, Type: types.ChangeAdded, New: "Rust"},
		{ID: "c3", Section: types.SectionLanguages, Type: types.ChangeAdded, New: "French"},
	}

	got := ProduceChanges(changeLog)
	assert.Len(t, got, 2, "invalid record should be dropped, valid ones kept")
	assert.Equal(t, "c1", got[0].ID)
	assert.Equal(t, "c3", got[1].ID)
}

func TestProduceChanges_EmptyAndNilInput(t *testing.T) {
	assert.Empty(t, ProduceChanges(nil))
	assert.Empty(t, ProduceChanges([]types.ChangeRecord{}))
	assert.NotNil(t, ProduceChanges(nil), "result should be a non-nil empty slice")
}
