// Package tailoring audits the change log a model declares when rewriting
// a resume against a job description.
package tailoring

import (
	"log"

	"github.com/Kariqs/jobland-api/internal/types"
)

// ProduceChanges filters the model-declared change log against the
// ChangeRecord invariants. Entries violating an invariant are dropped and
// logged, never silently kept; the surviving entries retain the order the
// model produced them. When the task ran without an explicit change log
// (plain tailor), changeLog is nil and the replacement record is accepted
// as-is with an empty log.
//
// There is no local diff algorithm here: the model's declared log is the
// only provenance available. Real structural diffing (sequence alignment
// over bullet lists) would make the audit independent of model honesty.
func ProduceChanges(changeLog []types.ChangeRecord) []types.ChangeRecord {
	valid := make([]types.ChangeRecord, 0, len(changeLog))
	for _, change := range changeLog {
		if reason := change.Validate(); reason != "" {
			log.Printf("[TAILOR] dropping invalid change record %q: %s", change.ID, reason)
			continue
		}
		valid = append(valid, change)
	}
	return valid
}
