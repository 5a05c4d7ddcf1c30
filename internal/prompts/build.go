package prompts

import "fmt"

// Task identifies which pipeline operation a prompt pair serves.
type Task string

// Pipeline tasks. Each task binds to exactly one schema description
// embedded in its system prompt; that text is the source of truth for what
// the sanitizer and validator accept.
const (
	TaskParseResume       Task = "parse"
	TaskExtractJob        Task = "extract-job"
	TaskTailor            Task = "tailor"
	TaskTailorWithChanges Task = "tailor-with-changes"
)

// Inputs carries the task-specific text fed into the user prompt. Unused
// fields are ignored by tasks that do not need them.
type Inputs struct {
	ResumeText string // raw extracted resume text
	ResumeJSON string // serialized structured resume (tailoring tasks)
	JobText    string // job description or scraped posting text
}

// Build returns the system and user prompt for a task. It performs no I/O
// and is deterministic for identical inputs.
func Build(task Task, in Inputs) (system, user string, err error) {
	switch task {
	case TaskParseResume:
		system = MustGet("parse_resume_system.txt")
		user = Format(MustGet("parse_resume_user.txt"), map[string]string{
			"ResumeText": in.ResumeText,
		})
	case TaskExtractJob:
		system = MustGet("extract_job_system.txt")
		user = Format(MustGet("extract_job_user.txt"), map[string]string{
			"JobText": in.JobText,
		})
	case TaskTailor:
		system = MustGet("tailor_system.txt")
		user = Format(MustGet("tailor_user.txt"), map[string]string{
			"ResumeText": in.ResumeText,
			"JobText":    in.JobText,
		})
	case TaskTailorWithChanges:
		system = MustGet("tailor_changes_system.txt")
		user = Format(MustGet("tailor_changes_user.txt"), map[string]string{
			"ResumeJSON": in.ResumeJSON,
			"JobText":    in.JobText,
		})
	default:
		return "", "", fmt.Errorf("unknown prompt task: %q", task)
	}
	return system, user, nil
}
