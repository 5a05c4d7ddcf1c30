// Package schemas confirms that sanitized model output satisfies the
// target record shape and fills required-but-absent optional fields with
// schema-conformant defaults. Model output is treated as untrusted input:
// shape mismatches are rejected, never coerced.
package schemas

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/Kariqs/jobland-api/internal/types"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// Schema names.
const (
	SchemaResume         = "resume"
	SchemaJobPosting     = "job_posting"
	SchemaTailoredResult = "tailored_result"
)

var compiled = map[string]*gojsonschema.Schema{}

func init() {
	for _, name := range []string{SchemaResume, SchemaJobPosting, SchemaTailoredResult} {
		data, err := schemaFiles.ReadFile(name + ".schema.json")
		if err != nil {
			panic(fmt.Sprintf("embedded schema %s missing: %v", name, err))
		}
		schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
		if err != nil {
			panic(fmt.Sprintf("embedded schema %s invalid: %v", name, err))
		}
		compiled[name] = schema
	}
}

// checkShape runs the compiled JSON Schema for name against the document.
// Fabricated top-level keys fail here rather than being silently dropped.
func checkShape(name string, doc json.RawMessage) error {
	result, err := compiled[name].Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return &DecodeError{Schema: name, Cause: err}
	}
	if result.Valid() {
		return nil
	}
	shapeErr := &ShapeError{Schema: name}
	for _, desc := range result.Errors() {
		shapeErr.Errors = append(shapeErr.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return shapeErr
}

// Resume validates a parsed object as a structured resume: shape check,
// typed decode, array/null defaulting, then the usefulness gate.
func Resume(doc json.RawMessage) (*types.ResumeContent, error) {
	if err := checkShape(SchemaResume, doc); err != nil {
		return nil, err
	}

	var resume types.ResumeContent
	if err := json.Unmarshal(doc, &resume); err != nil {
		return nil, &DecodeError{Schema: SchemaResume, Cause: err}
	}
	resume.EnsureDefaults()

	if !resume.HasUsefulData() {
		return nil, &EmptyExtractionError{
			Message: "no name, experience, or skills found in parsed resume",
		}
	}
	return &resume, nil
}

// JobPosting validates a parsed object as an extracted job posting. All
// fields must be non-empty; a posting with an empty description fails
// extraction outright.
func JobPosting(doc json.RawMessage) (*types.JobPosting, error) {
	if err := checkShape(SchemaJobPosting, doc); err != nil {
		return nil, err
	}

	var posting types.JobPosting
	if err := json.Unmarshal(doc, &posting); err != nil {
		return nil, &DecodeError{Schema: SchemaJobPosting, Cause: err}
	}
	if posting.RequiredSkills == nil {
		posting.RequiredSkills = []string{}
	}

	if strings.TrimSpace(posting.JobDescription) == "" {
		return nil, &EmptyExtractionError{Message: "job posting has no description text"}
	}
	if strings.TrimSpace(posting.JobTitle) == "" || strings.TrimSpace(posting.Company) == "" {
		return nil, &EmptyExtractionError{Message: "job posting is missing title or company"}
	}
	return &posting, nil
}

// tailoredPayload mirrors the tailor task schemas; coverLetter is only
// present for the stateless tailor task.
type tailoredPayload struct {
	Resume      types.ResumeContent  `json:"resume"`
	Changes     []types.ChangeRecord `json:"changes"`
	Summary     string               `json:"summary"`
	CoverLetter *types.CoverLetter   `json:"coverLetter"`
}

// TailoredResult validates a parsed object as a tailoring response. The
// change log is returned as the model produced it; invariant filtering is
// the tailoring package's job.
func TailoredResult(doc json.RawMessage) (*types.TailoredResult, *types.CoverLetter, error) {
	if err := checkShape(SchemaTailoredResult, doc); err != nil {
		return nil, nil, err
	}

	var payload tailoredPayload
	if err := json.Unmarshal(doc, &payload); err != nil {
		return nil, nil, &DecodeError{Schema: SchemaTailoredResult, Cause: err}
	}
	payload.Resume.EnsureDefaults()

	if !payload.Resume.HasUsefulData() {
		return nil, nil, &EmptyExtractionError{
			Message: "tailored resume carries no usable data",
		}
	}

	result := &types.TailoredResult{
		Resume:  payload.Resume,
		Changes: payload.Changes,
		Summary: payload.Summary,
	}
	if result.Changes == nil {
		result.Changes = []types.ChangeRecord{}
	}
	return result, payload.CoverLetter, nil
}
