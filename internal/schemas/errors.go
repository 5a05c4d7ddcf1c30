package schemas

import (
	"fmt"
	"strings"
)

// FieldError is a single schema violation at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

// ShapeError reports that a parsed object does not satisfy the target
// schema's shape, for example a fabricated top-level key. It always lists
// the specific violations rather than a generic failure.
type ShapeError struct {
	Schema string
	Errors []FieldError
}

func (e *ShapeError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s shape validation failed:\n", e.Schema)
	for i, fe := range e.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, fe.Field, fe.Message)
	}
	return sb.String()
}

// EmptyExtractionError reports that a structurally valid result carried no
// usable data, which indicates the source text was not really a resume or
// job posting.
type EmptyExtractionError struct {
	Message string
}

func (e *EmptyExtractionError) Error() string {
	return "empty extraction: " + e.Message
}

// DecodeError reports that the object could not be decoded into the typed
// record, for example a number where a string is expected.
type DecodeError struct {
	Schema string
	Cause  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Schema, e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
