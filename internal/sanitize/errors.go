package sanitize

import "fmt"

// rawPreview truncates model output for error messages. The full text is
// retained on the error value itself.
func rawPreview(raw string) string {
	const max = 200
	if len(raw) <= max {
		return raw
	}
	return raw[:max] + "..."
}

// NoJSONFoundError indicates the model response contained no recognizable
// JSON object at all.
type NoJSONFoundError struct {
	Raw string
}

func (e *NoJSONFoundError) Error() string {
	return fmt.Sprintf("no JSON object found in model response: %q", rawPreview(e.Raw))
}

// MalformedJSONError indicates a JSON object was located but failed to
// parse. Raw carries the original model output for diagnosis.
type MalformedJSONError struct {
	Raw   string
	Cause error
}

func (e *MalformedJSONError) Error() string {
	return fmt.Sprintf("malformed JSON in model response: %v: %q", e.Cause, rawPreview(e.Raw))
}

func (e *MalformedJSONError) Unwrap() error {
	return e.Cause
}
