package extract

import "fmt"

// Failure reasons for text extraction.
const (
	ReasonUnsupportedType = "unsupported media type"
	ReasonUndecodable     = "undecodable content"
	ReasonTooShort        = "extracted text below minimum length"
	ReasonRenderFailed    = "page rendering failed"
	ReasonRenderTimeout   = "page rendering exceeded budget"
)

// Error represents a failure to extract usable text from a source document
// or rendered page.
type Error struct {
	Reason  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed: %s: %s: %v", e.Reason, e.Message, e.Cause)
	}
	if e.Message != "" {
		return fmt.Sprintf("extraction failed: %s: %s", e.Reason, e.Message)
	}
	return fmt.Sprintf("extraction failed: %s", e.Reason)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
