package llm

import (
	"fmt"
	"time"
)

// TimeoutError indicates the completion call exceeded its time budget and
// was cancelled at the boundary. Distinct from UpstreamError so callers can
// tell "model too slow" apart from "model rejected request".
type TimeoutError struct {
	Budget time.Duration
	Cause  error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("model call exceeded %s budget: %v", e.Budget, e.Cause)
}

func (e *TimeoutError) Unwrap() error {
	return e.Cause
}

// UpstreamError indicates the completion provider returned a non-success
// response or was unreachable. StatusCode is 0 when no response arrived at
// all. Body carries the raw provider response for operator diagnostics; it
// is never echoed to end users.
type UpstreamError struct {
	StatusCode int
	Body       string
	Cause      error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("model provider unreachable: %v", e.Cause)
	}
	return fmt.Sprintf("model provider returned status %d: %s", e.StatusCode, e.Body)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}
