// Package server provides the HTTP REST API for the jobland backend.
package server

import (
	"errors"
	"net/http"

	"github.com/Kariqs/jobland-api/internal/db"
	"github.com/Kariqs/jobland-api/internal/extract"
	"github.com/Kariqs/jobland-api/internal/identity"
	"github.com/Kariqs/jobland-api/internal/llm"
	"github.com/Kariqs/jobland-api/internal/sanitize"
	"github.com/Kariqs/jobland-api/internal/schemas"
)

// ErrEmailAlreadyExists indicates email is already registered.
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return "email already registered: " + e.Email
}

// ErrInvalidCredentials indicates invalid login credentials.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// pipelineStatus maps a pipeline failure to its HTTP status and a safe
// client-facing message. Raw upstream bodies stay in the server logs; only
// messages that are already safe client text are echoed.
func pipelineStatus(err error) (int, string) {
	var extractErr *extract.Error
	if errors.As(err, &extractErr) {
		switch extractErr.Reason {
		case extract.ReasonUnsupportedType:
			return http.StatusBadRequest, "Only PDF and DOCX files are allowed"
		case extract.ReasonTooShort:
			return http.StatusBadRequest, "Could not extract meaningful text from the document"
		case extract.ReasonRenderTimeout:
			return http.StatusGatewayTimeout, "Loading the job page took too long. Please try again."
		default:
			return http.StatusBadGateway, "Failed to load the page or document"
		}
	}

	var timeoutErr *llm.TimeoutError
	if errors.As(err, &timeoutErr) {
		return http.StatusGatewayTimeout, "AI processing took too long. Please try again."
	}
	var upstreamErr *llm.UpstreamError
	if errors.As(err, &upstreamErr) {
		return http.StatusBadGateway, "AI provider error. Please try again."
	}

	var noJSON *sanitize.NoJSONFoundError
	var malformed *sanitize.MalformedJSONError
	if errors.As(err, &noJSON) || errors.As(err, &malformed) {
		return http.StatusBadGateway, "AI failed to produce valid output. Please try again."
	}

	var empty *schemas.EmptyExtractionError
	if errors.As(err, &empty) {
		return http.StatusUnprocessableEntity, "Could not extract usable structured data."
	}
	var shape *schemas.ShapeError
	var decode *schemas.DecodeError
	if errors.As(err, &shape) || errors.As(err, &decode) {
		return http.StatusBadGateway, "AI output did not match the expected schema. Please try again."
	}

	var exhausted *identity.ExhaustedError
	if errors.As(err, &exhausted) {
		return http.StatusConflict, "Could not find an unused title. Please choose another title."
	}
	var conflict *db.ConflictError
	if errors.As(err, &conflict) {
		return http.StatusConflict, "A resume with this title already exists, please use another title."
	}

	return http.StatusInternalServerError, "Server error during processing"
}
