package server

import (
	"encoding/json"
	"net/http"
)

// handleExtractJob renders a job posting URL and returns structured fields.
func (s *Server) handleExtractJob(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url" validate:"required,url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "A valid job posting URL is required")
		return
	}

	posting, err := s.pipeline.ExtractJob(r.Context(), req.URL)
	if err != nil {
		s.pipelineError(w, "EXTRACT", err)
		return
	}
	s.writeJSON(w, http.StatusOK, posting)
}
