package server

import (
	"net/http"
	"strings"

	"github.com/Kariqs/jobland-api/internal/pipeline"
)

// handleGenerate tailors an uploaded resume against a job description in a
// single stateless call, returning the rewritten resume and cover letter.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	upload, err := readUpload(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "A resume file is required")
		return
	}

	jobDescription := strings.TrimSpace(r.FormValue("jobDescription"))
	if len(jobDescription) < pipeline.MinJobTextLength {
		s.errorResponse(w, http.StatusBadRequest, "A job description of at least 50 characters is required")
		return
	}

	result, coverLetter, err := s.pipeline.Tailor(r.Context(), upload.data, upload.mediaType, jobDescription)
	if err != nil {
		s.pipelineError(w, "GENERATE", err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"resume":      result.Resume,
		"coverLetter": coverLetter,
	})
}
