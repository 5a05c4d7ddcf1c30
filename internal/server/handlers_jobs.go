package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Kariqs/jobland-api/internal/server/middleware"
	"github.com/Kariqs/jobland-api/internal/types"
)

// teaserQuery is the search used for the unauthenticated landing page feed.
const teaserQuery = "software developer"

// handleTeaserJobs serves a small public job feed for logged-out visitors.
func (s *Server) handleTeaserJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.jsearch.Search(r.Context(), teaserQuery, "1")
	if err != nil {
		log.Printf("[JOBS] teaser search failed: %v", err)
		s.errorResponse(w, http.StatusBadGateway, "Job search is temporarily unavailable")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"jobs": jobs})
}

// handleSearchJobs proxies an authenticated job search. With no explicit
// query it falls back to the caller's profession from their token.
func (s *Server) handleSearchJobs(w http.ResponseWriter, r *http.Request) {
	claims, err := middleware.GetClaims(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	query := r.URL.Query().Get("query")
	if query == "" {
		query = claims.GetProfession()
	}
	if query == "" {
		query = teaserQuery
	}
	page := r.URL.Query().Get("page")
	if page == "" {
		page = "1"
	}

	jobs, err := s.jsearch.Search(r.Context(), query, page)
	if err != nil {
		log.Printf("[JOBS] search failed: %v", err)
		s.errorResponse(w, http.StatusBadGateway, "Job search is temporarily unavailable")
		return
	}

	saved, err := s.db.ListSavedJobs(r.Context(), claims.GetUserID())
	if err != nil {
		log.Printf("[JOBS] failed to load saved jobs: %v", err)
	} else {
		applied := make(map[string]bool, len(saved))
		for _, job := range saved {
			applied[job.ApplyURL] = true
		}
		for i := range jobs {
			jobs[i].Applied = applied[jobs[i].ApplyURL]
		}
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"jobs": jobs})
}

// handleSaveAppliedJob records a job the user applied to.
func (s *Server) handleSaveAppliedJob(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Title        string `json:"title" validate:"required"`
		Company      string `json:"company" validate:"required"`
		LocationType string `json:"locationType"`
		Source       string `json:"source"`
		ApplyURL     string `json:"applyUrl" validate:"required,url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	job := &types.SavedJob{
		UserID:       userID,
		Title:        req.Title,
		Company:      req.Company,
		LocationType: req.LocationType,
		Source:       req.Source,
		ApplyURL:     req.ApplyURL,
	}
	id, err := s.db.InsertSavedJob(r.Context(), job)
	if err != nil {
		log.Printf("[JOBS] save failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save job")
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

// handleListSavedJobs returns the caller's recorded applications.
func (s *Server) handleListSavedJobs(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	jobs, err := s.db.ListSavedJobs(r.Context(), userID)
	if err != nil {
		log.Printf("[JOBS] list failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list saved jobs")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"jobs": jobs})
}
