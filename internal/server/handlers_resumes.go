package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Kariqs/jobland-api/internal/db"
	"github.com/Kariqs/jobland-api/internal/extract"
	"github.com/Kariqs/jobland-api/internal/identity"
	"github.com/Kariqs/jobland-api/internal/server/middleware"
	"github.com/Kariqs/jobland-api/internal/types"
)

// uploadedFile is a resume document read out of a multipart form.
type uploadedFile struct {
	data      []byte
	fileName  string
	mediaType string
}

// readUpload extracts the "resume" file part from a multipart request.
// The media type comes from the file extension, not the client-supplied
// part header, so a mislabeled upload still dispatches correctly.
func readUpload(r *http.Request) (*uploadedFile, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, fmt.Errorf("failed to parse multipart form: %w", err)
	}
	file, header, err := r.FormFile("resume")
	if err != nil {
		return nil, fmt.Errorf("missing resume file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	var mediaType string
	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".pdf":
		mediaType = extract.MediaTypePDF
	case ".docx":
		mediaType = extract.MediaTypeDOCX
	default:
		mediaType = header.Header.Get("Content-Type")
	}

	return &uploadedFile{data: data, fileName: header.Filename, mediaType: mediaType}, nil
}

// defaultTitle derives a resume title from the uploaded file name.
func defaultTitle(fileName string) string {
	title := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	title = strings.TrimSpace(title)
	if title == "" {
		return "Resume"
	}
	return title
}

// handleUploadResume parses an uploaded document into structured content
// and stores it under a collision-free title.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	upload, err := readUpload(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "A resume file is required")
		return
	}

	content, err := s.pipeline.ParseResume(r.Context(), upload.data, upload.mediaType)
	if err != nil {
		s.pipelineError(w, "RESUME", err)
		return
	}

	desired := r.FormValue("title")
	if desired == "" {
		desired = defaultTitle(upload.fileName)
	}
	title, err := identity.ResolveTitle(r.Context(), desired, userID, s.db.TitleExists)
	if err != nil {
		s.pipelineError(w, "RESUME", err)
		return
	}

	id, err := s.insertResume(r, userID, title, upload, content)
	if err != nil {
		s.pipelineError(w, "RESUME", err)
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]any{
		"id":      id,
		"title":   title,
		"content": content,
	})
}

// insertResume stores structured content under the resolved title. The
// upload is nil when the content did not come from a file.
func (s *Server) insertResume(r *http.Request, userID uuid.UUID, title string, upload *uploadedFile, content *types.ResumeContent) (uuid.UUID, error) {
	rec := &db.ResumeRecord{
		UserID:  userID,
		Title:   title,
		Content: *content,
	}
	if upload != nil {
		rec.OriginalFileName = &upload.fileName
		rec.MimeType = &upload.mediaType
	}
	return s.db.InsertResume(r.Context(), rec)
}

// handleSaveTailoredResume stores an already-structured resume, typically
// the accepted output of a tailoring preview.
func (s *Server) handleSaveTailoredResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Title   string               `json:"title" validate:"required"`
		Content *types.ResumeContent `json:"content" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}
	req.Content.EnsureDefaults()

	title, err := identity.ResolveTitle(r.Context(), req.Title, userID, s.db.TitleExists)
	if err != nil {
		s.pipelineError(w, "RESUME", err)
		return
	}

	id, err := s.insertResume(r, userID, title, nil, req.Content)
	if err != nil {
		s.pipelineError(w, "RESUME", err)
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]any{
		"id":    id,
		"title": title,
	})
}

// handleTailorResume rewrites a stored resume against a job description and
// returns the preview without persisting it.
func (s *Server) handleTailorResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Title          string `json:"title" validate:"required"`
		JobDescription string `json:"jobDescription" validate:"required,min=50"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	rec, err := s.db.GetResumeByTitle(r.Context(), userID, req.Title)
	if err != nil {
		log.Printf("[TAILOR] failed to load resume: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load resume")
		return
	}
	if rec == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	result, err := s.pipeline.TailorWithChanges(r.Context(), &rec.Content, req.JobDescription)
	if err != nil {
		s.pipelineError(w, "TAILOR", err)
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

// handleListResumes returns the caller's stored resume summaries.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	summaries, err := s.db.ListResumes(r.Context(), userID)
	if err != nil {
		log.Printf("[RESUME] list failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list resumes")
		return
	}

	items := make([]map[string]any, 0, len(summaries))
	for _, sum := range summaries {
		items = append(items, map[string]any{
			"id":               sum.ID,
			"title":            sum.Title,
			"originalFileName": sum.OriginalFileName,
			"createdAt":        sum.CreatedAt,
		})
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"resumes": items})
}

// handleGetResume returns one stored resume with its full content.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return
	}

	rec, err := s.db.GetResume(r.Context(), id, userID)
	if err != nil {
		log.Printf("[RESUME] get failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load resume")
		return
	}
	if rec == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"id":        rec.ID,
		"title":     rec.Title,
		"content":   rec.Content,
		"createdAt": rec.CreatedAt,
		"updatedAt": rec.UpdatedAt,
	})
}

// handleUpdateResume replaces a stored resume's title and content.
func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return
	}

	var req struct {
		Title   string               `json:"title" validate:"required"`
		Content *types.ResumeContent `json:"content" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}
	req.Content.EnsureDefaults()

	found, err := s.db.UpdateResume(r.Context(), id, userID, req.Title, req.Content)
	if err != nil {
		s.pipelineError(w, "RESUME", err)
		return
	}
	if !found {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Resume updated"})
}

// handleDeleteResume removes a stored resume.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return
	}

	found, err := s.db.DeleteResume(r.Context(), id, userID)
	if err != nil {
		log.Printf("[RESUME] delete failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete resume")
		return
	}
	if !found {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Resume deleted"})
}
