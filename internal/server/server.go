package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/Kariqs/jobland-api/internal/config"
	"github.com/Kariqs/jobland-api/internal/db"
	"github.com/Kariqs/jobland-api/internal/jsearch"
	"github.com/Kariqs/jobland-api/internal/llm"
	"github.com/Kariqs/jobland-api/internal/mailer"
	"github.com/Kariqs/jobland-api/internal/pipeline"
	"github.com/Kariqs/jobland-api/internal/server/middleware"
)

// maxUploadSize caps resume uploads at 10 MB.
const maxUploadSize = 10 << 20

// Server is the HTTP API around the ingestion pipeline and storage.
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	pipeline    *pipeline.Pipeline
	llmClient   llm.Client
	jsearch     *jsearch.Client
	jwtService  *JWTService
	userService *UserService
	validate    *validator.Validate
}

// Config holds server configuration.
type Config struct {
	Port    int
	App     *config.AppConfig
	Verbose bool
}

// New creates a server instance, wiring storage, the LLM pipeline, and
// the auth services.
func New(ctx context.Context, cfg Config) (*Server, error) {
	database, err := db.Connect(ctx, cfg.App.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, err
	}

	llmClient, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.App.GeminiAPIKey)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	s := &Server{
		db:         database,
		pipeline:   pipeline.New(llmClient, cfg.Verbose),
		llmClient:  llmClient,
		jsearch:    jsearch.NewClient(cfg.App.RapidAPIKey),
		jwtService: NewJWTService(jwtConfig),
		validate:   validator.New(),
	}
	s.userService = NewUserService(database, passwordConfig, mailer.New(cfg.App.SMTP), cfg.App.FrontendURL)

	auth := middleware.Auth(s.jwtService.AsTokenValidator())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Auth
	mux.HandleFunc("POST /api/auth/signup", s.handleSignup)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.HandleFunc("POST /api/auth/activate", s.handleActivate)
	mux.HandleFunc("POST /api/auth/forgot-password", s.handleForgotPassword)
	mux.HandleFunc("POST /api/auth/reset-password", s.handleResetPassword)

	// Resumes
	mux.Handle("POST /api/resumes", auth(http.HandlerFunc(s.handleUploadResume)))
	mux.Handle("POST /api/resumes/tailored", auth(http.HandlerFunc(s.handleSaveTailoredResume)))
	mux.Handle("POST /api/resumes/tailor", auth(http.HandlerFunc(s.handleTailorResume)))
	mux.Handle("GET /api/resumes", auth(http.HandlerFunc(s.handleListResumes)))
	mux.Handle("GET /api/resumes/{id}", auth(http.HandlerFunc(s.handleGetResume)))
	mux.Handle("PUT /api/resumes/{id}", auth(http.HandlerFunc(s.handleUpdateResume)))
	mux.Handle("DELETE /api/resumes/{id}", auth(http.HandlerFunc(s.handleDeleteResume)))

	// Job extraction and stateless generation
	mux.HandleFunc("POST /api/extract-job", s.handleExtractJob)
	mux.HandleFunc("POST /api/generate", s.handleGenerate)

	// Job search proxy and saved applications
	mux.HandleFunc("GET /api/jobs/teaser", s.handleTeaserJobs)
	mux.Handle("GET /api/jobs", auth(http.HandlerFunc(s.handleSearchJobs)))
	mux.Handle("POST /api/jobs", auth(http.HandlerFunc(s.handleSaveAppliedJob)))
	mux.Handle("GET /api/jobs/saved", auth(http.HandlerFunc(s.handleListSavedJobs)))

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("API running on http://localhost%s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	s.Close()
	return err
}

// Close releases the server's long-lived resources.
func (s *Server) Close() {
	if s.llmClient != nil {
		_ = s.llmClient.Close()
	}
	if s.db != nil {
		s.db.Close()
	}
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "jobland API is running",
	})
}

// writeJSON serializes a response body with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("[SERVER] failed to write response: %v", err)
	}
}

// errorResponse writes a JSON error body.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

// pipelineError logs the full failure for operators and sends the mapped
// status with a safe message to the client.
func (s *Server) pipelineError(w http.ResponseWriter, op string, err error) {
	status, message := pipelineStatus(err)
	log.Printf("[%s] %v", op, err)
	s.errorResponse(w, status, message)
}
