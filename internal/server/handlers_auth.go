package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Kariqs/jobland-api/internal/types"
)

// handleSignup creates an account and sends the activation email.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req types.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	user, err := s.userService.Register(r.Context(), &req)
	if err != nil {
		var exists *ErrEmailAlreadyExists
		if errors.As(err, &exists) {
			s.errorResponse(w, http.StatusConflict, "An account with this email already exists")
			return
		}
		log.Printf("[AUTH] signup failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Account created. Check your email for the activation link.",
		"user":    user,
	})
}

// handleLogin authenticates and issues a JWT.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	user, err := s.userService.Login(r.Context(), &req)
	if err != nil {
		var invalid *ErrInvalidCredentials
		if errors.As(err, &invalid) {
			s.errorResponse(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		log.Printf("[AUTH] login failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email, user.Profession)
	if err != nil {
		log.Printf("[AUTH] token generation failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  user,
	})
}

// handleActivate marks an account activated by email and key.
func (s *Server) handleActivate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email         string `json:"email" validate:"required,email"`
		ActivationKey string `json:"activationKey" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	activated, err := s.userService.Activate(r.Context(), req.Email, req.ActivationKey)
	if err != nil {
		log.Printf("[AUTH] activation failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to activate account")
		return
	}
	if !activated {
		s.errorResponse(w, http.StatusBadRequest, "Invalid activation link")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Account activated. You can now log in."})
}

// handleForgotPassword starts a password reset. The response is identical
// whether or not the email exists.
func (s *Server) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email" validate:"required,email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	if err := s.userService.RequestPasswordReset(r.Context(), req.Email); err != nil {
		log.Printf("[AUTH] password reset request failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to process request")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{
		"message": "If an account exists for this email, a reset link has been sent.",
	})
}

// handleResetPassword sets a new password given a valid, unexpired reset key.
func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ResetKey    string `json:"resetKey" validate:"required"`
		NewPassword string `json:"newPassword" validate:"required,min=6"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	reset, err := s.userService.ResetPassword(r.Context(), req.ResetKey, req.NewPassword)
	if err != nil {
		log.Printf("[AUTH] password reset failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to reset password")
		return
	}
	if !reset {
		s.errorResponse(w, http.StatusBadRequest, "Invalid or expired reset link")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Password updated. You can now log in."})
}
