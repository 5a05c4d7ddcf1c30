package server

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Kariqs/jobland-api/internal/config"
	"github.com/Kariqs/jobland-api/internal/db"
	"github.com/Kariqs/jobland-api/internal/mailer"
	"github.com/Kariqs/jobland-api/internal/types"
)

// passwordResetTTL bounds how long a reset key stays valid.
const passwordResetTTL = time.Hour

// UserService provides business logic for account operations.
type UserService struct {
	db             *db.DB
	passwordConfig *config.PasswordConfig
	mailer         *mailer.Mailer
	frontendURL    string
}

// NewUserService creates a UserService with its dependencies.
func NewUserService(database *db.DB, passwordConfig *config.PasswordConfig, m *mailer.Mailer, frontendURL string) *UserService {
	return &UserService{
		db:             database,
		passwordConfig: passwordConfig,
		mailer:         m,
		frontendURL:    frontendURL,
	}
}

// Register creates a new account and sends the activation email.
func (s *UserService) Register(ctx context.Context, req *types.SignupRequest) (*types.User, error) {
	existing, err := s.db.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	activationKey := uuid.NewString()
	rec := &db.UserRecord{
		FullName:        req.FullName,
		Email:           req.Email,
		PasswordHash:    passwordHash,
		Profession:      req.Profession,
		ExperienceLevel: req.ExperienceLevel,
		CurrentLocation: req.CurrentLocation,
		ActivationKey:   &activationKey,
	}

	userID, err := s.db.CreateUser(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	activationURL := fmt.Sprintf("%s/activate?email=%s&key=%s", s.frontendURL, req.Email, activationKey)
	if err := s.mailer.SendActivation(req.Email, req.FullName, activationURL); err != nil {
		// Account exists either way; the user can request a new email.
		log.Printf("[AUTH] failed to send activation email to %s: %v", req.Email, err)
	}

	created, err := s.db.GetUser(ctx, userID)
	if err != nil || created == nil {
		return nil, fmt.Errorf("failed to load created user: %w", err)
	}
	return created.AsUser(), nil
}

// Login verifies credentials and returns the account. The same error
// covers unknown email and wrong password.
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	rec, err := s.db.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	if rec == nil {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwordConfig.VerifyPassword(req.Password, rec.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}
	return rec.AsUser(), nil
}

// Activate marks the account matching the activation key as activated.
func (s *UserService) Activate(ctx context.Context, email, key string) (bool, error) {
	return s.db.ActivateUser(ctx, email, key)
}

// RequestPasswordReset issues a reset key and emails the link. An unknown
// email is not an error; the response is identical either way so the
// endpoint cannot be used to probe accounts.
func (s *UserService) RequestPasswordReset(ctx context.Context, email string) error {
	resetKey := uuid.NewString()
	ok, err := s.db.SetPasswordResetKey(ctx, email, resetKey, time.Now().Add(passwordResetTTL))
	if err != nil {
		return fmt.Errorf("failed to set reset key: %w", err)
	}
	if !ok {
		return nil
	}

	rec, err := s.db.GetUserByEmail(ctx, email)
	if err != nil || rec == nil {
		return err
	}
	resetURL := fmt.Sprintf("%s/reset-password?key=%s", s.frontendURL, resetKey)
	if err := s.mailer.SendPasswordReset(email, rec.FullName, resetURL); err != nil {
		log.Printf("[AUTH] failed to send reset email to %s: %v", email, err)
	}
	return nil
}

// ResetPassword sets a new password for the account holding a valid reset
// key.
func (s *UserService) ResetPassword(ctx context.Context, resetKey, newPassword string) (bool, error) {
	passwordHash, err := s.passwordConfig.HashPassword(newPassword)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}
	return s.db.ResetPassword(ctx, resetKey, passwordHash)
}
