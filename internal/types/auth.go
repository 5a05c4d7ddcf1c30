package types

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. PasswordHash never leaves the db package;
// this struct is the API-safe view.
type User struct {
	ID               uuid.UUID `json:"id"`
	FullName         string    `json:"fullName"`
	Email            string    `json:"email"`
	Profession       string    `json:"profession,omitempty"`
	ExperienceLevel  string    `json:"experienceLevel,omitempty"`
	CurrentLocation  string    `json:"currentLocation,omitempty"`
	AccountActivated bool      `json:"accountActivated"`
	CreatedAt        time.Time `json:"createdAt"`
}

// SignupRequest is the payload for account creation.
type SignupRequest struct {
	FullName        string `json:"fullName" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	Profession      string `json:"profession"`
	ExperienceLevel string `json:"experienceLevel"`
	CurrentLocation string `json:"currentLocation"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
