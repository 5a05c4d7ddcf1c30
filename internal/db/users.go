package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Kariqs/jobland-api/internal/types"
)

// UserRecord is a stored account including the password hash. It never
// crosses the server boundary; handlers work with types.User.
type UserRecord struct {
	ID                   uuid.UUID
	FullName             string
	Email                string
	PasswordHash         string
	Profession           string
	ExperienceLevel      string
	CurrentLocation      string
	ActivationKey        *string
	AccountActivated     bool
	PasswordResetKey     *string
	PasswordResetExpires *time.Time
	CreatedAt            time.Time
}

// AsUser converts the record to its API-safe view.
func (u *UserRecord) AsUser() *types.User {
	return &types.User{
		ID:               u.ID,
		FullName:         u.FullName,
		Email:            u.Email,
		Profession:       u.Profession,
		ExperienceLevel:  u.ExperienceLevel,
		CurrentLocation:  u.CurrentLocation,
		AccountActivated: u.AccountActivated,
		CreatedAt:        u.CreatedAt,
	}
}

// CreateUser stores a new account. A duplicate email surfaces as
// ConflictError.
func (db *DB) CreateUser(ctx context.Context, rec *UserRecord) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO users (full_name, email, password_hash, profession, experience_level, current_location, activation_key)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		rec.FullName, rec.Email, rec.PasswordHash, rec.Profession,
		rec.ExperienceLevel, rec.CurrentLocation, rec.ActivationKey,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, asConflict(err)
	}
	return id, nil
}

const userColumns = `id, full_name, email, password_hash, profession, experience_level,
	current_location, activation_key, account_activated, password_reset_key,
	password_reset_expires, created_at`

// GetUserByEmail fetches an account by email. Returns nil when not found.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*UserRecord, error) {
	return db.scanUser(db.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email,
	))
}

// GetUser fetches an account by ID. Returns nil when not found.
func (db *DB) GetUser(ctx context.Context, id uuid.UUID) (*UserRecord, error) {
	return db.scanUser(db.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id,
	))
}

func (db *DB) scanUser(row pgx.Row) (*UserRecord, error) {
	var rec UserRecord
	err := row.Scan(&rec.ID, &rec.FullName, &rec.Email, &rec.PasswordHash,
		&rec.Profession, &rec.ExperienceLevel, &rec.CurrentLocation,
		&rec.ActivationKey, &rec.AccountActivated, &rec.PasswordResetKey,
		&rec.PasswordResetExpires, &rec.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &rec, nil
}

// ActivateUser marks the account matching the activation key as activated.
// Returns false when no account matches.
func (db *DB) ActivateUser(ctx context.Context, email, activationKey string) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`UPDATE users SET account_activated = TRUE, activation_key = NULL, updated_at = NOW()
		 WHERE email = $1 AND activation_key = $2`,
		email, activationKey,
	)
	if err != nil {
		return false, fmt.Errorf("failed to activate user: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SetPasswordResetKey stores a reset key with its expiry for the account.
// Returns false when the email is unknown.
func (db *DB) SetPasswordResetKey(ctx context.Context, email, resetKey string, expires time.Time) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`UPDATE users SET password_reset_key = $1, password_reset_expires = $2, updated_at = NOW()
		 WHERE email = $3`,
		resetKey, expires, email,
	)
	if err != nil {
		return false, fmt.Errorf("failed to set password reset key: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ResetPassword replaces the password hash for the account holding a
// still-valid reset key. Returns false when the key is unknown or expired.
func (db *DB) ResetPassword(ctx context.Context, resetKey, passwordHash string) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`UPDATE users SET password_hash = $1, password_reset_key = NULL,
		        password_reset_expires = NULL, updated_at = NOW()
		 WHERE password_reset_key = $2 AND password_reset_expires > NOW()`,
		passwordHash, resetKey,
	)
	if err != nil {
		return false, fmt.Errorf("failed to reset password: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
