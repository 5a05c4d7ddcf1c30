// Package middleware provides HTTP middleware for authentication.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

const claimsKey ContextKey = "claims"

// TokenValidator is an interface for validating JWT tokens. It lets the
// middleware work with any JWT service implementation without an import
// cycle.
type TokenValidator interface {
	ValidateToken(tokenString string) (UserClaims, error)
}

// UserClaims exposes the identity fields handlers need.
type UserClaims interface {
	GetUserID() uuid.UUID
	GetProfession() string
}

// Auth creates middleware that validates Bearer tokens and adds the
// claims to the request context.
func Auth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := validator.ValidateToken(strings.TrimSpace(parts[1]))
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClaims extracts the authenticated claims from the request context.
func GetClaims(r *http.Request) (UserClaims, error) {
	claims, ok := r.Context().Value(claimsKey).(UserClaims)
	if !ok {
		return nil, fmt.Errorf("claims not found in request context")
	}
	return claims, nil
}

// GetUserID extracts the authenticated user ID from the request context.
func GetUserID(r *http.Request) (uuid.UUID, error) {
	claims, err := GetClaims(r)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.GetUserID(), nil
}
