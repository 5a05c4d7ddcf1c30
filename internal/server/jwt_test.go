package server

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kariqs/jobland-api/internal/config"
	"github.com/Kariqs/jobland-api/internal/server/middleware"
)

var _ middleware.UserClaims = (*Claims)(nil)

func testJWTService(expirationHours int) *JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret:          "test-secret-key",
		ExpirationHours: expirationHours,
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := testJWTService(24)
	userID := uuid.New()

	token, err := service.GenerateToken(userID, "ada@example.com", "software engineer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.GetUserID())
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "software engineer", claims.GetProfession())
}

func TestValidateToken_Invalid(t *testing.T) {
	service := testJWTService(24)

	tests := []struct {
		name  string
		token string
	}{
		{"Empty token", ""},
		{"Garbage token", "not.a.jwt"},
		{"Tampered token", func() string {
			token, _ := service.GenerateToken(uuid.New(), "a@example.com", "")
			return token + "x"
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ValidateToken(tt.token)
			require.Error(t, err)
		})
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := testJWTService(24).GenerateToken(uuid.New(), "ada@example.com", "")
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{Secret: "different-secret", ExpirationHours: 24})
	_, err = other.ValidateToken(token)
	require.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	service := testJWTService(-1)

	token, err := service.GenerateToken(uuid.New(), "ada@example.com", "")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestAsTokenValidator(t *testing.T) {
	service := testJWTService(24)
	userID := uuid.New()

	token, err := service.GenerateToken(userID, "ada@example.com", "analyst")
	require.NoError(t, err)

	claims, err := service.AsTokenValidator().ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.GetUserID())
	assert.Equal(t, "analyst", claims.GetProfession())
}

func TestTokenExpiryIsSet(t *testing.T) {
	service := testJWTService(2)
	token, err := service.GenerateToken(uuid.New(), "ada@example.com", "")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), claims.ExpiresAt.Time, time.Minute)
}
