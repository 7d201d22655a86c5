package auth_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhub/taskhub-api/internal/config"
	"github.com/taskhub/taskhub-api/internal/service/auth"
)

func newTestJWTService(t *testing.T, lifetimeMinutes int) auth.JWTService {
	t.Helper()

	svc, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            "test-secret-key-thirty-two-chars-minimum!",
		TokenLifetimeMinutes: lifetimeMinutes,
	})
	require.NoError(t, err)
	return svc
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	t.Run("rejects_short_secret", func(t *testing.T) {
		_, err := auth.NewJWTService(config.AuthConfig{
			JWTSecret:            "too-short",
			TokenLifetimeMinutes: 60,
		})
		assert.Error(t, err)
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t, 1440)
	ctx := context.Background()
	userID := uuid.New()

	token, err := svc.GenerateToken(ctx, userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, 3, len(strings.Split(token, ".")), "JWT should have three segments")

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.NotEmpty(t, claims.ID)

	// 24-hour default lifetime, allowing for test execution time.
	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt)
	assert.Equal(t, 24*time.Hour, lifetime)
}

func TestValidateTokenFailures(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t, 1440)
	ctx := context.Background()

	t.Run("malformed_token", func(t *testing.T) {
		_, err := svc.ValidateToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("tampered_signature", func(t *testing.T) {
		token, err := svc.GenerateToken(ctx, uuid.New())
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)
		tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

		_, err = svc.ValidateToken(ctx, tampered)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("token_from_different_secret", func(t *testing.T) {
		other, err := auth.NewJWTService(config.AuthConfig{
			JWTSecret:            "another-secret-key-with-thirty-two-chars",
			TokenLifetimeMinutes: 60,
		})
		require.NoError(t, err)

		token, err := other.GenerateToken(ctx, uuid.New())
		require.NoError(t, err)

		_, err = svc.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("empty_token", func(t *testing.T) {
		_, err := svc.ValidateToken(ctx, "")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
