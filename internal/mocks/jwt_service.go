package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskhub/taskhub-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing.
type MockJWTService struct {
	GenerateTokenFn func(ctx context.Context, userID uuid.UUID) (string, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Token returned by the default GenerateToken implementation
	Token string
}

var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken implements the JWTService interface.
func (m *MockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID)
	}
	if m.Token != "" {
		return m.Token, nil
	}
	return "mock-token-" + userID.String(), nil
}

// ValidateToken implements the JWTService interface.
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return nil, auth.ErrInvalidToken
}
