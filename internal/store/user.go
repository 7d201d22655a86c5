package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskhub/taskhub-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// Returns ErrEmailExists if the email is already taken (emails are
	// stored lowercase, so the check is case-insensitive).
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address, compared
	// case-insensitively. Returns ErrUserNotFound if no user matches.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update persists changes to an existing user. The caller provides the
	// complete user object. Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, user *domain.User) error
}
