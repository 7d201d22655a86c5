package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/taskhub/taskhub-api/internal/domain"
	"github.com/taskhub/taskhub-api/internal/store"
)

// ProfileUpdate carries the optional fields of a profile update. A nil
// field is left unchanged. Email and password are immutable after signup
// and deliberately absent here.
type ProfileUpdate struct {
	Name    *string
	Country *string
}

// UserService provides profile operations for the authenticated user.
type UserService interface {
	// GetProfile retrieves a user by their ID.
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// UpdateProfile applies a partial update to the user's mutable profile
	// fields and returns the updated user.
	UpdateProfile(ctx context.Context, userID uuid.UUID, update ProfileUpdate) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	userStore store.UserStore
	logger    *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(userStore store.UserStore, logger *slog.Logger) UserService {
	return &UserServiceImpl{
		userStore: userStore,
		logger:    logger.With("component", "user_service"),
	}
}

// GetProfile retrieves a user by their ID.
func (s *UserServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to retrieve user",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	return user, nil
}

// UpdateProfile applies a partial update to name and country. The full user
// is read first, mutated, and written back, so immutable fields (email,
// password hash) travel through unchanged.
func (s *UserServiceImpl) UpdateProfile(
	ctx context.Context,
	userID uuid.UUID,
	update ProfileUpdate,
) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to retrieve user for profile update",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to retrieve user for update: %w", err)
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Country != nil {
		user.Country = *update.Country
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.userStore.Update(ctx, user); err != nil {
		s.logger.Error("failed to update user profile",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to update user profile: %w", err)
	}

	s.logger.Info("user profile updated successfully",
		"user_id", userID)

	return user, nil
}
