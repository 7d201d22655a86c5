package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taskhub/taskhub-api/internal/domain"
	"github.com/taskhub/taskhub-api/internal/service/auth"
	"github.com/taskhub/taskhub-api/internal/store"
)

// AuthService provides user registration and login.
type AuthService interface {
	// Signup registers a new user and issues a session token.
	// Returns store.ErrEmailExists if the email is already registered.
	Signup(ctx context.Context, name, email, password, country string) (*domain.User, string, error)

	// Login authenticates a user by email and password and issues a session
	// token. Returns store.ErrUserNotFound for an unknown email and
	// auth.ErrInvalidCredentials for a wrong password.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

// AuthServiceImpl implements the AuthService interface.
type AuthServiceImpl struct {
	userStore  store.UserStore
	hasher     auth.PasswordHasher
	verifier   auth.PasswordVerifier
	jwtService auth.JWTService
	logger     *slog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	jwtService auth.JWTService,
	logger *slog.Logger,
) AuthService {
	return &AuthServiceImpl{
		userStore:  userStore,
		hasher:     hasher,
		verifier:   verifier,
		jwtService: jwtService,
		logger:     logger.With("component", "auth_service"),
	}
}

// Signup registers a new user and issues a session token.
func (s *AuthServiceImpl) Signup(
	ctx context.Context,
	name, email, password, country string,
) (*domain.User, string, error) {
	hashedPassword, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("failed to hash password",
			"error", err)
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := domain.NewUser(name, email, hashedPassword, country)
	if err != nil {
		s.logger.Debug("invalid user data during signup",
			"error", err)
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("attempted signup with existing email",
				"email", user.Email)
		} else {
			s.logger.Error("failed to save user",
				"error", err)
		}
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(ctx, user.ID)
	if err != nil {
		s.logger.Error("failed to generate token after signup",
			"error", err,
			"user_id", user.ID)
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("user registered successfully",
		"user_id", user.ID)

	return user, token, nil
}

// Login authenticates a user and issues a session token.
func (s *AuthServiceImpl) Login(
	ctx context.Context,
	email, password string,
) (*domain.User, string, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("login attempt for unknown email")
		} else {
			s.logger.Error("failed to look up user for login",
				"error", err)
		}
		return nil, "", fmt.Errorf("failed to authenticate: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		s.logger.Debug("login attempt with wrong password",
			"user_id", user.ID)
		return nil, "", auth.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(ctx, user.ID)
	if err != nil {
		s.logger.Error("failed to generate token after login",
			"error", err,
			"user_id", user.ID)
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("user logged in successfully",
		"user_id", user.ID)

	return user, token, nil
}
