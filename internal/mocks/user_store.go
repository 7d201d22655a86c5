package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/taskhub/taskhub-api/internal/domain"
	"github.com/taskhub/taskhub-api/internal/store"
)

// MockUserStore implements store.UserStore for testing.
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, user *domain.User) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	UpdateFn     func(ctx context.Context, user *domain.User) error

	// Data for the default implementation, keyed by normalized email
	mu    sync.Mutex
	Users map[string]*domain.User
}

// NewMockUserStore creates a new mock store with initialized defaults.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

var _ store.UserStore = (*MockUserStore)(nil)

// Create implements the UserStore interface.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.Users[user.Email]; exists {
		return store.ErrEmailExists
	}

	copied := *user
	m.Users[user.Email] = &copied
	return nil
}

// GetByID implements the UserStore interface.
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.Users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}

	return nil, store.ErrUserNotFound
}

// GetByEmail implements the UserStore interface. Lookup is
// case-insensitive, mirroring the real store.
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, exists := m.Users[domain.NormalizeEmail(email)]
	if !exists {
		return nil, store.ErrUserNotFound
	}

	copied := *user
	return &copied, nil
}

// Update implements the UserStore interface.
func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for email, existing := range m.Users {
		if existing.ID == user.ID {
			copied := *user
			m.Users[email] = &copied
			return nil
		}
	}

	return store.ErrUserNotFound
}
