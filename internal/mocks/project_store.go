package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/taskhub/taskhub-api/internal/domain"
	"github.com/taskhub/taskhub-api/internal/store"
)

// MockProjectStore implements store.ProjectStore for testing.
type MockProjectStore struct {
	// Function fields for customizable behavior
	CreateFn       func(ctx context.Context, project *domain.Project, maxPerUser int) error
	GetByIDFn      func(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	ListByUserIDFn func(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error)
	UpdateFn       func(ctx context.Context, project *domain.Project) error
	DeleteFn       func(ctx context.Context, id uuid.UUID) error

	mu       sync.Mutex
	Projects map[uuid.UUID]*domain.Project
}

// NewMockProjectStore creates a new mock store with initialized defaults.
func NewMockProjectStore() *MockProjectStore {
	return &MockProjectStore{
		Projects: make(map[uuid.UUID]*domain.Project),
	}
}

var _ store.ProjectStore = (*MockProjectStore)(nil)

// Create implements the ProjectStore interface, enforcing the per-user
// cap the same way the conditional INSERT does.
func (m *MockProjectStore) Create(ctx context.Context, project *domain.Project, maxPerUser int) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, project, maxPerUser)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, p := range m.Projects {
		if p.UserID == project.UserID {
			count++
		}
	}
	if count >= maxPerUser {
		return store.ErrProjectLimitReached
	}

	copied := *project
	m.Projects[project.ID] = &copied
	return nil
}

// GetByID implements the ProjectStore interface.
func (m *MockProjectStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	project, exists := m.Projects[id]
	if !exists {
		return nil, store.ErrProjectNotFound
	}

	copied := *project
	return &copied, nil
}

// ListByUserID implements the ProjectStore interface. Results come back
// in creation order, matching the real store's ORDER BY.
func (m *MockProjectStore) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	projects := []*domain.Project{}
	for _, p := range m.Projects {
		if p.UserID == userID {
			copied := *p
			projects = append(projects, &copied)
		}
	}

	sort.Slice(projects, func(i, j int) bool {
		return projects[i].CreatedAt.Before(projects[j].CreatedAt)
	})

	return projects, nil
}

// Update implements the ProjectStore interface.
func (m *MockProjectStore) Update(ctx context.Context, project *domain.Project) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, project)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.Projects[project.ID]; !exists {
		return store.ErrProjectNotFound
	}

	copied := *project
	m.Projects[project.ID] = &copied
	return nil
}

// Delete implements the ProjectStore interface.
func (m *MockProjectStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.Projects[id]; !exists {
		return store.ErrProjectNotFound
	}

	delete(m.Projects, id)
	return nil
}
