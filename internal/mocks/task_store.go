package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/taskhub/taskhub-api/internal/domain"
	"github.com/taskhub/taskhub-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing.
type MockTaskStore struct {
	// Function fields for customizable behavior
	CreateFn           func(ctx context.Context, task *domain.Task) error
	GetByIDFn          func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	ListByProjectIDFn  func(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error)
	ListByProjectIDsFn func(ctx context.Context, projectIDs []uuid.UUID) ([]*domain.Task, error)
	UpdateFn           func(ctx context.Context, task *domain.Task) error
	DeleteFn           func(ctx context.Context, id uuid.UUID) error

	mu    sync.Mutex
	Tasks map[uuid.UUID]*domain.Task
}

// NewMockTaskStore creates a new mock store with initialized defaults.
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks: make(map[uuid.UUID]*domain.Task),
	}
}

var _ store.TaskStore = (*MockTaskStore)(nil)

// Create implements the TaskStore interface.
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *task
	m.Tasks[task.ID] = &copied
	return nil
}

// GetByID implements the TaskStore interface.
func (m *MockTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	task, exists := m.Tasks[id]
	if !exists {
		return nil, store.ErrTaskNotFound
	}

	copied := *task
	return &copied, nil
}

// ListByProjectID implements the TaskStore interface.
func (m *MockTaskStore) ListByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error) {
	if m.ListByProjectIDFn != nil {
		return m.ListByProjectIDFn(ctx, projectID)
	}

	return m.listWhere(func(t *domain.Task) bool {
		return t.ProjectID == projectID
	}), nil
}

// ListByProjectIDs implements the TaskStore interface.
func (m *MockTaskStore) ListByProjectIDs(ctx context.Context, projectIDs []uuid.UUID) ([]*domain.Task, error) {
	if m.ListByProjectIDsFn != nil {
		return m.ListByProjectIDsFn(ctx, projectIDs)
	}

	wanted := make(map[uuid.UUID]bool, len(projectIDs))
	for _, id := range projectIDs {
		wanted[id] = true
	}

	return m.listWhere(func(t *domain.Task) bool {
		return wanted[t.ProjectID]
	}), nil
}

// Update implements the TaskStore interface.
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.Tasks[task.ID]; !exists {
		return store.ErrTaskNotFound
	}

	copied := *task
	m.Tasks[task.ID] = &copied
	return nil
}

// Delete implements the TaskStore interface.
func (m *MockTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.Tasks[id]; !exists {
		return store.ErrTaskNotFound
	}

	delete(m.Tasks, id)
	return nil
}

func (m *MockTaskStore) listWhere(match func(*domain.Task) bool) []*domain.Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	tasks := []*domain.Task{}
	for _, t := range m.Tasks {
		if match(t) {
			copied := *t
			tasks = append(tasks, &copied)
		}
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})

	return tasks
}
