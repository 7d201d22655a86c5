package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskhub/taskhub-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// ListByProjectID returns all tasks belonging to the given project,
	// in insertion order. Returns an empty slice when the project has none.
	ListByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error)

	// ListByProjectIDs returns all tasks belonging to any of the given
	// projects. Returns an empty slice for an empty ID list.
	ListByProjectIDs(ctx context.Context, projectIDs []uuid.UUID) ([]*domain.Task, error)

	// Update persists changes to an existing task.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
