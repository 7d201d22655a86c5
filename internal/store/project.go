package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskhub/taskhub-api/internal/domain"
)

// ProjectStore defines the interface for project data persistence.
type ProjectStore interface {
	// Create saves a new project, refusing the insert atomically when the
	// owner already holds maxPerUser projects. Two concurrent creates can
	// therefore never push an owner past the cap.
	// Returns ErrProjectLimitReached when the cap is hit.
	Create(ctx context.Context, project *domain.Project, maxPerUser int) error

	// GetByID retrieves a project by its unique ID.
	// Returns ErrProjectNotFound if the project does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)

	// ListByUserID returns all projects owned by the given user, in
	// insertion order. Returns an empty slice when the user owns none.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error)

	// Update persists changes to an existing project.
	// Returns ErrProjectNotFound if the project does not exist.
	Update(ctx context.Context, project *domain.Project) error

	// Delete removes a project by its ID. Tasks belonging to the project
	// are left in place; they become unreachable through the ownership
	// gate once their project is gone.
	// Returns ErrProjectNotFound if the project does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
