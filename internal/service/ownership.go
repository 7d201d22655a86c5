package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/taskhub/taskhub-api/internal/domain"
	"github.com/taskhub/taskhub-api/internal/store"
)

// authorizeProject loads a project and verifies it belongs to userID.
// A project that does not exist and a project owned by another user are
// reported identically as store.ErrProjectNotFound, so a caller probing
// foreign IDs learns nothing about what exists.
func authorizeProject(
	ctx context.Context,
	projects store.ProjectStore,
	userID, projectID uuid.UUID,
) (*domain.Project, error) {
	project, err := projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if project.UserID != userID {
		return nil, store.ErrProjectNotFound
	}

	return project, nil
}

// authorizeTask loads a task and verifies that the project it belongs to is
// owned by userID. A missing task surfaces as store.ErrTaskNotFound; a
// missing parent project as store.ErrProjectNotFound; an owner mismatch as
// store.ErrTaskNotFound, hiding the task's existence from non-owners.
func authorizeTask(
	ctx context.Context,
	tasks store.TaskStore,
	projects store.ProjectStore,
	userID, taskID uuid.UUID,
) (*domain.Task, *domain.Project, error) {
	task, err := tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, nil, err
	}

	project, err := projects.GetByID(ctx, task.ProjectID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load task's project: %w", err)
	}

	if project.UserID != userID {
		return nil, nil, store.ErrTaskNotFound
	}

	return task, project, nil
}
