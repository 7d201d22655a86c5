package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/taskhub/taskhub-api/internal/domain"
	"github.com/taskhub/taskhub-api/internal/store"
)

// TaskUpdate carries the optional fields of a task update. A nil field is
// left unchanged. The project a task belongs to is immutable.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
}

// TaskService provides task operations scoped to the owner of the task's
// project. Every operation on an existing task passes through the
// ownership gate.
type TaskService interface {
	// Create creates a task under a project owned by the user. An empty
	// status defaults to TODO.
	Create(
		ctx context.Context,
		userID, projectID uuid.UUID,
		title, description string,
		status domain.TaskStatus,
	) (*domain.Task, error)

	// ListByProject returns all tasks of a project owned by the user.
	ListByProject(ctx context.Context, userID, projectID uuid.UUID) ([]*domain.Task, error)

	// ListAllForUser returns every task under every project the user owns.
	ListAllForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)

	// Get returns a single task reachable by the user.
	Get(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)

	// Update applies a partial update. A status change into DONE stamps
	// CompletedAt; a change out of DONE clears it; an unchanged status
	// leaves it untouched.
	Update(ctx context.Context, userID, taskID uuid.UUID, update TaskUpdate) (*domain.Task, error)

	// Delete removes a task reachable by the user.
	Delete(ctx context.Context, userID, taskID uuid.UUID) error
}

// TaskServiceImpl implements the TaskService interface.
type TaskServiceImpl struct {
	taskStore    store.TaskStore
	projectStore store.ProjectStore
	logger       *slog.Logger
}

// NewTaskService creates a new TaskService.
func NewTaskService(
	taskStore store.TaskStore,
	projectStore store.ProjectStore,
	logger *slog.Logger,
) TaskService {
	return &TaskServiceImpl{
		taskStore:    taskStore,
		projectStore: projectStore,
		logger:       logger.With("component", "task_service"),
	}
}

// Create creates a task under a project owned by the user.
func (s *TaskServiceImpl) Create(
	ctx context.Context,
	userID, projectID uuid.UUID,
	title, description string,
	status domain.TaskStatus,
) (*domain.Task, error) {
	if _, err := authorizeProject(ctx, s.projectStore, userID, projectID); err != nil {
		if !errors.Is(err, store.ErrProjectNotFound) {
			s.logger.Error("failed to retrieve project for task create",
				"error", err,
				"project_id", projectID)
		}
		return nil, fmt.Errorf("failed to retrieve project for task create: %w", err)
	}

	task, err := domain.NewTask(projectID, title, description, status)
	if err != nil {
		s.logger.Debug("invalid task data during create",
			"error", err,
			"project_id", projectID)
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	// A task created directly in DONE carries a completion timestamp.
	if task.Status == domain.TaskStatusDone {
		now := time.Now().UTC()
		task.CompletedAt = &now
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		s.logger.Error("failed to save task",
			"error", err,
			"project_id", projectID)
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("task created successfully",
		"task_id", task.ID,
		"project_id", projectID,
		"status", string(task.Status))

	return task, nil
}

// ListByProject returns all tasks of a project owned by the user.
func (s *TaskServiceImpl) ListByProject(
	ctx context.Context,
	userID, projectID uuid.UUID,
) ([]*domain.Task, error) {
	if _, err := authorizeProject(ctx, s.projectStore, userID, projectID); err != nil {
		if !errors.Is(err, store.ErrProjectNotFound) {
			s.logger.Error("failed to retrieve project for task list",
				"error", err,
				"project_id", projectID)
		}
		return nil, fmt.Errorf("failed to retrieve project for task list: %w", err)
	}

	tasks, err := s.taskStore.ListByProjectID(ctx, projectID)
	if err != nil {
		s.logger.Error("failed to list tasks",
			"error", err,
			"project_id", projectID)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// ListAllForUser fans out over the user's projects and collects their
// tasks. Orphaned tasks whose project was deleted never appear because
// the fan-out starts from the surviving projects.
func (s *TaskServiceImpl) ListAllForUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Task, error) {
	projects, err := s.projectStore.ListByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list projects for task fan-out",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	projectIDs := make([]uuid.UUID, len(projects))
	for i, p := range projects {
		projectIDs[i] = p.ID
	}

	tasks, err := s.taskStore.ListByProjectIDs(ctx, projectIDs)
	if err != nil {
		s.logger.Error("failed to list tasks across projects",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// Get returns a single task reachable by the user.
func (s *TaskServiceImpl) Get(
	ctx context.Context,
	userID, taskID uuid.UUID,
) (*domain.Task, error) {
	task, _, err := authorizeTask(ctx, s.taskStore, s.projectStore, userID, taskID)
	if err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to retrieve task",
				"error", err,
				"task_id", taskID)
		}
		return nil, fmt.Errorf("failed to retrieve task: %w", err)
	}

	return task, nil
}

// Update applies a partial update, deriving CompletedAt from the status
// transition.
func (s *TaskServiceImpl) Update(
	ctx context.Context,
	userID, taskID uuid.UUID,
	update TaskUpdate,
) (*domain.Task, error) {
	task, _, err := authorizeTask(ctx, s.taskStore, s.projectStore, userID, taskID)
	if err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to retrieve task for update",
				"error", err,
				"task_id", taskID)
		}
		return nil, fmt.Errorf("failed to retrieve task for update: %w", err)
	}

	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.Status != nil {
		patch := domain.ApplyStatusTransition(task.Status, *update.Status, time.Now())
		task.Status = *update.Status
		if patch.Apply {
			task.CompletedAt = patch.CompletedAt
		}
	}

	if err := s.taskStore.Update(ctx, task); err != nil {
		s.logger.Error("failed to update task",
			"error", err,
			"task_id", taskID)
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.logger.Info("task updated successfully",
		"task_id", taskID,
		"status", string(task.Status))

	return task, nil
}

// Delete removes a task reachable by the user.
func (s *TaskServiceImpl) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	if _, _, err := authorizeTask(ctx, s.taskStore, s.projectStore, userID, taskID); err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to retrieve task for delete",
				"error", err,
				"task_id", taskID)
		}
		return fmt.Errorf("failed to retrieve task for delete: %w", err)
	}

	if err := s.taskStore.Delete(ctx, taskID); err != nil {
		s.logger.Error("failed to delete task",
			"error", err,
			"task_id", taskID)
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Info("task deleted successfully",
		"task_id", taskID)

	return nil
}
