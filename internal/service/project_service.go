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

// ProjectUpdate carries the optional fields of a project update. A nil
// field is left unchanged.
type ProjectUpdate struct {
	Name        *string
	Description *string
}

// ProjectService provides project operations scoped to their owner.
// Every operation on an existing project passes through the ownership
// gate, so foreign projects surface as store.ErrProjectNotFound.
type ProjectService interface {
	// Create creates a project for the user, enforcing the per-user cap.
	// Returns store.ErrProjectLimitReached when the user already owns the
	// maximum number of projects.
	Create(ctx context.Context, userID uuid.UUID, name, description string) (*domain.Project, error)

	// ListByUser returns all projects owned by the user in creation order.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error)

	// Get returns a single project owned by the user.
	Get(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error)

	// Update applies a partial update to a project owned by the user.
	Update(ctx context.Context, userID, projectID uuid.UUID, update ProjectUpdate) (*domain.Project, error)

	// Delete removes a project owned by the user. Tasks under the project
	// keep their rows but become unreachable through the gate.
	Delete(ctx context.Context, userID, projectID uuid.UUID) error
}

// ProjectServiceImpl implements the ProjectService interface.
type ProjectServiceImpl struct {
	projectStore store.ProjectStore
	logger       *slog.Logger
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectStore store.ProjectStore, logger *slog.Logger) ProjectService {
	return &ProjectServiceImpl{
		projectStore: projectStore,
		logger:       logger.With("component", "project_service"),
	}
}

// Create creates a project for the user, enforcing the per-user cap.
func (s *ProjectServiceImpl) Create(
	ctx context.Context,
	userID uuid.UUID,
	name, description string,
) (*domain.Project, error) {
	project, err := domain.NewProject(userID, name, description)
	if err != nil {
		s.logger.Debug("invalid project data during create",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	if err := s.projectStore.Create(ctx, project, domain.MaxProjectsPerUser); err != nil {
		if errors.Is(err, store.ErrProjectLimitReached) {
			s.logger.Debug("project limit reached",
				"user_id", userID,
				"limit", domain.MaxProjectsPerUser)
		} else {
			s.logger.Error("failed to save project",
				"error", err,
				"user_id", userID)
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.logger.Info("project created successfully",
		"project_id", project.ID,
		"user_id", userID)

	return project, nil
}

// ListByUser returns all projects owned by the user.
func (s *ProjectServiceImpl) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Project, error) {
	projects, err := s.projectStore.ListByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list projects",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return projects, nil
}

// Get returns a single project owned by the user.
func (s *ProjectServiceImpl) Get(
	ctx context.Context,
	userID, projectID uuid.UUID,
) (*domain.Project, error) {
	project, err := authorizeProject(ctx, s.projectStore, userID, projectID)
	if err != nil {
		if !errors.Is(err, store.ErrProjectNotFound) {
			s.logger.Error("failed to retrieve project",
				"error", err,
				"project_id", projectID)
		}
		return nil, fmt.Errorf("failed to retrieve project: %w", err)
	}

	return project, nil
}

// Update applies a partial update to a project owned by the user.
func (s *ProjectServiceImpl) Update(
	ctx context.Context,
	userID, projectID uuid.UUID,
	update ProjectUpdate,
) (*domain.Project, error) {
	project, err := authorizeProject(ctx, s.projectStore, userID, projectID)
	if err != nil {
		if !errors.Is(err, store.ErrProjectNotFound) {
			s.logger.Error("failed to retrieve project for update",
				"error", err,
				"project_id", projectID)
		}
		return nil, fmt.Errorf("failed to retrieve project for update: %w", err)
	}

	if update.Name != nil {
		project.Name = *update.Name
	}
	if update.Description != nil {
		project.Description = *update.Description
	}
	project.UpdatedAt = time.Now().UTC()

	if err := s.projectStore.Update(ctx, project); err != nil {
		s.logger.Error("failed to update project",
			"error", err,
			"project_id", projectID)
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	s.logger.Info("project updated successfully",
		"project_id", projectID,
		"user_id", userID)

	return project, nil
}

// Delete removes a project owned by the user.
func (s *ProjectServiceImpl) Delete(ctx context.Context, userID, projectID uuid.UUID) error {
	if _, err := authorizeProject(ctx, s.projectStore, userID, projectID); err != nil {
		if !errors.Is(err, store.ErrProjectNotFound) {
			s.logger.Error("failed to retrieve project for delete",
				"error", err,
				"project_id", projectID)
		}
		return fmt.Errorf("failed to retrieve project for delete: %w", err)
	}

	if err := s.projectStore.Delete(ctx, projectID); err != nil {
		s.logger.Error("failed to delete project",
			"error", err,
			"project_id", projectID)
		return fmt.Errorf("failed to delete project: %w", err)
	}

	s.logger.Info("project deleted successfully",
		"project_id", projectID,
		"user_id", userID)

	return nil
}
