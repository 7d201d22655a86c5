package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/taskhub/taskhub-api/internal/domain"
	"github.com/taskhub/taskhub-api/internal/platform/logger"
	"github.com/taskhub/taskhub-api/internal/store"
)

// PostgresProjectStore implements the store.ProjectStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProjectStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProjectStore creates a new PostgreSQL implementation of the
// ProjectStore interface. If logger is nil, the default logger is used.
func NewPostgresProjectStore(db store.DBTX, logger *slog.Logger) *PostgresProjectStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresProjectStore{
		db:     db,
		logger: logger.With(slog.String("component", "project_store")),
	}
}

// Ensure PostgresProjectStore implements store.ProjectStore interface
var _ store.ProjectStore = (*PostgresProjectStore)(nil)

// Create implements store.ProjectStore.Create.
// The count check and the insert run in one statement, so two concurrent
// creates for the same owner cannot both slip under the cap.
// Returns store.ErrProjectLimitReached when the owner already holds
// maxPerUser projects.
func (s *PostgresProjectStore) Create(ctx context.Context, project *domain.Project, maxPerUser int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := project.Validate(); err != nil {
		log.Warn("project validation failed during create",
			slog.String("error", err.Error()),
			slog.String("project_id", project.ID.String()))
		return err
	}

	query := `
		INSERT INTO projects (id, name, description, user_id, created_at, updated_at)
		SELECT $1, $2, $3, $4, $5, $6
		WHERE (SELECT COUNT(*) FROM projects WHERE user_id = $4) < $7
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		project.ID,
		project.Name,
		project.Description,
		project.UserID,
		project.CreatedAt,
		project.UpdatedAt,
		maxPerUser,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during project creation",
				slog.String("project_id", project.ID.String()),
				slog.String("user_id", project.UserID.String()))
			return store.ErrUserNotFound
		}

		log.Error("failed to create project",
			slog.String("error", err.Error()),
			slog.String("project_id", project.ID.String()),
			slog.String("user_id", project.UserID.String()))
		return err
	}

	if err := checkRowsAffected(result, store.ErrProjectLimitReached); err != nil {
		log.Debug("project limit reached",
			slog.String("user_id", project.UserID.String()),
			slog.Int("limit", maxPerUser))
		return err
	}

	log.Info("project created successfully",
		slog.String("project_id", project.ID.String()),
		slog.String("user_id", project.UserID.String()))
	return nil
}

// GetByID implements store.ProjectStore.GetByID.
// Returns store.ErrProjectNotFound if the project does not exist.
func (s *PostgresProjectStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, description, user_id, created_at, updated_at
		FROM projects
		WHERE id = $1
	`

	var project domain.Project
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&project.ID,
		&project.Name,
		&project.Description,
		&project.UserID,
		&project.CreatedAt,
		&project.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("project not found", slog.String("project_id", id.String()))
			return nil, store.ErrProjectNotFound
		}
		log.Error("failed to get project by ID",
			slog.String("error", err.Error()),
			slog.String("project_id", id.String()))
		return nil, err
	}

	return &project, nil
}

// ListByUserID implements store.ProjectStore.ListByUserID.
// Projects come back in insertion order.
func (s *PostgresProjectStore) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, description, user_id, created_at, updated_at
		FROM projects
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to query projects by user",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var projects []*domain.Project
	for rows.Next() {
		var project domain.Project
		err := rows.Scan(
			&project.ID,
			&project.Name,
			&project.Description,
			&project.UserID,
			&project.CreatedAt,
			&project.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan project row", slog.String("error", err.Error()))
			return nil, err
		}
		projects = append(projects, &project)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	if projects == nil {
		projects = []*domain.Project{}
	}

	return projects, nil
}

// Update implements store.ProjectStore.Update.
// Returns store.ErrProjectNotFound if the project does not exist.
func (s *PostgresProjectStore) Update(ctx context.Context, project *domain.Project) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := project.Validate(); err != nil {
		log.Warn("project validation failed during update",
			slog.String("error", err.Error()),
			slog.String("project_id", project.ID.String()))
		return err
	}

	project.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE projects
		SET name = $1, description = $2, updated_at = $3
		WHERE id = $4
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		project.Name,
		project.Description,
		project.UpdatedAt,
		project.ID,
	)

	if err != nil {
		log.Error("failed to update project",
			slog.String("error", err.Error()),
			slog.String("project_id", project.ID.String()))
		return err
	}

	if err := checkRowsAffected(result, store.ErrProjectNotFound); err != nil {
		log.Debug("project not found for update",
			slog.String("project_id", project.ID.String()))
		return err
	}

	log.Info("project updated successfully",
		slog.String("project_id", project.ID.String()))
	return nil
}

// Delete implements store.ProjectStore.Delete.
// Tasks under the project are deliberately left in place; they become
// unreachable through the ownership gate once the project row is gone.
// Returns store.ErrProjectNotFound if the project does not exist.
func (s *PostgresProjectStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete project",
			slog.String("error", err.Error()),
			slog.String("project_id", id.String()))
		return err
	}

	if err := checkRowsAffected(result, store.ErrProjectNotFound); err != nil {
		log.Debug("project not found for delete",
			slog.String("project_id", id.String()))
		return err
	}

	log.Info("project deleted successfully",
		slog.String("project_id", id.String()))
	return nil
}
