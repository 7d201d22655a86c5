package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhub/taskhub-api/internal/domain"
	"github.com/taskhub/taskhub-api/internal/mocks"
	"github.com/taskhub/taskhub-api/internal/service"
	"github.com/taskhub/taskhub-api/internal/store"
)

func strPtr(s string) *string { return &s }

func TestProjectServiceCreate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		svc := service.NewProjectService(mocks.NewMockProjectStore(), testLogger())

		project, err := svc.Create(ctx, userID, "Website", "Marketing website rebuild")
		require.NoError(t, err)
		assert.Equal(t, userID, project.UserID)
		assert.NotEqual(t, uuid.Nil, project.ID)
	})

	t.Run("cap_enforced", func(t *testing.T) {
		svc := service.NewProjectService(mocks.NewMockProjectStore(), testLogger())

		for i := 0; i < domain.MaxProjectsPerUser; i++ {
			_, err := svc.Create(ctx, userID, "Project", "One of several projects")
			require.NoError(t, err)
		}

		_, err := svc.Create(ctx, userID, "One too many", "Exceeds the cap")
		assert.ErrorIs(t, err, store.ErrProjectLimitReached)
	})

	t.Run("cap_is_per_user", func(t *testing.T) {
		projectStore := mocks.NewMockProjectStore()
		svc := service.NewProjectService(projectStore, testLogger())

		for i := 0; i < domain.MaxProjectsPerUser; i++ {
			_, err := svc.Create(ctx, userID, "Project", "Filling the first user's quota")
			require.NoError(t, err)
		}

		_, err := svc.Create(ctx, uuid.New(), "Fresh start", "Another user's first project")
		assert.NoError(t, err)
	})
}

func TestProjectServiceOwnershipGate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	owner := uuid.New()
	stranger := uuid.New()

	projectStore := mocks.NewMockProjectStore()
	svc := service.NewProjectService(projectStore, testLogger())

	project, err := svc.Create(ctx, owner, "Secret plans", "Owned by the first user")
	require.NoError(t, err)

	t.Run("owner_can_get", func(t *testing.T) {
		got, err := svc.Get(ctx, owner, project.ID)
		require.NoError(t, err)
		assert.Equal(t, project.ID, got.ID)
	})

	t.Run("stranger_gets_not_found", func(t *testing.T) {
		_, err := svc.Get(ctx, stranger, project.ID)
		assert.ErrorIs(t, err, store.ErrProjectNotFound,
			"foreign project must be indistinguishable from a missing one")
	})

	t.Run("stranger_cannot_update", func(t *testing.T) {
		_, err := svc.Update(ctx, stranger, project.ID, service.ProjectUpdate{
			Name: strPtr("Hijacked"),
		})
		assert.ErrorIs(t, err, store.ErrProjectNotFound)

		got, err := svc.Get(ctx, owner, project.ID)
		require.NoError(t, err)
		assert.Equal(t, "Secret plans", got.Name)
	})

	t.Run("stranger_cannot_delete", func(t *testing.T) {
		err := svc.Delete(ctx, stranger, project.ID)
		assert.ErrorIs(t, err, store.ErrProjectNotFound)

		_, err = svc.Get(ctx, owner, project.ID)
		assert.NoError(t, err)
	})

	t.Run("missing_project", func(t *testing.T) {
		_, err := svc.Get(ctx, owner, uuid.New())
		assert.ErrorIs(t, err, store.ErrProjectNotFound)
	})
}

func TestProjectServiceUpdate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	userID := uuid.New()

	svc := service.NewProjectService(mocks.NewMockProjectStore(), testLogger())

	project, err := svc.Create(ctx, userID, "Initial name", "Initial description")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, userID, project.ID, service.ProjectUpdate{
		Description: strPtr("Refined description"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Initial name", updated.Name, "unset fields stay unchanged")
	assert.Equal(t, "Refined description", updated.Description)
}

func TestProjectServiceListByUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := service.NewProjectService(mocks.NewMockProjectStore(), testLogger())
	userID := uuid.New()

	t.Run("empty", func(t *testing.T) {
		projects, err := svc.ListByUser(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, projects)
		assert.NotNil(t, projects, "empty list serializes as [], not null")
	})

	t.Run("only_own_projects", func(t *testing.T) {
		_, err := svc.Create(ctx, userID, "Mine", "Belongs to the listing user")
		require.NoError(t, err)
		_, err = svc.Create(ctx, uuid.New(), "Theirs", "Belongs to someone else")
		require.NoError(t, err)

		projects, err := svc.ListByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, "Mine", projects[0].Name)
	})
}
