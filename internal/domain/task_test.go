package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhub/taskhub-api/internal/domain"
)

func TestNewTask(t *testing.T) {
	projectID := uuid.New()

	t.Run("status_defaults_to_todo", func(t *testing.T) {
		task, err := domain.NewTask(projectID, "Write docs", "Document the API", "")
		require.NoError(t, err)

		assert.Equal(t, domain.TaskStatusTodo, task.Status)
		assert.Nil(t, task.CompletedAt)
		assert.Equal(t, projectID, task.ProjectID)
	})

	t.Run("explicit_status", func(t *testing.T) {
		task, err := domain.NewTask(projectID, "Review PR", "Review the open PR", domain.TaskStatusReview)
		require.NoError(t, err)
		assert.Equal(t, domain.TaskStatusReview, task.Status)
	})

	tests := []struct {
		name        string
		projectID   uuid.UUID
		title       string
		description string
		status      domain.TaskStatus
		wantErr     error
	}{
		{
			name:        "missing_project",
			projectID:   uuid.Nil,
			title:       "t",
			description: "d",
			wantErr:     domain.ErrEmptyTaskProjectID,
		},
		{
			name:        "empty_title",
			projectID:   projectID,
			title:       "",
			description: "d",
			wantErr:     domain.ErrEmptyTaskTitle,
		},
		{
			name:        "empty_description",
			projectID:   projectID,
			title:       "t",
			description: "",
			wantErr:     domain.ErrEmptyTaskDescription,
		},
		{
			name:        "unknown_status",
			projectID:   projectID,
			title:       "t",
			description: "d",
			status:      domain.TaskStatus("BLOCKED"),
			wantErr:     domain.ErrInvalidTaskStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewTask(tt.projectID, tt.title, tt.description, tt.status)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIsValidTaskStatus(t *testing.T) {
	for _, status := range []domain.TaskStatus{
		domain.TaskStatusTodo,
		domain.TaskStatusInProgress,
		domain.TaskStatusReview,
		domain.TaskStatusDone,
	} {
		assert.True(t, domain.IsValidTaskStatus(status), string(status))
	}

	assert.False(t, domain.IsValidTaskStatus("todo"), "statuses are case-sensitive")
	assert.False(t, domain.IsValidTaskStatus("CANCELLED"))
}
