package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhub/taskhub-api/internal/domain"
)

func TestNewProject(t *testing.T) {
	userID := uuid.New()

	t.Run("valid_project", func(t *testing.T) {
		project, err := domain.NewProject(userID, "Website", "Marketing site rebuild")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, project.ID)
		assert.Equal(t, userID, project.UserID)
		assert.Equal(t, "Website", project.Name)
		assert.False(t, project.CreatedAt.IsZero())
	})

	tests := []struct {
		name        string
		userID      uuid.UUID
		projectName string
		description string
		wantErr     error
	}{
		{
			name:        "missing_owner",
			userID:      uuid.Nil,
			projectName: "P",
			description: "d",
			wantErr:     domain.ErrEmptyProjectUserID,
		},
		{
			name:        "empty_name",
			userID:      userID,
			projectName: "",
			description: "d",
			wantErr:     domain.ErrEmptyProjectName,
		},
		{
			name:        "empty_description",
			userID:      userID,
			projectName: "P",
			description: "   ",
			wantErr:     domain.ErrEmptyProjectDescription,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewProject(tt.userID, tt.projectName, tt.description)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
