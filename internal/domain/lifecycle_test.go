package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhub/taskhub-api/internal/domain"
)

func TestApplyStatusTransition(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("entering_done_stamps_completed_at", func(t *testing.T) {
		for _, from := range []domain.TaskStatus{
			domain.TaskStatusTodo,
			domain.TaskStatusInProgress,
			domain.TaskStatusReview,
		} {
			patch := domain.ApplyStatusTransition(from, domain.TaskStatusDone, now)
			assert.True(t, patch.Apply, string(from))
			require.NotNil(t, patch.CompletedAt, string(from))
			assert.Equal(t, now, *patch.CompletedAt)
		}
	})

	t.Run("leaving_done_clears_completed_at", func(t *testing.T) {
		for _, to := range []domain.TaskStatus{
			domain.TaskStatusTodo,
			domain.TaskStatusInProgress,
			domain.TaskStatusReview,
		} {
			patch := domain.ApplyStatusTransition(domain.TaskStatusDone, to, now)
			assert.True(t, patch.Apply, string(to))
			assert.Nil(t, patch.CompletedAt, string(to))
		}
	})

	t.Run("unchanged_status_touches_nothing", func(t *testing.T) {
		for _, status := range []domain.TaskStatus{
			domain.TaskStatusTodo,
			domain.TaskStatusInProgress,
			domain.TaskStatusReview,
			domain.TaskStatusDone,
		} {
			patch := domain.ApplyStatusTransition(status, status, now)
			assert.False(t, patch.Apply, string(status))
		}
	})

	t.Run("transition_between_non_done_states_touches_nothing", func(t *testing.T) {
		patch := domain.ApplyStatusTransition(domain.TaskStatusTodo, domain.TaskStatusReview, now)
		assert.False(t, patch.Apply)
	})
}
