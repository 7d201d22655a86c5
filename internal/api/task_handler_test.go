package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTask(t *testing.T) {
	t.Parallel()

	t.Run("defaults_to_todo", func(t *testing.T) {
		s := newTestServer(t)
		token := s.register(t, "Ada", "ada@example.com")
		projectID := s.createProject(t, token, "Backend")

		rr := s.do(t, http.MethodPost, "/api/tasks/", token, map[string]any{
			"title":       "Set up CI",
			"description": "Pipeline configuration",
			"projectId":   projectID,
		})
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "TODO", resp["status"])
		assert.Nil(t, resp["completedAt"])
	})

	t.Run("explicit_status", func(t *testing.T) {
		s := newTestServer(t)
		token := s.register(t, "Ada", "ada@example.com")
		projectID := s.createProject(t, token, "Backend")

		rr := s.do(t, http.MethodPost, "/api/tasks/", token, map[string]any{
			"title":       "Review PR",
			"description": "Review the open pull request",
			"projectId":   projectID,
			"status":      "REVIEW",
		})
		require.Equal(t, http.StatusCreated, rr.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "REVIEW", resp["status"])
	})

	t.Run("invalid_status_rejected", func(t *testing.T) {
		s := newTestServer(t)
		token := s.register(t, "Ada", "ada@example.com")
		projectID := s.createProject(t, token, "Backend")

		rr := s.do(t, http.MethodPost, "/api/tasks/", token, map[string]any{
			"title":       "Blocked work",
			"description": "Uses a status outside the enum",
			"projectId":   projectID,
			"status":      "BLOCKED",
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("foreign_project_is_404", func(t *testing.T) {
		s := newTestServer(t)
		ownerToken := s.register(t, "Ada", "ada@example.com")
		strangerToken := s.register(t, "Eve", "eve@example.com")
		projectID := s.createProject(t, ownerToken, "Private")

		rr := s.do(t, http.MethodPost, "/api/tasks/", strangerToken, map[string]any{
			"title":       "Intrusion",
			"description": "Should never be created",
			"projectId":   projectID,
		})
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Project not found", decodeError(t, rr))
	})
}

func TestListTasks(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	token := s.register(t, "Ada", "ada@example.com")
	backend := s.createProject(t, token, "Backend")
	frontend := s.createProject(t, token, "Frontend")
	s.createTask(t, token, backend, "API work", "")
	s.createTask(t, token, frontend, "UI work", "")

	t.Run("all_tasks_without_filter", func(t *testing.T) {
		rr := s.do(t, http.MethodGet, "/api/tasks/", token, nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp []map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
	})

	t.Run("filtered_by_project", func(t *testing.T) {
		rr := s.do(t, http.MethodGet, "/api/tasks/?projectId="+backend, token, nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp []map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "API work", resp[0]["title"])
	})

	t.Run("foreign_project_filter_is_404", func(t *testing.T) {
		strangerToken := s.register(t, "Eve", "eve@example.com")
		rr := s.do(t, http.MethodGet, "/api/tasks/?projectId="+backend, strangerToken, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("invalid_filter_uuid", func(t *testing.T) {
		rr := s.do(t, http.MethodGet, "/api/tasks/?projectId=nope", token, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestTaskLifecycleOverHTTP(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	token := s.register(t, "Ada", "ada@example.com")
	projectID := s.createProject(t, token, "Backend")
	taskID := s.createTask(t, token, projectID, "Ship it", "")

	update := func(body map[string]any) map[string]any {
		rr := s.do(t, http.MethodPut, "/api/tasks/"+taskID, token, body)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		var resp map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		return resp
	}

	resp := update(map[string]any{"status": "IN_PROGRESS"})
	assert.Equal(t, "IN_PROGRESS", resp["status"])
	assert.Nil(t, resp["completedAt"])

	resp = update(map[string]any{"status": "DONE"})
	assert.Equal(t, "DONE", resp["status"])
	require.NotNil(t, resp["completedAt"], "entering DONE stamps completedAt")
	stamped := resp["completedAt"]

	resp = update(map[string]any{"title": "Ship it v2"})
	assert.Equal(t, stamped, resp["completedAt"],
		"an update that does not change status leaves completedAt untouched")

	resp = update(map[string]any{"status": "REVIEW"})
	assert.Nil(t, resp["completedAt"], "leaving DONE clears completedAt")
}

func TestTaskOwnershipIs404(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	ownerToken := s.register(t, "Ada", "ada@example.com")
	strangerToken := s.register(t, "Eve", "eve@example.com")
	projectID := s.createProject(t, ownerToken, "Backend")
	taskID := s.createTask(t, ownerToken, projectID, "Private task", "")

	cases := []struct {
		name   string
		method string
		body   map[string]any
	}{
		{"get", http.MethodGet, nil},
		{"update", http.MethodPut, map[string]any{"title": "Hijacked"}},
		{"delete", http.MethodDelete, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := s.do(t, tc.method, "/api/tasks/"+taskID, strangerToken, tc.body)
			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, "Task not found", decodeError(t, rr))
		})
	}

	t.Run("missing_task", func(t *testing.T) {
		rr := s.do(t, http.MethodGet, "/api/tasks/"+uuid.NewString(), ownerToken, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Task not found", decodeError(t, rr))
	})
}

func TestTaskUnreachableAfterProjectDelete(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	token := s.register(t, "Ada", "ada@example.com")
	projectID := s.createProject(t, token, "Doomed")
	taskID := s.createTask(t, token, projectID, "Stranded task", "")

	rr := s.do(t, http.MethodDelete, "/api/projects/"+projectID, token, nil)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = s.do(t, http.MethodGet, "/api/tasks/"+taskID, token, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = s.do(t, http.MethodGet, "/api/tasks/", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var resp []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Empty(t, resp)
}

func TestDeleteTask(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	token := s.register(t, "Ada", "ada@example.com")
	projectID := s.createProject(t, token, "Backend")
	taskID := s.createTask(t, token, projectID, "Disposable", "")

	rr := s.do(t, http.MethodDelete, "/api/tasks/"+taskID, token, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = s.do(t, http.MethodGet, "/api/tasks/"+taskID, token, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
