package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/taskhub/taskhub-api/internal/api/shared"
	"github.com/taskhub/taskhub-api/internal/domain"
	"github.com/taskhub/taskhub-api/internal/platform/logger"
	"github.com/taskhub/taskhub-api/internal/service"
)

// TaskHandler handles task API requests.
type TaskHandler struct {
	taskService service.TaskService
	validator   *validator.Validate
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		validator:   validator.New(),
	}
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	task, err := h.taskService.Create(
		r.Context(),
		userID,
		req.ProjectID,
		req.Title,
		req.Description,
		domain.TaskStatus(req.Status),
	)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewTaskResponse(task))
}

// List handles GET /tasks. With a projectId query parameter it lists that
// project's tasks; without one it lists every task across the user's
// projects.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	rawProjectID := r.URL.Query().Get("projectId")
	if rawProjectID == "" {
		tasks, err := h.taskService.ListAllForUser(r.Context(), userID)
		if err != nil {
			HandleAPIError(w, r, err, "Failed to list tasks")
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, NewTaskListResponse(tasks))
		return
	}

	projectID, err := uuid.Parse(rawProjectID)
	if err != nil {
		HandleAPIError(w, r,
			domain.NewValidationError("projectId", "has invalid format", domain.ErrInvalidID), "")
		return
	}

	tasks, err := h.taskService.ListByProject(r.Context(), userID, projectID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskListResponse(tasks))
}

// Get handles GET /tasks/{taskId}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, taskID, ok := handleUserIDAndPathUUID(w, r, "taskId", nil)
	if !ok {
		return
	}

	task, err := h.taskService.Get(r.Context(), userID, taskID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskResponse(task))
}

// Update handles PUT /tasks/{taskId}. A status change into DONE stamps
// completedAt; a change out of DONE clears it.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, taskID, ok := handleUserIDAndPathUUID(w, r, "taskId", nil)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if !req.HasUpdates() {
		shared.RespondWithError(w, r, http.StatusBadRequest, "At least one field must be provided")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	update := service.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		update.Status = &status
	}

	task, err := h.taskService.Update(r.Context(), userID, taskID, update)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskResponse(task))
}

// Delete handles DELETE /tasks/{taskId}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, taskID, ok := handleUserIDAndPathUUID(w, r, "taskId", nil)
	if !ok {
		return
	}

	if err := h.taskService.Delete(r.Context(), userID, taskID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete task")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
