package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/taskhub/taskhub-api/internal/api/shared"
	"github.com/taskhub/taskhub-api/internal/platform/logger"
	"github.com/taskhub/taskhub-api/internal/service"
)

// ProjectHandler handles project API requests.
type ProjectHandler struct {
	projectService service.ProjectService
	validator      *validator.Validate
}

// NewProjectHandler creates a new ProjectHandler with the given dependencies.
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		validator:      validator.New(),
	}
}

// Create handles POST /projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateProjectRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	project, err := h.projectService.Create(r.Context(), userID, req.Name, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create project")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewProjectResponse(project))
}

// List handles GET /projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	projects, err := h.projectService.ListByUser(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list projects")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewProjectListResponse(projects))
}

// Get handles GET /projects/{projectId}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, projectID, ok := handleUserIDAndPathUUID(w, r, "projectId", nil)
	if !ok {
		return
	}

	project, err := h.projectService.Get(r.Context(), userID, projectID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve project")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewProjectResponse(project))
}

// Update handles PUT /projects/{projectId}.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, projectID, ok := handleUserIDAndPathUUID(w, r, "projectId", nil)
	if !ok {
		return
	}

	var req UpdateProjectRequest
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

	project, err := h.projectService.Update(r.Context(), userID, projectID, service.ProjectUpdate{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update project")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewProjectResponse(project))
}

// Delete handles DELETE /projects/{projectId}. Tasks under the project are
// not deleted but become unreachable.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, projectID, ok := handleUserIDAndPathUUID(w, r, "projectId", nil)
	if !ok {
		return
	}

	if err := h.projectService.Delete(r.Context(), userID, projectID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete project")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
