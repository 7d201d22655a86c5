package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/taskhub/taskhub-api/internal/api/shared"
	"github.com/taskhub/taskhub-api/internal/platform/logger"
	"github.com/taskhub/taskhub-api/internal/service"
)

// UserHandler handles profile API requests for the authenticated user.
type UserHandler struct {
	userService service.UserService
	validator   *validator.Validate
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator.New(),
	}
}

// GetProfile handles GET /users/profile.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve profile")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewUserResponse(user))
}

// UpdateProfile handles PUT /users/profile. Only name and country can
// change; the payload must carry at least one of them.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req UpdateProfileRequest
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

	user, err := h.userService.UpdateProfile(r.Context(), userID, service.ProfileUpdate{
		Name:    req.Name,
		Country: req.Country,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update profile")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewUserResponse(user))
}
