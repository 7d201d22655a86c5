package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/taskhub/taskhub-api/internal/api/shared"
	"github.com/taskhub/taskhub-api/internal/service"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	authService service.AuthService
	validator   *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator.New(),
	}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, token, err := h.authService.Signup(r.Context(), req.Name, req.Email, req.Password, req.Country)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to register user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		User:  NewUserResponse(user),
		Token: token,
	})
}

// Login handles POST /auth/login.
//
// An unknown email yields 404 and a wrong password 401, so the two cases
// are distinguishable to the client by design.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to authenticate user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		User:  NewUserResponse(user),
		Token: token,
	})
}
