package api

import (
	"net/http"
	"time"

	"github.com/taskhub/taskhub-api/internal/api/shared"
)

// HealthHandler serves the public health endpoint.
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check handles GET /health.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:    "ok",
		Message:   "Server is up and running",
		Timestamp: time.Now().UTC(),
	})
}
