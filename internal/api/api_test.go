package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/taskhub/taskhub-api/internal/api"
	"github.com/taskhub/taskhub-api/internal/api/middleware"
	"github.com/taskhub/taskhub-api/internal/config"
	"github.com/taskhub/taskhub-api/internal/mocks"
	"github.com/taskhub/taskhub-api/internal/service"
	"github.com/taskhub/taskhub-api/internal/service/auth"
)

// testServer wires the full HTTP surface against in-memory stores and a
// real JWT service, mirroring the production router.
type testServer struct {
	router *chi.Mux
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            "test-secret-key-thirty-two-chars-minimum!",
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)

	userStore := mocks.NewMockUserStore()
	projectStore := mocks.NewMockProjectStore()
	taskStore := mocks.NewMockTaskStore()

	authService := service.NewAuthService(
		userStore,
		auth.NewBcryptHasher(4),
		auth.NewBcryptVerifier(),
		jwtService,
		logger,
	)
	userService := service.NewUserService(userStore, logger)
	projectService := service.NewProjectService(projectStore, logger)
	taskService := service.NewTaskService(taskStore, projectStore, logger)

	authHandler := api.NewAuthHandler(authService)
	userHandler := api.NewUserHandler(userService)
	projectHandler := api.NewProjectHandler(projectService)
	taskHandler := api.NewTaskHandler(taskService)
	healthHandler := api.NewHealthHandler()

	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	r := chi.NewRouter()
	r.Use(middleware.TraceMiddleware)
	r.Get("/health", healthHandler.Check)
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Route("/users", func(r chi.Router) {
				r.Get("/profile", userHandler.GetProfile)
				r.Put("/profile", userHandler.UpdateProfile)
			})
			r.Route("/projects", func(r chi.Router) {
				r.Post("/", projectHandler.Create)
				r.Get("/", projectHandler.List)
				r.Get("/{projectId}", projectHandler.Get)
				r.Put("/{projectId}", projectHandler.Update)
				r.Delete("/{projectId}", projectHandler.Delete)
			})
			r.Route("/tasks", func(r chi.Router) {
				r.Post("/", taskHandler.Create)
				r.Get("/", taskHandler.List)
				r.Get("/{taskId}", taskHandler.Get)
				r.Put("/{taskId}", taskHandler.Update)
				r.Delete("/{taskId}", taskHandler.Delete)
			})
		})
	})

	return &testServer{router: r}
}

// do sends a request through the router and returns the recorder.
func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	req = req.WithContext(context.Background())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

// register creates a user through the public endpoint and returns the
// issued token.
func (s *testServer) register(t *testing.T, name, email string) string {
	t.Helper()

	rr := s.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name":     name,
		"email":    email,
		"password": "password123",
		"country":  "US",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// createProject creates a project for the given token and returns its ID.
func (s *testServer) createProject(t *testing.T, token, name string) string {
	t.Helper()

	rr := s.do(t, http.MethodPost, "/api/projects/", token, map[string]any{
		"name":        name,
		"description": "A project created by the test harness",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.ID
}

// createTask creates a task in the given project and returns its ID.
func (s *testServer) createTask(t *testing.T, token, projectID, title, status string) string {
	t.Helper()

	body := map[string]any{
		"title":       title,
		"description": "A task created by the test harness",
		"projectId":   projectID,
	}
	if status != "" {
		body["status"] = status
	}

	rr := s.do(t, http.MethodPost, "/api/tasks/", token, body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.ID
}

// decodeError extracts the error message from an error response body.
func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error
}
