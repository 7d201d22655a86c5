package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/taskhub/taskhub-api/internal/api"
	apiMiddleware "github.com/taskhub/taskhub-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.authService)
	userHandler := api.NewUserHandler(app.userService)
	projectHandler := api.NewProjectHandler(app.projectService)
	taskHandler := api.NewTaskHandler(app.taskService)
	healthHandler := api.NewHealthHandler()

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
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

	// Health check endpoint (public)
	r.Get("/health", healthHandler.Check)

	return r
}
