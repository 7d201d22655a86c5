package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/taskhub/taskhub-api/internal/config"
	"github.com/taskhub/taskhub-api/internal/platform/postgres"
	"github.com/taskhub/taskhub-api/internal/service"
	"github.com/taskhub/taskhub-api/internal/service/auth"
	"github.com/taskhub/taskhub-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore    store.UserStore
	projectStore store.ProjectStore
	taskStore    store.TaskStore

	// Service interfaces
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	authService      service.AuthService
	userService      service.UserService
	projectService   service.ProjectService
	taskService      service.TaskService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies that must be established before
// application initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordHasher = auth.NewBcryptHasher(0)
	app.passwordVerifier = auth.NewBcryptVerifier()

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.projectStore = postgres.NewPostgresProjectStore(db, logger)
	app.taskStore = postgres.NewPostgresTaskStore(db, logger)

	app.authService = service.NewAuthService(
		app.userStore,
		app.passwordHasher,
		app.passwordVerifier,
		app.jwtService,
		logger,
	)
	app.userService = service.NewUserService(app.userStore, logger)
	app.projectService = service.NewProjectService(app.projectStore, logger)
	app.taskService = service.NewTaskService(app.taskStore, app.projectStore, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
