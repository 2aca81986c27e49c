package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	apiMiddleware "github.com/phrazzld/bookshelf-api/internal/api/middleware"
	"github.com/phrazzld/bookshelf-api/internal/config"
	"github.com/phrazzld/bookshelf-api/internal/platform/memory"
	"github.com/phrazzld/bookshelf-api/internal/platform/postgres"
	"github.com/phrazzld/bookshelf-api/internal/service"
	"github.com/phrazzld/bookshelf-api/internal/service/auth"
	"github.com/prometheus/client_golang/prometheus"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger   *slog.Logger
	db       *sql.DB
	registry *prometheus.Registry
	metrics  *apiMiddleware.Metrics

	// Service interfaces; nil when the owning API is not mounted
	jwtService  auth.JWTService
	todoService service.TodoService
	bookService service.BookService
}

// newApplication creates a new application instance with all dependencies initialized.
// db may be nil when only the books API is enabled.
func newApplication(
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
	registry *prometheus.Registry,
) (*application, error) {
	app := &application{
		config:   cfg,
		logger:   logger,
		db:       db,
		registry: registry,
		metrics:  apiMiddleware.NewMetrics(registry),
	}

	if cfg.Server.TodoEnabled() {
		if db == nil {
			return nil, fmt.Errorf("todo service requires a database connection")
		}

		var err error
		app.jwtService, err = auth.NewJWTService(cfg.Auth)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
		}
		logger.Info("JWT authentication service initialized",
			"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

		todoStore := postgres.NewPostgresTodoStore(db, logger)
		app.todoService = service.NewTodoService(todoStore, logger)
	}

	if cfg.Server.BooksEnabled() {
		bookStore := memory.NewBookStore(memory.SeedBooks(), logger)
		app.bookService = service.NewBookService(bookStore)
	}

	logger.Info("application initialized successfully",
		"todo_enabled", app.todoService != nil,
		"books_enabled", app.bookService != nil)
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns when ctx is canceled or the server fails.
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
			app.logger.Error("error closing database connection", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}
