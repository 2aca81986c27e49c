package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/bookshelf-api/internal/domain"
	"github.com/phrazzld/bookshelf-api/internal/platform/logger"
	"github.com/phrazzld/bookshelf-api/internal/store"
)

const (
	listTodosQuery = `SELECT id, title, description, priority, complete FROM todos ORDER BY id`

	getTodoQuery = `SELECT id, title, description, priority, complete FROM todos WHERE id = $1`

	insertTodoQuery = `INSERT INTO todos (title, description, priority, complete) VALUES ($1, $2, $3, $4) RETURNING id`
)

// PostgresTodoStore implements the store.TodoStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTodoStore struct {
	db     store.SessionOpener
	logger *slog.Logger
}

// NewPostgresTodoStore creates a new PostgreSQL implementation of the TodoStore interface.
// It accepts a connection pool that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTodoStore(db store.SessionOpener, logger *slog.Logger) *PostgresTodoStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTodoStore{
		db:     db,
		logger: logger.With(slog.String("component", "todo_store")),
	}
}

// Ensure PostgresTodoStore implements store.TodoStore interface
var _ store.TodoStore = (*PostgresTodoStore)(nil)

// List implements store.TodoStore.List
func (s *PostgresTodoStore) List(ctx context.Context) ([]domain.Todo, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	todos := make([]domain.Todo, 0)
	err := store.WithSession(ctx, s.db, func(ctx context.Context, conn store.DBTX) error {
		rows, err := conn.QueryContext(ctx, listTodosQuery)
		if err != nil {
			return err
		}
		defer func() { _ = rows.Close() }()

		for rows.Next() {
			var todo domain.Todo
			if err := rows.Scan(
				&todo.ID,
				&todo.Title,
				&todo.Description,
				&todo.Priority,
				&todo.Complete,
			); err != nil {
				return err
			}
			todos = append(todos, todo)
		}
		return rows.Err()
	})
	if err != nil {
		log.Error("failed to list todos", slog.String("error", err.Error()))
		return nil, store.NewStoreError("todo", "list", "query failed", MapError(err))
	}

	log.Debug("listed todos", slog.Int("count", len(todos)))
	return todos, nil
}

// GetByID implements store.TodoStore.GetByID
// Returns store.ErrTodoNotFound if the todo does not exist.
func (s *PostgresTodoStore) GetByID(ctx context.Context, id int64) (*domain.Todo, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving todo by ID", slog.Int64("todo_id", id))

	var todo domain.Todo
	err := store.WithSession(ctx, s.db, func(ctx context.Context, conn store.DBTX) error {
		return conn.QueryRowContext(ctx, getTodoQuery, id).Scan(
			&todo.ID,
			&todo.Title,
			&todo.Description,
			&todo.Priority,
			&todo.Complete,
		)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("todo not found", slog.Int64("todo_id", id))
			return nil, store.ErrTodoNotFound
		}

		log.Error("failed to get todo",
			slog.String("error", err.Error()),
			slog.Int64("todo_id", id))
		return nil, store.NewStoreError("todo", "get", "query failed", MapError(err))
	}

	return &todo, nil
}

// Create implements store.TodoStore.Create
// The generated primary key is written back into todo.ID.
func (s *PostgresTodoStore) Create(ctx context.Context, todo *domain.Todo) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := todo.Validate(); err != nil {
		log.Warn("todo validation failed during create",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	var id int64
	err := store.WithSession(ctx, s.db, func(ctx context.Context, conn store.DBTX) error {
		return conn.QueryRowContext(
			ctx,
			insertTodoQuery,
			todo.Title,
			todo.Description,
			todo.Priority,
			todo.Complete,
		).Scan(&id)
	})
	if err != nil {
		log.Error("failed to create todo", slog.String("error", err.Error()))
		return store.NewStoreError("todo", "create", "insert failed", MapError(err))
	}

	todo.ID = id
	log.Info("todo created successfully", slog.Int64("todo_id", id))
	return nil
}
