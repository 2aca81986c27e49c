package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/bookshelf-api/internal/domain"
	"github.com/phrazzld/bookshelf-api/internal/platform/logger"
	"github.com/phrazzld/bookshelf-api/internal/service/auth"
	"github.com/phrazzld/bookshelf-api/internal/store"
)

// TodoService provides todo-related operations
type TodoService interface {
	// ListTodos returns every todo in storage order
	ListTodos(ctx context.Context) ([]domain.Todo, error)

	// GetTodo retrieves a todo by its ID
	GetTodo(ctx context.Context, id int64) (*domain.Todo, error)

	// CreateTodo validates and persists a new todo, assigning its ID
	CreateTodo(ctx context.Context, todo *domain.Todo) error

	// ListAllAsAdmin returns every todo when the caller holds the admin role.
	// Returns domain.ErrUnauthorized when claims is nil or not an admin.
	ListAllAsAdmin(ctx context.Context, claims *auth.Claims) ([]domain.Todo, error)
}

// todoServiceImpl implements the TodoService interface
type todoServiceImpl struct {
	todoStore store.TodoStore
	logger    *slog.Logger
}

var _ TodoService = (*todoServiceImpl)(nil)

// NewTodoService creates a new TodoService
func NewTodoService(todoStore store.TodoStore, logger *slog.Logger) TodoService {
	if todoStore == nil {
		// ALLOW-PANIC: constructor requires a store
		panic("todoStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &todoServiceImpl{
		todoStore: todoStore,
		logger:    logger.With("component", "todo_service"),
	}
}

// ListTodos implements TodoService.ListTodos
func (s *todoServiceImpl) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	todos, err := s.todoStore.List(ctx)
	if err != nil {
		return nil, NewServiceError("todo", "list_todos", "failed to list todos", err)
	}
	return todos, nil
}

// GetTodo implements TodoService.GetTodo
func (s *todoServiceImpl) GetTodo(ctx context.Context, id int64) (*domain.Todo, error) {
	todo, err := s.todoStore.GetByID(ctx, id)
	if err != nil {
		return nil, NewServiceError("todo", "get_todo", "failed to get todo", err)
	}
	return todo, nil
}

// CreateTodo implements TodoService.CreateTodo
func (s *todoServiceImpl) CreateTodo(ctx context.Context, todo *domain.Todo) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := todo.Validate(); err != nil {
		log.Debug("todo failed validation", "error", err)
		return err
	}

	if err := s.todoStore.Create(ctx, todo); err != nil {
		return NewServiceError("todo", "create_todo", "failed to create todo", err)
	}

	log.Info("todo created", "todo_id", todo.ID)
	return nil
}

// ListAllAsAdmin implements TodoService.ListAllAsAdmin
func (s *todoServiceImpl) ListAllAsAdmin(ctx context.Context, claims *auth.Claims) ([]domain.Todo, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !claims.IsAdmin() {
		if claims == nil {
			log.Debug("admin listing rejected: no caller claims")
		} else {
			log.Debug("admin listing rejected: caller is not an admin",
				"user_id", claims.UserID,
				"user_role", claims.UserRole)
		}
		return nil, domain.ErrUnauthorized
	}

	todos, err := s.todoStore.List(ctx)
	if err != nil {
		return nil, NewServiceError("todo", "list_all_as_admin", "failed to list todos", err)
	}
	return todos, nil
}
