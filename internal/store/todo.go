package store

import (
	"context"

	"github.com/phrazzld/bookshelf-api/internal/domain"
)

// TodoStore defines the interface for todo data persistence.
type TodoStore interface {
	// List returns every todo in storage order.
	// An empty table yields an empty, non-nil slice.
	List(ctx context.Context) ([]domain.Todo, error)

	// GetByID retrieves a todo by its primary key.
	// Returns ErrTodoNotFound if the todo does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Todo, error)

	// Create inserts a new todo. The store assigns the primary key and
	// writes it back into todo.ID.
	// Returns validation errors if the todo data is invalid.
	Create(ctx context.Context, todo *domain.Todo) error
}
