package mocks

import (
	"context"

	"github.com/phrazzld/bookshelf-api/internal/domain"
	"github.com/phrazzld/bookshelf-api/internal/store"
)

// MockTodoStore implements store.TodoStore for testing
type MockTodoStore struct {
	ListFn    func(ctx context.Context) ([]domain.Todo, error)
	GetByIDFn func(ctx context.Context, id int64) (*domain.Todo, error)
	CreateFn  func(ctx context.Context, todo *domain.Todo) error

	// Calls records the name of every method invoked, in order
	Calls []string
}

var _ store.TodoStore = (*MockTodoStore)(nil)

// List implements store.TodoStore
func (m *MockTodoStore) List(ctx context.Context) ([]domain.Todo, error) {
	m.Calls = append(m.Calls, "List")
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []domain.Todo{}, nil
}

// GetByID implements store.TodoStore
func (m *MockTodoStore) GetByID(ctx context.Context, id int64) (*domain.Todo, error) {
	m.Calls = append(m.Calls, "GetByID")
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrTodoNotFound
}

// Create implements store.TodoStore
func (m *MockTodoStore) Create(ctx context.Context, todo *domain.Todo) error {
	m.Calls = append(m.Calls, "Create")
	if m.CreateFn != nil {
		return m.CreateFn(ctx, todo)
	}
	return nil
}
