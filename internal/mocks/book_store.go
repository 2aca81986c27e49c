package mocks

import (
	"context"

	"github.com/phrazzld/bookshelf-api/internal/domain"
	"github.com/phrazzld/bookshelf-api/internal/store"
)

// MockBookStore implements store.BookStore for testing. Unset functions
// behave like an empty catalogue.
type MockBookStore struct {
	ListFn                  func(ctx context.Context) ([]domain.Book, error)
	GetByIDFn               func(ctx context.Context, id int) (*domain.Book, error)
	FilterByRatingFn        func(ctx context.Context, rating int) ([]domain.Book, error)
	FilterByPublishedDateFn func(ctx context.Context, year int) ([]domain.Book, error)
	CreateFn                func(ctx context.Context, book domain.Book) (domain.Book, error)
	UpdateFn                func(ctx context.Context, book domain.Book) error
	DeleteFn                func(ctx context.Context, id int) error
}

var _ store.BookStore = (*MockBookStore)(nil)

// List implements store.BookStore
func (m *MockBookStore) List(ctx context.Context) ([]domain.Book, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []domain.Book{}, nil
}

// GetByID implements store.BookStore
func (m *MockBookStore) GetByID(ctx context.Context, id int) (*domain.Book, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrBookNotFound
}

// FilterByRating implements store.BookStore
func (m *MockBookStore) FilterByRating(ctx context.Context, rating int) ([]domain.Book, error) {
	if m.FilterByRatingFn != nil {
		return m.FilterByRatingFn(ctx, rating)
	}
	return []domain.Book{}, nil
}

// FilterByPublishedDate implements store.BookStore
func (m *MockBookStore) FilterByPublishedDate(ctx context.Context, year int) ([]domain.Book, error) {
	if m.FilterByPublishedDateFn != nil {
		return m.FilterByPublishedDateFn(ctx, year)
	}
	return []domain.Book{}, nil
}

// Create implements store.BookStore
func (m *MockBookStore) Create(ctx context.Context, book domain.Book) (domain.Book, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, book)
	}
	book.ID = 1
	return book, nil
}

// Update implements store.BookStore
func (m *MockBookStore) Update(ctx context.Context, book domain.Book) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, book)
	}
	return store.ErrBookNotFound
}

// Delete implements store.BookStore
func (m *MockBookStore) Delete(ctx context.Context, id int) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return store.ErrBookNotFound
}
