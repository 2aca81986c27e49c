package service

import (
	"context"

	"github.com/phrazzld/bookshelf-api/internal/domain"
	"github.com/phrazzld/bookshelf-api/internal/store"
)

// BookService provides the book catalogue operations
type BookService interface {
	ListBooks(ctx context.Context) ([]domain.Book, error)
	GetBook(ctx context.Context, id int) (*domain.Book, error)
	BooksByRating(ctx context.Context, rating int) ([]domain.Book, error)
	BooksByPublishedDate(ctx context.Context, year int) ([]domain.Book, error)

	// CreateBook appends a new book; any caller-supplied ID is replaced.
	CreateBook(ctx context.Context, book domain.Book) (domain.Book, error)

	// UpdateBook replaces the stored book(s) sharing book.ID.
	UpdateBook(ctx context.Context, book domain.Book) error

	DeleteBook(ctx context.Context, id int) error
}

// bookServiceImpl delegates to the store; the store logs mutations.
type bookServiceImpl struct {
	bookStore store.BookStore
}

var _ BookService = (*bookServiceImpl)(nil)

// NewBookService creates a new BookService
func NewBookService(bookStore store.BookStore) BookService {
	if bookStore == nil {
		// ALLOW-PANIC: constructor requires a store
		panic("bookStore cannot be nil")
	}

	return &bookServiceImpl{bookStore: bookStore}
}

func (s *bookServiceImpl) ListBooks(ctx context.Context) ([]domain.Book, error) {
	books, err := s.bookStore.List(ctx)
	if err != nil {
		return nil, NewServiceError("book", "list_books", "failed to list books", err)
	}
	return books, nil
}

func (s *bookServiceImpl) GetBook(ctx context.Context, id int) (*domain.Book, error) {
	book, err := s.bookStore.GetByID(ctx, id)
	if err != nil {
		return nil, NewServiceError("book", "get_book", "failed to get book", err)
	}
	return book, nil
}

func (s *bookServiceImpl) BooksByRating(ctx context.Context, rating int) ([]domain.Book, error) {
	books, err := s.bookStore.FilterByRating(ctx, rating)
	if err != nil {
		return nil, NewServiceError("book", "books_by_rating", "failed to filter books", err)
	}
	return books, nil
}

func (s *bookServiceImpl) BooksByPublishedDate(ctx context.Context, year int) ([]domain.Book, error) {
	books, err := s.bookStore.FilterByPublishedDate(ctx, year)
	if err != nil {
		return nil, NewServiceError("book", "books_by_published_date", "failed to filter books", err)
	}
	return books, nil
}

func (s *bookServiceImpl) CreateBook(ctx context.Context, book domain.Book) (domain.Book, error) {
	created, err := s.bookStore.Create(ctx, book)
	if err != nil {
		return domain.Book{}, NewServiceError("book", "create_book", "failed to create book", err)
	}
	return created, nil
}

func (s *bookServiceImpl) UpdateBook(ctx context.Context, book domain.Book) error {
	if err := s.bookStore.Update(ctx, book); err != nil {
		return NewServiceError("book", "update_book", "failed to update book", err)
	}
	return nil
}

func (s *bookServiceImpl) DeleteBook(ctx context.Context, id int) error {
	if err := s.bookStore.Delete(ctx, id); err != nil {
		return NewServiceError("book", "delete_book", "failed to delete book", err)
	}
	return nil
}
