package store

import (
	"context"

	"github.com/phrazzld/bookshelf-api/internal/domain"
)

// BookStore defines the interface for the book catalog. All lookups are
// linear scans over an ordered sequence; order is insertion order and
// updates keep an element's position.
type BookStore interface {
	// List returns a snapshot of every book in current order.
	List(ctx context.Context) ([]domain.Book, error)

	// GetByID returns the first book whose ID matches.
	// Returns ErrBookNotFound if none does.
	GetByID(ctx context.Context, id int) (*domain.Book, error)

	// FilterByRating returns every book with the given rating, order preserved.
	FilterByRating(ctx context.Context, rating int) ([]domain.Book, error)

	// FilterByPublishedDate returns every book published in year, order preserved.
	FilterByPublishedDate(ctx context.Context, year int) ([]domain.Book, error)

	// Create assigns the next ID (1 when empty, otherwise the last element's
	// ID plus one), ignoring any ID on book, and appends it.
	Create(ctx context.Context, book domain.Book) (domain.Book, error)

	// Update replaces, in place, every element whose ID equals book.ID.
	// Returns ErrBookNotFound if nothing matched.
	Update(ctx context.Context, book domain.Book) error

	// Delete removes the first element whose ID matches.
	// Returns ErrBookNotFound if none does.
	Delete(ctx context.Context, id int) error
}
