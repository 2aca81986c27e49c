package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/phrazzld/bookshelf-api/internal/domain"
	"github.com/phrazzld/bookshelf-api/internal/platform/logger"
	"github.com/phrazzld/bookshelf-api/internal/store"
)

// BookStore implements store.BookStore over an ordered in-memory slice.
// The slice is guarded by mu; ID assignment happens under the write lock.
type BookStore struct {
	mu     sync.RWMutex
	books  []domain.Book
	logger *slog.Logger
}

// Ensure BookStore implements store.BookStore interface
var _ store.BookStore = (*BookStore)(nil)

// NewBookStore creates a store initialized with a copy of seed.
// If logger is nil, a default logger will be used.
func NewBookStore(seed []domain.Book, logger *slog.Logger) *BookStore {
	if logger == nil {
		logger = slog.Default()
	}

	books := make([]domain.Book, len(seed))
	copy(books, seed)

	return &BookStore{
		books:  books,
		logger: logger.With(slog.String("component", "book_store")),
	}
}

// List implements store.BookStore.List
func (s *BookStore) List(ctx context.Context) ([]domain.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Book, len(s.books))
	copy(out, s.books)
	return out, nil
}

// GetByID implements store.BookStore.GetByID
func (s *BookStore) GetByID(ctx context.Context, id int) (*domain.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, book := range s.books {
		if book.ID == id {
			found := book
			return &found, nil
		}
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("book not found", slog.Int("book_id", id))
	return nil, store.ErrBookNotFound
}

// FilterByRating implements store.BookStore.FilterByRating
func (s *BookStore) FilterByRating(ctx context.Context, rating int) ([]domain.Book, error) {
	return s.filter(func(b domain.Book) bool { return b.Rating == rating }), nil
}

// FilterByPublishedDate implements store.BookStore.FilterByPublishedDate
func (s *BookStore) FilterByPublishedDate(ctx context.Context, year int) ([]domain.Book, error) {
	return s.filter(func(b domain.Book) bool { return b.PublishedDate == year }), nil
}

func (s *BookStore) filter(match func(domain.Book) bool) []domain.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Book, 0)
	for _, book := range s.books {
		if match(book) {
			out = append(out, book)
		}
	}
	return out
}

// Create implements store.BookStore.Create
// The new ID is derived from the last element, not the maximum, so it
// follows current order.
func (s *BookStore) Create(ctx context.Context, book domain.Book) (domain.Book, error) {
	if err := book.Validate(); err != nil {
		return domain.Book{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	book.ID = s.nextIDLocked()
	s.books = append(s.books, book)

	logger.FromContextOrDefault(ctx, s.logger).Info("book created",
		slog.Int("book_id", book.ID),
		slog.Int("catalog_size", len(s.books)))
	return book, nil
}

func (s *BookStore) nextIDLocked() int {
	if len(s.books) == 0 {
		return 1
	}
	return s.books[len(s.books)-1].ID + 1
}

// Update implements store.BookStore.Update
// Every element carrying book.ID is overwritten, not only the first.
func (s *BookStore) Update(ctx context.Context, book domain.Book) error {
	if err := book.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := 0
	for i := range s.books {
		if s.books[i].ID == book.ID {
			s.books[i] = book
			updated++
		}
	}

	if updated == 0 {
		return store.ErrBookNotFound
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("book updated",
		slog.Int("book_id", book.ID),
		slog.Int("replaced", updated))
	return nil
}

// Delete implements store.BookStore.Delete
func (s *BookStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.books {
		if s.books[i].ID == id {
			s.books = append(s.books[:i], s.books[i+1:]...)
			logger.FromContextOrDefault(ctx, s.logger).Info("book deleted", slog.Int("book_id", id))
			return nil
		}
	}

	return store.ErrBookNotFound
}
