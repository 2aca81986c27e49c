package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/bookshelf-api/internal/api/shared"
	"github.com/phrazzld/bookshelf-api/internal/domain"
	"github.com/phrazzld/bookshelf-api/internal/platform/logger"
	"github.com/phrazzld/bookshelf-api/internal/service"
)

// BookHandler handles book-related HTTP requests
type BookHandler struct {
	bookService service.BookService
	logger      *slog.Logger
}

// NewBookHandler creates a new BookHandler
func NewBookHandler(bookService service.BookService, logger *slog.Logger) *BookHandler {
	if bookService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("bookService cannot be nil for BookHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for BookHandler")
	}

	return &BookHandler{
		bookService: bookService,
		logger:      logger.With(slog.String("component", "book_handler")),
	}
}

// ListBooks handles GET /books requests
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookService.ListBooks(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list books")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, books)
}

// GetBook handles GET /books/{book_id} requests
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, ok := h.bookIDParam(w, r)
	if !ok {
		return
	}

	book, err := h.bookService.GetBook(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get book")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, book)
}

// BooksByRating handles GET /books/?book_rating=N requests
func (h *BookHandler) BooksByRating(w http.ResponseWriter, r *http.Request) {
	rating, err := getQueryInt(r, "book_rating")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if !domain.ValidRating(rating) {
		HandleAPIError(w, r, domain.NewValidationError("book_rating", "must be greater than 0 and less than 6", domain.ErrValidation), "")
		return
	}

	books, err := h.bookService.BooksByRating(r.Context(), rating)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to filter books")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, books)
}

// BooksByPublishedDate handles GET /books/publish/?published_date=Y requests
func (h *BookHandler) BooksByPublishedDate(w http.ResponseWriter, r *http.Request) {
	year, err := getQueryInt(r, "published_date")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if !domain.ValidPublishedYear(year) {
		HandleAPIError(w, r, domain.NewValidationError("published_date", "must be greater than 1990", domain.ErrValidation), "")
		return
	}

	books, err := h.bookService.BooksByPublishedDate(r.Context(), year)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to filter books")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, books)
}

// CreateBook handles POST /create-book requests
func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeBook(w, r)
	if !ok {
		return
	}

	if _, err := h.bookService.CreateBook(r.Context(), req.toDomain()); err != nil {
		HandleAPIError(w, r, err, "Failed to create book")
		return
	}

	shared.RespondWithStatus(w, http.StatusCreated)
}

// UpdateBook handles PUT /books/update-book requests
func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeBook(w, r)
	if !ok {
		return
	}

	if err := h.bookService.UpdateBook(r.Context(), req.toDomain()); err != nil {
		HandleAPIError(w, r, err, "Failed to update book")
		return
	}

	shared.RespondWithStatus(w, http.StatusNoContent)
}

// DeleteBook handles DELETE /books/{book_id} requests
func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := h.bookIDParam(w, r)
	if !ok {
		return
	}

	if err := h.bookService.DeleteBook(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete book")
		return
	}

	shared.RespondWithStatus(w, http.StatusNoContent)
}

// bookIDParam parses {book_id}, writing a 422 response on failure.
func (h *BookHandler) bookIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := getPathID(r, "book_id")
	if err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Debug("invalid book id", slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "")
		return 0, false
	}
	return int(id), true
}

// decodeBook reads and validates a BookRequest, writing a 422 response on failure.
func (h *BookHandler) decodeBook(w http.ResponseWriter, r *http.Request) (*BookRequest, bool) {
	var req BookRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Debug("invalid book request body", slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "")
		return nil, false
	}

	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, "")
		return nil, false
	}

	return &req, true
}
