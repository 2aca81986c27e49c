package api

import (
	"github.com/phrazzld/bookshelf-api/internal/domain"
)

// TodoRequest is the body accepted by POST /todo.
// Complete is a pointer so that an omitted field can be told apart from false.
type TodoRequest struct {
	Title       string `json:"title" validate:"min=3"`
	Description string `json:"description" validate:"min=3,max=500"`
	Priority    int    `json:"priority" validate:"gt=0,lt=6"`
	Complete    *bool  `json:"complete" validate:"required"`
}

// Validate checks the request-level rules and then the domain rules.
func (req *TodoRequest) Validate() error {
	if req.Complete == nil {
		return domain.NewValidationError("complete", "is required", domain.ErrValidation)
	}
	return req.toDomain().Validate()
}

func (req *TodoRequest) toDomain() *domain.Todo {
	complete := false
	if req.Complete != nil {
		complete = *req.Complete
	}
	return &domain.Todo{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complete:    complete,
	}
}

// BookRequest is the body accepted by POST /create-book and PUT /books/update-book.
// ID is optional: create ignores it, update needs it to find the target.
type BookRequest struct {
	ID            *int   `json:"id,omitempty"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	Description   string `json:"description"`
	Rating        int    `json:"rating"`
	PublishedDate int    `json:"published_date"`
}

// Validate applies the book field rules.
func (req *BookRequest) Validate() error {
	book := req.toDomain()
	return book.Validate()
}

func (req *BookRequest) toDomain() domain.Book {
	book := domain.Book{
		Title:         req.Title,
		Author:        req.Author,
		Description:   req.Description,
		Rating:        req.Rating,
		PublishedDate: req.PublishedDate,
	}
	if req.ID != nil {
		book.ID = *req.ID
	}
	return book
}
