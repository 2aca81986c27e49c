package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/bookshelf-api/internal/api/shared"
	"github.com/phrazzld/bookshelf-api/internal/domain"
	"github.com/phrazzld/bookshelf-api/internal/service/auth"
	"github.com/phrazzld/bookshelf-api/internal/store"
)

// Client-facing messages with fixed wording.
const (
	MsgTodoNotFound     = "Todo not found."
	MsgBookNotFound     = "Item not Found"
	MsgNotAdmin         = "Authentication Failed. You're not an admin"
	MsgInvalidToken     = "Could not validate user."
	MsgValidationFailed = "Validation error"
	MsgUnexpected       = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingClaims),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Validation errors, including malformed bodies and bad path parameters
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusUnprocessableEntity

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MsgUnexpected
	}

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return MsgNotAdmin

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingClaims):
		return MsgInvalidToken

	case errors.Is(err, store.ErrTodoNotFound):
		return MsgTodoNotFound

	case errors.Is(err, store.ErrBookNotFound):
		return MsgBookNotFound

	case errors.Is(err, store.ErrNotFound):
		return "Not found"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity):
		return sanitizeValidationError(err)

	case errors.Is(err, store.ErrDuplicate):
		return "Entity already exists"

	default:
		return MsgUnexpected
	}
}

// sanitizeValidationError returns the field-level message when the error
// carries one. ValidationError messages are built from field names and rule
// parameters only, so they are safe to return.
func sanitizeValidationError(err error) string {
	var valErr *domain.ValidationError
	if errors.As(err, &valErr) && valErr.Field != "" {
		return valErr.Error()
	}
	return MsgValidationFailed
}

// HandleAPIError writes the error response for err. defaultMsg, when set,
// replaces the generic message for unexpected (5xx) errors.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)

	if status == http.StatusInternalServerError && defaultMsg != "" {
		message = defaultMsg
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
