package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/phrazzld/bookshelf-api/internal/domain"
)

// maxBodyBytes bounds request bodies; every payload in this API is tiny.
const maxBodyBytes = 1 << 20

// DecodeJSON decodes the request body into the given struct.
// Body failures are returned as domain validation errors so that a malformed
// payload is reported the same way as a payload that breaks a field rule.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return domain.NewValidationError("body", "is required", domain.ErrValidation)
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.NewValidationError("body", "is required", domain.ErrValidation)
		}

		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return domain.NewValidationError(typeErr.Field, fmt.Sprintf("must be a %s", typeErr.Type), domain.ErrValidation)
		}
		return domain.NewValidationError("body", "is not valid JSON", fmt.Errorf("%w: %v", domain.ErrValidation, err))
	}
	return nil
}

// ValidateRequest validates the given struct. Types with their own Validate
// method are trusted to run it; everything else goes through the shared
// struct tag validator.
func ValidateRequest(v interface{}) error {
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}

	if err := domain.Validator().Struct(v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}
