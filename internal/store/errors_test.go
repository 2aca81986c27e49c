package store_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/bookshelf-api/internal/store"
	"github.com/stretchr/testify/assert"
)

// TestErrorDefinitions ensures entity-specific errors remain detectable as
// the generic not found error.
func TestErrorDefinitions(t *testing.T) {
	t.Parallel()

	assert.True(t, errors.Is(store.ErrTodoNotFound, store.ErrNotFound))
	assert.True(t, errors.Is(store.ErrBookNotFound, store.ErrNotFound))
	assert.False(t, errors.Is(store.ErrBookNotFound, store.ErrTodoNotFound))

	assert.Equal(t, "entity not found: todo", store.ErrTodoNotFound.Error())
	assert.Equal(t, "entity not found: book", store.ErrBookNotFound.Error())
}

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("get book 9: %w", store.ErrBookNotFound)

	assert.True(t, store.IsNotFoundError(wrapped))
	assert.True(t, store.IsNotFoundError(store.ErrTodoNotFound))
	assert.False(t, store.IsNotFoundError(store.ErrDuplicate))
	assert.False(t, store.IsNotFoundError(nil))
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := store.NewStoreError("todo", "list", "query failed", cause)

	assert.Equal(t, "list operation on todo failed: query failed: connection reset", err.Error())
	assert.True(t, errors.Is(err, cause))

	bare := store.NewStoreError("book", "delete", "no match", nil)
	assert.Equal(t, "delete operation on book failed: no match", bare.Error())
	assert.Nil(t, bare.Unwrap())
}
