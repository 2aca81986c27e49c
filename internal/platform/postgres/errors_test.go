package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/bookshelf-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	generic := errors.New("connection refused")

	tests := []struct {
		name          string
		err           error
		expectedError error
		expectedMsg   string
	}{
		{
			name: "nil_error",
			err:  nil,
		},
		{
			name:          "sql_no_rows",
			err:           sql.ErrNoRows,
			expectedError: store.ErrNotFound,
		},
		{
			name:          "wrapped_no_rows",
			err:           fmt.Errorf("scan: %w", sql.ErrNoRows),
			expectedError: store.ErrNotFound,
		},
		{
			name:          "unique_violation",
			err:           &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "todos_pkey"},
			expectedError: store.ErrDuplicate,
		},
		{
			name:          "check_constraint_violation",
			err:           &pgconn.PgError{Code: checkViolationCode, ConstraintName: "todos_priority_range"},
			expectedError: store.ErrInvalidEntity,
			expectedMsg:   "todos_priority_range",
		},
		{
			name:          "not_null_violation",
			err:           &pgconn.PgError{Code: notNullViolationCode, ColumnName: "title"},
			expectedError: store.ErrInvalidEntity,
			expectedMsg:   "not null violation (title)",
		},
		{
			name:          "unmapped_pg_error",
			err:           &pgconn.PgError{Code: "40001"},
			expectedError: nil,
		},
		{
			name:          "generic_error",
			err:           generic,
			expectedError: generic,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := MapError(tt.err)

			if tt.err == nil {
				assert.NoError(t, result)
				return
			}

			assert.Error(t, result)
			if tt.expectedError != nil {
				assert.True(t, errors.Is(result, tt.expectedError),
					"expected %v to wrap %v", result, tt.expectedError)
			} else {
				assert.Equal(t, tt.err, result, "unmapped errors pass through unchanged")
			}
			if tt.expectedMsg != "" {
				assert.Contains(t, result.Error(), tt.expectedMsg)
			}
		})
	}
}

func TestViolationHelpers(t *testing.T) {
	t.Parallel()

	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: uniqueViolationCode})
	check := &pgconn.PgError{Code: checkViolationCode}

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsUniqueViolation(check))
	assert.True(t, IsCheckConstraintViolation(check))
	assert.False(t, IsCheckConstraintViolation(errors.New("plain")))
}
