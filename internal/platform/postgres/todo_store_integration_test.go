package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/phrazzld/bookshelf-api/internal/domain"
	"github.com/phrazzld/bookshelf-api/internal/platform/postgres"
	"github.com/phrazzld/bookshelf-api/internal/store"
	"github.com/phrazzld/bookshelf-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresTodoStore_Integration(t *testing.T) {
	db := testdb.GetTestDBWithT(t)
	testdb.ResetTodos(t, db)
	ctx := context.Background()
	s := postgres.NewPostgresTodoStore(db, nil)

	empty, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	first := &domain.Todo{Title: "Learn Go", Description: "Read the tour", Priority: 4}
	second := &domain.Todo{Title: "Walk dog", Description: "Around the park", Priority: 2, Complete: true}
	require.NoError(t, s.Create(ctx, first))
	require.NoError(t, s.Create(ctx, second))
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	todos, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Todo{*first, *second}, todos)

	got, err := s.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, second, got)

	_, err = s.GetByID(ctx, 404)
	assert.ErrorIs(t, err, store.ErrTodoNotFound)

	assert.Equal(t, 0, db.Stats().InUse, "every session must be returned to the pool")
}

func TestTodosSchemaConstraints_Integration(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	tests := []struct {
		name        string
		title       string
		description string
		priority    int
	}{
		{name: "short title", title: "ab", description: "valid", priority: 3},
		{name: "short description", title: "valid", description: "ab", priority: 3},
		{name: "priority too high", title: "valid", description: "valid", priority: 6},
		{name: "priority zero", title: "valid", description: "valid", priority: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
				_, err := tx.ExecContext(context.Background(),
					"INSERT INTO todos (title, description, priority, complete) VALUES ($1, $2, $3, false)",
					tt.title, tt.description, tt.priority)
				require.Error(t, err)
				assert.True(t, postgres.IsCheckConstraintViolation(err))
				assert.ErrorIs(t, postgres.MapError(err), store.ErrInvalidEntity)
			})
		})
	}
}

func TestMigrate_RoundTrip_Integration(t *testing.T) {
	db := testdb.GetTestDBWithT(t)
	ctx := context.Background()

	tableExists := func() bool {
		var exists bool
		err := db.QueryRowContext(ctx, "SELECT to_regclass('public.todos') IS NOT NULL").Scan(&exists)
		require.NoError(t, err)
		return exists
	}

	require.True(t, tableExists())

	require.NoError(t, postgres.Migrate(ctx, db, postgres.MigrateDown, nil))
	assert.False(t, tableExists())

	require.NoError(t, postgres.Migrate(ctx, db, postgres.MigrateUp, nil))
	assert.True(t, tableExists())

	assert.NoError(t, postgres.Migrate(ctx, db, postgres.MigrateStatus, nil))
	assert.NoError(t, postgres.Migrate(ctx, db, postgres.MigrateVersion, nil))
}
