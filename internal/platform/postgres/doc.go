// Package postgres provides the PostgreSQL implementation of store.TodoStore.
// It owns the todos schema (goose migrations embedded in the binary), maps
// driver errors to store errors and opens one pooled session per operation.
package postgres
