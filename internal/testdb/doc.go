// Package testdb provides utilities for PostgreSQL integration tests.
//
// GetTestDBWithT returns a migrated connection pool and skips the test when no
// database URL is configured, so `go test ./...` passes on machines without
// PostgreSQL.
//
// Two isolation styles are supported:
//
//   - WithTx runs a function inside a transaction that is always rolled back.
//     Use it for schema-level assertions made with plain SQL.
//   - ResetTodos truncates the todos table and restarts its identity. Use it
//     for store tests, since the todo store opens its own session per call and
//     cannot join a caller's transaction.
//
// The database URL is read from BOOKSHELF_TEST_DB_URL, then DATABASE_URL.
package testdb
