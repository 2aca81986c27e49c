// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic, so the todo list can live in PostgreSQL
// while the book catalog lives in process memory behind the same style
// of contract.
package store
