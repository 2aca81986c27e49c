// Package service contains the application use cases for the todo and book
// services. It sits between the HTTP handlers in internal/api and the store
// interfaces in internal/store, and it never depends on a concrete store
// implementation.
//
// Key components:
//
//   - TodoService: reads and creates todos, and gates the admin listing on the
//     caller's role claim.
//   - BookService: the book catalogue operations over a store.BookStore.
//
// Services return sentinel errors from internal/domain and internal/store so
// that the API layer can classify them with errors.Is.
package service
