// Package memory provides the in-process implementation of store.BookStore.
// The catalog is an ordered slice owned by a BookStore value; nothing is
// persisted and a fresh process starts again from the seed records.
package memory
