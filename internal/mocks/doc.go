// Package mocks provides centralized mock implementations for testing.
//
// Each mock is a struct with one function field per interface method. A nil
// function field falls back to the mock's default values, so tests only wire
// the behavior they care about:
//
//	todoStore := &mocks.MockTodoStore{
//	    GetByIDFn: func(ctx context.Context, id int64) (*domain.Todo, error) {
//	        return nil, store.ErrTodoNotFound
//	    },
//	}
package mocks
