package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/bookshelf-api/internal/api/shared"
	"github.com/phrazzld/bookshelf-api/internal/service/auth"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// withClaims injects claims the way the auth middleware does.
func withClaims(claims *auth.Claims) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims != nil {
				r = r.WithContext(shared.WithClaims(r.Context(), claims))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return body.Error
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(v))
	return buf.String()
}

func newTodoRouter(h *TodoHandler, claims *auth.Claims) http.Handler {
	r := chi.NewRouter()
	r.Use(withClaims(claims))
	r.Get("/", h.ListTodos)
	r.Get("/todo/{todo_id}", h.GetTodo)
	r.Post("/todo", h.CreateTodo)
	r.Get("/admin/todo", h.AdminListTodos)
	return r
}

func newBookRouter(h *BookHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/books", h.ListBooks)
	r.Get("/books/", h.BooksByRating)
	r.Get("/books/publish/", h.BooksByPublishedDate)
	r.Get("/books/{book_id}", h.GetBook)
	r.Post("/create-book", h.CreateBook)
	r.Put("/books/update-book", h.UpdateBook)
	r.Delete("/books/{book_id}", h.DeleteBook)
	return r
}
