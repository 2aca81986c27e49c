package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/bookshelf-api/internal/api"
	apiMiddleware "github.com/phrazzld/bookshelf-api/internal/api/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter creates and configures the application router with all routes and middleware.
// Only the routes of enabled services are registered.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(app.metrics.Instrument)

	if app.todoService != nil {
		todoHandler := api.NewTodoHandler(app.todoService, app.logger)
		authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

		r.Get("/", todoHandler.ListTodos)
		r.Get("/todo/{todo_id}", todoHandler.GetTodo)
		r.Post("/todo", todoHandler.CreateTodo)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Get("/admin/todo", todoHandler.AdminListTodos)
		})
	}

	if app.bookService != nil {
		bookHandler := api.NewBookHandler(app.bookService, app.logger)

		r.Get("/books", bookHandler.ListBooks)
		r.Get("/books/", bookHandler.BooksByRating)
		r.Get("/books/publish/", bookHandler.BooksByPublishedDate)
		r.Get("/books/{book_id}", bookHandler.GetBook)
		r.Post("/create-book", bookHandler.CreateBook)
		r.Put("/books/update-book", bookHandler.UpdateBook)
		r.Delete("/books/{book_id}", bookHandler.DeleteBook)
	}

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))

	return r
}
