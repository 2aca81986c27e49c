package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/bookshelf-api/internal/api/shared"
	"github.com/phrazzld/bookshelf-api/internal/platform/logger"
	"github.com/phrazzld/bookshelf-api/internal/service"
)

// TodoHandler handles todo-related HTTP requests
type TodoHandler struct {
	todoService service.TodoService
	logger      *slog.Logger
}

// NewTodoHandler creates a new TodoHandler
func NewTodoHandler(todoService service.TodoService, logger *slog.Logger) *TodoHandler {
	if todoService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("todoService cannot be nil for TodoHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TodoHandler")
	}

	return &TodoHandler{
		todoService: todoService,
		logger:      logger.With(slog.String("component", "todo_handler")),
	}
}

// ListTodos handles GET / requests
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.todoService.ListTodos(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list todos")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, todos)
}

// GetTodo handles GET /todo/{todo_id} requests
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "todo_id")
	if err != nil {
		log.Debug("invalid todo id", slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "")
		return
	}

	todo, err := h.todoService.GetTodo(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get todo")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, todo)
}

// CreateTodo handles POST /todo requests
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req TodoRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("invalid todo request body", slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	todo := req.toDomain()
	if err := h.todoService.CreateTodo(r.Context(), todo); err != nil {
		HandleAPIError(w, r, err, "Failed to create todo")
		return
	}

	log.Debug("todo created", slog.Int64("todo_id", todo.ID))
	shared.RespondWithStatus(w, http.StatusCreated)
}

// AdminListTodos handles GET /admin/todo requests. The caller's claims come
// from the authentication middleware; requests without them are rejected.
func (h *TodoHandler) AdminListTodos(w http.ResponseWriter, r *http.Request) {
	claims := shared.GetClaims(r.Context())

	todos, err := h.todoService.ListAllAsAdmin(r.Context(), claims)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list todos")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, todos)
}
