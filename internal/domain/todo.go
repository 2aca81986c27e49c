package domain

// Todo is a task record persisted in the todos table.
type Todo struct {
	ID          int64  `json:"id"`
	Title       string `json:"title" validate:"min=3"`
	Description string `json:"description" validate:"min=3,max=500"`
	Priority    int    `json:"priority" validate:"gt=0,lt=6"`
	Complete    bool   `json:"complete"`
}

// NewTodo builds a Todo from client supplied fields. The ID is left zero for
// the store to assign. Returns a ValidationError if any rule fails.
func NewTodo(title, description string, priority int, complete bool) (*Todo, error) {
	todo := &Todo{
		Title:       title,
		Description: description,
		Priority:    priority,
		Complete:    complete,
	}

	if err := todo.Validate(); err != nil {
		return nil, err
	}

	return todo, nil
}

// Validate checks the title, description and priority constraints.
func (t *Todo) Validate() error {
	return validateStruct(t)
}
