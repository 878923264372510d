package primary

import "context"

// TodoService defines the primary port for todo operations.
type TodoService interface {
	// CreateTodo creates a new open todo.
	CreateTodo(ctx context.Context, req CreateTodoRequest) (*CreateTodoResponse, error)

	// ListTodos lists every todo.
	ListTodos(ctx context.Context) ([]*Todo, error)

	// GetTodo retrieves a todo by ID.
	GetTodo(ctx context.Context, todoID int64) (*Todo, error)

	// UpdateTodo changes a todo's content and/or completion state.
	UpdateTodo(ctx context.Context, req UpdateTodoRequest) (*Todo, error)

	// DeleteTodo deletes a todo.
	DeleteTodo(ctx context.Context, todoID int64) error
}

// CreateTodoRequest contains parameters for creating a todo.
type CreateTodoRequest struct {
	Content string
}

// CreateTodoResponse contains the result of creating a todo.
type CreateTodoResponse struct {
	TodoID       int64
	RowsAffected int64
}

// UpdateTodoRequest contains parameters for updating a todo.
// Nil fields are left unchanged.
type UpdateTodoRequest struct {
	TodoID  int64
	Content *string
	Done    *bool
}

// Todo represents a todo entity at the port boundary.
type Todo struct {
	ID        int64
	Content   string
	IsDone    bool
	CreatedAt string
	UpdatedAt string
	DoneAt    string
}
