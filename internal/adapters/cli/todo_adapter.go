package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/todo/internal/ports/primary"
)

// TodoAdapter is a thin adapter that translates CLI operations to TodoService calls.
// It depends only on the TodoService interface, enabling easy testing with mocks.
type TodoAdapter struct {
	service primary.TodoService
	out     io.Writer
}

// NewTodoAdapter creates a new TodoAdapter with the given service.
func NewTodoAdapter(service primary.TodoService, out io.Writer) *TodoAdapter {
	return &TodoAdapter{
		service: service,
		out:     out,
	}
}

// Create inserts a todo and reports the raw insert outcome.
func (a *TodoAdapter) Create(ctx context.Context, content string) (*primary.CreateTodoResponse, error) {
	resp, err := a.service.CreateTodo(ctx, primary.CreateTodoRequest{Content: content})
	if err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	fmt.Fprintf(a.out, "%s Created todo %d (rows affected: %d)\n",
		color.New(color.FgGreen).Sprint("✓"), resp.TodoID, resp.RowsAffected)
	return resp, nil
}

// ReadAll prints every todo's content with a zero-based positional index.
func (a *TodoAdapter) ReadAll(ctx context.Context) ([]*primary.Todo, error) {
	todos, err := a.service.ListTodos(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}

	if len(todos) == 0 {
		fmt.Fprintln(a.out, "No todos found.")
		return todos, nil
	}

	for idx, todo := range todos {
		fmt.Fprintf(a.out, "[%d]: %q\n", idx, todo.Content)
	}
	return todos, nil
}

// Read displays details for a single todo.
func (a *TodoAdapter) Read(ctx context.Context, todoID int64) (*primary.Todo, error) {
	todo, err := a.service.GetTodo(ctx, todoID)
	if err != nil {
		return nil, fmt.Errorf("failed to get todo: %w", err)
	}

	a.printTodo(todo)
	return todo, nil
}

// Update applies content and/or done changes and shows the result.
func (a *TodoAdapter) Update(ctx context.Context, req primary.UpdateTodoRequest) (*primary.Todo, error) {
	todo, err := a.service.UpdateTodo(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	fmt.Fprintf(a.out, "%s Updated todo %d\n", color.New(color.FgGreen).Sprint("✓"), todo.ID)
	a.printTodo(todo)
	return todo, nil
}

// Delete removes a todo.
func (a *TodoAdapter) Delete(ctx context.Context, todoID int64) error {
	if err := a.service.DeleteTodo(ctx, todoID); err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	fmt.Fprintf(a.out, "%s Deleted todo %d\n", color.New(color.FgGreen).Sprint("✓"), todoID)
	return nil
}

func (a *TodoAdapter) printTodo(todo *primary.Todo) {
	status := color.New(color.FgYellow).Sprint("open")
	if todo.IsDone {
		status = color.New(color.FgGreen).Sprint("done")
	}

	fmt.Fprintf(a.out, "Todo:    %d\n", todo.ID)
	fmt.Fprintf(a.out, "Content: %s\n", todo.Content)
	fmt.Fprintf(a.out, "Status:  %s\n", status)
	fmt.Fprintf(a.out, "Created: %s\n", todo.CreatedAt)
	fmt.Fprintf(a.out, "Updated: %s\n", todo.UpdatedAt)
	if todo.DoneAt != "" {
		fmt.Fprintf(a.out, "Done:    %s\n", todo.DoneAt)
	}
}
