package app

import (
	"context"
	"fmt"

	"github.com/example/todo/internal/core/todo"
	"github.com/example/todo/internal/ports/primary"
	"github.com/example/todo/internal/ports/secondary"
)

// TodoServiceImpl implements the TodoService interface.
type TodoServiceImpl struct {
	todoRepo secondary.TodoRepository
}

// NewTodoService creates a new TodoService with injected dependencies.
func NewTodoService(todoRepo secondary.TodoRepository) *TodoServiceImpl {
	return &TodoServiceImpl{
		todoRepo: todoRepo,
	}
}

// CreateTodo creates a new todo. Content is not validated; empty is accepted.
func (s *TodoServiceImpl) CreateTodo(ctx context.Context, req primary.CreateTodoRequest) (*primary.CreateTodoResponse, error) {
	result, err := s.todoRepo.Create(ctx, &secondary.TodoRecord{
		Content: req.Content,
		IsDone:  false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	return &primary.CreateTodoResponse{
		TodoID:       result.LastInsertID,
		RowsAffected: result.RowsAffected,
	}, nil
}

// ListTodos lists every todo.
func (s *TodoServiceImpl) ListTodos(ctx context.Context) ([]*primary.Todo, error) {
	records, err := s.todoRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}

	todos := make([]*primary.Todo, len(records))
	for i, r := range records {
		todos[i] = recordToTodo(r)
	}
	return todos, nil
}

// GetTodo retrieves a todo by ID.
func (s *TodoServiceImpl) GetTodo(ctx context.Context, todoID int64) (*primary.Todo, error) {
	record, err := s.todoRepo.GetByID(ctx, todoID)
	if err != nil {
		return nil, err
	}
	return recordToTodo(record), nil
}

// UpdateTodo changes a todo's content and/or completion state.
func (s *TodoServiceImpl) UpdateTodo(ctx context.Context, req primary.UpdateTodoRequest) (*primary.Todo, error) {
	exists, err := s.todoRepo.Exists(ctx, req.TodoID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate todo: %w", err)
	}

	guardCtx := todo.UpdateTodoContext{
		TodoID:     req.TodoID,
		TodoExists: exists,
		ContentSet: req.Content != nil,
		DoneSet:    req.Done != nil,
	}
	if result := todo.CanUpdateTodo(guardCtx); !result.Allowed {
		return nil, result.Error()
	}

	update := &secondary.TodoUpdate{
		ID:      req.TodoID,
		Content: req.Content,
		IsDone:  req.Done,
	}

	if req.Done != nil {
		current, err := s.todoRepo.GetByID(ctx, req.TodoID)
		if err != nil {
			return nil, err
		}
		switch todo.PlanDoneTransition(current.IsDone, *req.Done) {
		case todo.DoneAtSet:
			update.SetDoneAt = true
		case todo.DoneAtClear:
			update.ClearDoneAt = true
		}
	}

	if err := s.todoRepo.Update(ctx, update); err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	updated, err := s.todoRepo.GetByID(ctx, req.TodoID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated todo: %w", err)
	}
	return recordToTodo(updated), nil
}

// DeleteTodo deletes a todo.
func (s *TodoServiceImpl) DeleteTodo(ctx context.Context, todoID int64) error {
	exists, err := s.todoRepo.Exists(ctx, todoID)
	if err != nil {
		return fmt.Errorf("failed to validate todo: %w", err)
	}

	guardCtx := todo.DeleteTodoContext{
		TodoID:     todoID,
		TodoExists: exists,
	}
	if result := todo.CanDeleteTodo(guardCtx); !result.Allowed {
		return result.Error()
	}

	return s.todoRepo.Delete(ctx, todoID)
}

func recordToTodo(r *secondary.TodoRecord) *primary.Todo {
	return &primary.Todo{
		ID:        r.ID,
		Content:   r.Content,
		IsDone:    r.IsDone,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		DoneAt:    r.DoneAt,
	}
}

// Ensure TodoServiceImpl implements the interface
var _ primary.TodoService = (*TodoServiceImpl)(nil)
