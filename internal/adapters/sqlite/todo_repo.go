// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/todo/internal/ports/secondary"
)

// TodoRepository implements secondary.TodoRepository with SQLite.
type TodoRepository struct {
	db *sql.DB
}

// NewTodoRepository creates a new SQLite todo repository.
func NewTodoRepository(db *sql.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// scanTodo scans a todo row into a TodoRecord.
func scanTodo(scanner interface {
	Scan(dest ...any) error
}) (*secondary.TodoRecord, error) {
	var (
		createdAt time.Time
		updatedAt time.Time
		doneAt    sql.NullTime
	)

	record := &secondary.TodoRecord{}
	err := scanner.Scan(
		&record.ID, &record.Content, &record.IsDone,
		&createdAt, &updatedAt, &doneAt,
	)
	if err != nil {
		return nil, err
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)
	if doneAt.Valid {
		record.DoneAt = doneAt.Time.Format(time.RFC3339)
	}

	return record, nil
}

const todoSelectCols = "id, content, is_done, created_at, updated_at, done_at"

// Create persists a new todo with both timestamps set to the current time.
func (r *TodoRepository) Create(ctx context.Context, todo *secondary.TodoRecord) (*secondary.InsertResult, error) {
	now := time.Now().UTC()

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO todo (content, is_done, created_at, updated_at) VALUES (?, ?, ?, ?)",
		todo.Content, todo.IsDone, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted todo id: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return &secondary.InsertResult{
		LastInsertID: id,
		RowsAffected: rowsAffected,
	}, nil
}

// GetByID retrieves a todo by its ID.
func (r *TodoRepository) GetByID(ctx context.Context, id int64) (*secondary.TodoRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+todoSelectCols+" FROM todo WHERE id = ?",
		id,
	)

	record, err := scanTodo(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("todo %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get todo: %w", err)
	}

	return record, nil
}

// List retrieves every todo. No ORDER BY: rows come back in storage order.
func (r *TodoRepository) List(ctx context.Context) ([]*secondary.TodoRecord, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+todoSelectCols+" FROM todo")
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	var todos []*secondary.TodoRecord
	for rows.Next() {
		record, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate todos: %w", err)
	}

	return todos, nil
}

// Update applies a partial update and refreshes updated_at.
func (r *TodoRepository) Update(ctx context.Context, update *secondary.TodoUpdate) error {
	query := "UPDATE todo SET updated_at = CURRENT_TIMESTAMP"
	args := []any{}

	if update.Content != nil {
		query += ", content = ?"
		args = append(args, *update.Content)
	}

	if update.IsDone != nil {
		query += ", is_done = ?"
		args = append(args, *update.IsDone)
	}

	if update.SetDoneAt {
		query += ", done_at = CURRENT_TIMESTAMP"
	} else if update.ClearDoneAt {
		query += ", done_at = NULL"
	}

	query += " WHERE id = ?"
	args = append(args, update.ID)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("todo %d not found", update.ID)
	}

	return nil
}

// Delete removes a todo from persistence.
func (r *TodoRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM todo WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("todo %d not found", id)
	}

	return nil
}

// Exists checks if a todo exists.
func (r *TodoRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM todo WHERE id = ?", id).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check todo existence: %w", err)
	}
	return count > 0, nil
}

// Ensure TodoRepository implements the interface
var _ secondary.TodoRepository = (*TodoRepository)(nil)
