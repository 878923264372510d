// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// TodoRepository defines the secondary port for todo persistence.
type TodoRepository interface {
	// Create persists a new todo. The ID is assigned by the store.
	Create(ctx context.Context, todo *TodoRecord) (*InsertResult, error)

	// GetByID retrieves a todo by its ID.
	GetByID(ctx context.Context, id int64) (*TodoRecord, error)

	// List retrieves every todo in storage order.
	List(ctx context.Context) ([]*TodoRecord, error)

	// Update applies a partial update and refreshes updated_at.
	Update(ctx context.Context, update *TodoUpdate) error

	// Delete removes a todo from persistence.
	Delete(ctx context.Context, id int64) error

	// Exists checks if a todo exists (for validation).
	Exists(ctx context.Context, id int64) (bool, error)
}

// TodoRecord represents a todo as stored in persistence.
type TodoRecord struct {
	ID        int64
	Content   string
	IsDone    bool
	CreatedAt string
	UpdatedAt string
	DoneAt    string // Empty string means null
}

// InsertResult is the raw outcome of an insert.
type InsertResult struct {
	LastInsertID int64
	RowsAffected int64
}

// TodoUpdate describes a partial update. Nil fields are left untouched.
type TodoUpdate struct {
	ID          int64
	Content     *string
	IsDone      *bool
	SetDoneAt   bool
	ClearDoneAt bool
}
