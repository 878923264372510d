// Package todo contains the pure business logic for todo operations.
// Guards are pure functions that evaluate preconditions without side effects.
package todo

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// UpdateTodoContext provides context for todo update guards.
type UpdateTodoContext struct {
	TodoID     int64
	TodoExists bool
	ContentSet bool
	DoneSet    bool
}

// DeleteTodoContext provides context for todo deletion guards.
type DeleteTodoContext struct {
	TodoID     int64
	TodoExists bool
}

// CanUpdateTodo evaluates whether a todo can be updated.
// Rules:
// - Todo must exist
// - At least one field must change
func CanUpdateTodo(ctx UpdateTodoContext) GuardResult {
	if !ctx.TodoExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("todo %d not found", ctx.TodoID),
		}
	}

	if !ctx.ContentSet && !ctx.DoneSet {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("nothing to update for todo %d (use --content, --done or --undone)", ctx.TodoID),
		}
	}

	return GuardResult{Allowed: true}
}

// CanDeleteTodo evaluates whether a todo can be deleted.
// Rules:
// - Todo must exist
func CanDeleteTodo(ctx DeleteTodoContext) GuardResult {
	if !ctx.TodoExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("todo %d not found", ctx.TodoID),
		}
	}

	return GuardResult{Allowed: true}
}
