package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/todo/internal/ports/primary"
)

// Console messages for the non-operation branches.
const (
	Banner          = "this is todo cli"
	HelpPlaceholder = "show help here"
	UnknownCommand  = "Error, command not found!"
)

// DefaultContent is the content used by create when --content is not given.
const DefaultContent = "test todo"

// Operations is what the dispatcher routes recognized commands to.
// *cliadapter.TodoAdapter satisfies it.
type Operations interface {
	Create(ctx context.Context, content string) (*primary.CreateTodoResponse, error)
	ReadAll(ctx context.Context) ([]*primary.Todo, error)
	Read(ctx context.Context, todoID int64) (*primary.Todo, error)
	Update(ctx context.Context, req primary.UpdateTodoRequest) (*primary.Todo, error)
	Delete(ctx context.Context, todoID int64) error
}

// ConnectFunc bootstraps the database and returns the operations bound to it.
type ConnectFunc func(ctx context.Context) (Operations, error)

// Options carries the flag values relevant to dispatch.
type Options struct {
	Content    string
	ContentSet bool
	ID         int64
	Done       bool
	Undone     bool
}

// Dispatcher maps positional arguments to a todo operation.
// The database is only bootstrapped once a recognized command is routed.
type Dispatcher struct {
	out     io.Writer
	connect ConnectFunc
}

// NewDispatcher creates a Dispatcher writing console output to out.
func NewDispatcher(out io.Writer, connect ConnectFunc) *Dispatcher {
	return &Dispatcher{
		out:     out,
		connect: connect,
	}
}

// Dispatch routes args. Unknown tokens and wrong argument counts are printed
// and return nil; only bootstrap and operation failures return an error.
func (d *Dispatcher) Dispatch(ctx context.Context, args []string, opts Options) error {
	switch len(args) {
	case 0:
		fmt.Fprintln(d.out, Banner)
		return nil
	case 1:
	default:
		fmt.Fprintln(d.out, HelpPlaceholder)
		return nil
	}

	cmd, err := ParseCommand(args[0])
	if err != nil {
		fmt.Fprintln(d.out, UnknownCommand)
		return nil
	}

	if label := cmd.Label(); label != "" {
		fmt.Fprintln(d.out, label)
	}

	// Without a target, read/update/delete stop at the label.
	if cmd.targetsSingleTodo() && opts.ID == 0 {
		return nil
	}

	ops, err := d.connect(ctx)
	if err != nil {
		return err
	}

	switch cmd {
	case CommandCreate:
		content := DefaultContent
		if opts.ContentSet {
			content = opts.Content
		}
		_, err = ops.Create(ctx, content)
	case CommandReadAll:
		_, err = ops.ReadAll(ctx)
	case CommandRead:
		_, err = ops.Read(ctx, opts.ID)
	case CommandUpdate:
		_, err = ops.Update(ctx, buildUpdateRequest(opts))
	case CommandDelete:
		err = ops.Delete(ctx, opts.ID)
	}
	return err
}

func buildUpdateRequest(opts Options) primary.UpdateTodoRequest {
	req := primary.UpdateTodoRequest{TodoID: opts.ID}
	if opts.ContentSet {
		content := opts.Content
		req.Content = &content
	}
	switch {
	case opts.Done:
		done := true
		req.Done = &done
	case opts.Undone:
		done := false
		req.Done = &done
	}
	return req
}
