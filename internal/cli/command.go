package cli

import "fmt"

// Command is one of the todo operations selectable by a single CLI token.
type Command int

const (
	CommandCreate Command = iota
	CommandReadAll
	CommandRead
	CommandUpdate
	CommandDelete
)

var commandTokens = map[string]Command{
	"create":  CommandCreate,
	"readall": CommandReadAll,
	"read":    CommandRead,
	"update":  CommandUpdate,
	"delete":  CommandDelete,
}

// ParseCommand maps a token to a Command. Matching is exact and case-sensitive.
func ParseCommand(token string) (Command, error) {
	cmd, ok := commandTokens[token]
	if !ok {
		return 0, fmt.Errorf("unknown command %q", token)
	}
	return cmd, nil
}

// Label is the line printed before the command runs. readall has none.
func (c Command) Label() string {
	switch c {
	case CommandCreate:
		return "Create"
	case CommandRead:
		return "Read"
	case CommandUpdate:
		return "Update"
	case CommandDelete:
		return "Delete"
	default:
		return ""
	}
}

// targetsSingleTodo reports whether the command needs an --id to touch data.
func (c Command) targetsSingleTodo() bool {
	return c == CommandRead || c == CommandUpdate || c == CommandDelete
}
