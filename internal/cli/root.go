package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/todo/internal/version"
	"github.com/example/todo/internal/wire"
)

// RootCmd returns the todo root command.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "todo [create|readall|read|update|delete]",
		Short:   "todo - a todo list on a local SQLite database",
		Version: version.String(),
		Long: `todo manages a todo list stored in a local SQLite file.

Exactly one command token per invocation:
  create    add a todo (content from --content)
  readall   list every todo with its index
  read      show one todo (--id)
  update    change content or completion of one todo (--id)
  delete    remove one todo (--id)

Examples:
  todo create --content "buy milk"
  todo readall
  todo update --id 3 --done
  todo delete --id 3`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}

	cmd.Flags().StringP("content", "c", DefaultContent, "Todo content for create/update")
	cmd.Flags().Int64("id", 0, "Todo ID for read/update/delete")
	cmd.Flags().Bool("done", false, "Mark the todo done (update)")
	cmd.Flags().Bool("undone", false, "Mark the todo not done (update)")
	cmd.Flags().String("db", "", "Database file path (overrides config)")
	cmd.Flags().String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	cmd.Flags().String("config", "", "Config file path (default .todo.toml in the working directory)")
	cmd.MarkFlagsMutuallyExclusive("done", "undone")

	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	content, _ := cmd.Flags().GetString("content")
	id, _ := cmd.Flags().GetInt64("id")
	done, _ := cmd.Flags().GetBool("done")
	undone, _ := cmd.Flags().GetBool("undone")
	dbPath, _ := cmd.Flags().GetString("db")
	logLevel, _ := cmd.Flags().GetString("log-level")
	configPath, _ := cmd.Flags().GetString("config")

	settings := wire.Settings{
		ConfigPath: configPath,
		DBPath:     dbPath,
		LogLevel:   logLevel,
		LogOutput:  cmd.ErrOrStderr(),
	}
	out := cmd.OutOrStdout()
	defer wire.Close()

	dispatcher := NewDispatcher(out, func(ctx context.Context) (Operations, error) {
		if err := wire.Init(ctx, settings); err != nil {
			return nil, err
		}
		return wire.TodoAdapterWithOutput(out), nil
	})

	return dispatcher.Dispatch(cmd.Context(), args, Options{
		Content:    content,
		ContentSet: cmd.Flags().Changed("content"),
		ID:         id,
		Done:       done,
		Undone:     undone,
	})
}
