package column

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/cli/handler"
)

// DeleteCmd returns the column delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <column>",
		Short: "Delete a column",
		Long: `Delete a column and every task in it (requires confirmation unless
--force or --quiet).`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(runDelete),
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(env *handler.Env) error {
	board, err := loadBoard(env)
	if err != nil {
		return err
	}
	col, err := findColumn(env, board, env.Args[0])
	if err != nil {
		return err
	}

	tasks := len(env.State().TasksInColumn(col.ID))
	if !env.Confirm(env.Flags.ParseBool("force"), "Delete column '%s' with %d tasks?", col.Name, tasks) {
		return nil
	}

	env.Store.DeleteColumn(env.Ctx, board.ID, col.ID)

	if env.Formatter.Quiet {
		return nil
	}
	if env.Formatter.JSON {
		return env.Formatter.Success(map[string]any{"column_id": col.ID, "tasks_deleted": tasks})
	}
	env.Formatter.Printf("✓ Column '%s' deleted successfully\n", col.Name)
	return nil
}
