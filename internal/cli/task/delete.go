package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/cli/handler"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Long:  "Delete a task by ID (requires confirmation unless --force or --quiet).",
		Args:  cobra.MaximumNArgs(1),
		RunE:  handler.Command(runDelete),
	}

	cmd.Flags().String("id", "", "Task ID (can also be provided as positional argument)")
	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(env *handler.Env) error {
	t, err := loadTask(env)
	if err != nil {
		return err
	}

	if !env.Confirm(env.Flags.ParseBool("force"), "Delete task %s: '%s'?", t.ID, t.Title) {
		return nil
	}

	env.Store.DeleteTask(env.Ctx, t.ID)

	if env.Formatter.Quiet {
		return nil
	}
	if env.Formatter.JSON {
		return env.Formatter.Success(map[string]any{"task_id": t.ID})
	}
	env.Formatter.Printf("✓ Task %s deleted successfully\n", t.ID)
	return nil
}
