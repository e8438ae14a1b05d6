package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/cli/handler"
	"github.com/thenoetrevino/flowforge/internal/cli/styles"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show task details",
		Long:  "Show a task's fields, description, custom fields, and activity log.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  handler.Command(runShow),
	}

	cmd.Flags().String("id", "", "Task ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(env *handler.Env) error {
	t, err := loadTask(env)
	if err != nil {
		return err
	}

	snap := env.State()
	if !env.Formatter.Human() {
		return env.Formatter.Success(newTaskResult(snap, t))
	}
	env.Formatter.Printf("%s", styles.RenderTask(t, cli.ColumnName(snap, t.Status), env.CLI.App.Now()))
	return nil
}
