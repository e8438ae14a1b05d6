package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/activity"
	"github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/cli/handler"
	"github.com/thenoetrevino/flowforge/internal/models"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <task-id>",
		Short: "Move a task to a column and position",
		Long: `Move a task into a column at a 0-based index. Without --index the task
goes to the bottom. Positions in the source and destination columns are
renumbered; other columns are left alone.

The destination can be a column id, or a column name on the task's board.

Examples:
  flowforge task move t-1 --to="Done"
  flowforge task move t-1 --to=col-2 --index=0
  flowforge task move t-1 --to="In Progress" --index=2`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.Command(runMove),
	}

	cmd.Flags().String("id", "", "Task ID (can also be provided as positional argument)")
	cmd.Flags().String("to", "", "Destination column id or name (required)")
	cmd.Flags().Int("index", 0, "0-based index in the destination column")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(env *handler.Env) error {
	t, err := loadTask(env)
	if err != nil {
		return err
	}
	ref, err := env.Flags.ParseString("to")
	if err != nil {
		return err
	}

	snap := env.State()
	dest, ok := resolveDestination(snap, t, ref)
	if !ok {
		suggestion := "Use a column id from 'flowforge board show'"
		if board, found := snap.BoardOfColumn(t.Status); found {
			suggestion = fmt.Sprintf("Available columns: %s", cli.ColumnNames(board))
		}
		return env.Formatter.Fail(cli.ExitNotFound, "COLUMN_NOT_FOUND",
			fmt.Sprintf("column '%s' not found", ref), suggestion)
	}

	if env.Store.MoveTask(env.Ctx, t.ID, dest.ID, env.Flags.ParseIntOptional("index")) {
		activity.Log(env.Ctx, env.Store, t.ID, activity.KindMoved, activity.Details{ToName: dest.Name, ToColumnID: dest.ID})
	}

	snap = env.State()
	moved, _ := snap.Task(t.ID)
	if !env.Formatter.Human() {
		return env.Formatter.Success(newTaskResult(snap, moved))
	}
	env.Formatter.Printf("✓ Task %s moved to %s (position %d)\n", t.ID, dest.Name, moved.Position)
	return nil
}

// resolveDestination looks ref up on the task's own board first, then as a
// column id on any board
func resolveDestination(snap models.Snapshot, t models.Task, ref string) (models.Column, bool) {
	if board, ok := snap.BoardOfColumn(t.Status); ok {
		if col, ok := cli.FindColumn(board, ref); ok {
			return col, true
		}
	}
	col, _, ok := cli.ResolveColumn(snap, "", ref)
	return col, ok
}
