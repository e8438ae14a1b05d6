package board

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/cli/handler"
	"github.com/thenoetrevino/flowforge/internal/types"
)

// DeleteCmd returns the board delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <board-id>",
		Short: "Delete a board",
		Long:  "Delete a board and every task on it (requires confirmation unless --force or --quiet).",
		Args:  cobra.MaximumNArgs(1),
		RunE:  handler.Command(runDelete),
	}

	cmd.Flags().String("id", "", "Board ID (can also be provided as positional argument)")
	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(env *handler.Env) error {
	rawID, err := env.ID("board")
	if err != nil {
		return err
	}
	id := types.BoardID(rawID)

	snap := env.State()
	board, ok := snap.Board(id)
	if !ok {
		return env.Formatter.Fail(cli.ExitNotFound, "BOARD_NOT_FOUND",
			fmt.Sprintf("board %s not found", id),
			"Use 'flowforge board list' to see available boards")
	}

	tasks := len(cli.BoardTasks(snap, board))
	if !env.Confirm(env.Flags.ParseBool("force"), "Delete board %s: '%s' with %d tasks?", id, board.Name, tasks) {
		return nil
	}

	env.Store.DeleteBoard(env.Ctx, id)

	if env.Formatter.Quiet {
		return nil
	}
	if env.Formatter.JSON {
		return env.Formatter.Success(map[string]any{"board_id": id, "tasks_deleted": tasks})
	}
	env.Formatter.Printf("✓ Board %s deleted successfully\n", id)
	return nil
}
