package column

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/cli/handler"
	"github.com/thenoetrevino/flowforge/internal/models"
	"github.com/thenoetrevino/flowforge/internal/types"
)

// ReorderCmd returns the column reorder subcommand
func ReorderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reorder <column>...",
		Short: "Set the order of a board's columns",
		Long: `Set the display order of a board's columns. Every column of the board
must be listed exactly once.

Examples:
  flowforge column reorder --board=b-1 col-4 col-1 col-2 col-3
  flowforge column reorder --board=b-1 Done "To Do" "In Progress" Review`,
		Args: cobra.MinimumNArgs(1),
		RunE: handler.Command(runReorder),
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runReorder(env *handler.Env) error {
	board, err := loadBoard(env)
	if err != nil {
		return err
	}

	ordered := make([]models.Column, 0, len(env.Args))
	seen := make(map[types.ColumnID]bool, len(env.Args))
	for _, ref := range env.Args {
		col, err := findColumn(env, board, ref)
		if err != nil {
			return err
		}
		if seen[col.ID] {
			return env.Formatter.Fail(cli.ExitValidation, "DUPLICATE_COLUMN",
				fmt.Sprintf("column '%s' listed more than once", ref), "")
		}
		seen[col.ID] = true
		ordered = append(ordered, col)
	}
	if len(ordered) != len(board.Columns) {
		return env.Formatter.Fail(cli.ExitValidation, "INCOMPLETE_ORDER",
			fmt.Sprintf("got %d columns, board has %d", len(ordered), len(board.Columns)),
			fmt.Sprintf("List every column: %s", cli.ColumnNames(board)))
	}

	env.Store.ReorderColumns(env.Ctx, board.ID, ordered)

	if env.Formatter.Quiet {
		return nil
	}
	if env.Formatter.JSON {
		return env.Formatter.Success(map[string]any{"board_id": board.ID, "columns": ordered})
	}
	board.Columns = ordered
	env.Formatter.Printf("✓ Columns reordered: %s\n", cli.ColumnNames(board))
	return nil
}
