// Package column holds all cli commands related to board columns
// e.g., flowforge column ...
package column

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/cli/handler"
	"github.com/thenoetrevino/flowforge/internal/models"
)

// ColumnCmd returns the column parent command
func ColumnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Manage board columns",
		Long: `Add, rename, reorder, and delete the columns of a board.

Every subcommand works on the board given with --board or set through
FLOWFORGE_BOARD. Columns can be referred to by id or by name.`,
	}

	cmd.PersistentFlags().String("board", "", "Board ID")

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(RenameCmd())
	cmd.AddCommand(ReorderCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

type columnResult struct {
	models.Column
	BoardID string `json:"board_id"`
}

func (r columnResult) GetID() string { return string(r.ID) }

// loadBoard resolves the board every column subcommand works on
func loadBoard(env *handler.Env) (models.Board, error) {
	boardID, err := env.Flags.ParseBoardID()
	if err != nil {
		return models.Board{}, err
	}
	board, ok := env.State().Board(boardID)
	if !ok {
		return models.Board{}, env.Formatter.Fail(cli.ExitNotFound, "BOARD_NOT_FOUND",
			fmt.Sprintf("board %s not found", boardID),
			"Use 'flowforge board list' to see available boards")
	}
	return board, nil
}

// findColumn resolves a column reference on the board
func findColumn(env *handler.Env, board models.Board, ref string) (models.Column, error) {
	col, ok := cli.FindColumn(board, ref)
	if !ok {
		return models.Column{}, env.Formatter.Fail(cli.ExitNotFound, "COLUMN_NOT_FOUND",
			fmt.Sprintf("column '%s' not found", ref),
			fmt.Sprintf("Available columns: %s", cli.ColumnNames(board)))
	}
	return col, nil
}
