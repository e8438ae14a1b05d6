package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/models"
	"github.com/thenoetrevino/flowforge/internal/types"
)

// FindColumn looks a column up on the board by id, then by case-insensitive name
func FindColumn(board models.Board, ref string) (models.Column, bool) {
	for _, c := range board.Columns {
		if string(c.ID) == ref {
			return c, true
		}
	}
	for _, c := range board.Columns {
		if strings.EqualFold(c.Name, ref) {
			return c, true
		}
	}
	return models.Column{}, false
}

// ResolveColumn finds the column ref names. With a board id only that board is
// searched and names are accepted; without one ref must be a column id.
func ResolveColumn(snap models.Snapshot, boardID types.BoardID, ref string) (models.Column, models.Board, bool) {
	if boardID != "" {
		board, ok := snap.Board(boardID)
		if !ok {
			return models.Column{}, models.Board{}, false
		}
		col, ok := FindColumn(board, ref)
		return col, board, ok
	}
	board, ok := snap.BoardOfColumn(types.ColumnID(ref))
	if !ok {
		return models.Column{}, models.Board{}, false
	}
	col, _ := FindColumn(board, ref)
	return col, board, true
}

// ColumnName returns the display name of a column, or its id when unknown
func ColumnName(snap models.Snapshot, id types.ColumnID) string {
	if board, ok := snap.BoardOfColumn(id); ok {
		if i := board.ColumnIndex(id); i >= 0 {
			return board.Columns[i].Name
		}
	}
	return string(id)
}

// ColumnNames lists a board's column names for suggestions
func ColumnNames(board models.Board) string {
	names := make([]string, len(board.Columns))
	for i, c := range board.Columns {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}

// BoardTasks returns the tasks sitting in the board's columns, column by column
// in display order and by position within each column
func BoardTasks(snap models.Snapshot, board models.Board) []models.Task {
	var tasks []models.Task
	for _, c := range board.Columns {
		tasks = append(tasks, snap.TasksInColumn(c.ID)...)
	}
	return tasks
}

// BoardEnv is the environment variable `flowforge use board` sets
const BoardEnv = "FLOWFORGE_BOARD"

// GetBoardID returns the --board flag, falling back to FLOWFORGE_BOARD
func GetBoardID(cmd *cobra.Command) (types.BoardID, error) {
	if id, _ := cmd.Flags().GetString("board"); id != "" {
		return types.BoardID(id), nil
	}
	if id := os.Getenv(BoardEnv); id != "" {
		return types.BoardID(id), nil
	}
	return "", errors.New("no board specified (use --board or set FLOWFORGE_BOARD)")
}
