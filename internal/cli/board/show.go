package board

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/cli/handler"
	"github.com/thenoetrevino/flowforge/internal/cli/styles"
	"github.com/thenoetrevino/flowforge/internal/filter"
	"github.com/thenoetrevino/flowforge/internal/models"
	"github.com/thenoetrevino/flowforge/internal/types"
)

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [board-id]",
		Short: "Show a board with its tasks",
		Long: `Show a board's columns and the tasks in them. The saved filters
(see 'flowforge filter') are applied unless --all is given.

The board can be given as an argument, with --board, or through
FLOWFORGE_BOARD (see 'flowforge use board').`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.Command(runShow),
	}

	cmd.Flags().String("board", "", "Board ID")
	cmd.Flags().Bool("all", false, "Ignore the saved filters")
	cli.AddOutputFlags(cmd)

	return cmd
}

type columnView struct {
	ID    types.ColumnID `json:"id"`
	Name  string         `json:"name"`
	Tasks []models.Task  `json:"tasks"`
}

type boardView struct {
	ID       types.BoardID  `json:"id"`
	Name     string         `json:"name"`
	Filtered bool           `json:"filtered"`
	Filters  models.Filters `json:"filters"`
	Columns  []columnView   `json:"columns"`
}

func runShow(env *handler.Env) error {
	var boardID types.BoardID
	if len(env.Args) > 0 {
		boardID = types.BoardID(env.Args[0])
	} else {
		var err error
		if boardID, err = env.Flags.ParseBoardID(); err != nil {
			return err
		}
	}

	snap := env.State()
	board, ok := snap.Board(boardID)
	if !ok {
		return env.Formatter.Fail(cli.ExitNotFound, "BOARD_NOT_FOUND",
			fmt.Sprintf("board %s not found", boardID),
			"Use 'flowforge board list' to see available boards")
	}

	tasks := cli.BoardTasks(snap, board)
	filtered := !env.Flags.ParseBool("all") && !snap.Filters.IsZero()
	if filtered {
		var err error
		tasks, err = env.CLI.App.Filter.Apply(tasks, snap.Filters, env.CLI.App.Now())
		if err != nil {
			code := "FILTER_ERROR"
			if errors.Is(err, filter.ErrInvalidExpression) {
				code = "INVALID_EXPRESSION"
			}
			return env.Formatter.Fail(cli.ExitValidation, code, err.Error(),
				"Fix it with 'flowforge filter set --expr=...' or show everything with --all")
		}
	}

	if env.Formatter.Quiet {
		ids := make([]string, len(tasks))
		for i, t := range tasks {
			ids[i] = string(t.ID)
		}
		return env.Formatter.Lines(ids)
	}
	if env.Formatter.JSON {
		return env.Formatter.Success(buildView(board, tasks, snap.Filters, filtered))
	}

	env.Formatter.Printf("%s", styles.RenderBoard(board, tasks, env.CLI.App.Now()))
	if filtered {
		env.Formatter.Printf("%s\n", styles.SubtitleStyle.Render("Filtered view; pass --all to show every task"))
	}
	return nil
}

func buildView(board models.Board, tasks []models.Task, f models.Filters, filtered bool) boardView {
	view := boardView{ID: board.ID, Name: board.Name, Filtered: filtered, Filters: f}
	for _, col := range board.Columns {
		cv := columnView{ID: col.ID, Name: col.Name, Tasks: []models.Task{}}
		for _, t := range tasks {
			if t.Status == col.ID {
				cv.Tasks = append(cv.Tasks, t)
			}
		}
		view.Columns = append(view.Columns, cv)
	}
	return view
}
