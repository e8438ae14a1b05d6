package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/cli/handler"
	"github.com/thenoetrevino/flowforge/internal/cli/styles"
	"github.com/thenoetrevino/flowforge/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the tasks on a board",
		Long: `List the tasks on a board, column by column. The saved filters are
applied unless --all is given.

Examples:
  flowforge task list --board=b-1
  flowforge task list --board=b-1 --column=Done --all
  flowforge task list --board=b-1 --quiet | xargs -n1 flowforge task show`,
		Args: cobra.NoArgs,
		RunE: handler.Command(runList),
	}

	cmd.Flags().String("board", "", "Board ID")
	cmd.Flags().String("column", "", "Only list this column (id or name)")
	cmd.Flags().Bool("all", false, "Ignore the saved filters")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(env *handler.Env) error {
	boardID, err := env.Flags.ParseBoardID()
	if err != nil {
		return err
	}
	snap := env.State()
	board, ok := snap.Board(boardID)
	if !ok {
		return env.Formatter.Fail(cli.ExitNotFound, "BOARD_NOT_FOUND",
			fmt.Sprintf("board %s not found", boardID),
			"Use 'flowforge board list' to see available boards")
	}

	var tasks []models.Task
	if ref := env.Flags.ParseStringOptional("column"); ref != nil && *ref != "" {
		col, ok := cli.FindColumn(board, *ref)
		if !ok {
			return env.Formatter.Fail(cli.ExitNotFound, "COLUMN_NOT_FOUND",
				fmt.Sprintf("column '%s' not found", *ref),
				fmt.Sprintf("Available columns: %s", cli.ColumnNames(board)))
		}
		tasks = snap.TasksInColumn(col.ID)
	} else {
		tasks = cli.BoardTasks(snap, board)
	}

	if !env.Flags.ParseBool("all") {
		tasks, err = env.CLI.App.Filter.Apply(tasks, snap.Filters, env.CLI.App.Now())
		if err != nil {
			return env.Formatter.Fail(cli.ExitValidation, "FILTER_ERROR", err.Error(),
				"Fix the saved filter with 'flowforge filter set' or pass --all")
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
		results := make([]taskResult, len(tasks))
		for i, t := range tasks {
			results[i] = newTaskResult(snap, t)
		}
		return env.Formatter.Success(results)
	}

	if len(tasks) == 0 {
		env.Formatter.Printf("No tasks found\n")
		return nil
	}
	for _, t := range tasks {
		line := fmt.Sprintf("%s %s %s",
			styles.IDStyle.Render(string(t.ID)),
			styles.SubtitleStyle.Render("["+cli.ColumnName(snap, t.Status)+"]"),
			styles.ValueStyle.Render(t.Title))
		if badge := styles.Priority(t.Priority); badge != "" {
			line += " " + badge
		}
		env.Formatter.Printf("%s\n", line)
	}
	return nil
}
