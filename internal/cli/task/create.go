package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/activity"
	"github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/cli/handler"
	"github.com/thenoetrevino/flowforge/internal/models"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new task at the bottom of a column.

The column is given by id with --column, or by name together with --board
(or FLOWFORGE_BOARD). Without --column the board's first column is used.

Examples:
  flowforge task create --board=b-1 --title="Write docs"
  flowforge task create --column=col-2 --title="Fix login" --priority=high --tags=bug,auth
  flowforge task create --board=b-1 --column="Review" --title="Audit" --due=2025-01-31
  flowforge task create --board=b-1 --title="Spike" --field estimate=3 --field owner=ops
  TASK=$(flowforge task create --board=b-1 --title="Quick" --quiet)`,
		Args: cobra.NoArgs,
		RunE: handler.Command(runCreate),
	}

	cmd.Flags().String("title", "", "Task title (required)")
	cmd.Flags().String("board", "", "Board ID")
	cmd.Flags().String("column", "", "Column ID, or name when a board is given")
	cmd.Flags().Int("position", 0, "Explicit position in the column")
	addTaskFieldFlags(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(env *handler.Env) error {
	title, err := env.Flags.ParseString("title")
	if err != nil {
		return err
	}

	column, err := resolveTargetColumn(env)
	if err != nil {
		return err
	}

	data := models.NewTask{
		Title:    title,
		ColumnID: column.ID,
		Position: env.Flags.ParseIntOptional("position"),
	}
	if desc, err := env.Flags.ParseDescription("description"); err != nil {
		return err
	} else if desc != nil {
		data.Description = *desc
	}
	if priority, err := env.Flags.ParsePriority("priority"); err != nil {
		return err
	} else if priority != nil {
		data.Priority = *priority
	}
	if assignee := env.Flags.ParseMember("assignee"); assignee != nil {
		data.Assignee = *assignee
	}
	if due, err := env.Flags.ParseDueDate("due"); err != nil {
		return err
	} else if due != nil {
		data.DueDate = *due
	}
	if tags := env.Flags.ParseTags("tags"); tags != nil {
		data.Tags = *tags
	}
	fields, err := env.Flags.ParseFields("field", "")
	if err != nil {
		return err
	}
	data.Extra = fields

	id := env.Store.CreateTask(env.Ctx, data)
	if id == "" {
		return env.Formatter.Fail(cli.ExitError, "CREATE_FAILED",
			fmt.Sprintf("task could not be created in column %s", column.ID), "")
	}
	activity.Log(env.Ctx, env.Store, id, activity.KindCreated, activity.Details{})

	snap := env.State()
	created, _ := snap.Task(id)
	if !env.Formatter.Human() {
		return env.Formatter.Success(newTaskResult(snap, created))
	}
	env.Formatter.Printf("✓ Task '%s' created successfully in %s (ID: %s)\n", title, column.Name, id)
	return nil
}

// resolveTargetColumn picks the column a new task goes into
func resolveTargetColumn(env *handler.Env) (models.Column, error) {
	ref := ""
	if c := env.Flags.ParseStringOptional("column"); c != nil {
		ref = *c
	}

	snap := env.State()
	boardID, boardErr := cli.GetBoardID(env.Cmd)
	if ref != "" && boardErr != nil {
		// a bare column id is enough
		col, _, ok := cli.ResolveColumn(snap, "", ref)
		if !ok {
			return models.Column{}, env.Formatter.Fail(cli.ExitNotFound, "COLUMN_NOT_FOUND",
				fmt.Sprintf("column '%s' not found", ref),
				"Pass --board to look the column up by name")
		}
		return col, nil
	}
	if boardErr != nil {
		if _, err := env.Flags.ParseBoardID(); err != nil {
			return models.Column{}, err
		}
	}

	board, ok := snap.Board(boardID)
	if !ok {
		return models.Column{}, env.Formatter.Fail(cli.ExitNotFound, "BOARD_NOT_FOUND",
			fmt.Sprintf("board %s not found", boardID),
			"Use 'flowforge board list' to see available boards")
	}
	if ref == "" {
		if len(board.Columns) == 0 {
			return models.Column{}, env.Formatter.Fail(cli.ExitValidation, "NO_COLUMNS",
				fmt.Sprintf("board %s has no columns", boardID),
				fmt.Sprintf("Add one with 'flowforge column add --board=%s --name=<name>'", boardID))
		}
		return board.Columns[0], nil
	}
	col, ok := cli.FindColumn(board, ref)
	if !ok {
		return models.Column{}, env.Formatter.Fail(cli.ExitNotFound, "COLUMN_NOT_FOUND",
			fmt.Sprintf("column '%s' not found", ref),
			fmt.Sprintf("Available columns: %s", cli.ColumnNames(board)))
	}
	return col, nil
}
