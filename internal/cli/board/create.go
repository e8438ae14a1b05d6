package board

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/cli/handler"
	"github.com/thenoetrevino/flowforge/internal/models"
	"github.com/thenoetrevino/flowforge/internal/types"
)

type createResult struct {
	ID        types.BoardID   `json:"id"`
	Name      string          `json:"name"`
	ProjectID types.ProjectID `json:"project_id"`
	Columns   []models.Column `json:"columns"`
}

func (r createResult) GetID() string { return string(r.ID) }

// CreateCmd returns the board create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new board",
		Long: `Create a new board in a project. Without --columns the board gets the
configured default columns.

Examples:
  flowforge board create --project=p-1 --name="Sprint 12"
  flowforge board create --project=p-1 --name="Bugs" --columns="New,Triaged,Fixed"`,
		Args: cobra.NoArgs,
		RunE: handler.Command(runCreate),
	}

	cmd.Flags().String("project", "", "Project ID (required)")
	cmd.Flags().String("name", "", "Board name (required)")
	cmd.Flags().StringSlice("columns", nil, "Column names, in order")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(env *handler.Env) error {
	projectID, err := env.Flags.ParseString("project")
	if err != nil {
		return err
	}
	name, err := env.Flags.ParseString("name")
	if err != nil {
		return err
	}
	columns, _ := env.Cmd.Flags().GetStringSlice("columns")

	id := env.Store.CreateBoard(env.Ctx, types.ProjectID(projectID), name, columns...)
	if id == "" {
		return env.Formatter.Fail(cli.ExitNotFound, "PROJECT_NOT_FOUND",
			fmt.Sprintf("project %s not found", projectID),
			"Use 'flowforge project list' to see available projects")
	}

	board, _ := env.State().Board(id)
	result := createResult{ID: id, Name: name, ProjectID: types.ProjectID(projectID), Columns: board.Columns}

	if !env.Formatter.Human() {
		return env.Formatter.Success(result)
	}
	env.Formatter.Printf("✓ Board '%s' created successfully (ID: %s)\n", name, id)
	env.Formatter.Printf("  Columns: %s\n", cli.ColumnNames(board))
	return nil
}
