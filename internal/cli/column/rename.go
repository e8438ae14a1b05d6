package column

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/cli/handler"
	"github.com/thenoetrevino/flowforge/internal/models"
)

// RenameCmd returns the column rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <column>",
		Short: "Rename a column",
		Long: `Rename a column. The column keeps its id, so its tasks stay in it.

Examples:
  flowforge column rename col-2 --board=b-1 --name="Doing"
  flowforge column rename "In Progress" --board=b-1 --name="Doing"`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(runRename),
	}

	cmd.Flags().String("name", "", "New column name (required)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runRename(env *handler.Env) error {
	board, err := loadBoard(env)
	if err != nil {
		return err
	}
	col, err := findColumn(env, board, env.Args[0])
	if err != nil {
		return err
	}
	name, err := env.Flags.ParseString("name")
	if err != nil {
		return err
	}

	env.Store.RenameColumn(env.Ctx, board.ID, col.ID, name)
	result := columnResult{Column: models.Column{ID: col.ID, Name: name}, BoardID: string(board.ID)}

	if !env.Formatter.Human() {
		return env.Formatter.Success(result)
	}
	env.Formatter.Printf("✓ Column '%s' renamed to '%s'\n", col.Name, name)
	return nil
}
