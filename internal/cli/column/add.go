package column

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/cli/handler"
	"github.com/thenoetrevino/flowforge/internal/models"
)

// AddCmd returns the column add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a column to the end of a board",
		Long: `Add a column to the end of a board.

Examples:
  flowforge column add --board=b-1 --name="Blocked"
  COL=$(flowforge column add --board=b-1 --name="QA" --quiet)`,
		Args: cobra.NoArgs,
		RunE: handler.Command(runAdd),
	}

	cmd.Flags().String("name", "", "Column name (required)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(env *handler.Env) error {
	board, err := loadBoard(env)
	if err != nil {
		return err
	}
	name, err := env.Flags.ParseString("name")
	if err != nil {
		return err
	}

	id := env.Store.AddColumn(env.Ctx, board.ID, name)
	result := columnResult{Column: models.Column{ID: id, Name: name}, BoardID: string(board.ID)}

	if !env.Formatter.Human() {
		return env.Formatter.Success(result)
	}
	env.Formatter.Printf("✓ Column '%s' added to board %s (ID: %s)\n", name, board.ID, id)
	return nil
}
