package workspace

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/cli/handler"
	"github.com/thenoetrevino/flowforge/internal/types"
)

type createResult struct {
	ID   types.WorkspaceID `json:"id"`
	Name string            `json:"name"`
}

func (r createResult) GetID() string { return string(r.ID) }

// CreateCmd returns the workspace create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new workspace",
		Long: `Create a new, empty workspace.

Examples:
  flowforge workspace create --name="Personal"
  WS=$(flowforge workspace create --name="Work" --quiet)`,
		Args: cobra.NoArgs,
		RunE: handler.Command(runCreate),
	}

	cmd.Flags().String("name", "", "Workspace name (required)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(env *handler.Env) error {
	name, err := env.Flags.ParseString("name")
	if err != nil {
		return err
	}

	id := env.Store.CreateWorkspace(env.Ctx, name)
	result := createResult{ID: id, Name: name}

	if !env.Formatter.Human() {
		return env.Formatter.Success(result)
	}
	env.Formatter.Printf("✓ Workspace '%s' created successfully (ID: %s)\n", name, id)
	return nil
}
