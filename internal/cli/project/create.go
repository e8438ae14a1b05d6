package project

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/cli/handler"
	"github.com/thenoetrevino/flowforge/internal/types"
)

type createResult struct {
	ID          types.ProjectID   `json:"id"`
	Name        string            `json:"name"`
	WorkspaceID types.WorkspaceID `json:"workspace_id"`
}

func (r createResult) GetID() string { return string(r.ID) }

// CreateCmd returns the project create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		Long: `Create a new project at the end of a workspace's project list.

Examples:
  flowforge project create --workspace=w-1 --name="Website"
  PROJECT=$(flowforge project create --workspace=w-1 --name="API" --quiet)`,
		Args: cobra.NoArgs,
		RunE: handler.Command(runCreate),
	}

	cmd.Flags().String("workspace", "", "Workspace ID (required)")
	cmd.Flags().String("name", "", "Project name (required)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(env *handler.Env) error {
	wsID, err := env.Flags.ParseString("workspace")
	if err != nil {
		return err
	}
	name, err := env.Flags.ParseString("name")
	if err != nil {
		return err
	}

	id := env.Store.CreateProject(env.Ctx, types.WorkspaceID(wsID), name)
	if id == "" {
		return env.Formatter.Fail(cli.ExitNotFound, "WORKSPACE_NOT_FOUND",
			fmt.Sprintf("workspace %s not found", wsID),
			"Use 'flowforge workspace list' to see available workspaces")
	}
	result := createResult{ID: id, Name: name, WorkspaceID: types.WorkspaceID(wsID)}

	if !env.Formatter.Human() {
		return env.Formatter.Success(result)
	}
	env.Formatter.Printf("✓ Project '%s' created successfully (ID: %s)\n", name, id)
	return nil
}
