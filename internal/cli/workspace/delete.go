package workspace

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/cli/handler"
	"github.com/thenoetrevino/flowforge/internal/types"
)

// DeleteCmd returns the workspace delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <workspace-id>",
		Short: "Delete a workspace",
		Long: `Delete a workspace together with its projects, their boards, and every
task on those boards (requires confirmation unless --force or --quiet).`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.Command(runDelete),
	}

	cmd.Flags().String("id", "", "Workspace ID (can also be provided as positional argument)")
	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(env *handler.Env) error {
	rawID, err := env.ID("workspace")
	if err != nil {
		return err
	}
	id := types.WorkspaceID(rawID)

	ws, ok := env.State().Workspace(id)
	if !ok {
		return env.Formatter.Fail(cli.ExitNotFound, "WORKSPACE_NOT_FOUND",
			fmt.Sprintf("workspace %s not found", id),
			"Use 'flowforge workspace list' to see available workspaces")
	}

	if !env.Confirm(env.Flags.ParseBool("force"), "Delete workspace %s: '%s' and everything in it?", id, ws.Name) {
		return nil
	}

	env.Store.DeleteWorkspace(env.Ctx, id)

	if env.Formatter.Quiet {
		return nil
	}
	if env.Formatter.JSON {
		return env.Formatter.Success(map[string]any{"workspace_id": id})
	}
	env.Formatter.Printf("✓ Workspace %s deleted successfully\n", id)
	return nil
}
