package project

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/cli/handler"
	"github.com/thenoetrevino/flowforge/internal/types"
)

// DeleteCmd returns the project delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <project-id>",
		Short: "Delete a project",
		Long: `Delete a project, its boards, and every task on them (requires
confirmation unless --force or --quiet).`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.Command(runDelete),
	}

	cmd.Flags().String("id", "", "Project ID (can also be provided as positional argument)")
	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(env *handler.Env) error {
	rawID, err := env.ID("project")
	if err != nil {
		return err
	}
	id := types.ProjectID(rawID)

	project, ok := env.State().Project(id)
	if !ok {
		return env.Formatter.Fail(cli.ExitNotFound, "PROJECT_NOT_FOUND",
			fmt.Sprintf("project %s not found", id),
			"Use 'flowforge project list' to see available projects")
	}

	if !env.Confirm(env.Flags.ParseBool("force"), "Delete project %s: '%s'?", id, project.Name) {
		return nil
	}

	env.Store.DeleteProject(env.Ctx, id)

	if env.Formatter.Quiet {
		return nil
	}
	if env.Formatter.JSON {
		return env.Formatter.Success(map[string]any{"project_id": id})
	}
	env.Formatter.Printf("✓ Project %s deleted successfully\n", id)
	return nil
}
