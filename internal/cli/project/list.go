package project

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/cli/handler"
	"github.com/thenoetrevino/flowforge/internal/cli/styles"
	"github.com/thenoetrevino/flowforge/internal/models"
	"github.com/thenoetrevino/flowforge/internal/types"
)

type projectSummary struct {
	ID          types.ProjectID   `json:"id"`
	Name        string            `json:"name"`
	WorkspaceID types.WorkspaceID `json:"workspace_id"`
	Boards      []types.BoardID   `json:"boards"`
}

// ListCmd returns the project list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Long:  "List the projects of one workspace, or of every workspace when --workspace is omitted.",
		Args:  cobra.NoArgs,
		RunE:  handler.Command(runList),
	}

	cmd.Flags().String("workspace", "", "Workspace ID")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(env *handler.Env) error {
	snap := env.State()

	workspaces := snap.Workspaces
	if wsID := env.Flags.ParseStringOptional("workspace"); wsID != nil && *wsID != "" {
		ws, ok := snap.Workspace(types.WorkspaceID(*wsID))
		if !ok {
			return env.Formatter.Fail(cli.ExitNotFound, "WORKSPACE_NOT_FOUND",
				fmt.Sprintf("workspace %s not found", *wsID),
				"Use 'flowforge workspace list' to see available workspaces")
		}
		workspaces = []models.Workspace{ws}
	}

	var summaries []projectSummary
	for _, ws := range workspaces {
		for _, pid := range ws.Projects {
			project, ok := snap.Project(pid)
			if !ok {
				continue
			}
			summaries = append(summaries, projectSummary{
				ID: project.ID, Name: project.Name, WorkspaceID: ws.ID, Boards: project.Boards,
			})
		}
	}

	if env.Formatter.Quiet {
		ids := make([]string, len(summaries))
		for i, s := range summaries {
			ids[i] = string(s.ID)
		}
		return env.Formatter.Lines(ids)
	}
	if env.Formatter.JSON {
		if summaries == nil {
			summaries = []projectSummary{}
		}
		return env.Formatter.Success(summaries)
	}

	if len(summaries) == 0 {
		env.Formatter.Printf("No projects found\n")
		return nil
	}
	for _, s := range summaries {
		env.Formatter.Printf("%s %s %s\n",
			styles.IDStyle.Render(string(s.ID)),
			styles.TitleStyle.Render(s.Name),
			styles.SubtitleStyle.Render(fmt.Sprintf("in %s, %d boards", s.WorkspaceID, len(s.Boards))))
	}
	return nil
}
