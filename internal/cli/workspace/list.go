package workspace

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/cli/handler"
	"github.com/thenoetrevino/flowforge/internal/cli/styles"
	"github.com/thenoetrevino/flowforge/internal/types"
)

type workspaceSummary struct {
	ID       types.WorkspaceID `json:"id"`
	Name     string            `json:"name"`
	Projects int               `json:"projects"`
}

// ListCmd returns the workspace list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all workspaces",
		Args:  cobra.NoArgs,
		RunE:  handler.Command(runList),
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(env *handler.Env) error {
	snap := env.State()

	summaries := make([]workspaceSummary, 0, len(snap.Workspaces))
	for _, ws := range snap.Workspaces {
		summaries = append(summaries, workspaceSummary{ID: ws.ID, Name: ws.Name, Projects: len(ws.Projects)})
	}

	if env.Formatter.Quiet {
		ids := make([]string, len(summaries))
		for i, s := range summaries {
			ids[i] = string(s.ID)
		}
		return env.Formatter.Lines(ids)
	}
	if env.Formatter.JSON {
		return env.Formatter.Success(summaries)
	}

	if len(summaries) == 0 {
		env.Formatter.Printf("No workspaces found\n")
		return nil
	}
	for _, s := range summaries {
		env.Formatter.Printf("%s %s %s\n",
			styles.IDStyle.Render(string(s.ID)),
			styles.TitleStyle.Render(s.Name),
			styles.SubtitleStyle.Render(pluralize(s.Projects, "project")))
	}
	return nil
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "(1 " + noun + ")"
	}
	return fmt.Sprintf("(%d %ss)", n, noun)
}
