package board

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/cli/handler"
	"github.com/thenoetrevino/flowforge/internal/cli/styles"
	"github.com/thenoetrevino/flowforge/internal/models"
	"github.com/thenoetrevino/flowforge/internal/types"
)

type boardSummary struct {
	ID        types.BoardID   `json:"id"`
	Name      string          `json:"name"`
	ProjectID types.ProjectID `json:"project_id"`
	Columns   []models.Column `json:"columns"`
}

// ListCmd returns the board list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List boards",
		Long:  "List the boards of one project, or of every project when --project is omitted.",
		Args:  cobra.NoArgs,
		RunE:  handler.Command(runList),
	}

	cmd.Flags().String("project", "", "Project ID")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(env *handler.Env) error {
	snap := env.State()

	projects := snap.Projects
	if pid := env.Flags.ParseStringOptional("project"); pid != nil && *pid != "" {
		project, ok := snap.Project(types.ProjectID(*pid))
		if !ok {
			return env.Formatter.Fail(cli.ExitNotFound, "PROJECT_NOT_FOUND",
				fmt.Sprintf("project %s not found", *pid),
				"Use 'flowforge project list' to see available projects")
		}
		projects = []models.Project{project}
	}

	summaries := []boardSummary{}
	for _, project := range projects {
		for _, bid := range project.Boards {
			board, ok := snap.Board(bid)
			if !ok {
				continue
			}
			summaries = append(summaries, boardSummary{
				ID: board.ID, Name: board.Name, ProjectID: project.ID, Columns: board.Columns,
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
		return env.Formatter.Success(summaries)
	}

	if len(summaries) == 0 {
		env.Formatter.Printf("No boards found\n")
		return nil
	}
	for _, s := range summaries {
		env.Formatter.Printf("%s %s %s\n",
			styles.IDStyle.Render(string(s.ID)),
			styles.TitleStyle.Render(s.Name),
			styles.SubtitleStyle.Render(fmt.Sprintf("in %s, %d columns", s.ProjectID, len(s.Columns))))
	}
	return nil
}
