// Package status holds the storage status command
package status

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/cli/handler"
	"github.com/thenoetrevino/flowforge/internal/cli/styles"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show where data is stored and how much there is",
		Args:  cobra.NoArgs,
		RunE:  handler.Command(runStatus),
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runStatus(env *handler.Env) error {
	st, err := env.CLI.App.Status(env.Ctx)
	if err != nil {
		return env.Formatter.Fail(cli.ExitError, "STATUS_ERROR", err.Error(), "")
	}

	if env.Formatter.Quiet {
		return nil
	}
	if env.Formatter.JSON {
		return env.Formatter.Success(st)
	}

	label := func(s string) string { return styles.LabelStyle.Render(s) }
	env.Formatter.Printf("%s %s\n", label("Backend:"), st.Backend)
	if st.Path != "" {
		env.Formatter.Printf("%s %s\n", label("Database:"), st.Path)
		env.Formatter.Printf("%s %d\n", label("Schema:"), st.SchemaVersion)
	}
	env.Formatter.Printf("%s %s\n", label("Key:"), st.Key)
	if st.Revision > 0 {
		env.Formatter.Printf("%s %d (%d bytes, saved %s)\n", label("Revision:"),
			st.Revision, st.Size, st.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
	}
	env.Formatter.Printf("%s %d workspaces, %d projects, %d boards, %d tasks\n", label("Contents:"),
		st.Workspaces, st.Projects, st.Boards, st.Tasks)
	return nil
}
