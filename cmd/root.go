// Package cmd assembles the flowforge command tree
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/cli/board"
	"github.com/thenoetrevino/flowforge/internal/cli/column"
	"github.com/thenoetrevino/flowforge/internal/cli/data"
	"github.com/thenoetrevino/flowforge/internal/cli/due"
	"github.com/thenoetrevino/flowforge/internal/cli/filters"
	"github.com/thenoetrevino/flowforge/internal/cli/project"
	"github.com/thenoetrevino/flowforge/internal/cli/setup"
	"github.com/thenoetrevino/flowforge/internal/cli/status"
	"github.com/thenoetrevino/flowforge/internal/cli/task"
	"github.com/thenoetrevino/flowforge/internal/cli/tutorial"
	"github.com/thenoetrevino/flowforge/internal/cli/use"
	"github.com/thenoetrevino/flowforge/internal/cli/workspace"
)

// Version is stamped at build time with -ldflags "-X .../cmd.Version=..."
var Version = "dev"

// NewRootCmd builds the full command tree
func NewRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "flowforge",
		Short: "FlowForge - a kanban store for the terminal",
		Long: `FlowForge keeps workspaces, projects, boards, and tasks in a single
versioned snapshot and lets you manage them from the command line.

Run 'flowforge tutorial' for a walkthrough.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if configPath == "" {
				return
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(cli.WithConfigPath(ctx, configPath))
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/flowforge/config.yaml)")

	rootCmd.AddCommand(
		workspace.WorkspaceCmd(),
		project.ProjectCmd(),
		board.BoardCmd(),
		column.ColumnCmd(),
		task.TaskCmd(),
		filters.FilterCmd(),
		data.ExportCmd(),
		data.ImportCmd(),
		due.DueCmd(),
		workspace.TreeCmd(),
		status.StatusCmd(),
		use.UseCmd(),
		setup.SetupCmd(),
		tutorial.TutorialCmd(),
	)

	return rootCmd
}

// Run executes the command line in args and returns the process exit code
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return cli.ExitSuccess
	}

	// StatusErrors were already reported by the formatter
	var statusErr *cli.StatusError
	if !errors.As(err, &statusErr) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return cli.ExitCode(err)
}
