// Package filters holds the cli commands that edit the saved board filters
// e.g., flowforge filter ...
package filters

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/cli/handler"
	"github.com/thenoetrevino/flowforge/internal/models"
)

// FilterCmd returns the filter parent command
func FilterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Manage the saved board filters",
		Long: `The saved filters narrow what 'flowforge board show' and 'flowforge task
list' display. They are stored with the rest of the data.`,
	}

	cmd.AddCommand(SetCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(ClearCmd())

	return cmd
}

// ShowCmd returns the filter show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the saved filters",
		Args:  cobra.NoArgs,
		RunE:  handler.Command(runShow),
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(env *handler.Env) error {
	return printFilters(env, env.State().Filters)
}

// ClearCmd returns the filter clear subcommand
func ClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every saved filter",
		Args:  cobra.NoArgs,
		RunE:  handler.Command(runClear),
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runClear(env *handler.Env) error {
	empty := ""
	none := models.PriorityNone
	noColumn := models.Filters{}.Status
	noTags := []string{}
	anyDue := models.DueAny
	env.Store.SetFilter(env.Ctx, models.FilterPatch{
		Q: &empty, Priority: &none, Member: &empty, Status: &noColumn,
		Tags: &noTags, Due: &anyDue, Expr: &empty,
	})
	return printFilters(env, env.State().Filters)
}

func printFilters(env *handler.Env, f models.Filters) error {
	if env.Formatter.Quiet {
		return nil
	}
	if env.Formatter.JSON {
		return env.Formatter.Success(f)
	}
	if f.IsZero() {
		env.Formatter.Printf("No filters set\n")
		return nil
	}
	row := func(label, value string) {
		if value != "" {
			env.Formatter.Printf("%-9s %s\n", label+":", value)
		}
	}
	row("Query", f.Q)
	row("Priority", string(f.Priority))
	row("Member", f.Member)
	row("Status", string(f.Status))
	if len(f.Tags) > 0 {
		row("Tags", strings.Join(f.Tags, ", "))
	}
	row("Due", string(f.Due))
	row("Expr", f.Expr)
	return nil
}
