package filters

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/cli/handler"
	"github.com/thenoetrevino/flowforge/internal/models"
	"github.com/thenoetrevino/flowforge/internal/types"
)

// SetCmd returns the filter set subcommand
func SetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the saved filters",
		Long: `Change the saved filters. Only the flags you pass are changed; pass an
empty value to clear one.

--expr takes a boolean expression over the task's fields (title, priority,
assignee, tags, dueDate, position, ...), its custom fields, and the helpers
now, overdue, and dueToday.

Examples:
  flowforge filter set --q=login --priority=high
  flowforge filter set --tags=bug,auth --due=overdue
  flowforge filter set --expr='estimate > 3 && assignee == "ann"'
  flowforge filter set --q=""`,
		Args: cobra.NoArgs,
		RunE: handler.Command(runSet),
	}

	cmd.Flags().String("q", "", "Text to find in titles or tags")
	cmd.Flags().String("priority", "", "Only this priority")
	cmd.Flags().String("member", "", "Only tasks assigned to this member (@me for yourself)")
	cmd.Flags().String("status", "", "Only tasks in this column id")
	cmd.Flags().StringSlice("tags", nil, "Only tasks carrying every one of these tags")
	cmd.Flags().String("due", "", "overdue or today")
	cmd.Flags().String("expr", "", "Boolean filter expression")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runSet(env *handler.Env) error {
	var patch models.FilterPatch
	var err error

	patch.Q = env.Flags.ParseStringOptional("q")
	if patch.Priority, err = env.Flags.ParsePriority("priority"); err != nil {
		return err
	}
	patch.Member = env.Flags.ParseMember("member")
	if status := env.Flags.ParseStringOptional("status"); status != nil {
		id := types.ColumnID(*status)
		patch.Status = &id
	}
	patch.Tags = env.Flags.ParseTags("tags")
	if due := env.Flags.ParseStringOptional("due"); due != nil {
		d := models.DueFilter(*due)
		if d != models.DueAny && d != models.DueOverdue && d != models.DueToday {
			return env.Formatter.Fail(cli.ExitValidation, "INVALID_DUE_FILTER",
				fmt.Sprintf("invalid due filter %q", *due), "Valid values are: overdue, today")
		}
		patch.Due = &d
	}
	if patch.Expr = env.Flags.ParseStringOptional("expr"); patch.Expr != nil && *patch.Expr != "" {
		if _, err := env.CLI.App.Filter.Compile(*patch.Expr); err != nil {
			return env.Formatter.Fail(cli.ExitValidation, "INVALID_EXPRESSION", err.Error(),
				"The expression must evaluate to true or false")
		}
	}

	if patch == (models.FilterPatch{}) {
		return env.Formatter.Fail(cli.ExitUsage, "NO_UPDATES",
			"at least one filter must be specified",
			"Use --q, --priority, --member, --status, --tags, --due, or --expr")
	}

	env.Store.SetFilter(env.Ctx, patch)
	return printFilters(env, env.State().Filters)
}
