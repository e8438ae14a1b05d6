// Package due holds the reminder command
package due

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/cli/handler"
	"github.com/thenoetrevino/flowforge/internal/cli/styles"
	"github.com/thenoetrevino/flowforge/internal/reminders"
)

// DueCmd returns the due command
func DueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "due",
		Short: "List overdue and soon-due tasks",
		Long: `List tasks whose due date has passed or falls inside the due-soon window
(notifications.due_soon in the config, 24h by default).

Examples:
  flowforge due
  flowforge due --window=72h
  flowforge due --json`,
		Args: cobra.NoArgs,
		RunE: handler.Command(runDue),
	}

	cmd.Flags().Duration("window", 0, "Override the due-soon window")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDue(env *handler.Env) error {
	app := env.CLI.App
	if !app.Config.NotificationsEnabled() {
		if env.Formatter.JSON {
			return env.Formatter.Success([]reminders.Reminder{})
		}
		env.Formatter.Printf("Reminders are turned off (notifications.enabled: false)\n")
		return nil
	}

	list := app.Reminders()
	if env.Flags.Changed("window") {
		window, _ := env.Cmd.Flags().GetDuration("window")
		list = reminders.Check(env.State(), app.Now(), window, time.Local)
	}

	if env.Formatter.Quiet {
		ids := make([]string, len(list))
		for i, r := range list {
			ids[i] = string(r.TaskID)
		}
		return env.Formatter.Lines(ids)
	}
	if env.Formatter.JSON {
		return env.Formatter.Success(list)
	}

	if len(list) == 0 {
		env.Formatter.Printf("Nothing due\n")
		return nil
	}
	for _, r := range list {
		label := styles.DueSoonStyle.Render("due soon")
		if r.Type == reminders.KindOverdue {
			label = styles.OverdueStyle.Render("overdue ")
		}
		env.Formatter.Printf("%s %s %s %s\n",
			label,
			styles.IDStyle.Render(string(r.TaskID)),
			styles.ValueStyle.Render(r.Title),
			styles.SubtitleStyle.Render(r.Due))
	}
	return nil
}
