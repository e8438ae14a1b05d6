package task

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/activity"
	"github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/cli/handler"
	"github.com/thenoetrevino/flowforge/internal/cli/styles"
	"github.com/thenoetrevino/flowforge/internal/models"
)

// LogCmd returns the task log subcommand
func LogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log <task-id>",
		Short: "Show or append to a task's activity log",
		Long: `Without flags, print the task's activity log. With --message or
--seconds, append an entry first.

Examples:
  flowforge task log t-1
  flowforge task log t-1 --message="Waiting on design review"
  flowforge task log t-1 --seconds=1800`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.Command(runLog),
	}

	cmd.Flags().String("id", "", "Task ID (can also be provided as positional argument)")
	cmd.Flags().String("message", "", "Free-form note to record")
	cmd.Flags().String("type", "note", "Entry type for --message")
	cmd.Flags().Int("seconds", 0, "Record time tracked on the task")
	cli.AddOutputFlags(cmd)

	return cmd
}

type logResult struct {
	TaskID  string                 `json:"task_id"`
	Entries []models.ActivityEntry `json:"entries"`
}

func (r logResult) GetID() string { return r.TaskID }

func runLog(env *handler.Env) error {
	t, err := loadTask(env)
	if err != nil {
		return err
	}

	if seconds := env.Flags.ParseIntOptional("seconds"); seconds != nil {
		if *seconds <= 0 {
			return env.Formatter.Fail(cli.ExitValidation, "INVALID_SECONDS",
				"--seconds must be greater than 0", "")
		}
		activity.Log(env.Ctx, env.Store, t.ID, activity.KindTimeTracked, activity.Details{Seconds: *seconds})
	}
	if message := env.Flags.ParseStringOptional("message"); message != nil {
		kind, _ := env.Cmd.Flags().GetString("type")
		activity.Log(env.Ctx, env.Store, t.ID, activity.Kind(kind), activity.Details{Message: *message})
	}

	t, _ = env.Store.SelectTask(t.ID)
	entries := t.ActivityLog
	if entries == nil {
		entries = []models.ActivityEntry{}
	}

	if !env.Formatter.Human() {
		return env.Formatter.Success(logResult{TaskID: string(t.ID), Entries: entries})
	}
	if len(entries) == 0 {
		env.Formatter.Printf("No activity recorded for %s\n", t.ID)
		return nil
	}
	loc := env.CLI.App.Now().Location()
	for _, e := range entries {
		env.Formatter.Printf("%s %s %s\n",
			styles.SubtitleStyle.Render(time.UnixMilli(e.TS).In(loc).Format(time.DateTime)),
			styles.LabelStyle.Render(e.Type),
			styles.ValueStyle.Render(e.Message))
	}
	return nil
}
