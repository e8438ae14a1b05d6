package task

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/activity"
	"github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/cli/handler"
	"github.com/thenoetrevino/flowforge/internal/models"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <task-id>",
		Short: "Update a task",
		Long: `Update a task's fields. Only the flags you pass are changed; pass an
empty value to clear a field. Use 'flowforge task move' to change columns.

Examples:
  flowforge task update t-1 --title="New title" --priority=critical
  flowforge task update t-1 --due="" --tags=""
  flowforge task update t-1 --field estimate=5 --unset-field owner
  echo "details" | flowforge task update t-1 --description=-`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.Command(runUpdate),
	}

	cmd.Flags().String("id", "", "Task ID (can also be provided as positional argument)")
	cmd.Flags().String("title", "", "New title")
	addTaskFieldFlags(cmd)
	cmd.Flags().StringArray("unset-field", nil, "Remove a custom field (repeatable)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(env *handler.Env) error {
	current, err := loadTask(env)
	if err != nil {
		return err
	}

	var changes models.TaskChanges
	var edited []string

	if title := env.Flags.ParseStringOptional("title"); title != nil {
		changes.Title = title
		edited = append(edited, "title")
	}
	if changes.Description, err = env.Flags.ParseDescription("description"); err != nil {
		return err
	} else if changes.Description != nil {
		edited = append(edited, "description")
	}
	if changes.Priority, err = env.Flags.ParsePriority("priority"); err != nil {
		return err
	}
	if changes.Assignee = env.Flags.ParseMember("assignee"); changes.Assignee != nil {
		edited = append(edited, "assignee")
	}
	if changes.DueDate, err = env.Flags.ParseDueDate("due"); err != nil {
		return err
	} else if changes.DueDate != nil {
		edited = append(edited, "dueDate")
	}
	if changes.Tags = env.Flags.ParseTags("tags"); changes.Tags != nil {
		edited = append(edited, "tags")
	}
	if changes.Extra, err = env.Flags.ParseFields("field", "unset-field"); err != nil {
		return err
	}
	for key := range changes.Extra {
		edited = append(edited, key)
	}

	if changes.IsEmpty() {
		return env.Formatter.Fail(cli.ExitUsage, "NO_UPDATES",
			"at least one field must be specified",
			"Use --title, --description, --priority, --assignee, --due, --tags, or --field")
	}

	env.Store.UpdateTask(env.Ctx, current.ID, changes)

	if changes.Priority != nil && *changes.Priority != current.Priority {
		activity.Log(env.Ctx, env.Store, current.ID, activity.KindPriority,
			activity.Details{Priority: *changes.Priority})
	}
	if len(edited) > 0 {
		slices.Sort(edited[len(edited)-len(changes.Extra):])
		activity.Log(env.Ctx, env.Store, current.ID, activity.KindEdited,
			activity.Details{Field: strings.Join(edited, ", ")})
	}

	snap := env.State()
	updated, _ := snap.Task(current.ID)
	if !env.Formatter.Human() {
		return env.Formatter.Success(newTaskResult(snap, updated))
	}
	env.Formatter.Printf("✓ Task %s updated successfully\n", current.ID)
	return nil
}
