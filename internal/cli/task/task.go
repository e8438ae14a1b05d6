// Package task holds all cli commands related to tasks
// e.g., flowforge task ...
package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/cli/handler"
	"github.com/thenoetrevino/flowforge/internal/models"
	"github.com/thenoetrevino/flowforge/internal/types"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
		Long:  "Create, update, move, inspect, and delete tasks.",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(LogCmd())

	return cmd
}

// taskResult is the JSON shape for a single task
type taskResult struct {
	Task       models.Task `json:"task"`
	ColumnName string      `json:"column_name"`
}

func (r taskResult) GetID() string { return string(r.Task.ID) }

func newTaskResult(snap models.Snapshot, t models.Task) taskResult {
	return taskResult{Task: t, ColumnName: cli.ColumnName(snap, t.Status)}
}

// loadTask resolves the task id argument
func loadTask(env *handler.Env) (models.Task, error) {
	rawID, err := env.ID("task")
	if err != nil {
		return models.Task{}, err
	}
	t, ok := env.Store.SelectTask(types.TaskID(rawID))
	if !ok {
		return models.Task{}, env.Formatter.Fail(cli.ExitNotFound, "TASK_NOT_FOUND",
			fmt.Sprintf("task %s not found", rawID),
			"Use 'flowforge task list' to see available tasks")
	}
	return t, nil
}

// addTaskFieldFlags registers the editable task field flags
func addTaskFieldFlags(cmd *cobra.Command) {
	cmd.Flags().String("description", "", "Task description (use '-' to read from stdin)")
	cmd.Flags().String("priority", "", "Priority: low, medium, high, critical")
	cmd.Flags().String("assignee", "", "Member the task is assigned to (@me for yourself)")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().StringSlice("tags", nil, "Comma-separated tags")
	cmd.Flags().StringArray("field", nil, "Custom field as key=value (repeatable)")
}
