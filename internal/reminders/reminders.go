// Package reminders finds tasks whose due date has passed or is coming up.
package reminders

import (
	"time"

	"github.com/thenoetrevino/flowforge/internal/models"
	"github.com/thenoetrevino/flowforge/internal/types"
)

// DefaultWindow is how far ahead a due date counts as due soon
const DefaultWindow = 24 * time.Hour

// Kind distinguishes overdue tasks from ones coming due
type Kind string

const (
	KindOverdue Kind = "overdue"
	KindDueSoon Kind = "due_soon"
)

// Reminder is one notice about one task
type Reminder struct {
	Type   Kind         `json:"type"`
	TaskID types.TaskID `json:"taskId"`
	Title  string       `json:"title"`
	Due    string       `json:"due"`
}

// Check lists reminders for every task with a due date, in task order. A due
// date before now is overdue; one in [now, now+window) is due soon. Tasks with
// an unparseable due date are skipped. It never modifies snap.
func Check(snap models.Snapshot, now time.Time, window time.Duration, loc *time.Location) []Reminder {
	if window <= 0 {
		window = DefaultWindow
	}
	out := []Reminder{}
	for _, t := range snap.Tasks {
		due, ok, err := t.Due(loc)
		if err != nil || !ok {
			continue
		}

		var kind Kind
		switch {
		case due.Before(now):
			kind = KindOverdue
		case due.Before(now.Add(window)):
			kind = KindDueSoon
		default:
			continue
		}
		out = append(out, Reminder{Type: kind, TaskID: t.ID, Title: t.Title, Due: t.DueDate})
	}
	return out
}
