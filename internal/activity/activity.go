// Package activity turns task actions into human-readable activity log entries.
package activity

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/flowforge/internal/models"
	"github.com/thenoetrevino/flowforge/internal/types"
)

// Kind is the type recorded on an activity entry
type Kind string

const (
	KindCreated     Kind = "created"
	KindEdited      Kind = "edited"
	KindMoved       Kind = "moved"
	KindPriority    Kind = "priority"
	KindTimeTracked Kind = "time_tracked"
)

// Details carries the values a message is built from. Only the fields relevant
// to the kind are read.
type Details struct {
	Field      string          // edited
	ToName     string          // moved, preferred over ToColumnID
	ToColumnID types.ColumnID  // moved
	Priority   models.Priority // priority
	Seconds    int             // time_tracked
	Message    string          // any other kind
}

// Message builds the text for an activity entry
func Message(kind Kind, d Details) string {
	switch kind {
	case KindCreated:
		return "Task created"
	case KindEdited:
		if d.Field == "" {
			return "Task edited: updated"
		}
		return "Task edited: " + d.Field
	case KindMoved:
		switch {
		case d.ToName != "":
			return "Moved to " + d.ToName
		case d.ToColumnID != "":
			return "Moved to " + string(d.ToColumnID)
		default:
			return "Moved to unknown"
		}
	case KindPriority:
		return fmt.Sprintf("Priority changed to %s", d.Priority)
	case KindTimeTracked:
		return fmt.Sprintf("Tracked %d seconds", d.Seconds)
	default:
		if d.Message != "" {
			return d.Message
		}
		return string(kind)
	}
}

// Recorder is the store operation Log writes through
type Recorder interface {
	AddActivity(ctx context.Context, id types.TaskID, entry models.ActivityEntry) bool
}

// Log appends an entry for kind to the task's activity log. The store stamps
// the time. It reports false when the task does not exist.
func Log(ctx context.Context, r Recorder, id types.TaskID, kind Kind, d Details) bool {
	return r.AddActivity(ctx, id, models.ActivityEntry{
		Type:    string(kind),
		Message: Message(kind, d),
	})
}
