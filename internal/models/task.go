package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/thenoetrevino/flowforge/internal/types"
)

// Task represents a single card on a board. Status is the id of the column the
// task currently sits in; Position is its rank within that column.
//
// Extra carries caller-defined fields. They are flattened into the task's JSON
// object on encode and any unknown key is collected back into Extra on decode.
type Task struct {
	ID          types.TaskID    `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Status      types.ColumnID  `json:"status"`
	Position    int             `json:"position"`
	CreatedDate int64           `json:"createdDate"` // epoch milliseconds
	Priority    Priority        `json:"priority,omitempty"`
	Assignee    string          `json:"assignee,omitempty"`
	DueDate     string          `json:"dueDate,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	ActivityLog []ActivityEntry `json:"activityLog,omitempty"`
	Extra       map[string]any  `json:"-"`
}

// ActivityEntry is one line of a task's append-only history
type ActivityEntry struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	TS      int64  `json:"ts"` // epoch milliseconds
}

// NewTask is the input for creating a task. ColumnID is the only way to pick the
// column; a nil Position lets the store append the task to the end of it.
type NewTask struct {
	Title       string
	Description string
	ColumnID    types.ColumnID
	Position    *int
	Priority    Priority
	Assignee    string
	DueDate     string
	Tags        []string
	Extra       map[string]any
}

// TaskChanges is a shallow patch for a task.
// Fields with pointers are optional - nil means don't update.
type TaskChanges struct {
	Title       *string
	Description *string
	Status      *types.ColumnID
	Position    *int
	Priority    *Priority
	Assignee    *string
	DueDate     *string
	Tags        *[]string
	Extra       map[string]any
}

// IsEmpty reports whether the patch would change nothing
func (c TaskChanges) IsEmpty() bool {
	return c.Title == nil && c.Description == nil && c.Status == nil && c.Position == nil &&
		c.Priority == nil && c.Assignee == nil && c.DueDate == nil && c.Tags == nil && len(c.Extra) == 0
}

// Due parses DueDate. It accepts a calendar date (YYYY-MM-DD, read in loc) or an
// RFC 3339 timestamp. ok is false when no due date is set.
func (t Task) Due(loc *time.Location) (due time.Time, ok bool, err error) {
	if t.DueDate == "" {
		return time.Time{}, false, nil
	}
	return ParseDueDate(t.DueDate, loc)
}

// ParseDueDate parses a due date string the way Task.Due does
func ParseDueDate(s string, loc *time.Location) (time.Time, bool, error) {
	if loc == nil {
		loc = time.Local
	}
	if d, err := time.ParseInLocation(DueDateLayout, s, loc); err == nil {
		return d, true, nil
	}
	if d, err := time.Parse(time.RFC3339, s); err == nil {
		return d.In(loc), true, nil
	}
	return time.Time{}, false, fmt.Errorf("%w: %q", ErrInvalidDueDate, s)
}

// HasTag reports whether the task carries tag exactly
func (t Task) HasTag(tag string) bool {
	for _, tg := range t.Tags {
		if tg == tag {
			return true
		}
	}
	return false
}

// knownTaskKeys are the JSON keys owned by Task's typed fields
var knownTaskKeys = map[string]struct{}{
	"id": {}, "title": {}, "description": {}, "status": {}, "position": {},
	"createdDate": {}, "priority": {}, "assignee": {}, "dueDate": {}, "tags": {},
	"activityLog": {},
}

// IsTaskField reports whether key names one of Task's typed fields
func IsTaskField(key string) bool {
	_, ok := knownTaskKeys[key]
	return ok
}

// taskFields has Task's layout without its methods, so encoding it does not recurse
type taskFields Task

// MarshalJSON flattens Extra into the task object. Typed fields win on key clashes.
func (t Task) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(taskFields(t))
	if err != nil {
		return nil, err
	}
	if len(t.Extra) == 0 {
		return data, nil
	}

	obj := make(map[string]json.RawMessage, len(knownTaskKeys)+len(t.Extra))
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	for k, v := range t.Extra {
		if IsTaskField(k) {
			continue
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encoding task field %q: %w", k, err)
		}
		obj[k] = raw
	}
	return json.Marshal(obj)
}

// UnmarshalJSON decodes the typed fields and keeps every other key in Extra
func (t *Task) UnmarshalJSON(data []byte) error {
	var fields taskFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	for k, raw := range obj {
		if IsTaskField(k) {
			continue
		}
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("decoding task field %q: %w", k, err)
		}
		if fields.Extra == nil {
			fields.Extra = make(map[string]any)
		}
		fields.Extra[k] = v
	}

	*t = Task(fields)
	return nil
}
