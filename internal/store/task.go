package store

import (
	"context"
	"encoding/json"
	"maps"
	"slices"

	"github.com/thenoetrevino/flowforge/internal/events"
	"github.com/thenoetrevino/flowforge/internal/models"
	"github.com/thenoetrevino/flowforge/internal/types"
)

// CreateTask appends a task to the column named by data.ColumnID. Without an
// explicit position the task goes after the highest position in that column.
// An unknown column is a no-op and the returned id is empty.
func (s *Store) CreateTask(ctx context.Context, data models.NewTask) types.TaskID {
	id := types.TaskID(s.newID(types.PrefixTask))
	extra := s.jsonExtra(id, data.Extra)
	ok := s.commit(ctx, events.EventTaskCreated, string(id), func(cur models.Snapshot) (models.Snapshot, bool) {
		if _, ok := cur.BoardOfColumn(data.ColumnID); !ok {
			return cur, false
		}

		position := nextPosition(cur.Tasks, data.ColumnID)
		if data.Position != nil {
			position = *data.Position
		}

		task := models.Task{
			ID:          id,
			Title:       data.Title,
			Description: data.Description,
			Status:      data.ColumnID,
			Position:    position,
			CreatedDate: s.now().UnixMilli(),
			Priority:    data.Priority,
			Assignee:    data.Assignee,
			DueDate:     data.DueDate,
			Tags:        normalizeTags(data.Tags),
			Extra:       extra,
		}

		next := cur
		next.Tasks = appendCopy(cur.Tasks, task)
		return next, true
	})
	if !ok {
		return ""
	}
	return id
}

// UpdateTask shallow-merges changes into the task. Status and position are
// taken as given; use MoveTask to relocate a task with renumbering.
// A nil value in changes.Extra removes that free-form field.
func (s *Store) UpdateTask(ctx context.Context, id types.TaskID, changes models.TaskChanges) bool {
	changes.Extra = s.jsonExtra(id, changes.Extra)
	return s.updateTask(ctx, events.EventTaskUpdated, id, func(t models.Task) models.Task {
		if changes.Title != nil {
			t.Title = *changes.Title
		}
		if changes.Description != nil {
			t.Description = *changes.Description
		}
		if changes.Status != nil {
			t.Status = *changes.Status
		}
		if changes.Position != nil {
			t.Position = *changes.Position
		}
		if changes.Priority != nil {
			t.Priority = *changes.Priority
		}
		if changes.Assignee != nil {
			t.Assignee = *changes.Assignee
		}
		if changes.DueDate != nil {
			t.DueDate = *changes.DueDate
		}
		if changes.Tags != nil {
			t.Tags = normalizeTags(*changes.Tags)
		}
		if len(changes.Extra) > 0 {
			extra := cloneExtra(t.Extra)
			if extra == nil {
				extra = make(map[string]any, len(changes.Extra))
			}
			for k, v := range changes.Extra {
				if models.IsTaskField(k) {
					continue
				}
				if v == nil {
					delete(extra, k)
					continue
				}
				extra[k] = v
			}
			if len(extra) == 0 {
				extra = nil
			}
			t.Extra = extra
		}
		return t
	})
}

// DeleteTask removes the task
func (s *Store) DeleteTask(ctx context.Context, id types.TaskID) bool {
	return s.commit(ctx, events.EventTaskDeleted, string(id), func(cur models.Snapshot) (models.Snapshot, bool) {
		if cur.TaskIndex(id) < 0 {
			return cur, false
		}
		next := cur
		next.Tasks = without(cur.Tasks, func(t models.Task) bool { return t.ID == id })
		return next, true
	})
}

// AddActivity appends an entry to the task's activity log. A zero TS is
// stamped with the store clock.
func (s *Store) AddActivity(ctx context.Context, id types.TaskID, entry models.ActivityEntry) bool {
	if entry.TS == 0 {
		entry.TS = s.now().UnixMilli()
	}
	return s.updateTask(ctx, events.EventActivityAdded, id, func(t models.Task) models.Task {
		t.ActivityLog = appendCopy(t.ActivityLog, entry)
		return t
	})
}

// updateTask commits a change to a single task. fn receives a private copy.
func (s *Store) updateTask(ctx context.Context, op events.EventType, id types.TaskID, fn func(models.Task) models.Task) bool {
	return s.commit(ctx, op, string(id), func(cur models.Snapshot) (models.Snapshot, bool) {
		ti := cur.TaskIndex(id)
		if ti < 0 {
			return cur, false
		}
		next := cur
		next.Tasks = replaceAt(cur.Tasks, ti, fn(cur.Tasks[ti].Clone()))
		return next, true
	})
}

// nextPosition is one past the highest position in the column, so 1 for an empty column
func nextPosition(tasks []models.Task, column types.ColumnID) int {
	highest := 0
	for _, t := range tasks {
		if t.Status == column && t.Position > highest {
			highest = t.Position
		}
	}
	return highest + 1
}

func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	return slices.Clone(tags)
}

func cloneExtra(extra map[string]any) map[string]any {
	if len(extra) == 0 {
		return nil
	}
	out := maps.Clone(extra)
	for k := range out {
		if models.IsTaskField(k) {
			delete(out, k)
		}
	}
	return out
}

// jsonExtra copies extra with every value converted to the form it takes after
// a save and load, so 3 becomes float64(3) and structs become maps. Task field
// names are skipped. A value that cannot be encoded is dropped with a warning.
// Nil values are kept; UpdateTask reads them as deletions.
func (s *Store) jsonExtra(id types.TaskID, extra map[string]any) map[string]any {
	if len(extra) == 0 {
		return nil
	}
	out := make(map[string]any, len(extra))
	for k, v := range extra {
		if models.IsTaskField(k) {
			continue
		}
		if v == nil {
			out[k] = nil
			continue
		}
		raw, err := json.Marshal(v)
		if err != nil {
			s.logger.Warn("dropping task field", "task", id, "field", k, "error", err)
			continue
		}
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			s.logger.Warn("dropping task field", "task", id, "field", k, "error", err)
			continue
		}
		out[k] = decoded
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
