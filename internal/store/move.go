package store

import (
	"context"

	"github.com/thenoetrevino/flowforge/internal/events"
	"github.com/thenoetrevino/flowforge/internal/models"
	"github.com/thenoetrevino/flowforge/internal/types"
)

// MoveTask relocates a task into toColumn at toIndex and renumbers the source
// and destination columns to 1..N. A nil toIndex appends; out of range indexes
// are clamped. Tasks in other columns are not touched. Moving within one
// column keeps the relative order of every other task in it. A move that
// leaves every position in the column as it was is a no-op.
func (s *Store) MoveTask(ctx context.Context, id types.TaskID, toColumn types.ColumnID, toIndex *int) bool {
	return s.commit(ctx, events.EventTaskMoved, string(id), func(cur models.Snapshot) (models.Snapshot, bool) {
		ti := cur.TaskIndex(id)
		if ti < 0 {
			return cur, false
		}
		if _, ok := cur.BoardOfColumn(toColumn); !ok {
			return cur, false
		}

		moved := cur.Tasks[ti]
		from := moved.Status
		moved.Status = toColumn

		var src, dst, rest []models.Task
		for _, t := range cur.Tasks {
			switch {
			case t.ID == id:
			case t.Status == from:
				src = append(src, t)
			case t.Status == toColumn:
				dst = append(dst, t)
			default:
				rest = append(rest, t)
			}
		}
		if from == toColumn {
			dst, src = src, nil
		}
		models.SortByPosition(src)
		models.SortByPosition(dst)

		dst = insertAt(dst, clampIndex(toIndex, len(dst)), moved)
		var before map[types.TaskID]int
		if from == toColumn {
			before = positionsOf(dst)
		}
		renumber(src)
		renumber(dst)
		if before != nil && unchanged(dst, before) {
			return cur, false
		}

		next := cur
		next.Tasks = make([]models.Task, 0, len(cur.Tasks))
		next.Tasks = append(next.Tasks, rest...)
		next.Tasks = append(next.Tasks, src...)
		next.Tasks = append(next.Tasks, dst...)
		return next, true
	})
}

func clampIndex(idx *int, n int) int {
	if idx == nil || *idx > n {
		return n
	}
	if *idx < 0 {
		return 0
	}
	return *idx
}

func insertAt(tasks []models.Task, i int, t models.Task) []models.Task {
	out := make([]models.Task, 0, len(tasks)+1)
	out = append(out, tasks[:i]...)
	out = append(out, t)
	return append(out, tasks[i:]...)
}

// renumber assigns dense 1-based positions in slice order. The tasks are
// copies owned by the caller.
func renumber(tasks []models.Task) {
	for i := range tasks {
		tasks[i].Position = i + 1
	}
}

func positionsOf(tasks []models.Task) map[types.TaskID]int {
	out := make(map[types.TaskID]int, len(tasks))
	for _, t := range tasks {
		out[t.ID] = t.Position
	}
	return out
}

func unchanged(tasks []models.Task, before map[types.TaskID]int) bool {
	for _, t := range tasks {
		if before[t.ID] != t.Position {
			return false
		}
	}
	return true
}
