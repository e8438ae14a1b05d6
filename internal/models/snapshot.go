package models

import (
	"maps"
	"slices"
	"sort"

	"github.com/thenoetrevino/flowforge/internal/types"
)

// Snapshot is the whole entity graph at one point in time. It is the unit of
// persistence and of change notification. A Snapshot handed out by the store
// shares memory with the store's own copy and must be treated as read-only;
// use Clone for a private, mutable copy.
type Snapshot struct {
	Workspaces []Workspace `json:"workspaces"`
	Projects   []Project   `json:"projects"`
	Boards     []Board     `json:"boards"`
	Tasks      []Task      `json:"tasks"`
	Filters    Filters     `json:"filters"`
	Meta       Meta        `json:"meta"`
}

// Meta holds bookkeeping about the snapshot itself
type Meta struct {
	CreatedAt int64 `json:"createdAt"` // epoch milliseconds
}

// Clone returns a deep copy of the snapshot
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Workspaces: make([]Workspace, len(s.Workspaces)),
		Projects:   make([]Project, len(s.Projects)),
		Boards:     make([]Board, len(s.Boards)),
		Tasks:      make([]Task, len(s.Tasks)),
		Filters:    s.Filters,
		Meta:       s.Meta,
	}
	for i, w := range s.Workspaces {
		w.Projects = slices.Clone(w.Projects)
		out.Workspaces[i] = w
	}
	for i, p := range s.Projects {
		p.Boards = slices.Clone(p.Boards)
		out.Projects[i] = p
	}
	for i, b := range s.Boards {
		b.Columns = slices.Clone(b.Columns)
		out.Boards[i] = b
	}
	for i, t := range s.Tasks {
		out.Tasks[i] = t.Clone()
	}
	out.Filters.Tags = slices.Clone(s.Filters.Tags)
	return out
}

// Clone returns a copy of the task that shares no slices or maps with t
func (t Task) Clone() Task {
	t.Tags = slices.Clone(t.Tags)
	t.ActivityLog = slices.Clone(t.ActivityLog)
	if t.Extra != nil {
		t.Extra = maps.Clone(t.Extra)
	}
	return t
}

// WorkspaceIndex returns the index of the workspace, or -1
func (s Snapshot) WorkspaceIndex(id types.WorkspaceID) int {
	return slices.IndexFunc(s.Workspaces, func(w Workspace) bool { return w.ID == id })
}

// ProjectIndex returns the index of the project, or -1
func (s Snapshot) ProjectIndex(id types.ProjectID) int {
	return slices.IndexFunc(s.Projects, func(p Project) bool { return p.ID == id })
}

// BoardIndex returns the index of the board, or -1
func (s Snapshot) BoardIndex(id types.BoardID) int {
	return slices.IndexFunc(s.Boards, func(b Board) bool { return b.ID == id })
}

// TaskIndex returns the index of the task, or -1
func (s Snapshot) TaskIndex(id types.TaskID) int {
	return slices.IndexFunc(s.Tasks, func(t Task) bool { return t.ID == id })
}

// Workspace looks up a workspace by id
func (s Snapshot) Workspace(id types.WorkspaceID) (Workspace, bool) {
	if i := s.WorkspaceIndex(id); i >= 0 {
		return s.Workspaces[i], true
	}
	return Workspace{}, false
}

// Project looks up a project by id
func (s Snapshot) Project(id types.ProjectID) (Project, bool) {
	if i := s.ProjectIndex(id); i >= 0 {
		return s.Projects[i], true
	}
	return Project{}, false
}

// Board looks up a board by id
func (s Snapshot) Board(id types.BoardID) (Board, bool) {
	if i := s.BoardIndex(id); i >= 0 {
		return s.Boards[i], true
	}
	return Board{}, false
}

// Task looks up a task by id
func (s Snapshot) Task(id types.TaskID) (Task, bool) {
	if i := s.TaskIndex(id); i >= 0 {
		return s.Tasks[i], true
	}
	return Task{}, false
}

// BoardOfColumn returns the board that owns the column
func (s Snapshot) BoardOfColumn(id types.ColumnID) (Board, bool) {
	for _, b := range s.Boards {
		if b.HasColumn(id) {
			return b, true
		}
	}
	return Board{}, false
}

// TasksInColumn returns the column's tasks ordered by position. Equal positions
// keep their order in Tasks, which is creation order.
func (s Snapshot) TasksInColumn(id types.ColumnID) []Task {
	var out []Task
	for _, t := range s.Tasks {
		if t.Status == id {
			out = append(out, t)
		}
	}
	SortByPosition(out)
	return out
}

// SortByPosition stably sorts tasks by ascending position
func SortByPosition(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].Position < tasks[j].Position })
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return slices.Clone(in)
}
