package store

import (
	"github.com/thenoetrevino/flowforge/internal/models"
	"github.com/thenoetrevino/flowforge/internal/types"
)

// removal collects everything a delete takes with it. apply drops the marked
// entities, strips their ids from every parent list, and drops every task whose
// status is a removed column, all in one pass so no dangling reference survives.
type removal struct {
	workspaces map[types.WorkspaceID]bool
	projects   map[types.ProjectID]bool
	boards     map[types.BoardID]bool
	columns    map[types.ColumnID]bool
}

func newRemoval() *removal {
	return &removal{
		workspaces: make(map[types.WorkspaceID]bool),
		projects:   make(map[types.ProjectID]bool),
		boards:     make(map[types.BoardID]bool),
		columns:    make(map[types.ColumnID]bool),
	}
}

func (r *removal) addWorkspace(s models.Snapshot, w models.Workspace) {
	r.workspaces[w.ID] = true
	for _, pid := range w.Projects {
		r.addProject(s, pid)
	}
}

func (r *removal) addProject(s models.Snapshot, id types.ProjectID) {
	r.projects[id] = true
	p, ok := s.Project(id)
	if !ok {
		return
	}
	for _, bid := range p.Boards {
		r.addBoard(s, bid)
	}
}

func (r *removal) addBoard(s models.Snapshot, id types.BoardID) {
	r.boards[id] = true
	b, ok := s.Board(id)
	if !ok {
		return
	}
	for _, c := range b.Columns {
		r.columns[c.ID] = true
	}
}

func (r *removal) apply(s models.Snapshot) models.Snapshot {
	out := s

	out.Workspaces = make([]models.Workspace, 0, len(s.Workspaces))
	for _, w := range s.Workspaces {
		if r.workspaces[w.ID] {
			continue
		}
		w.Projects = without(w.Projects, func(id types.ProjectID) bool { return r.projects[id] })
		out.Workspaces = append(out.Workspaces, w)
	}

	out.Projects = make([]models.Project, 0, len(s.Projects))
	for _, p := range s.Projects {
		if r.projects[p.ID] {
			continue
		}
		p.Boards = without(p.Boards, func(id types.BoardID) bool { return r.boards[id] })
		out.Projects = append(out.Projects, p)
	}

	out.Boards = make([]models.Board, 0, len(s.Boards))
	for _, b := range s.Boards {
		if r.boards[b.ID] {
			continue
		}
		b.Columns = without(b.Columns, func(c models.Column) bool { return r.columns[c.ID] })
		out.Boards = append(out.Boards, b)
	}

	out.Tasks = without(s.Tasks, func(t models.Task) bool { return r.columns[t.Status] })

	return out
}

// without returns a new slice holding the elements of in that drop rejects
func without[T any](in []T, drop func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if !drop(v) {
			out = append(out, v)
		}
	}
	return out
}

// replaceAt returns a copy of in with the element at i replaced by v
func replaceAt[T any](in []T, i int, v T) []T {
	out := make([]T, len(in))
	copy(out, in)
	out[i] = v
	return out
}

// appendCopy returns a new slice holding in followed by vs; in is never written to
func appendCopy[T any](in []T, vs ...T) []T {
	out := make([]T, 0, len(in)+len(vs))
	out = append(out, in...)
	return append(out, vs...)
}
