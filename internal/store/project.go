package store

import (
	"context"

	"github.com/thenoetrevino/flowforge/internal/events"
	"github.com/thenoetrevino/flowforge/internal/models"
	"github.com/thenoetrevino/flowforge/internal/types"
)

// CreateProject appends a project and links it to the workspace. A missing
// workspace is a no-op and the returned id is empty; projects are never orphaned.
func (s *Store) CreateProject(ctx context.Context, workspaceID types.WorkspaceID, name string) types.ProjectID {
	id := types.ProjectID(s.newID(types.PrefixProject))
	ok := s.commit(ctx, events.EventProjectCreated, string(id), func(cur models.Snapshot) (models.Snapshot, bool) {
		wi := cur.WorkspaceIndex(workspaceID)
		if wi < 0 {
			return cur, false
		}
		w := cur.Workspaces[wi]
		w.Projects = appendCopy(w.Projects, id)

		next := cur
		next.Workspaces = replaceAt(cur.Workspaces, wi, w)
		next.Projects = appendCopy(cur.Projects, models.Project{
			ID:     id,
			Name:   name,
			Boards: []types.BoardID{},
		})
		return next, true
	})
	if !ok {
		return ""
	}
	return id
}

// DeleteProject removes the project, unlinks it from every workspace, and
// cascades to its boards and their tasks
func (s *Store) DeleteProject(ctx context.Context, id types.ProjectID) bool {
	return s.commit(ctx, events.EventProjectDeleted, string(id), func(cur models.Snapshot) (models.Snapshot, bool) {
		if cur.ProjectIndex(id) < 0 {
			return cur, false
		}
		r := newRemoval()
		r.addProject(cur, id)
		return r.apply(cur), true
	})
}
