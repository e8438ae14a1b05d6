package store

import (
	"context"

	"github.com/thenoetrevino/flowforge/internal/events"
	"github.com/thenoetrevino/flowforge/internal/models"
	"github.com/thenoetrevino/flowforge/internal/types"
)

// CreateWorkspace appends a workspace with no projects and returns its id
func (s *Store) CreateWorkspace(ctx context.Context, name string) types.WorkspaceID {
	id := types.WorkspaceID(s.newID(types.PrefixWorkspace))
	s.commit(ctx, events.EventWorkspaceCreated, string(id), func(cur models.Snapshot) (models.Snapshot, bool) {
		next := cur
		next.Workspaces = appendCopy(cur.Workspaces, models.Workspace{
			ID:       id,
			Name:     name,
			Projects: []types.ProjectID{},
		})
		return next, true
	})
	return id
}

// DeleteWorkspace removes the workspace together with its projects, their boards,
// and every task sitting in one of those boards' columns
func (s *Store) DeleteWorkspace(ctx context.Context, id types.WorkspaceID) bool {
	return s.commit(ctx, events.EventWorkspaceDeleted, string(id), func(cur models.Snapshot) (models.Snapshot, bool) {
		w, ok := cur.Workspace(id)
		if !ok {
			return cur, false
		}
		r := newRemoval()
		r.addWorkspace(cur, w)
		return r.apply(cur), true
	})
}
