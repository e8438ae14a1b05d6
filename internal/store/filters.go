package store

import (
	"context"

	"github.com/thenoetrevino/flowforge/internal/events"
	"github.com/thenoetrevino/flowforge/internal/models"
)

// SetFilter shallow-merges patch into the filter record
func (s *Store) SetFilter(ctx context.Context, patch models.FilterPatch) bool {
	return s.commit(ctx, events.EventFilterSet, "", func(cur models.Snapshot) (models.Snapshot, bool) {
		next := cur
		next.Filters = cur.Filters.Merge(patch)
		return next, true
	})
}

// ImportState replaces the entire snapshot. The store keeps its own copy of snap.
func (s *Store) ImportState(ctx context.Context, snap models.Snapshot) bool {
	return s.ImportWith(ctx, func(models.Snapshot) models.Snapshot { return snap })
}

// ImportWith replaces the snapshot with what build returns for the current
// one. build runs under the commit lock, so no other mutation can land between
// the read and the write; it must not call back into the store. The store
// keeps its own copy of the result.
func (s *Store) ImportWith(ctx context.Context, build func(cur models.Snapshot) models.Snapshot) bool {
	return s.commit(ctx, events.EventStateImported, "", func(cur models.Snapshot) (models.Snapshot, bool) {
		return build(cur).Clone(), true
	})
}
