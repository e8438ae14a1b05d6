package store

import (
	"context"
	"slices"

	"github.com/thenoetrevino/flowforge/internal/events"
	"github.com/thenoetrevino/flowforge/internal/models"
	"github.com/thenoetrevino/flowforge/internal/types"
)

// CreateBoard appends a board to the project. With no column names the board
// gets the store's default columns. A missing project is a no-op and the
// returned id is empty.
func (s *Store) CreateBoard(ctx context.Context, projectID types.ProjectID, name string, columns ...string) types.BoardID {
	if len(columns) == 0 {
		columns = s.defaultColumns
	}
	id := types.BoardID(s.newID(types.PrefixBoard))
	cols := make([]models.Column, 0, len(columns))
	for _, colName := range columns {
		cols = append(cols, models.Column{
			ID:   types.ColumnID(s.newID(types.PrefixColumn)),
			Name: colName,
		})
	}

	ok := s.commit(ctx, events.EventBoardCreated, string(id), func(cur models.Snapshot) (models.Snapshot, bool) {
		pi := cur.ProjectIndex(projectID)
		if pi < 0 {
			return cur, false
		}
		p := cur.Projects[pi]
		p.Boards = appendCopy(p.Boards, id)

		next := cur
		next.Projects = replaceAt(cur.Projects, pi, p)
		next.Boards = appendCopy(cur.Boards, models.Board{ID: id, Name: name, Columns: cols})
		return next, true
	})
	if !ok {
		return ""
	}
	return id
}

// DeleteBoard removes the board, unlinks it from every project, and deletes the
// tasks sitting in any of its columns
func (s *Store) DeleteBoard(ctx context.Context, id types.BoardID) bool {
	return s.commit(ctx, events.EventBoardDeleted, string(id), func(cur models.Snapshot) (models.Snapshot, bool) {
		if cur.BoardIndex(id) < 0 {
			return cur, false
		}
		r := newRemoval()
		r.addBoard(cur, id)
		return r.apply(cur), true
	})
}

// ============================================================================
// COLUMNS
// ============================================================================

// AddColumn appends a column to the board and returns its id, or "" when the
// board does not exist
func (s *Store) AddColumn(ctx context.Context, boardID types.BoardID, name string) types.ColumnID {
	id := types.ColumnID(s.newID(types.PrefixColumn))
	ok := s.updateBoard(ctx, events.EventColumnAdded, boardID, string(id), func(b models.Board) (models.Board, bool) {
		b.Columns = appendCopy(b.Columns, models.Column{ID: id, Name: name})
		return b, true
	})
	if !ok {
		return ""
	}
	return id
}

// RenameColumn changes the name of one of the board's columns
func (s *Store) RenameColumn(ctx context.Context, boardID types.BoardID, columnID types.ColumnID, name string) bool {
	return s.updateBoard(ctx, events.EventColumnRenamed, boardID, string(columnID), func(b models.Board) (models.Board, bool) {
		ci := b.ColumnIndex(columnID)
		if ci < 0 {
			return b, false
		}
		b.Columns = replaceAt(b.Columns, ci, models.Column{ID: columnID, Name: name})
		return b, true
	})
}

// ReorderColumns replaces the board's column list wholesale. The caller is
// trusted to pass the full reordered list.
func (s *Store) ReorderColumns(ctx context.Context, boardID types.BoardID, columns []models.Column) bool {
	cols := slices.Clone(columns)
	if cols == nil {
		cols = []models.Column{}
	}
	return s.updateBoard(ctx, events.EventColumnsReordered, boardID, string(boardID), func(b models.Board) (models.Board, bool) {
		b.Columns = cols
		return b, true
	})
}

// DeleteColumn removes a column from the board together with every task whose
// status is that column
func (s *Store) DeleteColumn(ctx context.Context, boardID types.BoardID, columnID types.ColumnID) bool {
	return s.commit(ctx, events.EventColumnDeleted, string(columnID), func(cur models.Snapshot) (models.Snapshot, bool) {
		b, ok := cur.Board(boardID)
		if !ok || !b.HasColumn(columnID) {
			return cur, false
		}
		r := newRemoval()
		r.columns[columnID] = true
		return r.apply(cur), true
	})
}

// updateBoard commits a change to a single board
func (s *Store) updateBoard(ctx context.Context, op events.EventType, boardID types.BoardID, entityID string,
	fn func(models.Board) (models.Board, bool)) bool {
	return s.commit(ctx, op, entityID, func(cur models.Snapshot) (models.Snapshot, bool) {
		bi := cur.BoardIndex(boardID)
		if bi < 0 {
			return cur, false
		}
		b, ok := fn(cur.Boards[bi])
		if !ok {
			return cur, false
		}
		next := cur
		next.Boards = replaceAt(cur.Boards, bi, b)
		return next, true
	})
}
