package models

import "github.com/thenoetrevino/flowforge/internal/types"

// Column represents a kanban board column (e.g., "To Do", "In Progress", "Done").
// Columns only exist nested inside a Board; their order is the board's Columns order.
type Column struct {
	ID   types.ColumnID `json:"id"`
	Name string         `json:"name"`
}

// Board holds an ordered list of columns. Tasks reference a column through their status.
type Board struct {
	ID      types.BoardID `json:"id"`
	Name    string        `json:"name"`
	Columns []Column      `json:"columns"`
}

// ColumnIDs returns the ids of the board's columns in display order
func (b Board) ColumnIDs() []types.ColumnID {
	ids := make([]types.ColumnID, len(b.Columns))
	for i, c := range b.Columns {
		ids[i] = c.ID
	}
	return ids
}

// HasColumn reports whether the board contains the column
func (b Board) HasColumn(id types.ColumnID) bool {
	return b.ColumnIndex(id) >= 0
}

// ColumnIndex returns the index of the column in the board, or -1
func (b Board) ColumnIndex(id types.ColumnID) int {
	for i, c := range b.Columns {
		if c.ID == id {
			return i
		}
	}
	return -1
}
