package storage

import (
	"strconv"
	"time"

	"github.com/thenoetrevino/flowforge/internal/models"
	"github.com/thenoetrevino/flowforge/internal/types"
)

// DefaultSnapshot is what a fresh install starts with, and what Load falls back
// to when the slot is empty or unreadable: one workspace holding one project
// holding one board with the four default columns.
func DefaultSnapshot(now time.Time) models.Snapshot {
	columns := make([]models.Column, len(models.DefaultColumnNames))
	for i, name := range models.DefaultColumnNames {
		columns[i] = models.Column{ID: types.ColumnID("col-" + strconv.Itoa(i+1)), Name: name}
	}

	return models.Snapshot{
		Workspaces: []models.Workspace{{ID: "w-1", Name: "Default Workspace", Projects: []types.ProjectID{"p-1"}}},
		Projects:   []models.Project{{ID: "p-1", Name: "Project Alpha", Boards: []types.BoardID{"b-1"}}},
		Boards:     []models.Board{{ID: "b-1", Name: "Main Board", Columns: columns}},
		Tasks:      []models.Task{},
		Filters:    models.Filters{Tags: []string{}},
		Meta:       models.Meta{CreatedAt: now.UnixMilli()},
	}
}
