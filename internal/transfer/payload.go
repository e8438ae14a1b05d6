// Package transfer moves one workspace and everything beneath it in and out of
// the store as a self-contained document.
package transfer

import (
	"time"

	"github.com/thenoetrevino/flowforge/internal/models"
	"github.com/thenoetrevino/flowforge/internal/types"
)

// SchemaVersion is written into every exported payload
const SchemaVersion = 1

// Payload is the export document: one workspace plus exactly the entities
// reachable from it
type Payload struct {
	Schema     int              `json:"schema"`
	ExportedAt int64            `json:"exportedAt"` // epoch milliseconds
	Workspace  models.Workspace `json:"workspace"`
	Projects   []models.Project `json:"projects"`
	Boards     []models.Board   `json:"boards"`
	Tasks      []models.Task    `json:"tasks"`
}

// Export collects a workspace's projects, their boards, and the tasks sitting
// in those boards. A task counts as on a board when its status is one of the
// board's column ids or, for legacy data, the board id itself.
func Export(snap models.Snapshot, id types.WorkspaceID, now time.Time) (*Payload, error) {
	ws, ok := snap.Workspace(id)
	if !ok {
		return nil, ErrWorkspaceNotFound
	}

	p := &Payload{
		Schema:     SchemaVersion,
		ExportedAt: now.UnixMilli(),
		Workspace:  ws,
		Projects:   []models.Project{},
		Boards:     []models.Board{},
		Tasks:      []models.Task{},
	}

	boardIDs := make(map[types.BoardID]bool)
	for _, proj := range snap.Projects {
		if !ws.HasProject(proj.ID) {
			continue
		}
		p.Projects = append(p.Projects, proj)
		for _, bid := range proj.Boards {
			boardIDs[bid] = true
		}
	}

	locations := make(map[types.ColumnID]bool)
	for _, b := range snap.Boards {
		if !boardIDs[b.ID] {
			continue
		}
		p.Boards = append(p.Boards, b)
		locations[types.ColumnID(b.ID)] = true
		for _, c := range b.Columns {
			locations[c.ID] = true
		}
	}

	for _, t := range snap.Tasks {
		if locations[t.Status] {
			p.Tasks = append(p.Tasks, t)
		}
	}

	return p, nil
}

// normalize replaces missing lists so the payload is safe to merge
func (p *Payload) normalize() {
	if p.Workspace.Projects == nil {
		p.Workspace.Projects = []types.ProjectID{}
	}
	if p.Projects == nil {
		p.Projects = []models.Project{}
	}
	if p.Boards == nil {
		p.Boards = []models.Board{}
	}
	if p.Tasks == nil {
		p.Tasks = []models.Task{}
	}
	for i := range p.Projects {
		if p.Projects[i].Boards == nil {
			p.Projects[i].Boards = []types.BoardID{}
		}
	}
	for i := range p.Boards {
		if p.Boards[i].Columns == nil {
			p.Boards[i].Columns = []models.Column{}
		}
	}
}
