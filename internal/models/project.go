package models

import "github.com/thenoetrevino/flowforge/internal/types"

// Workspace is the top-level container. Projects is the display order of its
// projects and holds ids only; the projects themselves live in Snapshot.Projects.
type Workspace struct {
	ID       types.WorkspaceID `json:"id"`
	Name     string            `json:"name"`
	Projects []types.ProjectID `json:"projects"`
}

// Project groups boards inside a workspace
type Project struct {
	ID     types.ProjectID `json:"id"`
	Name   string          `json:"name"`
	Boards []types.BoardID `json:"boards"`
}

// HasProject reports whether id is listed in the workspace
func (w Workspace) HasProject(id types.ProjectID) bool {
	for _, pid := range w.Projects {
		if pid == id {
			return true
		}
	}
	return false
}

// HasBoard reports whether id is listed in the project
func (p Project) HasBoard(id types.BoardID) bool {
	for _, bid := range p.Boards {
		if bid == id {
			return true
		}
	}
	return false
}
