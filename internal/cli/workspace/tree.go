package workspace

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/cli/handler"
	"github.com/thenoetrevino/flowforge/internal/cli/styles"
	"github.com/thenoetrevino/flowforge/internal/models"
	"github.com/thenoetrevino/flowforge/internal/types"
)

// TreeCmd returns the tree command
func TreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree [workspace-id]",
		Short: "Display workspaces as a tree",
		Long: `Display a workspace's projects, boards, and columns as a tree, with the
number of tasks in each column. Without an id every workspace is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.Command(runTree),
	}

	cli.AddOutputFlags(cmd)
	cmd.Flags().Lookup("quiet").Usage = "Minimal output (ids indented in tree order)"

	return cmd
}

// treeNodeJSON represents a node in JSON output
type treeNodeJSON struct {
	ID       string          `json:"id"`
	Kind     string          `json:"kind"`
	Name     string          `json:"name"`
	Tasks    *int            `json:"tasks,omitempty"`
	Children []*treeNodeJSON `json:"children,omitempty"`
}

func runTree(env *handler.Env) error {
	snap := env.State()

	workspaces := snap.Workspaces
	if len(env.Args) > 0 {
		ws, ok := snap.Workspace(types.WorkspaceID(env.Args[0]))
		if !ok {
			return env.Formatter.Fail(cli.ExitNotFound, "WORKSPACE_NOT_FOUND",
				fmt.Sprintf("workspace %s not found", env.Args[0]),
				"Use 'flowforge workspace list' to see available workspaces")
		}
		workspaces = []models.Workspace{ws}
	}

	nodes := make([]*treeNodeJSON, 0, len(workspaces))
	for _, ws := range workspaces {
		nodes = append(nodes, buildTree(snap, ws))
	}

	if env.Formatter.Quiet {
		var b strings.Builder
		writeQuietTree(&b, nodes, 0)
		_, err := fmt.Fprint(env.Formatter.Writer(), b.String())
		return err
	}
	if env.Formatter.JSON {
		return env.Formatter.Success(map[string]any{"tree": nodes})
	}

	if len(workspaces) == 0 {
		env.Formatter.Printf("No workspaces found\n")
		return nil
	}
	for i, ws := range workspaces {
		if i > 0 {
			env.Formatter.Printf("\n")
		}
		env.Formatter.Printf("%s", styles.RenderTree(snap, ws))
	}
	return nil
}

func buildTree(snap models.Snapshot, ws models.Workspace) *treeNodeJSON {
	root := &treeNodeJSON{ID: string(ws.ID), Kind: "workspace", Name: ws.Name}
	for _, pid := range ws.Projects {
		project, ok := snap.Project(pid)
		if !ok {
			continue
		}
		pNode := &treeNodeJSON{ID: string(project.ID), Kind: "project", Name: project.Name}
		for _, bid := range project.Boards {
			board, ok := snap.Board(bid)
			if !ok {
				continue
			}
			bNode := &treeNodeJSON{ID: string(board.ID), Kind: "board", Name: board.Name}
			for _, col := range board.Columns {
				count := len(snap.TasksInColumn(col.ID))
				bNode.Children = append(bNode.Children, &treeNodeJSON{
					ID: string(col.ID), Kind: "column", Name: col.Name, Tasks: &count,
				})
			}
			pNode.Children = append(pNode.Children, bNode)
		}
		root.Children = append(root.Children, pNode)
	}
	return root
}

func writeQuietTree(b *strings.Builder, nodes []*treeNodeJSON, depth int) {
	for _, node := range nodes {
		b.WriteString(strings.Repeat("  ", depth) + node.ID + "\n")
		writeQuietTree(b, node.Children, depth+1)
	}
}
