package data

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/flowforge/internal/testutil"
	"github.com/thenoetrevino/flowforge/internal/testutil/cli"
)

func TestFormatFor(t *testing.T) {
	tests := []struct {
		flag, path, want string
	}{
		{"", "backup.json", "json"},
		{"", "backup.YAML", "yaml"},
		{"", "backup.yml", "yaml"},
		{"", "", "json"},
		{"YAML", "backup.json", "yaml"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatFor(tt.flag, tt.path), "flag=%q path=%q", tt.flag, tt.path)
	}
}

func TestExport_ToStdout(t *testing.T) {
	app := cli.SetupCLITest(t)
	testutil.CreateTestTask(t, app, testutil.ColumnTodo, "Exported")

	output, err := cli.ExecuteCLICommand(t, app, ExportCmd(), []string{string(testutil.DefaultWorkspace)})
	assert.NoError(t, err)

	doc := cli.ParseJSON(t, output)
	assert.EqualValues(t, 1, doc["schema"])
	assert.Len(t, doc["tasks"], 1)
	assert.Len(t, doc["boards"], 1)
}

func TestExport_UnknownWorkspace(t *testing.T) {
	app := cli.SetupCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, ExportCmd(), []string{"w-missing", "--json"})
	assert.Error(t, err)
	assert.Equal(t, "WORKSPACE_NOT_FOUND", cli.ErrorCode(t, output))
}

func TestExport_UnknownFormat(t *testing.T) {
	app := cli.SetupCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, ExportCmd(), []string{string(testutil.DefaultWorkspace), "--format", "xml", "--json"})
	assert.Error(t, err)
	assert.Equal(t, "UNKNOWN_FORMAT", cli.ErrorCode(t, output))
}

func TestExportImport_RoundTripYAML(t *testing.T) {
	source := cli.SetupCLITest(t)
	taskID := testutil.CreateTestTask(t, source, testutil.ColumnReview, "Travels")
	path := filepath.Join(t.TempDir(), "backup.yaml")

	output, err := cli.ExecuteCLICommand(t, source, ExportCmd(), []string{string(testutil.DefaultWorkspace), "-o", path, "--json"})
	assert.NoError(t, err)
	data := cli.Data(t, output)
	assert.Equal(t, "yaml", data["format"])
	assert.EqualValues(t, 1, data["tasks"])

	raw, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Contains(t, string(raw), "Travels")

	// import into a store that has lost everything
	target := cli.SetupCLITest(t)
	target.Store.DeleteWorkspace(context.Background(), testutil.DefaultWorkspace)

	output, err = cli.ExecuteCLICommand(t, target, ImportCmd(), []string{path, "--json"})
	assert.NoError(t, err)
	data = cli.Data(t, output)
	assert.EqualValues(t, 1, data["workspaces"])
	assert.EqualValues(t, 1, data["tasks"])

	task, ok := target.Store.SelectTask(taskID)
	assert.True(t, ok)
	assert.Equal(t, testutil.ColumnReview, task.Status)
}

func TestImport_MergeReplacesById(t *testing.T) {
	app := cli.SetupCLITest(t)
	ctx := context.Background()
	extra := app.Store.CreateWorkspace(ctx, "Untouched")

	doc := `{
  "schema": 1,
  "exportedAt": 0,
  "workspace": {"id": "w-1", "name": "Renamed", "projects": ["p-1"]},
  "projects": [{"id": "p-1", "name": "Project Alpha", "boards": ["b-1"]}],
  "boards": [{"id": "b-1", "name": "Main Board", "columns": [{"id": "col-1", "name": "To Do"}]}],
  "tasks": [{"id": "t-imported", "title": "From file", "status": "col-1", "position": 0, "createdDate": 0}]
}`
	_, _, err := cli.ExecuteCLICommandWithInput(t, app, ImportCmd(), []string{"-", "--format", "json"}, doc)
	assert.NoError(t, err)

	snap := app.Store.GetState()
	ws, _ := snap.Workspace(testutil.DefaultWorkspace)
	assert.Equal(t, "Renamed", ws.Name)
	_, ok := snap.Workspace(extra)
	assert.True(t, ok, "merge keeps entities the document does not mention")
	_, ok = snap.Task("t-imported")
	assert.True(t, ok)
}

func TestImport_Overwrite(t *testing.T) {
	app := cli.SetupCLITest(t)
	ctx := context.Background()
	app.Store.CreateWorkspace(ctx, "Goes away")

	doc := `{"schema": 1, "exportedAt": 0,
  "workspace": {"id": "w-9", "name": "Only", "projects": []},
  "projects": [], "boards": [], "tasks": []}`

	t.Run("declined", func(t *testing.T) {
		stdout, _, err := cli.ExecuteCLICommandWithInput(t, app, ImportCmd(), []string{writeDoc(t, doc), "--overwrite"}, "n\n")
		assert.NoError(t, err)
		assert.Contains(t, stdout, "Cancelled")
		assert.Len(t, app.Store.GetState().Workspaces, 2)
	})

	t.Run("forced", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, ImportCmd(), []string{writeDoc(t, doc), "--overwrite", "--force"})
		assert.NoError(t, err)
		snap := app.Store.GetState()
		if assert.Len(t, snap.Workspaces, 1) {
			assert.Equal(t, "Only", snap.Workspaces[0].Name)
		}
		assert.Empty(t, snap.Projects)
	})
}

func TestImport_InvalidDocument(t *testing.T) {
	app := cli.SetupCLITest(t)
	before := app.Store.GetState()

	tests := []struct {
		name    string
		doc     string
		errCode string
	}{
		{"not json", "{", "INVALID_IMPORT"},
		{"missing workspace", `{"schema": 1, "projects": [], "boards": [], "tasks": []}`, "INVALID_IMPORT"},
		{"empty workspace name", `{"schema": 1, "workspace": {"id": "w-2", "name": ""}}`, "INVALID_IMPORT"},
		{"tasks not a list", `{"schema": 1, "workspace": {"id": "w-2", "name": "W"}, "tasks": "none"}`, "INVALID_IMPORT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, _, err := cli.ExecuteCLICommandWithInput(t, app, ImportCmd(), []string{"-", "--json"}, tt.doc)
			assert.Error(t, err)
			assert.Equal(t, tt.errCode, cli.ErrorCode(t, output))
		})
	}

	assert.Equal(t, len(before.Workspaces), len(app.Store.GetState().Workspaces))
}

func TestImport_MissingFile(t *testing.T) {
	app := cli.SetupCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, ImportCmd(), []string{filepath.Join(t.TempDir(), "nope.json"), "--json"})
	assert.Error(t, err)
	assert.Equal(t, "FILE_NOT_FOUND", cli.ErrorCode(t, output))
}

func writeDoc(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte(strings.TrimSpace(doc)), 0o644); err != nil {
		t.Fatalf("write doc: %v", err)
	}
	return path
}
