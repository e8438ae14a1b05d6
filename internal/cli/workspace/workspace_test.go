package workspace

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/flowforge/internal/testutil"
	"github.com/thenoetrevino/flowforge/internal/testutil/cli"
	"github.com/thenoetrevino/flowforge/internal/types"
)

func TestCreateWorkspace(t *testing.T) {
	app := cli.SetupCLITest(t)

	t.Run("quiet prints the new id", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--name", "Personal", "--quiet"})
		assert.NoError(t, err)

		id := types.WorkspaceID(strings.TrimSpace(output))
		ws, ok := app.Store.GetState().Workspace(id)
		assert.True(t, ok, "workspace %q should exist", id)
		assert.Equal(t, "Personal", ws.Name)
	})

	t.Run("json output", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--name", "Work", "--json"})
		assert.NoError(t, err)

		data := cli.Data(t, output)
		assert.Equal(t, "Work", data["name"])
		assert.NotEmpty(t, data["id"])
	})

	t.Run("human output", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--name", "Side"})
		assert.NoError(t, err)
		assert.Contains(t, output, "Workspace 'Side' created successfully")
	})

	t.Run("missing name", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--json"})
		assert.Error(t, err)
		assert.Equal(t, "MISSING_FLAG", cli.ErrorCode(t, output))
	})
}

func TestDeleteWorkspace_Cascades(t *testing.T) {
	app := cli.SetupCLITest(t)
	taskID := testutil.CreateTestTask(t, app, testutil.ColumnTodo, "Doomed")

	output, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{string(testutil.DefaultWorkspace), "--force"})
	assert.NoError(t, err)
	assert.Contains(t, output, "deleted successfully")

	snap := app.Store.GetState()
	assert.Empty(t, snap.Workspaces)
	assert.Empty(t, snap.Projects)
	assert.Empty(t, snap.Boards)
	_, ok := snap.Task(taskID)
	assert.False(t, ok, "task should be deleted with its workspace")
}

func TestDeleteWorkspace_Confirmation(t *testing.T) {
	app := cli.SetupCLITest(t)

	t.Run("declined", func(t *testing.T) {
		output, _, err := cli.ExecuteCLICommandWithInput(t, app, DeleteCmd(), []string{string(testutil.DefaultWorkspace)}, "n\n")
		assert.NoError(t, err)
		assert.Contains(t, output, "Cancelled")
		_, ok := app.Store.GetState().Workspace(testutil.DefaultWorkspace)
		assert.True(t, ok)
	})

	t.Run("accepted", func(t *testing.T) {
		_, _, err := cli.ExecuteCLICommandWithInput(t, app, DeleteCmd(), []string{"--id", string(testutil.DefaultWorkspace)}, "yes\n")
		assert.NoError(t, err)
		_, ok := app.Store.GetState().Workspace(testutil.DefaultWorkspace)
		assert.False(t, ok)
	})
}

func TestDeleteWorkspace_NotFound(t *testing.T) {
	app := cli.SetupCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"w-missing", "--force", "--json"})
	assert.Error(t, err)
	assert.Equal(t, "WORKSPACE_NOT_FOUND", cli.ErrorCode(t, output))
}

func TestListWorkspaces(t *testing.T) {
	app := cli.SetupCLITest(t)
	second := app.Store.CreateWorkspace(context.Background(), "Second")

	output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
	assert.NoError(t, err)
	assert.Equal(t, []string{string(testutil.DefaultWorkspace), string(second)}, strings.Fields(output))

	output, err = cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
	assert.NoError(t, err)
	result := cli.ParseJSON(t, output)
	list, ok := result["data"].([]any)
	assert.True(t, ok)
	assert.Len(t, list, 2)
}

func TestTree(t *testing.T) {
	app := cli.SetupCLITest(t)
	testutil.CreateTestTask(t, app, testutil.ColumnTodo, "One")

	t.Run("quiet prints indented ids", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, TreeCmd(), []string{"--quiet"})
		assert.NoError(t, err)
		assert.Contains(t, output, "w-1")
		assert.Contains(t, output, "p-1")
		assert.Contains(t, output, "b-1")
	})

	t.Run("json nests children and counts tasks", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, TreeCmd(), []string{string(testutil.DefaultWorkspace), "--json"})
		assert.NoError(t, err)
		data := cli.Data(t, output)
		nodes, ok := data["tree"].([]any)
		assert.True(t, ok)
		assert.Len(t, nodes, 1)
		assert.Contains(t, output, `"tasks":1`)
	})

	t.Run("unknown workspace", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, TreeCmd(), []string{"w-nope", "--json"})
		assert.Error(t, err)
		assert.Equal(t, "WORKSPACE_NOT_FOUND", cli.ErrorCode(t, output))
	})
}
