package project

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/flowforge/internal/testutil"
	"github.com/thenoetrevino/flowforge/internal/testutil/cli"
	"github.com/thenoetrevino/flowforge/internal/types"
)

func TestCreateProject(t *testing.T) {
	app := cli.SetupCLITest(t)

	tests := []struct {
		name      string
		args      []string
		shouldErr bool
		errCode   string
	}{
		{
			name: "create under default workspace",
			args: []string{"--workspace", string(testutil.DefaultWorkspace), "--name", "Website", "--json"},
		},
		{
			name:      "unknown workspace",
			args:      []string{"--workspace", "w-missing", "--name", "Orphan", "--json"},
			shouldErr: true,
			errCode:   "WORKSPACE_NOT_FOUND",
		},
		{
			name:      "missing name",
			args:      []string{"--workspace", string(testutil.DefaultWorkspace), "--json"},
			shouldErr: true,
			errCode:   "MISSING_FLAG",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), tt.args)
			if tt.shouldErr {
				assert.Error(t, err)
				assert.Equal(t, tt.errCode, cli.ErrorCode(t, output))
				return
			}
			assert.NoError(t, err)
			data := cli.Data(t, output)
			assert.NotEmpty(t, data["id"])
		})
	}

	// orphan creation must not leave anything behind
	assert.Len(t, app.Store.GetState().Projects, 2)
}

func TestCreateProject_AppendsToWorkspace(t *testing.T) {
	app := cli.SetupCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, CreateCmd(),
		[]string{"--workspace", string(testutil.DefaultWorkspace), "--name", "Second", "--quiet"})
	assert.NoError(t, err)
	id := types.ProjectID(strings.TrimSpace(output))

	ws, _ := app.Store.GetState().Workspace(testutil.DefaultWorkspace)
	assert.Equal(t, []types.ProjectID{testutil.DefaultProject, id}, ws.Projects)
}

func TestDeleteProject(t *testing.T) {
	app := cli.SetupCLITest(t)
	testutil.CreateTestTask(t, app, testutil.ColumnDone, "Shipped")

	output, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{string(testutil.DefaultProject), "--force", "--json"})
	assert.NoError(t, err)
	data := cli.Data(t, output)
	assert.Equal(t, string(testutil.DefaultProject), data["project_id"])

	snap := app.Store.GetState()
	assert.Empty(t, snap.Boards)
	assert.Empty(t, snap.Tasks)
	ws, _ := snap.Workspace(testutil.DefaultWorkspace)
	assert.Empty(t, ws.Projects)

	output, err = cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{string(testutil.DefaultProject), "--force", "--json"})
	assert.Error(t, err)
	assert.Equal(t, "PROJECT_NOT_FOUND", cli.ErrorCode(t, output))
}

func TestListProjects(t *testing.T) {
	app := cli.SetupCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
	assert.NoError(t, err)
	assert.Equal(t, string(testutil.DefaultProject), strings.TrimSpace(output))

	output, err = cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--workspace", "w-missing", "--json"})
	assert.Error(t, err)
	assert.Equal(t, "WORKSPACE_NOT_FOUND", cli.ErrorCode(t, output))
}
