package board

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/flowforge/internal/models"
	"github.com/thenoetrevino/flowforge/internal/testutil"
	"github.com/thenoetrevino/flowforge/internal/testutil/cli"
	"github.com/thenoetrevino/flowforge/internal/types"
)

func TestCreateBoard(t *testing.T) {
	app := cli.SetupCLITest(t)

	t.Run("default columns", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(),
			[]string{"--project", string(testutil.DefaultProject), "--name", "Sprint", "--quiet"})
		assert.NoError(t, err)

		board, ok := app.Store.GetState().Board(types.BoardID(strings.TrimSpace(output)))
		assert.True(t, ok)
		names := make([]string, len(board.Columns))
		for i, c := range board.Columns {
			names[i] = c.Name
		}
		assert.Equal(t, models.DefaultColumnNames, names)
	})

	t.Run("explicit columns", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(),
			[]string{"--project", string(testutil.DefaultProject), "--name", "Bugs", "--columns", "New,Fixed", "--json"})
		assert.NoError(t, err)

		data := cli.Data(t, output)
		columns, ok := data["columns"].([]any)
		assert.True(t, ok)
		assert.Len(t, columns, 2)
	})

	t.Run("unknown project", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(),
			[]string{"--project", "p-missing", "--name", "Nowhere", "--json"})
		assert.Error(t, err)
		assert.Equal(t, "PROJECT_NOT_FOUND", cli.ErrorCode(t, output))
	})
}

func TestDeleteBoard_ReportsTasks(t *testing.T) {
	app := cli.SetupCLITest(t)
	testutil.CreateTestTask(t, app, testutil.ColumnTodo, "A")
	testutil.CreateTestTask(t, app, testutil.ColumnDone, "B")

	output, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{string(testutil.DefaultBoard), "--force", "--json"})
	assert.NoError(t, err)

	data := cli.Data(t, output)
	assert.EqualValues(t, 2, data["tasks_deleted"])
	assert.Empty(t, app.Store.GetState().Tasks)

	project, _ := app.Store.GetState().Project(testutil.DefaultProject)
	assert.Empty(t, project.Boards)
}

func TestListBoards(t *testing.T) {
	app := cli.SetupCLITest(t)
	other := testutil.CreateTestBoard(t, app, "Other", "One")

	output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
	assert.NoError(t, err)
	assert.Equal(t, []string{string(testutil.DefaultBoard), string(other.ID)}, strings.Fields(output))

	output, err = cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--project", string(testutil.DefaultProject), "--quiet"})
	assert.NoError(t, err)
	assert.Equal(t, string(testutil.DefaultBoard), strings.TrimSpace(output))
}

func TestShowBoard(t *testing.T) {
	t.Setenv("FLOWFORGE_BOARD", "")
	app := cli.SetupCLITest(t)
	ctx := context.Background()

	high := testutil.CreateTestTaskWith(t, app, models.NewTask{
		ColumnID: testutil.ColumnTodo, Title: "Urgent", Priority: models.PriorityHigh,
	})
	low := testutil.CreateTestTaskWith(t, app, models.NewTask{
		ColumnID: testutil.ColumnInProgress, Title: "Someday", Priority: models.PriorityLow,
	})

	t.Run("human output lists columns and cards", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ShowCmd(), []string{string(testutil.DefaultBoard)})
		assert.NoError(t, err)
		assert.Contains(t, output, "Main Board")
		assert.Contains(t, output, "To Do (1)")
		assert.Contains(t, output, "Urgent")
		assert.Contains(t, output, "Someday")
	})

	t.Run("saved filters apply", func(t *testing.T) {
		priority := models.PriorityHigh
		app.Store.SetFilter(ctx, models.FilterPatch{Priority: &priority})
		defer app.Store.SetFilter(ctx, models.FilterPatch{Priority: new(models.Priority)})

		output, err := cli.ExecuteCLICommand(t, app, ShowCmd(), []string{"--board", string(testutil.DefaultBoard), "--quiet"})
		assert.NoError(t, err)
		assert.Equal(t, []string{string(high)}, strings.Fields(output))

		output, err = cli.ExecuteCLICommand(t, app, ShowCmd(), []string{string(testutil.DefaultBoard), "--all", "--quiet"})
		assert.NoError(t, err)
		assert.Equal(t, []string{string(high), string(low)}, strings.Fields(output))
	})

	t.Run("json groups tasks by column", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ShowCmd(), []string{string(testutil.DefaultBoard), "--json"})
		assert.NoError(t, err)
		data := cli.Data(t, output)
		assert.Equal(t, false, data["filtered"])
		columns := data["columns"].([]any)
		assert.Len(t, columns, 4)
		todo := columns[0].(map[string]any)
		assert.Len(t, todo["tasks"], 1)
	})

	t.Run("board from environment", func(t *testing.T) {
		t.Setenv("FLOWFORGE_BOARD", string(testutil.DefaultBoard))
		output, err := cli.ExecuteCLICommand(t, app, ShowCmd(), []string{"--quiet"})
		assert.NoError(t, err)
		assert.Len(t, strings.Fields(output), 2)
	})

	t.Run("no board", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ShowCmd(), []string{"--json"})
		assert.Error(t, err)
		assert.Equal(t, "NO_BOARD", cli.ErrorCode(t, output))
	})

	t.Run("invalid expression", func(t *testing.T) {
		expr := "priority =="
		app.Store.SetFilter(ctx, models.FilterPatch{Expr: &expr})
		defer app.Store.SetFilter(ctx, models.FilterPatch{Expr: new(string)})

		output, err := cli.ExecuteCLICommand(t, app, ShowCmd(), []string{string(testutil.DefaultBoard), "--json"})
		assert.Error(t, err)
		assert.Equal(t, "INVALID_EXPRESSION", cli.ErrorCode(t, output))
	})
}
