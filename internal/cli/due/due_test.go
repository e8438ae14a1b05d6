package due

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/flowforge/internal/models"
	"github.com/thenoetrevino/flowforge/internal/testutil"
	"github.com/thenoetrevino/flowforge/internal/testutil/cli"
)

func TestDue(t *testing.T) {
	app := cli.SetupCLITest(t)
	overdue := testutil.CreateTestTaskWith(t, app, models.NewTask{
		ColumnID: testutil.ColumnTodo, Title: "Late", DueDate: "2024-06-01",
	})
	soon := testutil.CreateTestTaskWith(t, app, models.NewTask{
		ColumnID: testutil.ColumnTodo, Title: "Tonight", DueDate: "2024-06-10T20:00:00Z",
	})
	later := testutil.CreateTestTaskWith(t, app, models.NewTask{
		ColumnID: testutil.ColumnTodo, Title: "Next month", DueDate: "2024-07-01",
	})
	testutil.CreateTestTask(t, app, testutil.ColumnTodo, "No date")

	t.Run("default window", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, DueCmd(), []string{"--quiet"})
		assert.NoError(t, err)
		assert.Equal(t, []string{string(overdue), string(soon)}, strings.Fields(output))
	})

	t.Run("wider window", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, DueCmd(), []string{"--window", "720h", "--quiet"})
		assert.NoError(t, err)
		assert.Equal(t, []string{string(overdue), string(soon), string(later)}, strings.Fields(output))
	})

	t.Run("json reminders", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, DueCmd(), []string{"--json"})
		assert.NoError(t, err)
		list := cli.ParseJSON(t, output)["data"].([]any)
		if assert.Len(t, list, 2) {
			first := list[0].(map[string]any)
			assert.Equal(t, "overdue", first["type"])
			assert.Equal(t, "Late", first["title"])
		}
	})

	t.Run("human output", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, DueCmd(), []string{})
		assert.NoError(t, err)
		assert.Contains(t, output, "overdue")
		assert.Contains(t, output, "Tonight")
	})
}

func TestDue_NotificationsDisabled(t *testing.T) {
	app := cli.SetupCLITest(t)
	testutil.CreateTestTaskWith(t, app, models.NewTask{
		ColumnID: testutil.ColumnTodo, Title: "Late", DueDate: "2024-06-01",
	})
	disabled := false
	app.Config.Notifications.Enabled = &disabled

	output, err := cli.ExecuteCLICommand(t, app, DueCmd(), []string{})
	assert.NoError(t, err)
	assert.Contains(t, output, "Reminders are turned off")

	output, err = cli.ExecuteCLICommand(t, app, DueCmd(), []string{"--json"})
	assert.NoError(t, err)
	assert.Empty(t, cli.ParseJSON(t, output)["data"])
}
