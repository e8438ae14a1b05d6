package use

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/flowforge/internal/testutil"
	"github.com/thenoetrevino/flowforge/internal/testutil/cli"
)

func TestUseBoard(t *testing.T) {
	app := cli.SetupCLITest(t)

	t.Run("prints export for eval", func(t *testing.T) {
		stdout, stderr, err := cli.ExecuteCLICommandWithInput(t, app, UseCmd(), []string{"board", string(testutil.DefaultBoard)}, "")
		assert.NoError(t, err)
		assert.Equal(t, "export FLOWFORGE_BOARD=b-1\n", stdout)
		assert.Contains(t, stderr, "Main Board")
	})

	t.Run("clear", func(t *testing.T) {
		stdout, _, err := cli.ExecuteCLICommandWithInput(t, app, UseCmd(), []string{"board", "--clear"}, "")
		assert.NoError(t, err)
		assert.Equal(t, "unset FLOWFORGE_BOARD\n", stdout)
	})

	t.Run("dry run writes nothing to stdout", func(t *testing.T) {
		stdout, stderr, err := cli.ExecuteCLICommandWithInput(t, app, UseCmd(), []string{"board", "b-1", "--dry-run"}, "")
		assert.NoError(t, err)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "Would set FLOWFORGE_BOARD=b-1")
	})

	t.Run("unknown board", func(t *testing.T) {
		stdout, _, err := cli.ExecuteCLICommandWithInput(t, app, UseCmd(), []string{"board", "b-missing"}, "")
		assert.Error(t, err)
		assert.NotContains(t, stdout, "export")
	})

	t.Run("missing id", func(t *testing.T) {
		_, _, err := cli.ExecuteCLICommandWithInput(t, app, UseCmd(), []string{"board"}, "")
		assert.Error(t, err)
	})
}

func TestUseBoard_Show(t *testing.T) {
	app := cli.SetupCLITest(t)

	t.Setenv("FLOWFORGE_BOARD", "")
	output, err := cli.ExecuteCLICommand(t, app, UseCmd(), []string{"board", "--show"})
	assert.NoError(t, err)
	assert.Contains(t, output, "No board context set")

	t.Setenv("FLOWFORGE_BOARD", string(testutil.DefaultBoard))
	output, err = cli.ExecuteCLICommand(t, app, UseCmd(), []string{"board", "--show"})
	assert.NoError(t, err)
	assert.Contains(t, output, "Current board: b-1 (Main Board)")
}
