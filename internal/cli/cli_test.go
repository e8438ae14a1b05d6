package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/flowforge/internal/testutil"
)

func TestGetCLIFromContext_InjectedApp(t *testing.T) {
	a := testutil.SetupTestApp(t)

	c, err := GetCLIFromContext(WithApp(context.Background(), a))
	assert.NoError(t, err)
	assert.Same(t, a, c.App)

	// closing a borrowed app must leave it usable
	assert.NoError(t, c.Close())
	assert.NotEmpty(t, a.Store.CreateWorkspace(context.Background(), "Still open"))
}

func TestNewCLI_UsesConfigPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FLOWFORGE_DATA_DIR", dir)
	t.Setenv("FLOWFORGE_BACKEND", "memory")

	ctx := WithConfigPath(context.Background(), filepath.Join(dir, "missing.yaml"))
	path, err := ConfigPath(ctx)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "missing.yaml"), path)

	c, err := GetCLIFromContext(ctx)
	if !assert.NoError(t, err) {
		return
	}
	defer c.Close()
	assert.Equal(t, "memory", c.App.Config.Backend)
	assert.Equal(t, dir, c.App.Config.DataDir)
}
