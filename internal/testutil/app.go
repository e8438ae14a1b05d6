// Package testutil builds apps and fixtures for tests
package testutil

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/thenoetrevino/flowforge/internal/app"
	"github.com/thenoetrevino/flowforge/internal/config"
	"github.com/thenoetrevino/flowforge/internal/models"
	"github.com/thenoetrevino/flowforge/internal/storage"
	"github.com/thenoetrevino/flowforge/internal/types"
)

// FixedNow is the clock every test app runs on
var FixedNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

// Ids of the hierarchy a fresh store starts with
const (
	DefaultWorkspace types.WorkspaceID = "w-1"
	DefaultProject   types.ProjectID   = "p-1"
	DefaultBoard     types.BoardID     = "b-1"

	ColumnTodo       types.ColumnID = "col-1"
	ColumnInProgress types.ColumnID = "col-2"
	ColumnReview     types.ColumnID = "col-3"
	ColumnDone       types.ColumnID = "col-4"
)

// QuietLogger discards everything
func QuietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

// TestConfig returns defaults pointed at a temporary data directory
func TestConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.DataDir = t.TempDir()
	cfg.Backend = backend
	return cfg
}

// SetupTestApp creates an in-memory app on the fixed clock. It starts with the
// default workspace, project, and board.
func SetupTestApp(t *testing.T, opts ...app.Option) *app.App {
	t.Helper()
	base := []app.Option{
		app.WithSlot(storage.NewMemorySlot()),
		app.WithLogger(QuietLogger()),
		app.WithClock(func() time.Time { return FixedNow }),
	}
	a, err := app.New(context.Background(), TestConfig(t, config.BackendMemory), append(base, opts...)...)
	if err != nil {
		t.Fatalf("Failed to create test app: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a
}

// SetupSQLiteTestApp creates an app backed by a SQLite file in a temp dir
func SetupSQLiteTestApp(t *testing.T) *app.App {
	t.Helper()
	a, err := app.New(context.Background(), TestConfig(t, config.BackendSQLite),
		app.WithLogger(QuietLogger()),
		app.WithClock(func() time.Time { return FixedNow }),
	)
	if err != nil {
		t.Fatalf("Failed to create sqlite test app: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a
}

// CreateTestTask creates a task at the end of column and returns its id
func CreateTestTask(t *testing.T, a *app.App, column types.ColumnID, title string) types.TaskID {
	t.Helper()
	return CreateTestTaskWith(t, a, models.NewTask{ColumnID: column, Title: title})
}

// CreateTestTaskWith creates a task from data and returns its id
func CreateTestTaskWith(t *testing.T, a *app.App, data models.NewTask) types.TaskID {
	t.Helper()
	id := a.Store.CreateTask(context.Background(), data)
	if id == "" {
		t.Fatalf("Failed to create task %q in column %s", data.Title, data.ColumnID)
	}
	return id
}

// CreateTestBoard creates a project and a board with the given columns under
// the default workspace
func CreateTestBoard(t *testing.T, a *app.App, name string, columns ...string) models.Board {
	t.Helper()
	ctx := context.Background()
	projectID := a.Store.CreateProject(ctx, DefaultWorkspace, name+" project")
	if projectID == "" {
		t.Fatal("Failed to create test project")
	}
	boardID := a.Store.CreateBoard(ctx, projectID, name, columns...)
	board, ok := a.Store.GetState().Board(boardID)
	if !ok {
		t.Fatalf("Failed to create test board %q", name)
	}
	return board
}
