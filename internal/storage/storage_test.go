package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/thenoetrevino/flowforge/internal/models"
	"github.com/thenoetrevino/flowforge/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type failingSlot struct {
	getErr error
	putErr error
}

func (f failingSlot) Get(context.Context, string) ([]byte, bool, error) {
	return nil, f.getErr == nil, f.getErr
}

func (f failingSlot) Put(context.Context, string, []byte) error {
	return f.putErr
}

func newTestPersister(t *testing.T, slot Slot) (*Persister, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	return NewPersister(slot,
		WithLogger(logger),
		WithClock(func() time.Time { return fixedNow }),
	), &buf
}

func sampleSnapshot() models.Snapshot {
	snap := models.Snapshot{
		Workspaces: []models.Workspace{
			{ID: "w-1", Name: "Home", Projects: []types.ProjectID{"p-1"}},
			{ID: "w-2", Name: "Empty", Projects: []types.ProjectID{}},
		},
		Projects: []models.Project{{ID: "p-1", Name: "Alpha", Boards: []types.BoardID{"b-1"}}},
		Boards: []models.Board{{ID: "b-1", Name: "Main", Columns: []models.Column{
			{ID: "c-1", Name: "To Do"}, {ID: "c-2", Name: "Done"},
		}}},
		Tasks: []models.Task{
			{
				ID: "t-1", Title: "First", Status: "c-1", Position: 1, CreatedDate: 100,
				Priority: models.PriorityHigh, Assignee: "ann", DueDate: "2024-06-02",
				Tags:        []string{"docs"},
				ActivityLog: []models.ActivityEntry{{Type: "created", Message: "Task created", TS: 100}},
				Extra:       map[string]any{"estimate": float64(3), "reviewer": "sam"},
			},
			{ID: "t-2", Title: "Second", Status: "c-2", Position: 1, CreatedDate: 200},
		},
		Filters: models.Filters{Q: "doc", Tags: []string{}, Due: models.DueOverdue},
		Meta:    models.Meta{CreatedAt: 42},
	}
	return snap
}

// ============================================================================
// ROUND TRIP TESTS
// ============================================================================

func TestSaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	p, _ := newTestPersister(t, NewMemorySlot())
	want := sampleSnapshot()

	if err := p.Save(ctx, want); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}
	got := p.Load(ctx)

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Round trip mismatch:\n got  %+v\n want %+v", got, want)
	}
}

func TestEncode_WritesVersionedWrapper(t *testing.T) {
	data, err := Encode(sampleSnapshot())
	if err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}
	if !strings.HasPrefix(string(data), `{"v":2,"data":{`) {
		t.Errorf("Unexpected wrapper layout: %s", data)
	}
}

func TestWithKey(t *testing.T) {
	ctx := context.Background()
	slot := NewMemorySlot()
	p := NewPersister(slot, WithKey("custom"))

	if err := p.Save(ctx, sampleSnapshot()); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}
	if _, ok, _ := slot.Get(ctx, "custom"); !ok {
		t.Error("Expected snapshot under custom key")
	}
	if _, ok, _ := slot.Get(ctx, DefaultKey); ok {
		t.Error("Did not expect snapshot under default key")
	}
}

// ============================================================================
// FALLBACK TESTS
// ============================================================================

func TestLoad_FallsBackToDefault(t *testing.T) {
	tests := []struct {
		name     string
		stored   string
		logsWarn bool
	}{
		{"empty slot", "", false},
		{"garbage", "{not json", true},
		{"null data", `{"v":2,"data":null}`, true},
		{"wrong shape", `{"v":2,"data":[1,2,3]}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			slot := NewMemorySlot()
			if tt.stored != "" {
				_ = slot.Put(ctx, DefaultKey, []byte(tt.stored))
			}
			p, logs := newTestPersister(t, slot)

			got := p.Load(ctx)

			if !reflect.DeepEqual(got, DefaultSnapshot(fixedNow)) {
				t.Errorf("Expected default snapshot, got %+v", got)
			}
			if hasWarn := strings.Contains(logs.String(), "load error"); hasWarn != tt.logsWarn {
				t.Errorf("Expected warning logged=%v, logs: %s", tt.logsWarn, logs.String())
			}
		})
	}
}

func TestLoad_NewerVersionKeepsData(t *testing.T) {
	ctx := context.Background()
	slot := NewMemorySlot()
	stored := `{"v":3,"data":{"workspaces":[{"id":"w-mine","name":"Mine","projects":[]}],` +
		`"projects":[],"boards":[],"tasks":[],"filters":{},"meta":{"createdAt":7},"future":true}}`
	_ = slot.Put(ctx, DefaultKey, []byte(stored))
	p, logs := newTestPersister(t, slot)

	got := p.Load(ctx)
	if len(got.Workspaces) != 1 || got.Workspaces[0].ID != "w-mine" {
		t.Fatalf("Expected stored workspace w-mine, got %+v", got.Workspaces)
	}
	if strings.Contains(logs.String(), "load error") {
		t.Errorf("Did not expect a load error, logs: %s", logs.String())
	}

	// Saving what was loaded must not put the default hierarchy in its place
	if err := p.Save(ctx, got); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}
	raw, _, _ := slot.Get(ctx, DefaultKey)
	if !strings.Contains(string(raw), "w-mine") || strings.Contains(string(raw), `"w-1"`) {
		t.Errorf("Expected stored data to survive a save, got %s", raw)
	}
}

func TestLoad_SlotReadError(t *testing.T) {
	p, logs := newTestPersister(t, failingSlot{getErr: errors.New("disk gone")})

	got := p.Load(context.Background())

	if got.Meta.CreatedAt != fixedNow.UnixMilli() {
		t.Errorf("Expected default snapshot stamped with clock, got meta %+v", got.Meta)
	}
	if !strings.Contains(logs.String(), "disk gone") {
		t.Errorf("Expected read error in logs, got %s", logs.String())
	}
}

func TestSave_FailureIsLoggedAndReturned(t *testing.T) {
	p, logs := newTestPersister(t, failingSlot{putErr: errors.New("quota exceeded")})

	err := p.Save(context.Background(), sampleSnapshot())

	if err == nil {
		t.Fatal("Expected save error")
	}
	if !strings.Contains(logs.String(), "save error") || !strings.Contains(logs.String(), "quota exceeded") {
		t.Errorf("Expected save error to be logged, got %s", logs.String())
	}
}

func TestDefaultSnapshot(t *testing.T) {
	snap := DefaultSnapshot(fixedNow)

	if len(snap.Workspaces) != 1 || snap.Workspaces[0].Projects[0] != "p-1" {
		t.Fatalf("Unexpected workspaces: %+v", snap.Workspaces)
	}
	board := snap.Boards[0]
	var names []string
	for _, c := range board.Columns {
		names = append(names, c.Name)
	}
	if !reflect.DeepEqual(names, models.DefaultColumnNames) {
		t.Errorf("Expected default columns %v, got %v", models.DefaultColumnNames, names)
	}
	if board.Columns[3].ID != "col-4" {
		t.Errorf("Expected col-4, got %s", board.Columns[3].ID)
	}
}

// ============================================================================
// MIGRATION TESTS
// ============================================================================

func TestDecode_MigratesVersionZero(t *testing.T) {
	raw := `{"v":0,"data":{"workspaces":[{"id":"w","name":"W"}],"tasks":[{"id":"t","title":"x","columnId":"c1","position":1}]}}`

	snap, err := Decode([]byte(raw))
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}

	if snap.Workspaces[0].Projects == nil {
		t.Error("Expected migrated workspace to have a project list")
	}
	if snap.Projects == nil || snap.Boards == nil {
		t.Error("Expected missing collections to be created")
	}
	if snap.Tasks[0].Status != "c1" {
		t.Errorf("Expected columnId to become status, got %q", snap.Tasks[0].Status)
	}
	if _, ok := snap.Tasks[0].Extra["columnId"]; ok {
		t.Error("Expected legacy columnId to be removed")
	}
	if snap.Filters.Tags == nil {
		t.Error("Expected filter tags to be initialised")
	}
}

func TestDecode_MissingVersionIsZero(t *testing.T) {
	snap, err := Decode([]byte(`{"data":{"tasks":[]}}`))
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if snap.Workspaces == nil {
		t.Error("Expected v0 migration to run and create workspaces")
	}
}

func TestMigrate_StatusWinsOverColumnID(t *testing.T) {
	data := map[string]any{
		"tasks": []any{map[string]any{"id": "t", "status": "keep", "columnId": "drop"}},
	}

	out, err := Migrate(1, data)
	if err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	task := out["tasks"].([]any)[0].(map[string]any)
	if task["status"] != "keep" {
		t.Errorf("Expected existing status to be kept, got %v", task["status"])
	}
	if _, ok := task["columnId"]; ok {
		t.Error("Expected columnId to be dropped")
	}
	// input must be untouched
	orig := data["tasks"].([]any)[0].(map[string]any)
	if _, ok := orig["columnId"]; !ok {
		t.Error("Migration mutated its input")
	}
}

func TestMigrate_Errors(t *testing.T) {
	if _, err := Migrate(CurrentVersion+1, map[string]any{}); !errors.Is(err, ErrFutureVersion) {
		t.Errorf("Expected ErrFutureVersion, got %v", err)
	}
	if _, err := Migrate(-1, map[string]any{}); !errors.Is(err, ErrMigration) {
		t.Errorf("Expected ErrMigration for unknown version, got %v", err)
	}
	bad := map[string]any{"tasks": []any{"not an object"}}
	if _, err := Migrate(1, bad); !errors.Is(err, ErrMigration) {
		t.Errorf("Expected ErrMigration for malformed task, got %v", err)
	}
}

func TestDecode_EveryOldVersionReachesCurrent(t *testing.T) {
	for from := 0; from < CurrentVersion; from++ {
		raw := fmt.Sprintf(`{"v":%d,"data":{}}`, from)

		snap, err := Decode([]byte(raw))
		if err != nil {
			t.Fatalf("Decode from version %d failed: %v", from, err)
		}
		if snap.Workspaces == nil || snap.Projects == nil || snap.Boards == nil || snap.Tasks == nil {
			t.Errorf("Version %d: expected every collection to exist, got %+v", from, snap)
		}
		if snap.Filters.Tags == nil {
			t.Errorf("Version %d: expected filter tags to exist", from)
		}

		// re-encoding writes the current version
		data, err := Encode(snap)
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		if !strings.Contains(string(data), fmt.Sprintf(`"v":%d`, CurrentVersion)) {
			t.Errorf("Expected current version in %s", data)
		}
	}
}
