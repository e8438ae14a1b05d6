package database

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	_ "modernc.org/sqlite"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *KVRepo {
	t.Helper()
	db, err := InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewKVRepo(db)
}

// ============================================================================
// SLOT TESTS
// ============================================================================

func TestKVRepo_GetMissingKey(t *testing.T) {
	t.Parallel()
	repo := setupTestDB(t)

	value, ok, err := repo.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if ok || value != nil {
		t.Errorf("Expected missing key, got ok=%v value=%q", ok, value)
	}
}

func TestKVRepo_PutGetOverwrite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := setupTestDB(t)

	if err := repo.Put(ctx, "state", []byte(`{"v":1}`)); err != nil {
		t.Fatalf("Failed to put: %v", err)
	}
	if err := repo.Put(ctx, "state", []byte(`{"v":2}`)); err != nil {
		t.Fatalf("Failed to overwrite: %v", err)
	}

	value, ok, err := repo.Get(ctx, "state")
	if err != nil || !ok {
		t.Fatalf("Failed to get: ok=%v err=%v", ok, err)
	}
	if string(value) != `{"v":2}` {
		t.Errorf("Expected overwritten value, got %s", value)
	}

	info, ok, err := repo.Info(ctx, "state")
	if err != nil || !ok {
		t.Fatalf("Failed to get info: ok=%v err=%v", ok, err)
	}
	if info.Revision != 2 {
		t.Errorf("Expected revision 2, got %d", info.Revision)
	}
	if info.Size != len(`{"v":2}`) {
		t.Errorf("Expected size %d, got %d", len(`{"v":2}`), info.Size)
	}
}

func TestKVRepo_DeleteAndKeys(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := setupTestDB(t)

	for _, k := range []string{"b", "a", "c"} {
		if err := repo.Put(ctx, k, []byte(k)); err != nil {
			t.Fatalf("Failed to put %s: %v", k, err)
		}
	}
	if err := repo.Delete(ctx, "b"); err != nil {
		t.Fatalf("Failed to delete: %v", err)
	}
	if err := repo.Delete(ctx, "never-existed"); err != nil {
		t.Errorf("Deleting an absent key should not fail: %v", err)
	}

	keys, err := repo.Keys(ctx)
	if err != nil {
		t.Fatalf("Failed to list keys: %v", err)
	}
	if !reflect.DeepEqual(keys, []string{"a", "c"}) {
		t.Errorf("Expected keys [a c], got %v", keys)
	}
}

// ============================================================================
// PERSISTENCE TESTS
// ============================================================================

func TestInitDB_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "flowforge.db")

	db, err := InitDB(ctx, path)
	if err != nil {
		t.Fatalf("Failed to init database: %v", err)
	}
	if err := NewKVRepo(db).Put(ctx, "state", []byte("hello")); err != nil {
		t.Fatalf("Failed to put: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Failed to close: %v", err)
	}

	// simulate app restart
	db, err = InitDB(ctx, path)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}
	defer db.Close()

	value, ok, err := NewKVRepo(db).Get(ctx, "state")
	if err != nil || !ok {
		t.Fatalf("Expected value after reopen: ok=%v err=%v", ok, err)
	}
	if string(value) != "hello" {
		t.Errorf("Expected 'hello', got %q", value)
	}

	version, err := SchemaVersion(ctx, db)
	if err != nil {
		t.Fatalf("Failed to read schema version: %v", err)
	}
	if version != len(schemaMigrations) {
		t.Errorf("Expected schema version %d, got %d", len(schemaMigrations), version)
	}
}
