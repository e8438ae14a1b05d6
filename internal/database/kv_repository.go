package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// KVRepo stores opaque values under string keys. It is the durable slot the
// persistence layer writes the versioned snapshot to.
type KVRepo struct {
	db *sql.DB
}

// NewKVRepo wraps an initialized database connection
func NewKVRepo(db *sql.DB) *KVRepo {
	return &KVRepo{db: db}
}

// SlotInfo describes a stored slot without its value
type SlotInfo struct {
	Key       string
	Size      int
	Revision  int64
	UpdatedAt time.Time
}

// Get returns the value stored under key. ok is false when the key is absent.
func (r *KVRepo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv_slots WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading slot %q: %w", key, err)
	}
	return value, true, nil
}

// Put replaces the value stored under key
func (r *KVRepo) Put(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kv_slots (key, value, updated_at, revision)
		VALUES (?, ?, CURRENT_TIMESTAMP, 1)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP,
			revision = kv_slots.revision + 1`,
		key, value)
	if err != nil {
		return fmt.Errorf("writing slot %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (r *KVRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM kv_slots WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting slot %q: %w", key, err)
	}
	return nil
}

// Info returns metadata about a slot. ok is false when the key is absent.
func (r *KVRepo) Info(ctx context.Context, key string) (SlotInfo, bool, error) {
	info := SlotInfo{Key: key}
	var updatedAt sql.NullTime
	err := r.db.QueryRowContext(ctx,
		`SELECT length(value), revision, updated_at FROM kv_slots WHERE key = ?`, key,
	).Scan(&info.Size, &info.Revision, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return SlotInfo{}, false, nil
	}
	if err != nil {
		return SlotInfo{}, false, fmt.Errorf("reading slot info %q: %w", key, err)
	}
	if updatedAt.Valid {
		info.UpdatedAt = updatedAt.Time
	}
	return info, true, nil
}

// Keys lists every stored key in ascending order
func (r *KVRepo) Keys(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key FROM kv_slots ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("listing slots: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scanning slot key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
