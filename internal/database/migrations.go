package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaMigrations are applied in order; the index+1 is the schema version recorded
// in PRAGMA user_version once the statement has run.
var schemaMigrations = []string{
	// 1: the key-value slot table
	`CREATE TABLE IF NOT EXISTS kv_slots (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	// 2: write counter per slot, used to tell a fresh slot from an overwritten one
	`ALTER TABLE kv_slots ADD COLUMN revision INTEGER NOT NULL DEFAULT 0`,
}

// runMigrations brings the database schema up to date
func runMigrations(ctx context.Context, db *sql.DB) error {
	var version int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	for i := version; i < len(schemaMigrations); i++ {
		err := inTx(ctx, db, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, schemaMigrations[i]); err != nil {
				return err
			}
			// PRAGMA does not accept bound parameters
			_, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", i+1))
			return err
		})
		if err != nil {
			return fmt.Errorf("schema migration %d: %w", i+1, err)
		}
	}

	return nil
}

// SchemaVersion returns the number of schema migrations that have been applied
func SchemaVersion(ctx context.Context, db *sql.DB) (int, error) {
	var version int
	err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version)
	return version, err
}
