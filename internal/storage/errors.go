package storage

import "errors"

var (
	// ErrEmptySlot indicates nothing has been persisted yet
	ErrEmptySlot = errors.New("no stored state")

	// ErrMissingData indicates a wrapper without a data object
	ErrMissingData = errors.New("stored state has no data")

	// ErrFutureVersion indicates state written by a newer schema than this build knows
	ErrFutureVersion = errors.New("stored state version is newer than supported")

	// ErrMigration indicates a failure inside the migration chain
	ErrMigration = errors.New("state migration failed")
)
