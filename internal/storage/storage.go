// Package storage persists the store's snapshot to a durable slot as a versioned
// JSON wrapper and upgrades old wrappers through the migration chain on load.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/flowforge/internal/models"
)

// DefaultKey is the slot key the snapshot is stored under
const DefaultKey = "flowforge_state_v2"

// wrapper is the persisted form: {"v": <schema version>, "data": <snapshot>}
type wrapper struct {
	V    *int            `json:"v"`
	Data json.RawMessage `json:"data"`
}

// Persister reads and writes the snapshot. Load never fails and Save never
// retries: availability is preferred over durability.
type Persister struct {
	slot   Slot
	key    string
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Persister
type Option func(*Persister)

// WithKey stores the snapshot under key instead of DefaultKey
func WithKey(key string) Option {
	return func(p *Persister) {
		if key != "" {
			p.key = key
		}
	}
}

// WithLogger sets the logger persistence faults are reported to
func WithLogger(logger *slog.Logger) Option {
	return func(p *Persister) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithClock sets the clock used to stamp the default snapshot
func WithClock(now func() time.Time) Option {
	return func(p *Persister) {
		if now != nil {
			p.now = now
		}
	}
}

// NewPersister creates a persister writing to slot
func NewPersister(slot Slot, opts ...Option) *Persister {
	p := &Persister{
		slot:   slot,
		key:    DefaultKey,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Key returns the slot key in use
func (p *Persister) Key() string {
	return p.key
}

// Load returns the stored snapshot, migrated to CurrentVersion. When nothing is
// stored, or reading, parsing or migrating fails, it returns DefaultSnapshot.
// Stored data is never replaced by the default while it can still be decoded.
func (p *Persister) Load(ctx context.Context) models.Snapshot {
	snap, err := p.Read(ctx)
	if err != nil {
		if !errors.Is(err, ErrEmptySlot) {
			p.logger.Warn("load error, using default state", "key", p.key, "error", err)
		}
		return DefaultSnapshot(p.now())
	}
	return snap
}

// Read is Load without the fallback; it reports why the stored state is unusable
func (p *Persister) Read(ctx context.Context) (models.Snapshot, error) {
	raw, ok, err := p.slot.Get(ctx, p.key)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("reading slot: %w", err)
	}
	if !ok || len(raw) == 0 {
		return models.Snapshot{}, ErrEmptySlot
	}
	return Decode(raw)
}

// Save writes the snapshot. A failure is logged and returned; nothing is retried.
func (p *Persister) Save(ctx context.Context, snap models.Snapshot) error {
	data, err := Encode(snap)
	if err != nil {
		p.logger.Warn("save error", "key", p.key, "error", err)
		return err
	}
	if err := p.slot.Put(ctx, p.key, data); err != nil {
		p.logger.Warn("save error", "key", p.key, "error", err)
		return fmt.Errorf("writing slot: %w", err)
	}
	return nil
}

// Encode wraps the snapshot with the current version
func Encode(snap models.Snapshot) ([]byte, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	v := CurrentVersion
	return json.Marshal(wrapper{V: &v, Data: data})
}

// Decode unwraps a stored snapshot, running migrations when its version is older
// than CurrentVersion. A wrapper without "v" is treated as version 0. Data from
// a newer version is decoded as is; fields this build does not know are lost.
func Decode(raw []byte) (models.Snapshot, error) {
	var w wrapper
	if err := json.Unmarshal(raw, &w); err != nil {
		return models.Snapshot{}, fmt.Errorf("parsing stored state: %w", err)
	}
	if len(w.Data) == 0 || string(w.Data) == "null" {
		return models.Snapshot{}, ErrMissingData
	}

	version := 0
	if w.V != nil {
		version = *w.V
	}

	data := []byte(w.Data)
	if version < CurrentVersion {
		var obj map[string]any
		if err := json.Unmarshal(data, &obj); err != nil {
			return models.Snapshot{}, fmt.Errorf("parsing stored state data: %w", err)
		}
		migrated, err := Migrate(version, obj)
		if err != nil {
			return models.Snapshot{}, err
		}
		if data, err = json.Marshal(migrated); err != nil {
			return models.Snapshot{}, fmt.Errorf("%w: re-encoding: %w", ErrMigration, err)
		}
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return models.Snapshot{}, fmt.Errorf("decoding snapshot: %w", err)
	}
	return snap, nil
}
