// Package store owns the canonical snapshot of the entity graph. Every operation
// computes a new snapshot from the current one, persists it, and then notifies
// subscribers; nothing is observable until all three have happened.
package store

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/thenoetrevino/flowforge/internal/events"
	"github.com/thenoetrevino/flowforge/internal/idgen"
	"github.com/thenoetrevino/flowforge/internal/models"
	"github.com/thenoetrevino/flowforge/internal/types"
)

// Persister is the persistence layer as the store sees it
type Persister interface {
	Load(ctx context.Context) models.Snapshot
	Save(ctx context.Context, snap models.Snapshot) error
}

// Store is the mutation engine. It is safe for use from multiple goroutines:
// operations are totally ordered by a single commit lock, and listeners run
// after the lock is released so they may call back into the store.
type Store struct {
	mu    sync.Mutex
	state models.Snapshot
	seq   int64

	persister      Persister
	notifier       events.EventPublisher
	ids            idgen.Generator
	now            func() time.Time
	logger         *slog.Logger
	defaultColumns []string
	metrics        *Metrics
}

// Option configures a Store
type Option func(*Store)

// WithIDGenerator sets the identifier generator (default idgen.UUID)
func WithIDGenerator(gen idgen.Generator) Option {
	return func(s *Store) {
		if gen != nil {
			s.ids = gen
		}
	}
}

// WithClock sets the clock used for creation dates and event timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger for the store
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDefaultColumns sets the column names a board gets when created without columns
func WithDefaultColumns(names []string) Option {
	return func(s *Store) {
		if len(names) > 0 {
			s.defaultColumns = slices.Clone(names)
		}
	}
}

// New creates a store whose initial state comes from persister.Load
func New(ctx context.Context, persister Persister, notifier events.EventPublisher, opts ...Option) *Store {
	s := &Store{
		persister:      persister,
		notifier:       notifier,
		ids:            idgen.NewUUID(),
		now:            time.Now,
		logger:         slog.Default(),
		defaultColumns: slices.Clone(models.DefaultColumnNames),
		metrics:        NewMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.notifier == nil {
		s.notifier = events.NewNotifier()
	}
	s.state = persister.Load(ctx)
	return s
}

// GetState returns the current snapshot. It shares memory with the store and
// must not be modified; use Clone for a mutable copy.
func (s *Store) GetState() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to be called after every committed mutation and
// returns a function that removes it
func (s *Store) Subscribe(fn events.Listener) (unsubscribe func()) {
	return s.notifier.Subscribe(fn)
}

// SelectTask returns the task with the given id
func (s *Store) SelectTask(id types.TaskID) (models.Task, bool) {
	return s.GetState().Task(id)
}

// Metrics returns the store's counters
func (s *Store) Metrics() *Metrics {
	return s.metrics
}

// transform computes the next snapshot. ok is false when a referenced entity
// does not exist, in which case nothing is persisted and nobody is notified.
type transform func(cur models.Snapshot) (next models.Snapshot, ok bool)

// commit is the single write path: compute, persist, publish
func (s *Store) commit(ctx context.Context, op events.EventType, entityID string, fn transform) bool {
	if !s.apply(ctx, op, entityID, fn) {
		return false
	}
	s.notifier.Flush()
	return true
}

func (s *Store) apply(ctx context.Context, op events.EventType, entityID string, fn transform) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := fn(s.state)
	if !ok {
		s.metrics.IncNoOps()
		s.logger.Debug("mutation skipped, nothing to change", "op", op, "id", entityID)
		return false
	}

	// Best effort: a failed write is logged by the persister and the new state
	// still becomes current
	if err := s.persister.Save(ctx, next); err != nil {
		s.metrics.IncPersistFailures()
	}

	s.state = next
	s.seq++
	now := s.now()
	s.metrics.IncCommits(now)
	s.notifier.Enqueue(events.Event{
		Type:      op,
		EntityID:  entityID,
		Sequence:  s.seq,
		Timestamp: now,
		Snapshot:  next,
	})
	return true
}

func (s *Store) newID(prefix string) string {
	return s.ids.New(prefix)
}
