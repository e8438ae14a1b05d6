package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/flowforge/internal/config"
	"github.com/thenoetrevino/flowforge/internal/database"
	"github.com/thenoetrevino/flowforge/internal/events"
	"github.com/thenoetrevino/flowforge/internal/filter"
	"github.com/thenoetrevino/flowforge/internal/idgen"
	"github.com/thenoetrevino/flowforge/internal/reminders"
	"github.com/thenoetrevino/flowforge/internal/storage"
	"github.com/thenoetrevino/flowforge/internal/store"
)

// App holds the store and everything wired around it.
// This is the main application container that manages resource lifecycles.
type App struct {
	Config *config.Config
	Store  *store.Store
	Filter *filter.Evaluator

	db        *sql.DB // nil unless the sqlite backend is in use
	kv        *database.KVRepo
	persister *storage.Persister
	logger    *slog.Logger
	now       func() time.Time
}

// New opens the configured backend, loads the snapshot, and builds the store.
// This is the single entry point for creating the application container.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	options := appConfig{
		logger: slog.Default(),
		ids:    idgen.NewUUID(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&options)
	}

	a := &App{
		Config: cfg,
		Filter: filter.New(),
		logger: options.logger,
		now:    options.now,
	}

	slot := options.slot
	if slot == nil {
		switch cfg.Backend {
		case config.BackendMemory:
			slot = storage.NewMemorySlot()
		default:
			db, err := database.InitDB(ctx, cfg.DatabasePath())
			if err != nil {
				return nil, fmt.Errorf("open database: %w", err)
			}
			a.db = db
			a.kv = database.NewKVRepo(db)
			slot = a.kv
		}
	}

	a.persister = storage.NewPersister(slot,
		storage.WithKey(cfg.StorageKey),
		storage.WithLogger(options.logger),
		storage.WithClock(options.now),
	)

	notifier := options.eventClient
	if notifier == nil {
		notifier = events.NewNotifier()
	}

	storeOpts := []store.Option{
		store.WithIDGenerator(options.ids),
		store.WithClock(options.now),
		store.WithLogger(options.logger),
	}
	if len(cfg.DefaultColumns) > 0 {
		storeOpts = append(storeOpts, store.WithDefaultColumns(cfg.DefaultColumns))
	}
	a.Store = store.New(ctx, a.persister, notifier, storeOpts...)

	a.logger.Debug("app initialized", "backend", cfg.Backend, "key", cfg.StorageKey)
	return a, nil
}

// Now returns the app clock's current time
func (a *App) Now() time.Time {
	return a.now()
}

// Reminders lists overdue and due-soon tasks, or nothing when notifications
// are turned off in the config
func (a *App) Reminders() []reminders.Reminder {
	if !a.Config.NotificationsEnabled() {
		return []reminders.Reminder{}
	}
	return reminders.Check(a.Store.GetState(), a.now(), a.Config.DueSoonWindow(), time.Local)
}

// Status describes where the snapshot lives and how the store has been used
type Status struct {
	Backend       string                `json:"backend"`
	Key           string                `json:"key"`
	Path          string                `json:"path,omitempty"`
	SchemaVersion int                   `json:"schema_version,omitempty"`
	Revision      int64                 `json:"revision,omitempty"`
	Size          int                   `json:"size,omitempty"`
	UpdatedAt     time.Time             `json:"updated_at,omitempty"`
	Workspaces    int                   `json:"workspaces"`
	Projects      int                   `json:"projects"`
	Boards        int                   `json:"boards"`
	Tasks         int                   `json:"tasks"`
	Metrics       store.MetricsSnapshot `json:"metrics"`
}

// Status reports storage details and entity counts
func (a *App) Status(ctx context.Context) (Status, error) {
	snap := a.Store.GetState()
	st := Status{
		Backend:    a.Config.Backend,
		Key:        a.persister.Key(),
		Workspaces: len(snap.Workspaces),
		Projects:   len(snap.Projects),
		Boards:     len(snap.Boards),
		Tasks:      len(snap.Tasks),
		Metrics:    a.Store.Metrics().Snapshot(),
	}
	if a.db == nil {
		return st, nil
	}

	st.Path = a.Config.DatabasePath()
	version, err := database.SchemaVersion(ctx, a.db)
	if err != nil {
		return st, fmt.Errorf("read schema version: %w", err)
	}
	st.SchemaVersion = version

	info, ok, err := a.kv.Info(ctx, a.persister.Key())
	if err != nil {
		return st, fmt.Errorf("read slot info: %w", err)
	}
	if ok {
		st.Revision = info.Revision
		st.Size = info.Size
		st.UpdatedAt = info.UpdatedAt
	}
	return st, nil
}

// Close performs cleanup of application resources
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
