package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/flowforge/internal/events"
	"github.com/thenoetrevino/flowforge/internal/idgen"
	"github.com/thenoetrevino/flowforge/internal/storage"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	eventClient events.EventPublisher
	logger      *slog.Logger
	slot        storage.Slot
	ids         idgen.Generator
	now         func() time.Time
}

// WithEventPublisher sets the event publisher for the application
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithSlot bypasses the configured backend and stores the snapshot in slot
func WithSlot(slot storage.Slot) Option {
	return func(cfg *appConfig) {
		cfg.slot = slot
	}
}

// WithIDGenerator sets the identifier generator used by the store
func WithIDGenerator(ids idgen.Generator) Option {
	return func(cfg *appConfig) {
		cfg.ids = ids
	}
}

// WithClock sets the clock shared by the store, persister, and reminders
func WithClock(now func() time.Time) Option {
	return func(cfg *appConfig) {
		cfg.now = now
	}
}
