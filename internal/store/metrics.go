package store

import (
	"sync/atomic"
	"time"
)

// Metrics tracks store statistics using atomic operations for thread-safety
type Metrics struct {
	Commits         atomic.Int64
	NoOps           atomic.Int64
	PersistFailures atomic.Int64
	lastCommit      atomic.Int64 // unix nanoseconds
	StartTime       time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{StartTime: time.Now()}
}

// IncCommits records a committed mutation
func (m *Metrics) IncCommits(at time.Time) {
	m.Commits.Add(1)
	m.lastCommit.Store(at.UnixNano())
}

// IncNoOps records a mutation skipped because its target did not exist
func (m *Metrics) IncNoOps() {
	m.NoOps.Add(1)
}

// IncPersistFailures records a snapshot that could not be written
func (m *Metrics) IncPersistFailures() {
	m.PersistFailures.Add(1)
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	Commits         int64     `json:"commits"`
	NoOps           int64     `json:"no_ops"`
	PersistFailures int64     `json:"persist_failures"`
	LastCommit      time.Time `json:"last_commit"`
	Uptime          string    `json:"uptime"`
}

// Snapshot returns a point-in-time copy of all metrics
func (m *Metrics) Snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{
		Commits:         m.Commits.Load(),
		NoOps:           m.NoOps.Load(),
		PersistFailures: m.PersistFailures.Load(),
		Uptime:          time.Since(m.StartTime).Round(time.Second).String(),
	}
	if ns := m.lastCommit.Load(); ns != 0 {
		snap.LastCommit = time.Unix(0, ns)
	}
	return snap
}
