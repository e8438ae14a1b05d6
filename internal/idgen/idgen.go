// Package idgen produces identifiers for new entities.
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator returns a new identifier carrying the given prefix
type Generator interface {
	New(prefix string) string
}

// UUID generates "<prefix>-<uuid v4>" identifiers
type UUID struct{}

// NewUUID returns the default generator
func NewUUID() UUID { return UUID{} }

// New returns a fresh prefixed identifier
func (UUID) New(prefix string) string {
	return join(prefix, uuid.NewString())
}

// Sequence generates "<prefix>-<n>" identifiers from a counter owned by the
// generator. Identifiers are unique for the lifetime of one Sequence and are
// deterministic, which is what tests want.
type Sequence struct {
	n atomic.Int64
}

// NewSequence returns a counter starting at 1
func NewSequence() *Sequence { return &Sequence{} }

// New returns the next prefixed identifier
func (s *Sequence) New(prefix string) string {
	return join(prefix, strconv.FormatInt(s.n.Add(1), 10))
}

func join(prefix, suffix string) string {
	if prefix == "" {
		prefix = "id"
	}
	return prefix + "-" + suffix
}
