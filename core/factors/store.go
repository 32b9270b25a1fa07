package factors

import (
	"sync/atomic"

	"go.uber.org/zap"

	"ecotrack/internal/logging"
)

// Store holds the current factor snapshot and supports hot reload.
// Reload is an atomic swap of a sealed snapshot; in-flight requests
// keep the table they already captured and never observe a partial
// update.
type Store struct {
	current atomic.Pointer[Table]
}

// NewStore creates a store seeded with the given snapshot
func NewStore(table *Table) *Store {
	s := &Store{}
	s.current.Store(table)
	return s
}

// Current returns the active snapshot
func (s *Store) Current() *Table {
	return s.current.Load()
}

// Swap replaces the active snapshot and returns the previous one
func (s *Store) Swap(table *Table) *Table {
	prev := s.current.Swap(table)
	logging.Info("factor catalog swapped",
		zap.String("version", table.Version()),
		zap.String("content_hash", table.ContentHash()[:8]),
		zap.Int("entries", table.Len()))
	return prev
}
