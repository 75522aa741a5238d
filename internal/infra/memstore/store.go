// Package memstore provides the in-memory implementation of StateStore.
// The board lives only as long as the process; nothing is written to disk.
package memstore

import (
	"sync"

	"github.com/runoshun/todo/internal/domain"
)

// Ensure Store implements domain.StateStore.
var _ domain.StateStore = (*Store)(nil)

// Store implements domain.StateStore in memory.
type Store struct {
	state domain.State
	mu    sync.Mutex
}

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

// NewWithState creates a Store seeded with the given state.
func NewWithState(state domain.State) *Store {
	return &Store{state: state.Clone()}
}

// Load returns a copy of the current state.
func (s *Store) Load() (domain.State, error) {
	var state domain.State
	err := s.withLock(func(current *domain.State) error {
		state = current.Clone()
		return nil
	})
	return state, err
}

// Save replaces the current state.
func (s *Store) Save(state domain.State) error {
	return s.withLock(func(current *domain.State) error {
		*current = state.Clone()
		return nil
	})
}

// withLock runs fn with exclusive access to the state.
func (s *Store) withLock(fn func(*domain.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.state)
}
