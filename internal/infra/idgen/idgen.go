// Package idgen provides task ID generators.
package idgen

import (
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/runoshun/todo/internal/domain"
)

// Ensure generators implement domain.IDGenerator.
var (
	_ domain.IDGenerator = UUID{}
	_ domain.IDGenerator = (*Sequence)(nil)
)

// UUID generates random (version 4) UUIDs.
type UUID struct{}

// NewID returns a new random UUID.
func (UUID) NewID() domain.TaskID {
	return domain.TaskID(uuid.NewString())
}

// Sequence generates "1", "2", "3", ... and is safe for concurrent use.
// It is used where IDs must be predictable (replay output, tests).
type Sequence struct {
	mu   sync.Mutex
	next int
}

// NewSequence creates a Sequence whose first ID is start.
func NewSequence(start int) *Sequence {
	return &Sequence{next: start}
}

// NewID returns the next ID in the sequence.
func (s *Sequence) NewID() domain.TaskID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := strconv.Itoa(s.next)
	s.next++
	return domain.TaskID(id)
}
