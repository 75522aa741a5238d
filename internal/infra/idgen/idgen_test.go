package idgen

import (
	"testing"

	"github.com/google/uuid"
	"github.com/runoshun/todo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID_NewID(t *testing.T) {
	gen := UUID{}
	seen := make(map[domain.TaskID]bool)
	for i := 0; i < 100; i++ {
		id := gen.NewID()
		parsed, err := uuid.Parse(string(id))
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), parsed.Version())
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestSequence_NewID(t *testing.T) {
	gen := NewSequence(1)
	assert.Equal(t, domain.TaskID("1"), gen.NewID())
	assert.Equal(t, domain.TaskID("2"), gen.NewID())
	assert.Equal(t, domain.TaskID("3"), gen.NewID())
}

func TestSequence_Start(t *testing.T) {
	gen := NewSequence(10)
	assert.Equal(t, domain.TaskID("10"), gen.NewID())
}
