package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteTask_Execute_Success(t *testing.T) {
	// Setup
	store := testutil.NewMockStateStore(domain.State{
		Tasks: []domain.Task{
			{ID: "a", Text: "first"},
			{ID: "b", Text: "second"},
			{ID: "c", Text: "third"},
		},
	})
	logger := &testutil.MockLogger{}
	uc := NewDeleteTask(store, logger)

	// Execute
	out, err := uc.Execute(context.Background(), DeleteTaskInput{TaskID: "b"})

	// Assert
	require.NoError(t, err)
	assert.True(t, out.Deleted)
	assert.Equal(t, []domain.Task{
		{ID: "a", Text: "first"},
		{ID: "c", Text: "third"},
	}, store.State.Tasks)
	assert.Contains(t, logger.Messages("info"), "task b deleted")
}

func TestDeleteTask_Execute_TaskNotFound(t *testing.T) {
	initial := domain.State{Tasks: []domain.Task{{ID: "a", Text: "first"}}}
	store := testutil.NewMockStateStore(initial)
	uc := NewDeleteTask(store, nil)

	out, err := uc.Execute(context.Background(), DeleteTaskInput{TaskID: "missing"})

	require.NoError(t, err)
	assert.False(t, out.Deleted)
	assert.Equal(t, initial, store.State)
}

func TestDeleteTask_Execute_LoadError(t *testing.T) {
	store := testutil.NewMockStateStore(domain.State{})
	store.LoadErr = assert.AnError
	uc := NewDeleteTask(store, nil)

	_, err := uc.Execute(context.Background(), DeleteTaskInput{TaskID: "a"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "load board")
}
