package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearAll_Execute_LeavesBoardUnchanged(t *testing.T) {
	tests := []struct {
		name  string
		state domain.State
	}{
		{name: "empty board", state: domain.State{}},
		{name: "with tasks", state: domain.State{
			Draft: "draft",
			Tasks: []domain.Task{{ID: "a", Text: "one"}, {ID: "b", Text: "two"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.NewMockStateStore(tt.state)
			logger := &testutil.MockLogger{}
			uc := NewClearAll(store, logger)

			out, err := uc.Execute(context.Background(), ClearAllInput{})

			require.NoError(t, err)
			assert.Equal(t, tt.state.Clone(), out.State)
			assert.Equal(t, tt.state.Clone(), store.State)
			assert.Contains(t, logger.Messages("info"), "clear all pressed: no action bound")
		})
	}
}

func TestClearAll_Execute_LoadError(t *testing.T) {
	store := testutil.NewMockStateStore(domain.State{})
	store.LoadErr = assert.AnError

	_, err := NewClearAll(store, nil).Execute(context.Background(), ClearAllInput{})

	assert.ErrorIs(t, err, assert.AnError)
}
