package usecase

import (
	"context"

	"github.com/runoshun/todo/internal/domain"
)

// ShowBoardInput contains the parameters for reading the board.
type ShowBoardInput struct{}

// ShowBoardOutput is a render snapshot of the board.
type ShowBoardOutput struct {
	Draft       string        `json:"draft" yaml:"draft" toml:"draft"`
	Tasks       []domain.Task `json:"tasks" yaml:"tasks" toml:"tasks"`
	Pending     int           `json:"pending" yaml:"pending" toml:"pending"`
	CanClearAll bool          `json:"can_clear_all" yaml:"can_clear_all" toml:"can_clear_all"`
}

// ShowBoard returns the current board.
type ShowBoard struct {
	store domain.StateStore
}

// NewShowBoard creates a new ShowBoard use case.
func NewShowBoard(store domain.StateStore) *ShowBoard {
	return &ShowBoard{store: store}
}

// Execute returns a snapshot of the board.
func (uc *ShowBoard) Execute(_ context.Context, _ ShowBoardInput) (*ShowBoardOutput, error) {
	state, err := loadBoard(uc.store)
	if err != nil {
		return nil, err
	}
	return newShowBoardOutput(state), nil
}

func newShowBoardOutput(state domain.State) *ShowBoardOutput {
	tasks := state.Clone().Tasks
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return &ShowBoardOutput{
		Draft:       state.Draft,
		Tasks:       tasks,
		Pending:     state.PendingCount(),
		CanClearAll: state.CanClearAll(),
	}
}
