package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// SubmitDraftInput contains the parameters for submitting the draft.
type SubmitDraftInput struct{}

// SubmitDraftOutput contains the result of submitting the draft.
type SubmitDraftOutput struct {
	Task  *domain.Task // Created task; nil when the draft was blank
	State domain.State // Board after the operation
}

// SubmitDraft turns the current draft into a task and clears the draft.
type SubmitDraft struct {
	store  domain.StateStore
	ids    domain.IDGenerator
	logger domain.Logger
}

// NewSubmitDraft creates a new SubmitDraft use case.
func NewSubmitDraft(store domain.StateStore, ids domain.IDGenerator, logger domain.Logger) *SubmitDraft {
	return &SubmitDraft{
		store:  store,
		ids:    ids,
		logger: loggerOrNop(logger),
	}
}

// Execute submits the draft. A blank draft is a no-op and is kept as typed.
func (uc *SubmitDraft) Execute(_ context.Context, _ SubmitDraftInput) (*SubmitDraftOutput, error) {
	state, err := loadBoard(uc.store)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateText(state.Draft); err != nil {
		uc.logger.Debug(logCategory, "submit ignored: "+err.Error())
		return &SubmitDraftOutput{State: state}, nil
	}

	id := uc.ids.NewID()
	next := domain.Reduce(state, domain.ActionAddTask{ID: id, Text: state.Draft})
	next = domain.Reduce(next, domain.ActionSetDraft{Text: ""})
	if err := uc.store.Save(next); err != nil {
		return nil, fmt.Errorf("save board: %w", err)
	}
	uc.logger.Info(logCategory, fmt.Sprintf("task %s added", id))

	out := &SubmitDraftOutput{State: next}
	if task, ok := next.Find(id); ok {
		out.Task = &task
	}
	return out, nil
}

// loadBoard loads the current board, wrapping store errors.
func loadBoard(store domain.StateStore) (domain.State, error) {
	state, err := store.Load()
	if err != nil {
		return domain.State{}, fmt.Errorf("load board: %w", err)
	}
	return state, nil
}
