package usecase

import (
	"context"

	"github.com/runoshun/todo/internal/domain"
)

// UpdateDraftInput contains the new draft text.
type UpdateDraftInput struct {
	Text string
}

// UpdateDraftOutput contains the board after the draft change.
type UpdateDraftOutput struct {
	State domain.State
}

// UpdateDraft keeps the stored draft equal to the input field.
type UpdateDraft struct {
	store  domain.StateStore
	logger domain.Logger
}

// NewUpdateDraft creates a new UpdateDraft use case.
func NewUpdateDraft(store domain.StateStore, logger domain.Logger) *UpdateDraft {
	return &UpdateDraft{
		store:  store,
		logger: loggerOrNop(logger),
	}
}

// Execute replaces the draft.
func (uc *UpdateDraft) Execute(_ context.Context, in UpdateDraftInput) (*UpdateDraftOutput, error) {
	_, after, err := dispatch(uc.store, uc.logger, domain.ActionSetDraft{Text: in.Text})
	if err != nil {
		return nil, err
	}
	return &UpdateDraftOutput{State: after}, nil
}
