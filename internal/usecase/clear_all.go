package usecase

import (
	"context"

	"github.com/runoshun/todo/internal/domain"
)

// ClearAllInput contains the parameters for the clear-all control.
type ClearAllInput struct{}

// ClearAllOutput contains the board after pressing clear all.
type ClearAllOutput struct {
	State domain.State
}

// ClearAll handles the footer's clear-all control.
// The control is rendered but has no effect on the board.
type ClearAll struct {
	store  domain.StateStore
	logger domain.Logger
}

// NewClearAll creates a new ClearAll use case.
func NewClearAll(store domain.StateStore, logger domain.Logger) *ClearAll {
	return &ClearAll{
		store:  store,
		logger: loggerOrNop(logger),
	}
}

// Execute dispatches the clear-all action, which leaves the board unchanged.
func (uc *ClearAll) Execute(_ context.Context, _ ClearAllInput) (*ClearAllOutput, error) {
	_, after, err := dispatch(uc.store, uc.logger, domain.ActionClearAll{})
	if err != nil {
		return nil, err
	}
	uc.logger.Info(logCategory, "clear all pressed: no action bound")
	return &ClearAllOutput{State: after}, nil
}
