package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// EditTaskInput contains the parameters for editing a task.
type EditTaskInput struct {
	TaskID domain.TaskID // Task to remove
	Text   string        // Text placed in the draft
}

// EditTaskOutput contains the result of editing a task.
type EditTaskOutput struct {
	State  domain.State // Board after the operation
	Edited bool         // False when no task had the ID and only the draft changed
}

// EditTask moves a task's text into the draft and removes the task.
type EditTask struct {
	store  domain.StateStore
	logger domain.Logger
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(store domain.StateStore, logger domain.Logger) *EditTask {
	return &EditTask{
		store:  store,
		logger: loggerOrNop(logger),
	}
}

// Execute sets the draft to the given text and deletes the task.
// An unknown ID still sets the draft; only the delete is skipped.
func (uc *EditTask) Execute(_ context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	before, after, err := dispatch(uc.store, uc.logger, domain.ActionEditTask{ID: in.TaskID, Text: in.Text})
	if err != nil {
		return nil, err
	}

	edited := before.IndexOf(in.TaskID) >= 0
	if edited {
		uc.logger.Info(logCategory, fmt.Sprintf("task %s moved to draft", in.TaskID))
	} else {
		uc.logger.Debug(logCategory, fmt.Sprintf("edit: %v: %s", domain.ErrTaskNotFound, in.TaskID))
	}

	return &EditTaskOutput{State: after, Edited: edited}, nil
}
