package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID domain.TaskID // Task ID to delete
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	State   domain.State // Board after the operation
	Deleted bool         // False when no task had the ID
}

// DeleteTask is the use case for deleting a task.
type DeleteTask struct {
	store  domain.StateStore
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(store domain.StateStore, logger domain.Logger) *DeleteTask {
	return &DeleteTask{
		store:  store,
		logger: loggerOrNop(logger),
	}
}

// Execute removes the task with the given ID.
// An unknown ID leaves the board unchanged.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	before, after, err := dispatch(uc.store, uc.logger, domain.ActionDeleteTask{ID: in.TaskID})
	if err != nil {
		return nil, err
	}

	deleted := after.PendingCount() < before.PendingCount()
	if deleted {
		uc.logger.Info(logCategory, fmt.Sprintf("task %s deleted", in.TaskID))
	} else {
		uc.logger.Debug(logCategory, fmt.Sprintf("delete ignored: %v: %s", domain.ErrTaskNotFound, in.TaskID))
	}

	return &DeleteTaskOutput{State: after, Deleted: deleted}, nil
}
