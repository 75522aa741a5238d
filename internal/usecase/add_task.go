package usecase

import (
	"context"

	"github.com/runoshun/todo/internal/domain"
)

// AddTaskInput contains the parameters for adding a task.
type AddTaskInput struct {
	Text string // Task text, stored verbatim
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	Task  *domain.Task // Added task; nil when the text was blank
	State domain.State // Board after the operation
}

// AddTask is the use case for appending a task to the board.
type AddTask struct {
	store  domain.StateStore
	ids    domain.IDGenerator
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(store domain.StateStore, ids domain.IDGenerator, logger domain.Logger) *AddTask {
	return &AddTask{
		store:  store,
		ids:    ids,
		logger: loggerOrNop(logger),
	}
}

// Execute appends a task with a fresh ID.
// Blank text leaves the board unchanged.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	if err := domain.ValidateText(in.Text); err != nil {
		uc.logger.Debug(logCategory, "add ignored: "+err.Error())
		state, err := loadBoard(uc.store)
		if err != nil {
			return nil, err
		}
		return &AddTaskOutput{State: state}, nil
	}

	id := uc.ids.NewID()
	_, after, err := dispatch(uc.store, uc.logger, domain.ActionAddTask{ID: id, Text: in.Text})
	if err != nil {
		return nil, err
	}

	out := &AddTaskOutput{State: after}
	if task, ok := after.Find(id); ok {
		out.Task = &task
	}
	return out, nil
}
