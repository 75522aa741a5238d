package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// ReplayScriptInput contains the steps to replay.
type ReplayScriptInput struct {
	Steps []domain.Step
}

// ReplayScriptOutput contains the board after the last step.
type ReplayScriptOutput struct {
	Board   *ShowBoardOutput
	Applied int // Steps that changed the board
}

// ReplayScript runs scripted steps through the board use cases.
type ReplayScript struct {
	store       domain.StateStore
	logger      domain.Logger
	addTask     *AddTask
	updateDraft *UpdateDraft
	submitDraft *SubmitDraft
	deleteTask  *DeleteTask
	editTask    *EditTask
	clearAll    *ClearAll
}

// NewReplayScript creates a new ReplayScript use case.
func NewReplayScript(store domain.StateStore, ids domain.IDGenerator, logger domain.Logger) *ReplayScript {
	logger = loggerOrNop(logger)
	return &ReplayScript{
		store:       store,
		logger:      logger,
		addTask:     NewAddTask(store, ids, logger),
		updateDraft: NewUpdateDraft(store, logger),
		submitDraft: NewSubmitDraft(store, ids, logger),
		deleteTask:  NewDeleteTask(store, logger),
		editTask:    NewEditTask(store, logger),
		clearAll:    NewClearAll(store, logger),
	}
}

// Execute validates every step, then applies them in order.
// Positions are resolved against the board at the time of each step;
// a position past the end of the list is a no-op.
func (uc *ReplayScript) Execute(ctx context.Context, in ReplayScriptInput) (*ReplayScriptOutput, error) {
	for i, step := range in.Steps {
		if err := step.Validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}

	applied := 0
	for i, step := range in.Steps {
		before, err := loadBoard(uc.store)
		if err != nil {
			return nil, err
		}
		after, err := uc.apply(ctx, before, step)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, step, err)
		}
		if !statesEqual(before, after) {
			applied++
		}
		uc.logger.Debug("replay", fmt.Sprintf("step %d: %s", i+1, step))
	}

	board, err := loadBoard(uc.store)
	if err != nil {
		return nil, err
	}
	return &ReplayScriptOutput{
		Board:   newShowBoardOutput(board),
		Applied: applied,
	}, nil
}

func (uc *ReplayScript) apply(ctx context.Context, state domain.State, step domain.Step) (domain.State, error) {
	switch step.Op {
	case domain.StepAdd:
		out, err := uc.addTask.Execute(ctx, AddTaskInput{Text: step.Text})
		if err != nil {
			return domain.State{}, err
		}
		return out.State, nil
	case domain.StepDraft:
		out, err := uc.updateDraft.Execute(ctx, UpdateDraftInput{Text: step.Text})
		if err != nil {
			return domain.State{}, err
		}
		return out.State, nil
	case domain.StepSubmit:
		out, err := uc.submitDraft.Execute(ctx, SubmitDraftInput{})
		if err != nil {
			return domain.State{}, err
		}
		return out.State, nil
	case domain.StepDelete:
		task, _ := taskAt(state, step.Position)
		out, err := uc.deleteTask.Execute(ctx, DeleteTaskInput{TaskID: task.ID})
		if err != nil {
			return domain.State{}, err
		}
		return out.State, nil
	case domain.StepEdit:
		task, ok := taskAt(state, step.Position)
		if !ok {
			return state, nil
		}
		out, err := uc.editTask.Execute(ctx, EditTaskInput{TaskID: task.ID, Text: task.Text})
		if err != nil {
			return domain.State{}, err
		}
		return out.State, nil
	case domain.StepClear:
		out, err := uc.clearAll.Execute(ctx, ClearAllInput{})
		if err != nil {
			return domain.State{}, err
		}
		return out.State, nil
	}
	return domain.State{}, fmt.Errorf("%w: unknown op %q", domain.ErrInvalidStep, step.Op)
}

// taskAt returns the task at a 1-based position.
func taskAt(state domain.State, position int) (domain.Task, bool) {
	if position < 1 || position > len(state.Tasks) {
		return domain.Task{}, false
	}
	return state.Tasks[position-1], true
}

func statesEqual(a, b domain.State) bool {
	if a.Draft != b.Draft || len(a.Tasks) != len(b.Tasks) {
		return false
	}
	for i := range a.Tasks {
		if a.Tasks[i] != b.Tasks[i] {
			return false
		}
	}
	return true
}
