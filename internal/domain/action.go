package domain

// Action is the sealed interface for every state change request.
// UI events and scripted steps are turned into Actions and handed to Reduce;
// nothing else mutates a State.
//
// go-sumtype:decl Action
type Action interface {
	sealedAction()
	// Name identifies the action in logs.
	Name() string
}

// ActionAddTask appends a task with an already generated ID.
type ActionAddTask struct {
	ID   TaskID
	Text string
}

func (ActionAddTask) sealedAction() {}

// Name implements Action.
func (ActionAddTask) Name() string { return "add" }

// ActionDeleteTask removes a task.
type ActionDeleteTask struct {
	ID TaskID
}

func (ActionDeleteTask) sealedAction() {}

// Name implements Action.
func (ActionDeleteTask) Name() string { return "delete" }

// ActionEditTask pulls a task back into the draft.
type ActionEditTask struct {
	ID   TaskID
	Text string
}

func (ActionEditTask) sealedAction() {}

// Name implements Action.
func (ActionEditTask) Name() string { return "edit" }

// ActionSetDraft replaces the draft text.
type ActionSetDraft struct {
	Text string
}

func (ActionSetDraft) sealedAction() {}

// Name implements Action.
func (ActionSetDraft) Name() string { return "draft" }

// ActionClearAll is emitted by the footer's clear-all control.
// It has no effect on the state.
type ActionClearAll struct{}

func (ActionClearAll) sealedAction() {}

// Name implements Action.
func (ActionClearAll) Name() string { return "clear_all" }

// Reduce applies an action to a state and returns the next state.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case ActionAddTask:
		return s.AddTask(a.ID, a.Text)
	case ActionDeleteTask:
		return s.DeleteTask(a.ID)
	case ActionEditTask:
		return s.EditTask(a.ID, a.Text)
	case ActionSetDraft:
		return s.SetDraft(a.Text)
	case ActionClearAll:
		// TODO: decide whether clear all should empty the board; it renders but does nothing today.
		return s
	}
	return s
}
