package domain

// State is the whole board: the ordered task sequence and the staged draft.
// Transition methods never modify the receiver; they return a new State.
type State struct {
	Draft string `json:"draft" yaml:"draft" toml:"draft"`
	Tasks []Task `json:"tasks" yaml:"tasks" toml:"tasks"`
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	tasks := make([]Task, len(s.Tasks))
	copy(tasks, s.Tasks)
	return State{Draft: s.Draft, Tasks: tasks}
}

// IndexOf returns the position of the task with the given ID, or -1.
func (s State) IndexOf(id TaskID) int {
	for i, t := range s.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the task with the given ID.
func (s State) Find(id TaskID) (Task, bool) {
	if i := s.IndexOf(id); i >= 0 {
		return s.Tasks[i], true
	}
	return Task{}, false
}

// AddTask appends a task. Blank text or an ID already on the board leaves the state unchanged.
func (s State) AddTask(id TaskID, text string) State {
	if IsBlank(text) || s.IndexOf(id) >= 0 {
		return s
	}
	next := s.Clone()
	next.Tasks = append(next.Tasks, Task{ID: id, Text: text})
	return next
}

// DeleteTask removes the task with the given ID, if present.
func (s State) DeleteTask(id TaskID) State {
	i := s.IndexOf(id)
	if i < 0 {
		return s
	}
	next := State{Draft: s.Draft, Tasks: make([]Task, 0, len(s.Tasks)-1)}
	next.Tasks = append(next.Tasks, s.Tasks[:i]...)
	next.Tasks = append(next.Tasks, s.Tasks[i+1:]...)
	return next
}

// EditTask recalls text into the draft and removes the task.
// Editing is not an in-place update: the task only comes back once the draft is submitted again.
func (s State) EditTask(id TaskID, text string) State {
	return s.SetDraft(text).DeleteTask(id)
}

// SetDraft replaces the staged draft.
func (s State) SetDraft(text string) State {
	next := s.Clone()
	next.Draft = text
	return next
}

// PendingCount returns the number of tasks shown in the footer.
func (s State) PendingCount() int {
	return len(s.Tasks)
}

// CanClearAll reports whether the clear-all control renders as enabled.
func (s State) CanClearAll() bool {
	return s.PendingCount() > 0
}
