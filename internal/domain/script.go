package domain

import "fmt"

// StepOp is the operation of a replay step.
type StepOp string

// Replay step operations.
const (
	StepAdd    StepOp = "add"
	StepDraft  StepOp = "draft"
	StepSubmit StepOp = "submit"
	StepDelete StepOp = "delete"
	StepEdit   StepOp = "edit"
	StepClear  StepOp = "clear"
)

// Step is one scripted board operation.
// Position is the 1-based row the step targets (delete and edit only).
type Step struct {
	Op       StepOp
	Text     string
	Position int
}

// String returns a short description of the step.
func (s Step) String() string {
	switch s.Op {
	case StepAdd, StepDraft:
		return fmt.Sprintf("%s %q", s.Op, s.Text)
	case StepDelete, StepEdit:
		return fmt.Sprintf("%s #%d", s.Op, s.Position)
	case StepSubmit, StepClear:
		return string(s.Op)
	}
	return "unknown"
}

// Validate checks that the step is well-formed.
func (s Step) Validate() error {
	switch s.Op {
	case StepAdd, StepDraft, StepSubmit, StepClear:
		return nil
	case StepDelete, StepEdit:
		if s.Position < 1 {
			return fmt.Errorf("%w: %s position must be >= 1", ErrInvalidStep, s.Op)
		}
		return nil
	}
	return fmt.Errorf("%w: unknown op %q", ErrInvalidStep, s.Op)
}
