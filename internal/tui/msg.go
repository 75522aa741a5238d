package tui

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearError is sent to clear the error message it was scheduled for.
// Seq must match the model's current error for the clear to apply.
type MsgClearError struct {
	Seq int
}

func (MsgClearError) sealed() {}
