// Package tui provides the terminal user interface for the to-do board.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeInput Mode = iota // Input form focused (default)
	ModeList              // Task rows focused
	ModeHelp              // Full key help
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeInput:
		return "input"
	case ModeList:
		return "list"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeInput:
		return true
	case ModeList, ModeHelp:
		return false
	}
	return false
}
