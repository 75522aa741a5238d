// Package domain contains core business entities and interfaces.
package domain

import "strings"

// TaskID is the opaque identifier of a task.
type TaskID string

// Task is a single to-do entry.
type Task struct {
	ID   TaskID `json:"id" yaml:"id" toml:"id"`       // Unique within a board
	Text string `json:"text" yaml:"text" toml:"text"` // Non-blank for any accepted task
}

// IsBlank reports whether text is empty once surrounding whitespace is ignored.
// Blank text is never accepted as a task.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// ValidateText returns ErrEmptyText for blank task text.
func ValidateText(text string) error {
	if IsBlank(text) {
		return ErrEmptyText
	}
	return nil
}
