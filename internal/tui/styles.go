package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color

	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App lipgloss.Style

	// Header
	Header lipgloss.Style

	// Form
	Form        lipgloss.Style
	AddEnabled  lipgloss.Style
	AddDisabled lipgloss.Style

	// Rows
	TaskNormal         lipgloss.Style
	TaskSelected       lipgloss.Style
	SelectionIndicator lipgloss.Style
	RowHintKey         lipgloss.Style
	RowHint            lipgloss.Style
	EmptyState         lipgloss.Style

	// Footer
	Footer        lipgloss.Style
	ClearEnabled  lipgloss.Style
	ClearDisabled lipgloss.Style

	// Help
	Help lipgloss.Style

	// Error
	ErrorMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		Form: lipgloss.NewStyle().
			MarginBottom(1),

		AddEnabled: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Success),

		AddDisabled: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		TaskNormal: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		TaskSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleSelected),

		SelectionIndicator: lipgloss.NewStyle().
			Foreground(Colors.Primary),

		RowHintKey: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		RowHint: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		EmptyState: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			MarginTop(1),

		ClearEnabled: lipgloss.NewStyle().
			Foreground(Colors.Error),

		ClearDisabled: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Faint(true),

		Help: lipgloss.NewStyle().
			MarginTop(1),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),
	}
}
