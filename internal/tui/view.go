package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/todo/internal/domain"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeInput, ModeList:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the header, form, rows and footer.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	}

	b.WriteString(m.viewForm())
	b.WriteString("\n")

	b.WriteString(m.viewTaskList())
	b.WriteString("\n")

	b.WriteString(m.viewFooter())

	if m.config.TUI.ShowHelp {
		b.WriteString("\n")
		b.WriteString(m.viewHelpLine())
	}

	return b.String()
}

func (m *Model) viewHeader() string {
	return m.styles.Header.Render("Todo App")
}

// viewForm renders the input with its add control.
func (m *Model) viewForm() string {
	add := m.styles.AddDisabled.Render("[+]")
	if !domain.IsBlank(m.state.Draft) {
		add = m.styles.AddEnabled.Render("[+]")
	}
	return m.styles.Form.Render(m.input.View() + "  " + add)
}

func (m *Model) viewTaskList() string {
	if len(m.state.Tasks) == 0 {
		return m.styles.EmptyState.Render("    No tasks yet")
	}
	return m.taskList.View()
}

// viewFooter renders the pending count and the clear-all control.
func (m *Model) viewFooter() string {
	pending, canClearAll := m.board()
	count := fmt.Sprintf("You have %d pending tasks", pending)

	clearCtl := m.styles.ClearDisabled.Render("Clear all")
	if canClearAll {
		clearCtl = m.styles.ClearEnabled.Render("Clear all") + m.styles.RowHint.Render(" (C)")
	}

	width := m.width - 4
	spacing := width - lipgloss.Width(count) - lipgloss.Width(clearCtl)
	if spacing < 2 {
		spacing = 2
	}
	return m.styles.Footer.Render(count + strings.Repeat(" ", spacing) + clearCtl)
}

func (m *Model) viewHelpLine() string {
	if m.mode.IsInputMode() {
		return m.styles.Help.Render(m.help.View(inputKeyMap{m.keys}))
	}
	return m.styles.Help.Render(m.help.View(m.keys))
}

// viewHelp renders the full key help.
func (m *Model) viewHelp() string {
	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(m.styles.RowHint.Render("? / esc to close"))
	return b.String()
}
