package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/runoshun/todo/internal/domain"
)

type taskItem struct {
	task domain.Task
}

func (t taskItem) FilterValue() string {
	return t.task.Text
}

// escapeNewlines replaces newline characters with spaces for single-line display.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// truncateText fits text into width cells, marking cut text with "...".
func truncateText(text string, width int) string {
	if width < 4 {
		width = 4
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, "...")
}

// taskDelegate renders one row per task.
// Edit and delete hints are shown on the selected row while the list has focus.
type taskDelegate struct {
	styles    Styles
	showHints bool
}

func newTaskDelegate(styles Styles, showHints bool) taskDelegate {
	return taskDelegate{styles: styles, showHints: showHints}
}

func (d taskDelegate) Height() int {
	return 1
}

func (d taskDelegate) Spacing() int {
	return 0
}

func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(taskItem)
	if !ok {
		return
	}
	selected := index == m.Index()

	var hints string
	if selected && d.showHints {
		hints = "  " + d.styles.RowHintKey.Render("e") + d.styles.RowHint.Render(" edit  ") +
			d.styles.RowHintKey.Render("d") + d.styles.RowHint.Render(" delete")
	}

	const prefixWidth = 4 // "  > "
	maxText := m.Width() - prefixWidth - lipgloss.Width(hints)
	text := truncateText(escapeNewlines(ti.task.Text), maxText)

	var line string
	if selected {
		line = "  " + d.styles.SelectionIndicator.Bold(true).Render(">") + " " +
			d.styles.TaskSelected.Render(text) + hints
	} else {
		line = "    " + d.styles.TaskNormal.Render(text)
	}
	_, _ = fmt.Fprint(w, line)
}
