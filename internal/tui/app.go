package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

// errorTimeout is how long an error stays on screen without a key press.
const errorTimeout = 5 * time.Second

// Ensure Model implements tea.Model.
var _ tea.Model = (*Model)(nil)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	config    *domain.Config
	err       error

	// Board snapshot; only use cases change it
	state domain.State

	// Components
	keys     KeyMap
	styles   Styles
	help     help.Model
	taskList list.Model
	input    textinput.Model

	// Numeric state (smaller types last)
	mode     Mode
	prevMode Mode
	width    int
	height   int
	errSeq   int // Bumped for every shown error
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	cfg := c.Config
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}

	ti := textinput.New()
	ti.Placeholder = cfg.TUI.Placeholder
	ti.CharLimit = cfg.TUI.CharLimit
	ti.Focus()

	styles := DefaultStyles()
	taskList := list.New([]list.Item{}, newTaskDelegate(styles, false), 0, 0)
	taskList.SetShowTitle(false)
	taskList.SetShowStatusBar(false)
	taskList.SetShowHelp(false)
	taskList.SetShowPagination(false)
	taskList.SetFilteringEnabled(false)
	taskList.DisableQuitKeybindings()

	m := &Model{
		container: c,
		config:    cfg,
		keys:      DefaultKeyMap(),
		styles:    styles,
		help:      help.New(),
		taskList:  taskList,
		input:     ti,
		mode:      ModeInput,
	}
	m.loadBoard()
	return m
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// State returns the board snapshot currently rendered.
func (m *Model) State() domain.State {
	return m.state.Clone()
}

// Mode returns the current UI mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// SelectedTask returns the currently selected task, or nil if none.
func (m *Model) SelectedTask() *domain.Task {
	if ti, ok := m.taskList.SelectedItem().(taskItem); ok {
		task := ti.task
		return &task
	}
	return nil
}

// loadBoard reads the board from the store.
func (m *Model) loadBoard() {
	out, err := m.container.ShowBoardUseCase().Execute(context.Background(), usecase.ShowBoardInput{})
	if err != nil {
		m.err = err
		return
	}
	m.applyState(domain.State{Draft: out.Draft, Tasks: out.Tasks})
}

// applyState renders a new board snapshot.
// The form value follows the draft and the list selection follows the selected task ID.
func (m *Model) applyState(state domain.State) {
	m.state = state.Clone()
	if m.input.Value() != m.state.Draft {
		m.input.SetValue(m.state.Draft)
		m.input.CursorEnd()
	}
	m.updateTaskList()
}

// updateTaskList rebuilds the rows from the board, keyed by task ID.
func (m *Model) updateTaskList() {
	var selectedID domain.TaskID
	if task := m.SelectedTask(); task != nil {
		selectedID = task.ID
	}
	prevIndex := m.taskList.Index()

	items := make([]list.Item, 0, len(m.state.Tasks))
	for _, task := range m.state.Tasks {
		items = append(items, taskItem{task: task})
	}
	m.taskList.SetItems(items)
	m.taskList.Select(selectionIndex(m.state, selectedID, prevIndex))
}

// selectionIndex returns the row to select after a board change:
// the row still holding id, else the nearest remaining row.
func selectionIndex(state domain.State, id domain.TaskID, prevIndex int) int {
	if id != "" {
		if i := state.IndexOf(id); i >= 0 {
			return i
		}
	}
	if n := len(state.Tasks); prevIndex >= n {
		prevIndex = n - 1
	}
	if prevIndex < 0 {
		prevIndex = 0
	}
	return prevIndex
}

// setMode switches modes and moves focus between the form and the list.
func (m *Model) setMode(mode Mode) {
	m.mode = mode
	if mode.IsInputMode() {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	m.taskList.SetDelegate(newTaskDelegate(m.styles, mode == ModeList))
}

// updateLayoutSizes sizes the list to the space left by the other sections.
func (m *Model) updateLayoutSizes() {
	// header(2) + form(2) + footer(2) + help(2) + app padding(2)
	const chrome = 10
	width := m.width - 4
	if width < 20 {
		width = 20
	}
	height := m.height - chrome
	if height < 3 {
		height = 3
	}
	m.input.Width = width - 10
	m.taskList.SetSize(width, height)
	m.help.Width = width
}

// clearErrorAfter returns a command that clears error seq after d.
func clearErrorAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return MsgClearError{Seq: seq}
	})
}
