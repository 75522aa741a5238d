package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/todo/internal/usecase"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayoutSizes()
		return m, nil

	case MsgError:
		m.errSeq++
		m.err = msg.Err
		return m, clearErrorAfter(errorTimeout, m.errSeq)

	case MsgClearError:
		if msg.Seq == m.errSeq {
			m.err = nil
		}
		return m, nil
	}

	// Cursor blink and other component messages
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear error on any key press
	if m.err != nil {
		m.err = nil
	}

	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeInput:
		return m.handleInputMode(msg)
	case ModeList:
		return m.handleListMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}

	return m, nil
}

// handleInputMode handles keys while the form is focused.
func (m *Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		out, err := m.container.SubmitDraftUseCase().Execute(context.Background(), usecase.SubmitDraftInput{})
		if err != nil {
			return m.fail(err)
		}
		m.applyState(out.State)
		return m, nil

	case key.Matches(msg, m.keys.Focus):
		m.setMode(ModeList)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == m.state.Draft {
		return m, cmd
	}

	out, err := m.container.UpdateDraftUseCase().Execute(context.Background(), usecase.UpdateDraftInput{
		Text: m.input.Value(),
	})
	if err != nil {
		return m.fail(err)
	}
	m.applyState(out.State)
	return m, cmd
}

// handleListMode handles keys while the task rows are focused.
func (m *Model) handleListMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Focus), key.Matches(msg, m.keys.Escape):
		m.setMode(ModeInput)
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.prevMode = m.mode
		m.setMode(ModeHelp)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.taskList.CursorUp()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.taskList.CursorDown()
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		out, err := m.container.EditTaskUseCase().Execute(context.Background(), usecase.EditTaskInput{TaskID: task.ID, Text: task.Text})
		if err != nil {
			return m.fail(err)
		}
		m.applyState(out.State)
		m.setMode(ModeInput)
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		out, err := m.container.DeleteTaskUseCase().Execute(context.Background(), usecase.DeleteTaskInput{TaskID: task.ID})
		if err != nil {
			return m.fail(err)
		}
		m.applyState(out.State)
		return m, nil

	case key.Matches(msg, m.keys.ClearAll):
		out, err := m.container.ClearAllUseCase().Execute(context.Background(), usecase.ClearAllInput{})
		if err != nil {
			return m.fail(err)
		}
		m.applyState(out.State)
		return m, nil
	}

	return m, nil
}

// handleHelpMode handles keys in help mode.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Quit) {
		m.setMode(m.prevMode)
	}
	return m, nil
}

// fail shows err inline and schedules it to be cleared.
func (m *Model) fail(err error) (tea.Model, tea.Cmd) {
	m.container.Logger.Error("tui", err.Error())
	return m.Update(MsgError{Err: err})
}

// board returns the footer values for the current snapshot.
func (m *Model) board() (pending int, canClearAll bool) {
	return m.state.PendingCount(), m.state.CanClearAll()
}
