package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/idgen"
	"github.com/runoshun/todo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_Scenario(t *testing.T) {
	m, store := newTestModel(t, domain.State{})

	typeText(m, "Buy milk")
	press(m, tea.KeyEnter)
	assert.Contains(t, m.View(), "You have 1 pending tasks")
	assert.Empty(t, m.input.Value(), "form is cleared after submit")

	typeText(m, "Walk dog")
	press(m, tea.KeyEnter)
	assert.Contains(t, m.View(), "You have 2 pending tasks")
	assert.Equal(t, []string{"Buy milk", "Walk dog"}, taskTexts(m.State()))

	// Focus the list and delete the first row
	press(m, tea.KeyTab)
	require.Equal(t, ModeList, m.Mode())
	pressRune(m, 'd')
	assert.Equal(t, []string{"Walk dog"}, taskTexts(m.State()))
	assert.Contains(t, m.View(), "You have 1 pending tasks")

	// Edit the remaining row
	pressRune(m, 'e')
	assert.Equal(t, ModeInput, m.Mode(), "edit focuses the form")
	assert.Empty(t, m.State().Tasks)
	assert.Equal(t, "Walk dog", m.input.Value())
	assert.Contains(t, m.View(), "You have 0 pending tasks")

	stored, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "Walk dog", stored.Draft)
}

func TestModel_SubmitBlankDraft(t *testing.T) {
	m, store := newTestModel(t, domain.State{})

	press(m, tea.KeyEnter)
	typeText(m, "   ")
	press(m, tea.KeyEnter)

	stored, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, stored.Tasks)
	assert.Contains(t, m.View(), "You have 0 pending tasks")
}

func TestModel_DraftFollowsInput(t *testing.T) {
	m, store := newTestModel(t, domain.State{})

	typeText(m, "abc")
	press(m, tea.KeyBackspace)

	stored, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "ab", stored.Draft)
}

func TestModel_TypingQDoesNotQuit(t *testing.T) {
	m, _ := newTestModel(t, domain.State{})

	pressRune(m, 'q')

	assert.Equal(t, ModeInput, m.Mode())
	assert.Equal(t, "q", m.input.Value())
	assert.Equal(t, "q", m.State().Draft)
}

func TestModel_Quit(t *testing.T) {
	t.Run("q in list mode", func(t *testing.T) {
		m, _ := newTestModel(t, domain.State{})
		press(m, tea.KeyTab)
		cmd := pressRune(m, 'q')
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	})

	t.Run("ctrl+c in input mode", func(t *testing.T) {
		m, _ := newTestModel(t, domain.State{})
		cmd := press(m, tea.KeyCtrlC)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	})
}

func TestModel_SelectionFollowsTaskID(t *testing.T) {
	m, _ := newTestModel(t, domain.State{Tasks: []domain.Task{
		{ID: "a", Text: "one"},
		{ID: "b", Text: "two"},
		{ID: "c", Text: "three"},
	}})

	press(m, tea.KeyTab)
	press(m, tea.KeyDown)
	require.Equal(t, domain.TaskID("b"), m.SelectedTask().ID)

	// A task added at the end keeps "b" selected
	press(m, tea.KeyTab)
	typeText(m, "four")
	press(m, tea.KeyEnter)
	assert.Equal(t, domain.TaskID("b"), m.SelectedTask().ID)

	// Deleting the selected row moves to the row that took its place
	press(m, tea.KeyTab)
	pressRune(m, 'd')
	assert.Equal(t, domain.TaskID("c"), m.SelectedTask().ID)

	// Deleting the last row selects the new last row
	press(m, tea.KeyDown)
	press(m, tea.KeyDown)
	require.Equal(t, "four", m.SelectedTask().Text)
	pressRune(m, 'd')
	assert.Equal(t, domain.TaskID("c"), m.SelectedTask().ID)
}

func TestModel_ClearAllIsInert(t *testing.T) {
	initial := domain.State{Tasks: []domain.Task{{ID: "a", Text: "one"}}}
	m, store := newTestModel(t, initial)

	press(m, tea.KeyTab)
	pressRune(m, 'C')

	stored, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []domain.Task{{ID: "a", Text: "one"}}, stored.Tasks)
	assert.Contains(t, m.View(), "You have 1 pending tasks")
}

func TestModel_HelpMode(t *testing.T) {
	m, _ := newTestModel(t, domain.State{})

	press(m, tea.KeyTab)
	pressRune(m, '?')
	require.Equal(t, ModeHelp, m.Mode())
	assert.Contains(t, m.View(), "clear all")

	press(m, tea.KeyEsc)
	assert.Equal(t, ModeList, m.Mode())
}

func TestModel_StoreErrorShownInline(t *testing.T) {
	forceASCIIProfile(t)
	store := testutil.NewMockStateStore(domain.State{Draft: "x"})
	c := app.NewWithDeps(nil, store, idgen.NewSequence(1), nil)
	m := New(c)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	store.SaveErr = errors.New("disk full")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.NotNil(t, cmd, "error clear should be scheduled")
	assert.Contains(t, m.View(), "Error: save board: disk full")

	m.Update(MsgClearError{Seq: 1})
	assert.NotContains(t, m.View(), "Error:")
}

func TestModel_StaleErrorClearKeepsNewerError(t *testing.T) {
	m, _ := newTestModel(t, domain.State{})

	m.Update(MsgError{Err: errors.New("first")})
	m.Update(MsgError{Err: errors.New("second")})

	m.Update(MsgClearError{Seq: 1})
	assert.Contains(t, m.View(), "Error: second", "timer of the first error must not clear the second")

	m.Update(MsgClearError{Seq: 2})
	assert.NotContains(t, m.View(), "Error:")
}

func TestModel_LongTextIsNotTruncated(t *testing.T) {
	m, store := newTestModel(t, domain.State{})
	long := strings.Repeat("x", 500)

	typeText(m, long)
	press(m, tea.KeyEnter)

	stored, err := store.Load()
	require.NoError(t, err)
	require.Len(t, stored.Tasks, 1)
	assert.Equal(t, long, stored.Tasks[0].Text)
}

func TestModel_ViewBeforeResize(t *testing.T) {
	forceASCIIProfile(t)
	c := app.NewWithDeps(nil, testutil.NewMockStateStore(domain.State{}), idgen.NewSequence(1), nil)
	m := New(c)

	assert.Equal(t, "Loading...", m.View())
	assert.NotNil(t, m.Init())
}
