package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/idgen"
	"github.com/runoshun/todo/internal/infra/memstore"
	"github.com/runoshun/todo/internal/testutil"
)

// forceASCIIProfile renders without colour so views can be matched as plain text.
func forceASCIIProfile(t *testing.T) {
	t.Helper()
	prev := lipgloss.DefaultRenderer().ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(prev)
	})
}

func newTestModel(t *testing.T, state domain.State) (*Model, *memstore.Store) {
	t.Helper()
	forceASCIIProfile(t)
	store := memstore.NewWithState(state)
	c := app.NewWithDeps(nil, store, idgen.NewSequence(1), &testutil.MockLogger{})
	m := New(c)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m, store
}

func typeText(m *Model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func press(m *Model, keyType tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: keyType})
	return cmd
}

func pressRune(m *Model, r rune) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return cmd
}

func taskTexts(state domain.State) []string {
	texts := make([]string, 0, len(state.Tasks))
	for _, task := range state.Tasks {
		texts = append(texts, task.Text)
	}
	return texts
}
