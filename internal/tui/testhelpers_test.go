package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var seedItems = []string{"Be a gangster", "Finish a project", "Be a coder"}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time           { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestModel(t *testing.T, items ...string) (appModel, *fakeClock) {
	t.Helper()
	if items == nil {
		items = seedItems
	}
	clk := &fakeClock{t: time.Date(2025, 12, 21, 9, 0, 0, 0, time.UTC)}
	m := newAppModel(modelOptions{
		items:    items,
		tickRate: 250 * time.Millisecond,
		now:      clk.now,
	})
	return m, clk
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// spaceKey is what the terminal reader produces for the space bar.
func spaceKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
}

func typeKey(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// press feeds keys through Update and reports whether the last one asked
// the program to quit. Commands other than tea.Quit are not executed.
func press(t *testing.T, m appModel, keys ...tea.KeyMsg) (appModel, bool) {
	t.Helper()
	quit := false
	for _, k := range keys {
		if quit {
			t.Fatalf("key %q sent after quit", k.String())
		}
		mAny, cmd := m.Update(k)
		m = mAny.(appModel)
		quit = isQuitKey(m, k, cmd)
	}
	return m, quit
}

// isQuitKey runs cmd only when it can be tea.Quit; textinput blink commands
// sleep, so they must not be executed.
func isQuitKey(m appModel, k tea.KeyMsg, cmd tea.Cmd) bool {
	if cmd == nil || m.state.mode != modeNormal || k.String() != "q" {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
