package tui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	clog "github.com/charmbracelet/log"
)

const statusNeedSelection = "Select an item first (↑/↓)"

// controller interprets key presses according to the current mode. It only
// touches appState; it never draws or reads the terminal.
type controller struct {
	keys keyMap
	log  *clog.Logger
}

// handle applies msg to st. quit reports that the loop should stop.
func (c controller) handle(st *appState, msg tea.KeyMsg) (quit bool, cmd tea.Cmd) {
	c.log.Debug("key", "mode", st.mode, "key", msg.String())
	st.status = ""

	switch st.mode {
	case modeNormal:
		return c.handleNormal(st, msg)
	case modeUpdate:
		c.handleUpdate(st, msg)
	case modeAdd:
		cmd = c.handleAdd(st, msg)
	case modeDelete:
		c.handleDelete(st, msg)
	}
	return false, cmd
}

func (c controller) handleNormal(st *appState, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, c.keys.Quit):
		c.log.Info("quit requested")
		return true, nil
	case key.Matches(msg, c.keys.Unselect):
		st.list.Unselect()
	case key.Matches(msg, c.keys.Down):
		st.list.Next()
	case key.Matches(msg, c.keys.Up):
		st.list.Previous()
	case key.Matches(msg, c.keys.Add):
		st.draft.SetValue("")
		c.setMode(st, modeAdd)
		return false, st.draft.Focus()
	case key.Matches(msg, c.keys.Edit):
		if _, ok := st.list.Selected(); !ok {
			st.status = statusNeedSelection
			return false, nil
		}
		c.setMode(st, modeUpdate)
	case key.Matches(msg, c.keys.Delete):
		if _, ok := st.list.Selected(); !ok {
			st.status = statusNeedSelection
			return false, nil
		}
		c.setMode(st, modeDelete)
	}
	return false, nil
}

// handleUpdate appends typed characters to the selected item.
func (c controller) handleUpdate(st *appState, msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, c.keys.Done):
		c.setMode(st, modeNormal)
		return
	case key.Matches(msg, c.keys.Erase):
		// Reserved.
		return
	}

	text := printableText(msg)
	if text == "" {
		return
	}
	id, ok := st.list.SelectedID()
	if !ok {
		// The selection can only vanish underneath Update mode if the item
		// was removed; there is nothing left to edit.
		c.setMode(st, modeNormal)
		return
	}
	st.list.Update(id, func(s string) string { return s + text })
	c.log.Debug("item edited", "id", id, "appended", text)
}

// handleAdd feeds keys to the draft input until it is committed or dropped.
func (c controller) handleAdd(st *appState, msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, c.keys.Done):
		text := strings.TrimSpace(st.draft.Value())
		if text != "" {
			id := st.list.Append(text)
			st.list.SelectID(id)
			c.log.Info("item added", "id", id, "text", text)
		}
		c.closeDraft(st)
		return nil
	case key.Matches(msg, c.keys.Cancel):
		c.closeDraft(st)
		return nil
	}
	var cmd tea.Cmd
	st.draft, cmd = st.draft.Update(msg)
	return cmd
}

func (c controller) handleDelete(st *appState, msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, c.keys.Confirm):
		if id, ok := st.list.SelectedID(); ok {
			text, _ := st.list.Get(id)
			st.list.Remove(id)
			c.log.Info("item deleted", "id", id, "text", text)
		}
		c.setMode(st, modeNormal)
	case key.Matches(msg, c.keys.Reject):
		c.setMode(st, modeNormal)
	}
}

func (c controller) closeDraft(st *appState) {
	st.draft.Blur()
	st.draft.SetValue("")
	c.setMode(st, modeNormal)
}

func (c controller) setMode(st *appState, next mode) {
	if st.mode == next {
		return
	}
	c.log.Info("mode change", "from", st.mode, "to", next)
	st.mode = next
}

// printableText returns the characters a key press would type, or "".
func printableText(msg tea.KeyMsg) string {
	if msg.Alt {
		return ""
	}
	var runes []rune
	switch msg.Type {
	case tea.KeyRunes:
		runes = msg.Runes
	case tea.KeySpace:
		runes = []rune{' '}
	default:
		return ""
	}
	var b strings.Builder
	for _, r := range runes {
		if unicode.IsPrint(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
