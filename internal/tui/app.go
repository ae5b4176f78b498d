package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Init arms the first tick.
func (m appModel) Init() tea.Cmd {
	return m.clock.schedule(m.now())
}

// Update is one turn of the loop: dispatch the message, move the tick
// reference forward if the boundary passed, and let the program redraw.
func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		// Exactly one tick is outstanding at a time; re-arm it for whatever
		// is left of the current window.
		now := m.now()
		m.clock.advance(now)
		return m, m.clock.schedule(now)

	case tea.KeyMsg:
		var quit bool
		quit, cmd = m.ctl.handle(&m.state, msg)
		if quit {
			return m, tea.Quit
		}

	case tea.MouseMsg:
		// Mouse capture is on so clicks don't leak to the shell, but the
		// list is keyboard driven.

	default:
		// Cursor blink and similar messages belong to the draft input.
		if m.state.mode == modeAdd {
			m.state.draft, cmd = m.state.draft.Update(msg)
		}
	}

	m.clock.advance(m.now())
	return m, cmd
}

func (m appModel) View() string {
	return m.plan().View()
}

func (m appModel) plan() frame {
	return planFrame(&m.state, m.help, m.ctl.keys, m.width, m.height)
}
