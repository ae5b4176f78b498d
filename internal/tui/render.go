package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

const appTitle = "Todo List"

// frame is a fully planned screen. Each band is already sized to its region.
type frame struct {
	layout screenLayout
	header string
	body   string
	footer string
	// caret is where the terminal cursor belongs; nil keeps it hidden.
	caret *point
}

func (f frame) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, f.header, f.body, f.footer)
}

func newMenuHelp() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(colorTitle)
	h.Styles.ShortSeparator = styleMuted()
	return h
}

// planFrame lays out st on a width x height screen. It reads st and never
// changes it.
func planFrame(st *appState, menu help.Model, keys keyMap, width, height int) frame {
	lay := splitScreen(width, height)
	f := frame{layout: lay}

	f.header = renderBand(planHeader(st, lay.header.Width-2), lay.header)
	if st.mode == modeAdd {
		origin := lay.header.origin()
		f.caret = &origin
	}
	f.body = renderBand(planList(st, keys, lay.body.Width-2, lay.body.Height-2), lay.body)
	f.footer = renderBand(planFooter(st, menu, keys, lay.footer.Width-2), lay.footer)
	return f
}

// renderBand draws content inside a bordered box filling r exactly.
func renderBand(content string, r region) string {
	inner := normalizePane(content, r.Width-2, r.Height-2)
	return styleBand().Render(inner)
}

func planHeader(st *appState, innerW int) string {
	if st.mode == modeAdd {
		return renderInputLine(innerW, st.draft.View())
	}
	title := lipgloss.NewStyle().Bold(true).Foreground(colorTitle).Render(appTitle)
	return lipgloss.PlaceHorizontal(max(innerW, 0), lipgloss.Center, title)
}

func planList(st *appState, keys keyMap, innerW, innerH int) string {
	items := st.list.Items()
	if len(items) == 0 {
		hint := fmt.Sprintf("Nothing to do. Press %s to add an item.", keys.Add.Help().Key)
		return styleMuted().Render(hint)
	}

	cursor, hasCursor := st.list.Selected()
	start, end := visibleWindow(len(items), innerH, cursor, hasCursor)
	d := newRowDelegate()

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, d.render(items[i], hasCursor && i == cursor, innerW))
	}
	return strings.Join(rows, "\n")
}

func planFooter(st *appState, menu help.Model, keys keyMap, innerW int) string {
	menu.ShortSeparator = glyphSeparator()
	menu.Width = 0

	var b strings.Builder
	switch st.mode {
	case modeUpdate:
		b.WriteString(styleMuted().Render("Editing " + glyphArrow() + " type to append  "))
	case modeDelete:
		if text, ok := st.list.SelectedValue(); ok {
			b.WriteString(fmt.Sprintf("Delete %q?  ", text))
		}
	}
	b.WriteString(menu.ShortHelpView(keys.menu(st.mode)))
	if st.status != "" {
		b.WriteString(glyphSeparator())
		b.WriteString(lipgloss.NewStyle().Foreground(colorWarnFg).Render(st.status))
	}
	return b.String()
}
