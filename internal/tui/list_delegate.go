package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// rowDelegate renders one list row. The cursor row gets the marker glyph and
// the highlight style; other rows are indented by the marker's width so text
// stays aligned.
type rowDelegate struct {
	normal   lipgloss.Style
	selected lipgloss.Style
}

func newRowDelegate() rowDelegate {
	return rowDelegate{
		normal:   lipgloss.NewStyle(),
		selected: styleSelectedRow(),
	}
}

func (d rowDelegate) render(text string, selected bool, width int) string {
	if width < 4 {
		return strings.Repeat(" ", max(width, 0))
	}

	marker := glyphCursor()
	prefix := strings.Repeat(" ", xansi.StringWidth(marker))
	style := d.normal
	if selected {
		prefix = marker
		style = d.selected
	}

	// Item text is user input; keep it on one line.
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "\r", " ")

	return style.Render(fitLine(prefix+text, width))
}

// visibleWindow returns the [start, end) slice of n rows to draw in height
// lines so the cursor row, if any, is on screen.
func visibleWindow(n, height, cursor int, hasCursor bool) (int, int) {
	if height <= 0 || n == 0 {
		return 0, 0
	}
	if n <= height {
		return 0, n
	}
	start := 0
	if hasCursor && cursor >= height {
		start = cursor - height + 1
	}
	return start, start + height
}
