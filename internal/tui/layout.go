package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

const (
	headerHeight = 3
	footerHeight = 3

	// minBodyHeight leaves one list row inside the border.
	minBodyHeight = 3

	fallbackWidth  = 80
	fallbackHeight = 24
)

// screenLayout is the vertical split of the screen: a fixed header, a
// flexible body and a fixed footer.
type screenLayout struct {
	header region
	body   region
	footer region
}

// splitScreen partitions a width x height area. Sizes that are not known yet
// (zero before the first resize event) fall back to 80x24. When the screen is
// too short the body keeps its minimum and the frame overflows downwards.
func splitScreen(width, height int) screenLayout {
	if width <= 0 {
		width = fallbackWidth
	}
	if height <= 0 {
		height = fallbackHeight
	}
	bodyH := height - headerHeight - footerHeight
	if bodyH < minBodyHeight {
		bodyH = minBodyHeight
	}
	return screenLayout{
		header: region{X: 0, Y: 0, Width: width, Height: headerHeight},
		body:   region{X: 0, Y: headerHeight, Width: width, Height: bodyH},
		footer: region{X: 0, Y: headerHeight + bodyH, Width: width, Height: footerHeight},
	}
}

// normalizePane forces s to be exactly width columns wide (ANSI-aware) and
// height lines tall.
func normalizePane(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	lines := strings.Split(s, "\n")

	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}

	for i := range lines {
		lines[i] = fitLine(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

// fitLine pads or cuts ln to exactly width cells, ending cut lines with "…".
func fitLine(ln string, width int) string {
	w := xansi.StringWidth(ln)
	if w > width {
		switch {
		case width <= 0:
			ln = ""
		case width == 1:
			ln = xansi.Cut(ln, 0, 1)
		default:
			ln = xansi.Cut(ln, 0, width-1) + "…"
		}
		w = xansi.StringWidth(ln)
	}
	if w < width {
		ln += strings.Repeat(" ", width-w)
	}
	return ln
}
