package tui

import "time"

// mode gates how key presses are interpreted.
type mode int

const (
	modeNormal mode = iota
	modeAdd
	modeUpdate
	modeDelete
)

func (m mode) String() string {
	switch m {
	case modeAdd:
		return "add"
	case modeUpdate:
		return "update"
	case modeDelete:
		return "delete"
	default:
		return "normal"
	}
}

// tickMsg marks a tick boundary; a redraw follows every message.
type tickMsg struct{ at time.Time }

// point is a cell position on screen, origin top-left.
type point struct {
	X, Y int
}

// region is a rectangular band of the screen.
type region struct {
	X, Y          int
	Width, Height int
}

func (r region) origin() point { return point{X: r.X, Y: r.Y} }
