package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultTickRate = 250 * time.Millisecond

// tickClock tracks the current tick window. The wait for input is bounded by
// remaining(), so a frame is drawn at least once per interval.
type tickClock struct {
	interval time.Duration
	last     time.Time
}

func newTickClock(interval time.Duration, now time.Time) tickClock {
	if interval <= 0 {
		interval = defaultTickRate
	}
	return tickClock{interval: interval, last: now}
}

// remaining is the time left until the next tick boundary, clamped to
// [0, interval]. A clock that moved backwards yields a full interval.
func (c tickClock) remaining(now time.Time) time.Duration {
	elapsed := now.Sub(c.last)
	if elapsed < 0 {
		return c.interval
	}
	if elapsed >= c.interval {
		return 0
	}
	return c.interval - elapsed
}

// advance resets the reference to now once the boundary has been reached and
// reports whether it did.
func (c *tickClock) advance(now time.Time) bool {
	if now.Sub(c.last) < c.interval {
		return false
	}
	c.last = now
	return true
}

// schedule arms the next tick for the remaining budget.
func (c tickClock) schedule(now time.Time) tea.Cmd {
	return tea.Tick(c.remaining(now), func(t time.Time) tea.Msg { return tickMsg{at: t} })
}
