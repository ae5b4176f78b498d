// Package tui is the interactive to-do list.
//
// The bubbletea program is the terminal surface: it owns raw mode, the
// alternate screen and mouse capture, and restores all of them on every exit
// path. Everything in this package runs on the program's event loop.
package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	clog "github.com/charmbracelet/log"
)

type Options struct {
	// TickRate is the redraw interval when no input arrives. Zero means 250ms.
	TickRate time.Duration
	// Items seeds the list.
	Items []string
	// Glyphs is "unicode" or "ascii".
	Glyphs string
	// Theme is "auto", "light" or "dark".
	Theme  string
	Logger *clog.Logger

	// Input and Output replace the terminal; nil means stdin/stdout.
	Input  io.Reader
	Output io.Writer
}

// SurfaceError is a terminal I/O failure. It ends the run.
type SurfaceError struct {
	Op  string
	Err error
}

func (e *SurfaceError) Error() string {
	return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
}

func (e *SurfaceError) Unwrap() error { return e.Err }

// Run shows the list until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	_, err := run(ctx, opts)
	return err
}

func run(ctx context.Context, opts Options) (appModel, error) {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)
	applyGlyphPreference(opts.Glyphs)

	m := newAppModel(modelOptions{
		items:    opts.Items,
		tickRate: opts.TickRate,
		logger:   opts.Logger,
	})
	m.log.Info("starting", "items", m.state.list.Len(), "tick", m.clock.interval)

	progOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}

	final, err := tea.NewProgram(m, progOpts...).Run()
	if err != nil {
		m.log.Error("program stopped", "err", err)
		return m, &SurfaceError{Op: "run", Err: err}
	}
	if fm, ok := final.(appModel); ok {
		m = fm
	}
	m.log.Info("stopped", "items", m.state.list.Len())
	return m, nil
}
