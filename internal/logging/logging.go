// Package logging builds the application logger.
//
// The interactive UI owns stdout, so log output goes to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	clog "github.com/charmbracelet/log"
)

// New returns a logger writing to path at the given level. An empty path
// yields a logger that discards everything. The returned close func is never nil.
func New(path, level string) (*clog.Logger, func() error, error) {
	lvl, err := clog.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}

	if path == "" {
		l := Discard()
		l.SetLevel(lvl)
		return l, func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	l := clog.NewWithOptions(f, clog.Options{
		ReportTimestamp: true,
		Prefix:          "todo",
		Level:           lvl,
	})
	return l, f.Close, nil
}

// Discard returns a logger that drops all output.
func Discard() *clog.Logger {
	return clog.New(io.Discard)
}
