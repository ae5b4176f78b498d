package cli

import (
	"fmt"
	"strings"
	"time"

	"todo-tui/internal/config"
	"todo-tui/internal/logging"
	"todo-tui/internal/tui"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X todo-tui/internal/cli.Version=...".
var Version = "dev"

type App struct {
	ConfigFile string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "todo",
		Short:        "Keyboard-driven to-do list for the terminal",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		Example: strings.TrimSpace(`
  # Start with the built-in example items
  todo

  # Start with your own items and ASCII-only glyphs
  todo --item "Water plants" --item "Call mom" --glyphs ascii

  # Keep a debug log while the list is on screen
  todo --log-file /tmp/todo.log --log-level debug
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}

	d := config.Defaults()
	f := cmd.Flags()
	f.StringVar(&app.ConfigFile, "config", "", "Path to a todo.yaml config file")
	f.Duration("tick-rate", d["tick_rate"].(time.Duration), "Redraw interval when idle")
	f.String("log-file", "", "Write logs to this file (default: no logging)")
	f.String("log-level", d["log_level"].(string), "Log level (debug|info|warn|error)")
	f.String("glyphs", d["glyphs"].(string), "Glyph set (unicode|ascii)")
	f.String("theme", d["theme"].(string), "Color theme (auto|light|dark)")
	f.StringArray("item", nil, "Seed item (repeatable; replaces the example items)")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), Version)
			return err
		},
	}
}

func runTUI(cmd *cobra.Command, app *App) error {
	cfg, err := config.Load(cmd.Flags(), app.ConfigFile)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	return tui.Run(cmd.Context(), tui.Options{
		TickRate: cfg.TickRate,
		Items:    cfg.SeedItems(),
		Glyphs:   cfg.Glyphs,
		Theme:    cfg.Theme,
		Logger:   logger,
	})
}
