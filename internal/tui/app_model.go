package tui

import (
	"time"

	"todo-tui/internal/logging"
	"todo-tui/internal/selectlist"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	clog "github.com/charmbracelet/log"
)

// appState is everything the controller may change.
type appState struct {
	list *selectlist.List[string]
	mode mode
	// draft holds the text of an item being added.
	draft textinput.Model
	// status is a one-line message shown in the footer until the next key.
	status string
}

func newAppState(items []string) appState {
	in := textinput.New()
	in.Prompt = "New item: "
	in.Placeholder = "What needs doing?"
	in.CharLimit = 256
	return appState{
		list:  selectlist.New(items...),
		mode:  modeNormal,
		draft: in,
	}
}

type appModel struct {
	state appState
	ctl   controller
	help  help.Model
	log   *clog.Logger

	clock tickClock
	now   func() time.Time

	width  int
	height int
}

type modelOptions struct {
	items    []string
	tickRate time.Duration
	logger   *clog.Logger
	now      func() time.Time
}

func newAppModel(opts modelOptions) appModel {
	now := opts.now
	if now == nil {
		now = time.Now
	}
	logger := opts.logger
	if logger == nil {
		logger = logging.Discard()
	}
	keys := defaultKeyMap()
	return appModel{
		state: newAppState(opts.items),
		ctl:   controller{keys: keys, log: logger},
		help:  newMenuHelp(),
		log:   logger,
		clock: newTickClock(opts.tickRate, now()),
		now:   now,
	}
}
