package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/watchlist/internal/model"
)

const (
	defaultPollInterval = 100 * time.Millisecond
	defaultStatusTTL    = 3 * time.Second

	// used until the first tea.WindowSizeMsg arrives
	defaultWidth, defaultHeight = 80, 24
)

// Options tune the interactive loop. Zero values use the defaults.
type Options struct {
	PollInterval time.Duration // redraw cadence when no key arrives
	StatusTTL    time.Duration // how long a save failure stays in the footer
}

func (o Options) withDefaults() Options {
	if o.PollInterval <= 0 {
		o.PollInterval = defaultPollInterval
	}
	if o.StatusTTL <= 0 {
		o.StatusTTL = defaultStatusTTL
	}
	return o
}

type tickMsg time.Time

// App is the Bubble Tea model. It owns the watchlist for the program's lifetime.
type App struct {
	watchlist *model.Watchlist
	keys      keyMap
	help      help.Model
	opt       Options

	width, height int

	status      string
	statusUntil time.Time
	quitting    bool
}

func New(w *model.Watchlist, opt Options) App {
	return App{
		watchlist: w,
		keys:      defaultKeyMap(),
		help:      help.New(),
		opt:       opt.withDefaults(),
		width:     defaultWidth,
		height:    defaultHeight,
	}
}

// Run takes over the terminal until the user quits. Bubble Tea restores the
// terminal on every exit path, panics included.
func Run(w *model.Watchlist, opt Options) error {
	_, err := tea.NewProgram(New(w, opt), tea.WithAltScreen()).Run()
	return err
}

func (m App) tick() tea.Cmd {
	return tea.Tick(m.opt.PollInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m App) Init() tea.Cmd { return m.tick() }

func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tickMsg:
		// no input this window; expire the status and redraw anyway
		if m.status != "" && !time.Time(msg).Before(m.statusUntil) {
			m.status = ""
		}
		return m, m.tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			if err := m.watchlist.ToggleCurrent(); err != nil {
				m.status = "save failed: " + err.Error()
				m.statusUntil = time.Now().Add(m.opt.StatusTTL)
			} else {
				m.status = ""
			}
		case key.Matches(msg, m.keys.Down):
			m.watchlist.Next()
		case key.Matches(msg, m.keys.Up):
			m.watchlist.Previous()
		}
	}
	return m, nil
}
