package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/padlink/internal/gamepad"
	"github.com/five82/padlink/internal/linkstate"
	"github.com/five82/padlink/internal/prefs"
	"github.com/five82/padlink/internal/reconcile"
	"github.com/five82/padlink/internal/relay"
)

// Options configures the overlay.
type Options struct {
	Store         *gamepad.Store
	Link          *linkstate.Store
	Mode          reconcile.Mode
	FrameInterval time.Duration
	ThemeName     string
	PrefsPath     string
	Logger        *zap.Logger
}

// Model is the root application state for Bubble Tea. It owns the gamepad
// store: relay messages and reconciliation ticks are both applied in Update.
type Model struct {
	store     *gamepad.Store
	link      *linkstate.Store
	loop      *reconcile.Loop
	sched     *frameScheduler
	board     *board
	prefsPath string
	log       *zap.Logger

	keys keyMap
	help help.Model

	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
	compact  bool
}

// RelayMsg carries one decoded relay message into the program.
type RelayMsg relay.Message

// LinkChangedMsg asks for a redraw after the relay connection state moves.
type LinkChangedMsg struct{}

// New creates the overlay model and the reconciliation loop it drives.
func New(opts Options) (Model, error) {
	store := opts.Store
	if store == nil {
		store = gamepad.NewStore()
	}
	link := opts.Link
	if link == nil {
		link = &linkstate.Store{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	sched := newFrameScheduler(opts.FrameInterval)
	b := &board{}
	loop, err := reconcile.New(store, sched, b, reconcile.WithMode(opts.Mode))
	if err != nil {
		return Model{}, fmt.Errorf("create reconcile loop: %w", err)
	}

	return Model{
		store:     store,
		link:      link,
		loop:      loop,
		sched:     sched,
		board:     b,
		prefsPath: prefsPath,
		log:       logger,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		theme:     GetTheme(themeName),
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	m.loop.Start()
	return m.sched.next()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case frameMsg:
		m.sched.fire()
		return m, m.sched.next()

	case RelayMsg:
		relay.Apply(m.store, relay.Message(msg))
		return m, nil

	case LinkChangedMsg:
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderBoard())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.loop.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleMode):
		next := reconcile.ModeFocused
		if m.loop.Mode() == reconcile.ModeFocused {
			next = reconcile.ModeAll
		}
		m.loop.SetMode(next)
		m.log.Info("display mode changed", zap.String("mode", next.String()))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		if m.loop.Running() {
			m.loop.Stop()
		} else {
			m.loop.Start()
		}
		return m, m.sched.next()

	case key.Matches(msg, m.keys.Compact):
		m.compact = !m.compact
		return m, nil
	}

	return m, nil
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, Mode: m.loop.Mode().String()}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.log.Warn("save prefs failed", zap.Error(err))
	}
}

// NewProgram wraps the model in a program that stops when ctx is cancelled.
func NewProgram(ctx context.Context, m Model) *tea.Program {
	return tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
}
