package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/pkozlov/calcade/internal/audio"
	"github.com/pkozlov/calcade/internal/core"
	"github.com/pkozlov/calcade/internal/registry"
	"github.com/pkozlov/calcade/internal/session"
	"github.com/pkozlov/calcade/internal/storage"
)

// GameModel is the Bubble Tea model for running one arcade game.
type GameModel struct {
	game    registry.Game
	screen  *core.Screen
	latch   *core.Latch
	keys    *KeyMapper
	store   storage.Store
	sink    audio.Sink
	logger  *log.Logger
	config  core.RuntimeConfig
	state   core.GameState
	tracker *session.Tracker
	settled bool
	quit    bool
	back    bool

	// exitOnBack makes Back quit the program; set when the model runs
	// standalone with no parent screen to return to.
	exitOnBack bool
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, store storage.Store, sink audio.Sink, logger *log.Logger, cfg core.RuntimeConfig) *GameModel {
	// Time-based seed when not specified; games never do this themselves.
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if sink == nil {
		sink = audio.NopSink{}
	}

	return &GameModel{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		latch:  core.NewLatch(cfg.ScreenW, cfg.ScreenH),
		keys:   NewKeyMapper(),
		store:  store,
		sink:   sink,
		logger: logger,
		config: cfg,
	}
}

// Quitting reports whether the player asked to exit the whole program.
func (m *GameModel) Quitting() bool { return m.quit }

// GoingBack reports whether the player asked to return to the previous
// screen.
func (m *GameModel) GoingBack() bool { return m.back }

// Init initializes the model and starts the game.
func (m *GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.state = m.game.State()
	m.tracker = session.Start(m.game.ID())
	m.settled = false
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m *GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.latch.SetPointer(float64(msg.X), float64(msg.Y))
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "b" || msg.String() == "esc" {
		m.settleOnce(session.ReasonForStatus(m.state.Status))
		m.back = true
		if m.exitOnBack {
			m.quit = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.keys.MapKeyToLatch(msg, m.latch) {
		m.settleOnce(session.ReasonForStatus(m.state.Status))
		m.quit = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events: the screen buffer and the
// pointer scale both follow the viewport.
func (m *GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height)
	m.latch.SetViewport(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation tick.
func (m *GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.back {
		return m, nil
	}

	wasTerminal := m.state.Status.Terminal()

	result := m.game.Step(m.latch.Frame())
	m.state = result.State

	for _, cue := range result.Cues {
		m.sink.Play(cue)
	}

	// Settle exactly once per session, on the transition into a terminal
	// status. A restart starts a fresh session.
	if m.state.Status.Terminal() && !m.settled {
		m.settleOnce(session.ReasonForStatus(m.state.Status))
	}
	if wasTerminal && !m.state.Status.Terminal() {
		m.tracker = session.Start(m.game.ID())
		m.settled = false
		m.latch.Reset()
	}

	return m, tickCmd(m.config.TickRate)
}

// settleOnce writes the session settlement, best-effort.
func (m *GameModel) settleOnce(reason session.EndReason) {
	if m.settled || m.store == nil || m.tracker == nil {
		return
	}
	m.settled = true

	res := m.tracker.Finish(m.state, reason)
	if err := m.store.Settle(res); err != nil && m.logger != nil {
		m.logger.Warn("settlement failed", "game", res.GameID, "error", err)
	}
}

// View renders the current state to a string for display.
func (m *GameModel) View() string {
	if m.quit {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts a standalone Bubble Tea program for one game.
func Run(game registry.Game, store storage.Store, sink audio.Sink, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, sink, logger, cfg)
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
