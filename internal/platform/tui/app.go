package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/pkozlov/calcade/internal/audio"
	"github.com/pkozlov/calcade/internal/core"
	"github.com/pkozlov/calcade/internal/registry"
	"github.com/pkozlov/calcade/internal/storage"
)

// screen identifies the active screen of the arcade session.
type screen int

const (
	screenCalculator screen = iota
	screenMenu
	screenScoreboard
	screenGame
)

// AppModel manages the full arcade session flow:
// calculator -> (code) game, calculator -> menu -> game, and back.
// It is the top-level model for both local and SSH sessions.
type AppModel struct {
	active screen

	calc       *CalculatorModel
	menu       *MenuModel
	scoreboard *ScoreboardModel
	game       *GameModel

	store  storage.Store
	sink   audio.Sink
	logger *log.Logger
	config core.RuntimeConfig
}

// NewAppModel creates the top-level session model.
func NewAppModel(store storage.Store, sink audio.Sink, logger *log.Logger, cfg core.RuntimeConfig) *AppModel {
	return &AppModel{
		active: screenCalculator,
		calc:   NewCalculatorModel(store, cfg.ScreenW, cfg.ScreenH),
		store:  store,
		sink:   sink,
		logger: logger,
		config: cfg,
	}
}

// Init implements tea.Model.
func (m *AppModel) Init() tea.Cmd {
	return m.calc.Init()
}

// Update routes messages to the active screen and handles transitions.
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Window size reaches every screen so none renders stale dimensions.
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = size.Width
		m.config.ScreenH = size.Height
	}

	switch m.active {
	case screenCalculator:
		return m.updateCalculator(msg)
	case screenMenu:
		return m.updateMenu(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	case screenGame:
		return m.updateGame(msg)
	}
	return m, nil
}

func (m *AppModel) updateCalculator(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Screen switches not meaningful to the calculator itself.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "m":
			m.menu = NewMenuModel(m.store, m.config.ScreenW, m.config.ScreenH)
			m.active = screenMenu
			return m, m.menu.Init()
		case "t":
			m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
			m.active = screenScoreboard
			return m, m.scoreboard.Init()
		}
	}

	_, cmd := m.calc.Update(msg)
	if m.calc.Quitting() {
		return m, tea.Quit
	}
	if id := m.calc.LaunchID(); id != "" {
		return m.launchGame(id)
	}
	return m, cmd
}

func (m *AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.menu.Update(msg)
	if m.menu.Quitting() {
		return m, tea.Quit
	}
	if m.menu.GoingBack() {
		m.active = screenCalculator
		return m, nil
	}
	if id := m.menu.Selected(); id != "" {
		return m.launchGame(id)
	}
	return m, cmd
}

func (m *AppModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.scoreboard.Update(msg)
	if m.scoreboard.Quitting() {
		return m, tea.Quit
	}
	if m.scoreboard.GoingBack() {
		m.active = screenCalculator
		return m, nil
	}
	return m, cmd
}

func (m *AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.game.Update(msg)
	if m.game.Quitting() {
		return m, tea.Quit
	}
	if m.game.GoingBack() {
		m.game = nil
		m.active = screenCalculator
		return m, nil
	}
	return m, cmd
}

// launchGame instantiates and mounts a game screen.
func (m *AppModel) launchGame(id string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(id)
	if err != nil {
		if m.logger != nil {
			m.logger.Error("cannot create game", "id", id, "error", err)
		}
		return m, nil
	}

	m.game = NewGameModel(game, m.store, m.sink, m.logger, m.config)
	m.active = screenGame
	return m, m.game.Init()
}

// View renders the active screen.
func (m *AppModel) View() string {
	switch m.active {
	case screenMenu:
		return m.menu.View()
	case screenScoreboard:
		return m.scoreboard.View()
	case screenGame:
		return m.game.View()
	default:
		return m.calc.View()
	}
}

// RunApp starts the full arcade session locally.
func RunApp(store storage.Store, sink audio.Sink, logger *log.Logger, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewAppModel(store, sink, logger, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
