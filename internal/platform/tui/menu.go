package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pkozlov/calcade/internal/registry"
	"github.com/pkozlov/calcade/internal/storage"
)

// Menu styles
var (
	menuTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			MarginBottom(1)

	menuItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			PaddingLeft(2)

	menuSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("10")).
				Bold(true).
				PaddingLeft(0)

	menuLockedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			PaddingLeft(2)

	menuHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)
)

// menuItem is one row of the game menu.
type menuItem struct {
	info     registry.GameInfo
	unlocked bool
	high     int
}

// MenuModel lists the games. Locked games show as "????" until their
// calculator code has been entered once.
type MenuModel struct {
	items    []menuItem
	cursor   int
	keys     *KeyMapper
	store    storage.Store
	selected string // game ID chosen to play
	back     bool
	quitting bool
	width    int
	height   int
}

// NewMenuModel creates the game menu, resolving unlock state and high
// scores from storage.
func NewMenuModel(store storage.Store, width, height int) *MenuModel {
	m := &MenuModel{
		keys:   NewKeyMapper(),
		store:  store,
		width:  width,
		height: height,
	}
	m.reload()
	return m
}

// reload refreshes unlock flags and high scores.
func (m *MenuModel) reload() {
	infos := registry.List()
	m.items = m.items[:0]
	for _, info := range infos {
		item := menuItem{info: info, unlocked: !info.Hidden}
		if m.store != nil {
			if info.Hidden && m.store.GetInt(storage.UnlockKey(info.ID), 0) == 1 {
				item.unlocked = true
			}
			if high, err := m.store.HighScore(info.ID); err == nil {
				item.high = high
			}
		}
		m.items = append(m.items, item)
	}
	if m.cursor >= len(m.items) {
		m.cursor = 0
	}
}

// Selected returns the game chosen to play, consuming it.
func (m *MenuModel) Selected() string {
	id := m.selected
	m.selected = ""
	return id
}

// GoingBack reports whether the user asked to return to the calculator.
func (m *MenuModel) GoingBack() bool { return m.back }

// Quitting reports whether the user asked to exit.
func (m *MenuModel) Quitting() bool { return m.quitting }

// Init implements tea.Model.
func (m *MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionBack:
			m.back = true
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			if len(m.items) > 0 && m.items[m.cursor].unlocked {
				m.selected = m.items[m.cursor].info.ID
			}
		}
	}
	return m, nil
}

// View renders the menu.
func (m *MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(menuTitleStyle.Render("GAME LIBRARY"))
	sb.WriteString("\n")

	for i, item := range m.items {
		label := item.info.Title
		if !item.unlocked {
			label = "????"
		}
		line := label
		if item.unlocked && item.high > 0 {
			line = fmt.Sprintf("%-12s best %d", label, item.high)
		}

		switch {
		case i == m.cursor && item.unlocked:
			sb.WriteString(menuSelectedStyle.Render("> " + line))
		case i == m.cursor:
			sb.WriteString(menuSelectedStyle.Render("> ") + menuLockedStyle.Render(line))
		case item.unlocked:
			sb.WriteString(menuItemStyle.Render(line))
		default:
			sb.WriteString(menuLockedStyle.Render(line))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(menuHintStyle.Render("enter play  esc back  q quit"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, sb.String())
}
