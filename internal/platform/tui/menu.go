package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Board sizes offered by the menu.
const (
	MinMenuBoardSize = 3
	MaxMenuBoardSize = 8
)

// MenuItem represents a selectable mode in the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	Best        int
}

// MenuModel is the Bubble Tea model for the mode and board size picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	size           int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// NewMenuModel creates a new menu model. Modes are listed classic, time attack, target.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	modes := []t2048.Mode{
		t2048.Classic(),
		t2048.TimeAttack(cfg.TimeLimit),
		t2048.TargetScore(cfg.TargetScore),
	}

	items := make([]MenuItem, 0, len(modes))
	for _, mode := range modes {
		if !registry.Exists(mode.ID()) {
			continue
		}
		item := MenuItem{
			GameID:      mode.ID(),
			Title:       mode.Title(),
			Description: mode.Describe(),
		}
		if store != nil {
			if best, err := store.HighScore(mode.ID()); err == nil {
				item.Best = best
			}
		}
		items = append(items, item)
	}

	size := cfg.BoardSize
	if size == 0 {
		size = t2048.BoardSize
	}
	size = core.Clamp(size, MinMenuBoardSize, MaxMenuBoardSize)

	return MenuModel{
		items:     items,
		size:      size,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if m.size > MinMenuBoardSize {
			m.size--
		}

	case MenuActionRight:
		if m.size < MaxMenuBoardSize {
			m.size++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("2 0 4 8"), m.width, len("2 0 4 8")))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a mode", m.width, 0))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %-20s best %d", item.Title, item.Best)
		if i == m.cursor {
			line = "> " + line[2:]
			b.WriteString(centerText(menuSelectedStyle.Render(line), m.width, len(line)))
		} else {
			b.WriteString(centerText(line, m.width, 0))
		}
		b.WriteString("\n")
	}

	if len(m.items) > 0 {
		desc := m.items[m.cursor].Description
		b.WriteString("\n")
		b.WriteString(centerText(menuDimStyle.Render(desc), m.width, len(desc)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Board: < %dx%d >", m.size, m.size), m.width, 0))
	b.WriteString("\n\n")

	controls := "Up/Down: Mode  |  Left/Right: Size  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width, len(controls)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config with the latest screen and board size.
func (m MenuModel) Config() core.RuntimeConfig {
	cfg := m.config
	cfg.BoardSize = m.size
	return cfg
}

// centerText centers text within width. visible is the printed length of
// styled text; zero means len(text).
func centerText(text string, width, visible int) string {
	if visible == 0 {
		visible = len(text)
	}
	if visible >= width {
		return text
	}
	return strings.Repeat(" ", (width-visible)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result summarizes how the menu was left.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.selected != nil:
		result.GameID = m.selected.GameID
	default:
		result.Quit = true
	}
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
