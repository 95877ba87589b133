package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-slide/internal/config"
	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/games/slide/puzzle"
)

// menuItemTop is the screen row of the first menu item.
const menuItemTop = 5

type menuScreen int

const (
	screenMain menuScreen = iota
	screenDifficulty
	screenImage
)

const (
	mainStart = iota
	mainDifficulty
	mainImage
	mainScores
	mainQuit
)

var mainItems = []string{"Start Game", "Select Difficulty", "Select Image", "High Scores", "Quit"}

// Selection is the grid size and theme the next game starts with. It
// persists across games within one process.
type Selection struct {
	Preset config.DifficultyPreset
	Theme  puzzle.Theme
}

// DefaultSelection returns the selection configured in cfg, falling back
// to Easy with numbers.
func DefaultSelection(cfg config.SlideConfig) Selection {
	sel := Selection{Preset: config.DifficultyEasy, Theme: puzzle.ThemeNumbers}
	if p, err := config.PresetForSize(cfg.Defaults.Size); err == nil {
		sel.Preset = p
	}
	if t, err := puzzle.ParseTheme(cfg.Defaults.Theme); err == nil {
		sel.Theme = t
	}
	return sel
}

// MenuItem is the game the player chose to start.
type MenuItem struct {
	GameID string
	Theme  string
}

// MenuModel is the Bubble Tea model for the main, difficulty and image menus.
type MenuModel struct {
	screen         menuScreen
	cursor         int
	selection      Selection
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user starts a game
	openScoreboard bool      // True if user asked for the scoreboard
}

// NewMenuModel creates a new menu model starting from sel.
func NewMenuModel(cfg core.RuntimeConfig, sel Selection) MenuModel {
	return MenuModel{
		selection: sel,
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
		return m.handleAction(m.keyMapper.MapKeyToMenuAction(msg))

	case tea.MouseMsg:
		if !IsClick(msg) {
			return m, nil
		}
		i := msg.Y - menuItemTop
		if i < 0 || i >= len(m.items()) {
			return m, nil
		}
		m.cursor = i
		return m.choose()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleAction(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items())-1 {
			m.cursor++
		}

	case MenuActionSelect:
		return m.choose()

	case MenuActionBack:
		if m.screen == screenMain {
			m.quitting = true
			return m, tea.Quit
		}
		m.gotoMain()

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// choose activates the item under the cursor.
func (m MenuModel) choose() (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenMain:
		switch m.cursor {
		case mainStart:
			m.selected = &MenuItem{
				GameID: m.selection.Preset.GameID(),
				Theme:  m.selection.Theme.String(),
			}
			return m, tea.Quit
		case mainDifficulty:
			m.screen = screenDifficulty
			m.cursor = indexOf(config.AllPresets(), m.selection.Preset)
		case mainImage:
			m.screen = screenImage
			m.cursor = indexOf(puzzle.AllThemes(), m.selection.Theme)
		case mainScores:
			m.openScoreboard = true
			return m, tea.Quit
		case mainQuit:
			m.quitting = true
			return m, tea.Quit
		}

	case screenDifficulty:
		if presets := config.AllPresets(); m.cursor < len(presets) {
			m.selection.Preset = presets[m.cursor]
		}
		m.gotoMain()

	case screenImage:
		if themes := puzzle.AllThemes(); m.cursor < len(themes) {
			m.selection.Theme = themes[m.cursor]
		}
		m.gotoMain()
	}
	return m, nil
}

func (m *MenuModel) gotoMain() {
	switch m.screen {
	case screenDifficulty:
		m.cursor = mainDifficulty
	case screenImage:
		m.cursor = mainImage
	}
	m.screen = screenMain
}

func indexOf[T comparable](items []T, v T) int {
	for i, it := range items {
		if it == v {
			return i
		}
	}
	return 0
}

// items returns the labels of the current screen.
func (m MenuModel) items() []string {
	switch m.screen {
	case screenDifficulty:
		presets := config.AllPresets()
		out := make([]string, 0, len(presets)+1)
		for _, p := range presets {
			out = append(out, p.Title())
		}
		return append(out, "Back")
	case screenImage:
		themes := puzzle.AllThemes()
		out := make([]string, 0, len(themes)+1)
		for _, t := range themes {
			out = append(out, t.Title())
		}
		return append(out, "Back")
	}
	return mainItems
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))

	// Rows: blank, title, blank, subtitle, blank, items from menuItemTop.
	b.WriteString("\n")
	b.WriteString(centerStyled(titleStyle, "S L I D I N G   P U Z Z L E", m.width))
	b.WriteString("\n\n")

	var subtitle string
	switch m.screen {
	case screenDifficulty:
		subtitle = "Select Difficulty"
	case screenImage:
		subtitle = "Select Image"
	default:
		subtitle = fmt.Sprintf("%s  |  %s", m.selection.Preset.Title(), m.selection.Theme.Title())
	}
	b.WriteString(centerStyled(dimStyle, subtitle, m.width))
	b.WriteString("\n\n")

	current := m.currentIndex()
	for i, item := range m.items() {
		marker := "  "
		if i == current {
			marker = "* "
		}
		line := fmt.Sprintf("  %s%s", marker, item)
		if i == m.cursor {
			line = fmt.Sprintf("> %s%s", marker, item)
			b.WriteString(centerStyled(cursorStyle, line, m.width))
		} else {
			b.WriteString(centerText(line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter/Click: Select  |  Tab: Scores  |  Esc: Back  |  Q: Quit"
	b.WriteString(centerStyled(dimStyle, controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// currentIndex returns the item matching the active selection on sub-screens.
func (m MenuModel) currentIndex() int {
	switch m.screen {
	case screenDifficulty:
		return indexOf(config.AllPresets(), m.selection.Preset)
	case screenImage:
		return indexOf(puzzle.AllThemes(), m.selection.Theme)
	}
	return -1
}

// Selected returns the game to start, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Selection returns the current difficulty and theme.
func (m MenuModel) Selection() Selection {
	return m.selection
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// centerStyled centers text by its unstyled width, then styles it.
func centerStyled(style lipgloss.Style, text string, width int) string {
	if len(text) >= width {
		return style.Render(text)
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + style.Render(text)
}
