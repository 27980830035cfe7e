package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Aditya232-rtx/bouncetales/internal/core"
	"github.com/Aditya232-rtx/bouncetales/internal/score"
)

// MenuChoice identifies a main menu entry.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceLevelSelect
	MenuChoiceCustomize
	MenuChoiceScores
	MenuChoiceQuit
)

// menuEntries are the main menu items in display order.
var menuEntries = []struct {
	choice MenuChoice
	label  string
}{
	{MenuChoicePlay, "Play"},
	{MenuChoiceLevelSelect, "Level Select"},
	{MenuChoiceCustomize, "Customize Ball"},
	{MenuChoiceScores, "High Scores"},
	{MenuChoiceQuit, "Quit"},
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor    int
	width     int
	height    int
	highScore int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	choice    MenuChoice
}

// NewMenuModel creates a new menu model. The high score is read once
// at menu entry; a failed read simply shows no record.
func NewMenuModel(highScores *score.Store, cfg core.RuntimeConfig) MenuModel {
	best := 0
	if highScores != nil {
		best, _ = highScores.Read()
	}

	return MenuModel{
		cursor:    0,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		highScore: best,
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
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.choice = menuEntries[m.cursor].choice
		if m.choice == MenuChoiceQuit {
			m.quitting = true
		}
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

	title := "  B O U N C E   T A L E S  "
	b.WriteString("\n")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")

	if m.highScore > 0 {
		b.WriteString(centerText(fmt.Sprintf("High score: %d", m.highScore), m.width))
	} else {
		b.WriteString(centerText("No high score yet", m.width))
	}
	b.WriteString("\n\n")

	for i, entry := range menuEntries {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+entry.label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the selected menu entry, or MenuChoiceNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within the given width, measuring display
// cells rather than bytes so styled and multibyte strings line up.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu runs the main menu and returns the selection result.
func RunMenu(highScores *score.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(highScores, cfg)

	p := tea.NewProgram(
		model,
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

	return MenuResult{
		Choice: m.Choice(),
		Config: m.Config(),
		Quit:   m.IsQuitting() || m.Choice() == MenuChoiceQuit || m.Choice() == MenuChoiceNone,
	}, nil
}
