package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Aditya232-rtx/bouncetales/internal/core"
	"github.com/Aditya232-rtx/bouncetales/internal/game"
)

// LevelSelectModel lets the user pick a starting level.
type LevelSelectModel struct {
	names     []string
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  int // -1 until a level is chosen
	quitting  bool
	back      bool
}

// NewLevelSelectModel creates a new level selection model.
func NewLevelSelectModel(width, height int) LevelSelectModel {
	return LevelSelectModel{
		names:     game.LevelNames(),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		selected:  -1,
	}
}

// Init initializes the model.
func (m LevelSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m LevelSelectModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	case MenuActionUp, MenuActionLeft:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown, MenuActionRight:
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selected = m.cursor
		return m, tea.Quit
	}

	return m, nil
}

// View renders the level list.
func (m LevelSelectModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	for i, name := range m.names {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%2d. %s", cursor, i+1, name)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen level index, or -1.
func (m LevelSelectModel) Selected() int {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m LevelSelectModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelSelectModel) WantsBack() bool {
	return m.back
}

// RunLevelSelect runs the level selector. Returns the chosen level
// index, or -1 when the user backed out or quit.
func RunLevelSelect(cfg core.RuntimeConfig) (int, error) {
	model := NewLevelSelectModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return -1, err
	}

	m, ok := finalModel.(LevelSelectModel)
	if !ok {
		return -1, nil
	}
	return m.Selected(), nil
}
