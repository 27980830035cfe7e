package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Aditya232-rtx/bouncetales/internal/core"
	"github.com/Aditya232-rtx/bouncetales/internal/skin"
)

// Customization rows in display order.
const (
	rowColor = iota
	rowPatternColor
	rowSize
	rowTexture
	rowBounce
	rowOpacity
	rowGlow
	rowGlowSize
	rowCount
)

var rowLabels = [rowCount]string{
	"Color",
	"Pattern color",
	"Size",
	"Texture",
	"Bounciness",
	"Opacity",
	"Glow",
	"Glow size",
}

// CustomizeModel edits the ball skin. Left/right adjusts the selected
// property; every change is clamped to its valid range.
type CustomizeModel struct {
	sk        skin.Skin
	path      string // Where the skin is saved on exit
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	done      bool
	quitting  bool
}

// NewCustomizeModel creates a customization model editing the given skin.
func NewCustomizeModel(sk skin.Skin, path string, width, height int) CustomizeModel {
	sk.Clamp()
	return CustomizeModel{
		sk:        sk,
		path:      path,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m CustomizeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m CustomizeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m CustomizeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack, MenuActionSelect:
		m.done = true
		m.save()
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < rowCount-1 {
			m.cursor++
		}
	case MenuActionLeft:
		m.adjust(-1)
	case MenuActionRight:
		m.adjust(1)
	}

	return m, nil
}

// adjust changes the selected property by one step in the given direction.
func (m *CustomizeModel) adjust(dir int) {
	switch m.cursor {
	case rowColor:
		m.sk.Color = cycleColor(m.sk.Color, dir)
	case rowPatternColor:
		m.sk.PatternColor = cycleColor(m.sk.PatternColor, dir)
	case rowSize:
		m.sk.Size += dir
	case rowTexture:
		if dir > 0 {
			m.sk.NextTexture()
		} else {
			m.sk.PrevTexture()
		}
	case rowBounce:
		m.sk.Bounce += 0.1 * float64(dir)
	case rowOpacity:
		m.sk.Opacity += 15 * dir
	case rowGlow:
		m.sk.Glow = !m.sk.Glow
	case rowGlowSize:
		m.sk.GlowSize += 0.5 * float64(dir)
	}
	m.sk.Clamp()
}

func cycleColor(name string, dir int) string {
	names := core.ColorNames()
	idx := 0
	for i, n := range names {
		if n == name {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(names)) % len(names)
	return names[idx]
}

// save writes the skin to disk. Failure is logged, not fatal.
func (m *CustomizeModel) save() {
	if err := skin.Save(m.sk, m.path); err != nil {
		log.Warn("could not save skin", "error", err)
	}
}

// View renders the property editor with a ball preview.
func (m CustomizeModel) View() string {
	if m.quitting || m.done {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("CUSTOMIZE BALL", m.width))
	b.WriteString("\n\n")

	// Preview: the ball glyph in its chosen color
	glyph := previewGlyph(m.sk.Texture)
	style, ok := colorStyles[core.ParseColor(m.sk.Color)]
	if !ok {
		style = colorStyles[core.ColorDefault]
	}
	preview := style.Render(string(glyph))
	if m.sk.Glow {
		halo := colorStyles[core.ColorGray].Render("·")
		preview = halo + " " + preview + " " + halo
	}
	b.WriteString(centerText(preview, m.width))
	b.WriteString("\n\n")

	for i := 0; i < rowCount; i++ {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-14s < %s >", cursor, rowLabels[i], m.valueLabel(i))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Left/Right: Adjust  |  Enter/Esc: Save & Back  |  Q: Quit", m.width))

	return b.String()
}

func (m CustomizeModel) valueLabel(row int) string {
	switch row {
	case rowColor:
		return m.sk.Color
	case rowPatternColor:
		return m.sk.PatternColor
	case rowSize:
		return []string{"small", "medium", "large"}[m.sk.Size-1]
	case rowTexture:
		return m.sk.Texture
	case rowBounce:
		return fmt.Sprintf("%.1f", m.sk.Bounce)
	case rowOpacity:
		return fmt.Sprintf("%d", m.sk.Opacity)
	case rowGlow:
		if m.sk.Glow {
			return "on"
		}
		return "off"
	case rowGlowSize:
		return fmt.Sprintf("%.1f", m.sk.GlowSize)
	}
	return ""
}

func previewGlyph(texture string) rune {
	switch texture {
	case "striped":
		return '◒'
	case "gradient":
		return '◐'
	case "polka":
		return '◌'
	default:
		return '●'
	}
}

// Skin returns the edited skin.
func (m CustomizeModel) Skin() skin.Skin {
	return m.sk
}

// IsQuitting returns true if user wants to quit.
func (m CustomizeModel) IsQuitting() bool {
	return m.quitting
}

// RunCustomize runs the customization screen. The edited skin is saved
// to path on exit and returned.
func RunCustomize(sk skin.Skin, path string, cfg core.RuntimeConfig) (skin.Skin, error) {
	model := NewCustomizeModel(sk, path, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return sk, err
	}

	m, ok := finalModel.(CustomizeModel)
	if !ok {
		return sk, nil
	}
	return m.Skin(), nil
}
