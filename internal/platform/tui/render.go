package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Aditya232-rtx/bouncetales/internal/core"
)

// ansiCodes maps each core.Color to its ANSI 256 palette entry,
// indexed by the Color value itself.
var ansiCodes = [...]string{
	core.ColorDefault:       "",
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

var colorStyles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(ansiCodes))
	for c, code := range ansiCodes {
		if code == "" {
			styles[core.Color(c)] = lipgloss.NewStyle()
			continue
		}
		styles[core.Color(c)] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}

// RenderScreen converts a screen buffer to a styled string. Adjacent cells
// with the same color are grouped into one styled run to keep the ANSI
// escape overhead down.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			runColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != runColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[runColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
