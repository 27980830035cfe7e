package core

import "strings"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// colorNames maps user-facing color names to palette entries.
// Used by the customization layer to resolve skin colors.
var colorNames = map[string]Color{
	"default": ColorDefault,
	"red":     ColorRed,
	"green":   ColorGreen,
	"yellow":  ColorYellow,
	"blue":    ColorBlue,
	"magenta": ColorMagenta,
	"cyan":    ColorCyan,
	"white":   ColorWhite,
	"orange":  ColorOrange,
	"gray":    ColorGray,
}

// ParseColor resolves a color name to a Color.
// Unknown names resolve to ColorDefault.
func ParseColor(name string) Color {
	if c, ok := colorNames[strings.ToLower(name)]; ok {
		return c
	}
	return ColorDefault
}

// ColorNames returns the user-facing color names in a stable order.
func ColorNames() []string {
	return []string{
		"red", "green", "yellow", "blue",
		"magenta", "cyan", "white", "orange", "gray",
	}
}
