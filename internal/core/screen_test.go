package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '@')
	if got := s.Get(3, 2); got != '@' {
		t.Errorf("Get(3, 2) = %q, want '@'", got)
	}

	// Untouched cells are spaces
	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("Get(0, 0) = %q, want space", got)
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(1, 1, '●', ColorRed)
	cell := s.GetCell(1, 1)
	if cell.Rune != '●' {
		t.Errorf("GetCell rune = %q, want '●'", cell.Rune)
	}
	if cell.Color != ColorRed {
		t.Errorf("GetCell color = %d, want ColorRed", cell.Color)
	}

	// Plain Set uses the default color
	s.Set(2, 1, 'x')
	if c := s.GetCell(2, 1).Color; c != ColorDefault {
		t.Errorf("Set should use default color, got %d", c)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// None of these should panic
	s.Set(-1, 0, 'x')
	s.Set(0, -1, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')

	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get should return space, got %q", got)
	}
	if cell := s.GetCell(100, 100); cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("out-of-bounds GetCell should return blank cell, got %+v", cell)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetCell(1, 1, '#', ColorGreen)
	s.Clear()

	if got := s.Get(1, 1); got != ' ' {
		t.Errorf("Clear should reset runes, got %q", got)
	}
	if c := s.GetCell(1, 1).Color; c != ColorDefault {
		t.Errorf("Clear should reset colors, got %d", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")

	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Errorf("DrawText did not place text, row = %q", s.Row(1))
	}

	// Clipped text should not panic
	s.DrawText(8, 1, "long text")
	if s.Get(9, 1) != 'o' {
		t.Errorf("clipped DrawText wrong, row = %q", s.Row(1))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetCell(2, 2, '*', ColorYellow)

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("Resize dimensions wrong: %dx%d", s.Width(), s.Height())
	}
	cell := s.GetCell(2, 2)
	if cell.Rune != '*' || cell.Color != ColorYellow {
		t.Errorf("Resize should preserve content, got %+v", cell)
	}

	// Shrinking clips content
	s.Resize(2, 2)
	if got := s.Get(2, 2); got != ' ' {
		t.Errorf("shrunk screen should clip, got %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "a  " {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "  b" {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestParseColor(t *testing.T) {
	if ParseColor("red") != ColorRed {
		t.Error("red should parse")
	}
	if ParseColor("Cyan") != ColorCyan {
		t.Error("parsing should be case-insensitive")
	}
	if ParseColor("chartreuse") != ColorDefault {
		t.Error("unknown names should fall back to default")
	}
}
