package tui

import "testing"

func TestCenterTextMeasuresCells(t *testing.T) {
	// '●' is three bytes but one display cell.
	if got := centerText("●", 11); got != "     ●" {
		t.Errorf("multibyte: got %q", got)
	}

	// ANSI escapes take no display cells.
	styled := "\x1b[31m●\x1b[0m"
	if got := centerText(styled, 11); got != "     "+styled {
		t.Errorf("styled: got %q", got)
	}

	// Text wider than the target is returned unchanged.
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("overflow: got %q", got)
	}
}
