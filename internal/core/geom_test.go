package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(1, 2, 3, 4)
	if r.Right() != 4 {
		t.Errorf("Right() = %d, want 4", r.Right())
	}
	if r.Bottom() != 6 {
		t.Errorf("Bottom() = %d, want 6", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %d", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp(-1, 0, 10) = %d", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp(11, 0, 10) = %d", got)
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(0.5, 0, 1); got != 0.5 {
		t.Errorf("ClampF(0.5, 0, 1) = %f", got)
	}
	if got := ClampF(-0.1, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.1, 0, 1) = %f", got)
	}
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %f", got)
	}
}
