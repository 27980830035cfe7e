package game

import (
	"math"
	"testing"
)

func TestResolveCircleRectZeroArea(t *testing.T) {
	rects := []FRect{
		{X: 5, Y: 5, W: 0, H: 3},
		{X: 5, Y: 5, W: 3, H: 0},
		{X: 5, Y: 5, W: 0, H: 0},
		{X: 5, Y: 5, W: -1, H: 3},
	}
	for _, r := range rects {
		b := &Ball{X: 5, Y: 5, Radius: 0.5}
		if side := ResolveCircleRect(b, r); side != CollisionNone {
			t.Errorf("rect %+v: got side %v, want none", r, side)
		}
		if b.X != 5 || b.Y != 5 {
			t.Errorf("rect %+v moved the ball to (%v, %v)", r, b.X, b.Y)
		}
	}
}

func TestResolveCircleRectTop(t *testing.T) {
	r := FRect{X: 0, Y: 10, W: 20, H: 1}
	b := &Ball{X: 5, Y: 9.7, VY: 0.3, Radius: 0.5}

	side := ResolveCircleRect(b, r)
	if side != CollisionTop {
		t.Fatalf("side = %v, want top", side)
	}
	if got := b.Y + b.Radius; math.Abs(got-10) > 1e-9 {
		t.Errorf("ball bottom = %v, want 10", got)
	}
}

func TestResolveCircleRectBottom(t *testing.T) {
	r := FRect{X: 0, Y: 5, W: 20, H: 1}
	b := &Ball{X: 5, Y: 6.3, VY: -0.5, Radius: 0.5}

	side := ResolveCircleRect(b, r)
	if side != CollisionBottom {
		t.Fatalf("side = %v, want bottom", side)
	}
	if got := b.Y - b.Radius; math.Abs(got-6) > 1e-9 {
		t.Errorf("ball top = %v, want 6", got)
	}
}

func TestResolveCircleRectSides(t *testing.T) {
	r := FRect{X: 10, Y: 0, W: 2, H: 20}

	b := &Ball{X: 9.7, Y: 5, VX: 0.4, Radius: 0.5}
	if side := ResolveCircleRect(b, r); side != CollisionLeft {
		t.Errorf("side = %v, want left", side)
	}
	if got := b.X + b.Radius; math.Abs(got-10) > 1e-9 {
		t.Errorf("ball right edge = %v, want 10", got)
	}

	b = &Ball{X: 12.3, Y: 5, VX: -0.4, Radius: 0.5}
	if side := ResolveCircleRect(b, r); side != CollisionRight {
		t.Errorf("side = %v, want right", side)
	}
	if got := b.X - b.Radius; math.Abs(got-12) > 1e-9 {
		t.Errorf("ball left edge = %v, want 12", got)
	}
}

func TestResolveCircleRectMiss(t *testing.T) {
	r := FRect{X: 10, Y: 10, W: 2, H: 2}
	b := &Ball{X: 5, Y: 5, Radius: 0.5}

	if side := ResolveCircleRect(b, r); side != CollisionNone {
		t.Errorf("side = %v, want none", side)
	}
}

func TestResolveCircleRectEmbedded(t *testing.T) {
	// Center inside the rect, closest to the top face.
	r := FRect{X: 0, Y: 10, W: 20, H: 4}
	b := &Ball{X: 5, Y: 10.5, Radius: 0.5}

	side := ResolveCircleRect(b, r)
	if side != CollisionTop {
		t.Fatalf("side = %v, want top", side)
	}
	if math.IsNaN(b.X) || math.IsNaN(b.Y) {
		t.Fatal("embedded resolution produced NaN")
	}
	if got := b.Y + b.Radius; math.Abs(got-10) > 1e-9 {
		t.Errorf("ball bottom = %v, want 10", got)
	}
}

func TestCircleOverlapsRect(t *testing.T) {
	r := FRect{X: 10, Y: 10, W: 2, H: 2}

	if !CircleOverlapsRect(9.6, 11, 0.5, r) {
		t.Error("touching circle should overlap")
	}
	if CircleOverlapsRect(5, 5, 0.5, r) {
		t.Error("distant circle should not overlap")
	}
	if CircleOverlapsRect(11, 11, 0.5, FRect{X: 10, Y: 10, W: 0, H: 0}) {
		t.Error("zero-area rect should never overlap")
	}
}

func TestHazardPatrolReverses(t *testing.T) {
	h := Hazard{X: 5, Y: 3, MinX: 2, MaxX: 8, Dir: 1}

	for i := 0; i < 10000; i++ {
		h.Update(0.1)
		if h.X < h.MinX || h.X > h.MaxX {
			t.Fatalf("hazard left patrol bounds: x = %v", h.X)
		}
	}
	if h.Dir != 1 && h.Dir != -1 {
		t.Errorf("dir = %v, want +/-1", h.Dir)
	}
}

func TestMoverSweepsAndReportsDelta(t *testing.T) {
	m := Mover{
		Rect:   FRect{X: 10, Y: 5, W: 4, H: 1},
		StartX: 10,
		EndX:   16,
		Speed:  0.5,
		Dir:    1,
	}

	total := 0.0
	for i := 0; i < 1000; i++ {
		delta := m.Update()
		total += delta
		if m.Rect.X < m.StartX || m.Rect.X > m.EndX {
			t.Fatalf("mover left its track: x = %v", m.Rect.X)
		}
	}
	if math.Abs(total-(m.Rect.X-10)) > 1e-6 {
		t.Errorf("deltas sum to %v, position moved %v", total, m.Rect.X-10)
	}
}
