package game

import "testing"

func testLevelLines() []string {
	return []string{
		"..........",
		"..*...L...",
		"..S...E.GG",
		"####..MM.#",
		"..~~~.....",
	}
}

func TestParseLevelEntities(t *testing.T) {
	l := ParseLevel("test", "Test Level", testLevelLines())

	if l.Width != 10 || l.Height != 5 {
		t.Errorf("size = %dx%d, want 10x5", l.Width, l.Height)
	}

	// "####" and the trailing "#" are separate horizontal runs.
	if len(l.Platforms) != 2 {
		t.Fatalf("platforms = %d, want 2", len(l.Platforms))
	}
	if p := l.Platforms[0]; p.X != 0 || p.Y != 3 || p.W != 4 || p.H != 1 {
		t.Errorf("platform run = %+v, want {0 3 4 1}", p)
	}

	if len(l.Water) != 1 || l.Water[0].W != 3 {
		t.Errorf("water = %+v, want one 3-wide rect", l.Water)
	}

	if len(l.Gems) != 2 {
		t.Fatalf("gems = %d, want 2", len(l.Gems))
	}
	if l.Gems[0].Type != GemPoint || l.Gems[1].Type != GemLife {
		t.Errorf("gem types = %v, %v", l.Gems[0].Type, l.Gems[1].Type)
	}

	if len(l.Hazards) != 1 {
		t.Fatalf("hazards = %d, want 1", len(l.Hazards))
	}
	h := l.Hazards[0]
	if h.X != 6.5 || h.MinX != 6.5-HazardPatrolRange || h.MaxX != 6.5+HazardPatrolRange {
		t.Errorf("hazard patrol = %+v", h)
	}

	if len(l.Movers) != 1 {
		t.Fatalf("movers = %d, want 1", len(l.Movers))
	}
	m := l.Movers[0]
	if m.Rect.W != 2 || m.StartX != 6 || m.EndX != 6+MoverTravel {
		t.Errorf("mover = %+v", m)
	}

	if l.StartX != 2.5 || l.StartY != 2.5 {
		t.Errorf("start = (%v, %v), want (2.5, 2.5)", l.StartX, l.StartY)
	}

	if l.Goal.X != 8 || l.Goal.Y != 2 || l.Goal.W != 2 || l.Goal.H != 1 {
		t.Errorf("goal = %+v, want {8 2 2 1}", l.Goal)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := ParseLevel("test", "Test Level", testLevelLines())
	clone := orig.Clone()

	clone.Gems[0].Collected = true
	clone.Hazards[0].X = 99
	clone.Movers[0].Rect.X = 99
	clone.Platforms[0].W = 99

	if orig.Gems[0].Collected {
		t.Error("clone gem mutation leaked into original")
	}
	if orig.Hazards[0].X == 99 {
		t.Error("clone hazard mutation leaked into original")
	}
	if orig.Movers[0].Rect.X == 99 {
		t.Error("clone mover mutation leaked into original")
	}
	if orig.Platforms[0].W == 99 {
		t.Error("clone platform mutation leaked into original")
	}
}

func TestGemsRemaining(t *testing.T) {
	l := ParseLevel("test", "Test Level", testLevelLines())

	if got := l.GemsRemaining(); got != 2 {
		t.Errorf("GemsRemaining = %d, want 2", got)
	}
	l.Gems[0].Collected = true
	if got := l.GemsRemaining(); got != 1 {
		t.Errorf("GemsRemaining = %d, want 1", got)
	}
}

func TestGetLevelClamps(t *testing.T) {
	first := GetLevel(0)
	last := GetLevel(LevelCount() - 1)

	if got := GetLevel(-5); got.ID != first.ID {
		t.Errorf("GetLevel(-5) = %q, want %q", got.ID, first.ID)
	}
	if got := GetLevel(999); got.ID != last.ID {
		t.Errorf("GetLevel(999) = %q, want %q", got.ID, last.ID)
	}
}

func TestGetLevelReturnsFreshCopy(t *testing.T) {
	a := GetLevel(0)
	a.Gems[0].Collected = true

	b := GetLevel(0)
	if b.Gems[0].Collected {
		t.Error("GetLevel returned shared state")
	}
}

func TestBuiltinLevelsAreComplete(t *testing.T) {
	levels := BuiltinLevels()
	if len(levels) == 0 {
		t.Fatal("no built-in levels")
	}
	if len(LevelNames()) != len(levels) {
		t.Errorf("LevelNames length %d != %d", len(LevelNames()), len(levels))
	}

	for _, l := range levels {
		if l.ID == "" || l.Name == "" {
			t.Errorf("level missing identity: %+v", l)
		}
		if l.Width <= 0 || l.Height <= 0 {
			t.Errorf("level %s has no area", l.ID)
		}
		if l.StartX == 0 && l.StartY == 0 {
			t.Errorf("level %s has no start marker", l.ID)
		}
		if l.Goal.W <= 0 || l.Goal.H <= 0 {
			t.Errorf("level %s has no goal", l.ID)
		}
		if len(l.Platforms) == 0 {
			t.Errorf("level %s has no platforms", l.ID)
		}
	}
}
