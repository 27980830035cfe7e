package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Aditya232-rtx/bouncetales/internal/core"
	"github.com/Aditya232-rtx/bouncetales/internal/score"
)

// stubGame reports a fixed state, so model persistence paths can be
// driven without a real simulation.
type stubGame struct {
	state   core.GameState
	cleared bool
	won     bool
}

func (g *stubGame) ID() string               { return "stub" }
func (g *stubGame) Title() string            { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{State: g.state}
}
func (g *stubGame) Render(*core.Screen)   {}
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) LevelNumber() int      { return 1 }
func (g *stubGame) Won() bool             { return g.won }
func (g *stubGame) Cleared() bool         { return g.cleared }

func newTestModel(t *testing.T, g *stubGame) (Model, *score.Store) {
	t.Helper()
	highScores := score.NewStore(filepath.Join(t.TempDir(), "highscore.txt"))
	return NewModel(g, nil, highScores, core.DefaultConfig()), highScores
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	newModel, _ := m.Update(TickMsg(time.Now()))
	return newModel.(Model)
}

func TestRecordSavedOnLevelClear(t *testing.T) {
	g := &stubGame{state: core.GameState{Score: 300}, cleared: true}
	m, highScores := newTestModel(t, g)

	tick(t, m)

	best, err := highScores.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if best != 300 {
		t.Errorf("record = %d, want 300", best)
	}
}

func TestRecordSavedOnAbandon(t *testing.T) {
	g := &stubGame{state: core.GameState{Score: 150}}
	m, highScores := newTestModel(t, g)

	// A tick mid-run, then esc abandons back to the menu.
	m = tick(t, m)
	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = newModel.(Model)

	if !m.BackToMenu() {
		t.Error("esc should return to the menu")
	}
	best, err := highScores.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if best != 150 {
		t.Errorf("record = %d, want 150", best)
	}
}

func TestRecordSavedOnGameOver(t *testing.T) {
	g := &stubGame{state: core.GameState{Score: 220, GameOver: true}}
	m, highScores := newTestModel(t, g)

	tick(t, m)

	best, err := highScores.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if best != 220 {
		t.Errorf("record = %d, want 220", best)
	}
}
