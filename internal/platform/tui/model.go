// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and screen flow.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Aditya232-rtx/bouncetales/internal/core"
	"github.com/Aditya232-rtx/bouncetales/internal/registry"
	"github.com/Aditya232-rtx/bouncetales/internal/score"
	"github.com/Aditya232-rtx/bouncetales/internal/storage"
)

// TickMsg triggers one simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// runInfo is implemented by games that can report run details for
// persistence beyond the plain score.
type runInfo interface {
	LevelNumber() int
	Won() bool
	Cleared() bool
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	highScores  *score.Store
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	inputFrame  core.InputFrame
	gameState   core.GameState
	quitting    bool
	backToMenu  bool
	scoreSaved  bool // Whether the run has been saved for the current game over
	recordSaved bool // Whether the record was checkpointed for the current level clear
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, highScores *score.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		highScores: highScores,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveRecord()
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu at any point, abandoning a run in progress.
	// The record is checkpointed so abandoning cannot lose it.
	if m.inputFrame.Has(core.ActionBack) {
		m.saveRecord()
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Restart with the new layout unless a finished run is on screen
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver {
		if !m.scoreSaved {
			m.saveRun()
			m.scoreSaved = true
		}
	} else {
		m.scoreSaved = false
	}

	// Checkpoint the record at each level completion, not just at the
	// end of the run, so a later abandon or crash cannot lose it.
	if info, ok := m.game.(runInfo); ok && info.Cleared() {
		if !m.recordSaved {
			m.saveRecord()
			m.recordSaved = true
		}
	} else {
		m.recordSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun persists a finished run: the run history in SQLite and the
// all-time record in the high score file. Both are best-effort; a
// failed write is logged and the game carries on.
func (m Model) saveRun() {
	if m.gameState.Score <= 0 {
		return
	}

	level := 1
	won := false
	if info, ok := m.game.(runInfo); ok {
		level = info.LevelNumber()
		won = info.Won()
	}

	if m.store != nil {
		if _, err := m.store.SaveRun(level, m.gameState.Score, won); err != nil {
			log.Warn("could not save run", "error", err)
		}
	}
	m.saveRecord()
}

// saveRecord writes the flat-file record if the current score beats it.
// Best-effort: a failed write is logged and the game carries on.
func (m Model) saveRecord() {
	if m.gameState.Score <= 0 || m.highScores == nil {
		return
	}
	if _, err := m.highScores.WriteIfHigher(m.gameState.Score); err != nil {
		log.Warn("could not update high score", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
// Returns true if the user wants to go back to the menu.
func Run(game registry.Game, store *storage.Store, highScores *score.Store, cfg core.RuntimeConfig) (bool, error) {
	model := NewModel(game, store, highScores, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	if m, ok := finalModel.(Model); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
