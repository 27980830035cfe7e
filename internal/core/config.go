package core

// RuntimeConfig is the environment handed to the game on Reset: the
// terminal dimensions, the tick rate the platform will drive Step at,
// and a seed so two runs with the same inputs replay identically.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in cells
	ScreenH  int   // Terminal height in cells
	TickRate int   // Simulation ticks per second
	Seed     int64 // 0 means the platform picks a time-based seed
}

// DefaultConfig returns the config used by tests and as a fallback when
// the terminal size cannot be detected.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is what the platform needs to know after a tick: the score
// to persist and whether the run is over or paused.
type GameState struct {
	Score    int
	GameOver bool // Set on game over and on winning the final level
	Paused   bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
