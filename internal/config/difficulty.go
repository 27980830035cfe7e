package config

import "math"

// DifficultyManager calculates dynamic game parameters based on
// level progression or elapsed time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on
// the level index or ticks, per the progression type.
func (d *DifficultyManager) Level(levelIndex int, ticks int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "level":
		progress = float64(levelIndex) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	// Clamp progress to [0, 1]
	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// HazardSpeed returns the current hazard patrol speed.
func (d *DifficultyManager) HazardSpeed(baseSpeed float64, levelIndex int, ticks int) float64 {
	level := d.Level(levelIndex, ticks)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.HazardSpeedMultiplier)
}

// Gravity returns the current gravity value.
func (d *DifficultyManager) Gravity(baseGravity float64, levelIndex int, ticks int) float64 {
	level := d.Level(levelIndex, ticks)
	return baseGravity * (1.0 + level*d.cfg.Scaling.GravityMultiplier)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
