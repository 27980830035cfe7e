// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// BounceConfig contains all tunable parameters for the game.
type BounceConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines the ball physics parameters.
// All speeds are in screen cells per tick at the default 60 ticks/second.
type PhysicsConfig struct {
	// Gravity is the downward acceleration applied each tick.
	Gravity float64 `yaml:"gravity"`
	// WaterGravityScale multiplies gravity while the ball is inside water.
	WaterGravityScale float64 `yaml:"water_gravity_scale"`
	// JumpImpulse is the vertical velocity applied on a grounded jump.
	// Negative is up.
	JumpImpulse float64 `yaml:"jump_impulse"`
	// MoveAccel is the horizontal acceleration while a direction is held.
	MoveAccel float64 `yaml:"move_accel"`
	// Friction multiplies horizontal velocity each grounded tick
	// without directional input.
	Friction float64 `yaml:"friction"`
	// MaxSpeedX caps horizontal speed in either direction.
	MaxSpeedX float64 `yaml:"max_speed_x"`
	// MaxFallSpeed caps downward speed.
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	// WallBounce scales horizontal velocity on a wall hit.
	// Negative values reverse direction.
	WallBounce float64 `yaml:"wall_bounce"`
	// MinBounce is the vertical speed below which a floor bounce
	// stops instead of rebounding.
	MinBounce float64 `yaml:"min_bounce"`
}

// GameplayConfig defines run-level parameters.
type GameplayConfig struct {
	Lives        int `yaml:"lives"`         // Lives per run
	LevelBonus   int `yaml:"level_bonus"`   // Base completion bonus, scaled by level number
	GemPoints    int `yaml:"gem_points"`    // Points per collected point gem
	RespawnDelay int `yaml:"respawn_delay"` // Ticks to wait after losing a life
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Level index/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	HazardSpeedMultiplier float64 `yaml:"hazard_speed_multiplier"` // Added to hazard speed at max difficulty
	GravityMultiplier     float64 `yaml:"gravity_multiplier"`      // Added to gravity at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
