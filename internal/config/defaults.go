package config

import (
	_ "embed"
)

//go:embed defaults/bounce.yaml
var defaultBounceYAML []byte

// DefaultBounceConfig returns the default game configuration.
// Values mirror defaults/bounce.yaml and are the documented baseline
// for the physics knobs.
func DefaultBounceConfig() BounceConfig {
	return BounceConfig{
		Physics: PhysicsConfig{
			Gravity:           0.05,
			WaterGravityScale: 0.5,
			JumpImpulse:       -0.85,
			MoveAccel:         0.08,
			Friction:          0.88,
			MaxSpeedX:         0.5,
			MaxFallSpeed:      1.2,
			WallBounce:        -0.5,
			MinBounce:         0.08,
		},
		Gameplay: GameplayConfig{
			Lives:        3,
			LevelBonus:   100,
			GemPoints:    50,
			RespawnDelay: 60, // 1 second at 60 FPS
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 3,
			},
			Scaling: ScalingConfig{
				HazardSpeedMultiplier: 1.0,
				GravityMultiplier:     0.2,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBounceYAML
}
