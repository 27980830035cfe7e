package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadBounceEmbeddedDefault(t *testing.T) {
	// With no custom path and no local config, the embedded default loads.
	cfg, err := LoadBounce("")
	if err != nil {
		t.Fatalf("LoadBounce() failed: %v", err)
	}

	if cfg.Physics.Gravity <= 0 {
		t.Errorf("default gravity should be positive, got %f", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpImpulse >= 0 {
		t.Errorf("default jump impulse should be negative (up), got %f", cfg.Physics.JumpImpulse)
	}
	if cfg.Gameplay.Lives != 3 {
		t.Errorf("default lives = %d, want 3", cfg.Gameplay.Lives)
	}
}

func TestLoadBounceMatchesHardcodedDefault(t *testing.T) {
	cfg, err := LoadBounce("")
	if err != nil {
		t.Fatalf("LoadBounce() failed: %v", err)
	}

	want := DefaultBounceConfig()
	if cfg.Physics != want.Physics {
		t.Errorf("embedded physics %+v differs from hardcoded default %+v", cfg.Physics, want.Physics)
	}
	if cfg.Gameplay != want.Gameplay {
		t.Errorf("embedded gameplay %+v differs from hardcoded default %+v", cfg.Gameplay, want.Gameplay)
	}
}

func TestLoadBounceCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	yaml := `
physics:
  gravity: 0.1
  jump_impulse: -2.0
gameplay:
  lives: 7
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBounce(path)
	if err != nil {
		t.Fatalf("LoadBounce() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.1 {
		t.Errorf("gravity = %f, want 0.1", cfg.Physics.Gravity)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("lives = %d, want 7", cfg.Gameplay.Lives)
	}
}

func TestLoadBounceMissingCustomPathIsFatal(t *testing.T) {
	_, err := LoadBounce("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("explicitly supplied missing config should return an error")
	}
}

func TestLoadBounceBadYAMLIsFatal(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(path, []byte("physics: [not a map"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadBounce(path)
	if err == nil {
		t.Error("unparsable custom config should return an error")
	}
}

func TestApplyBouncePreset(t *testing.T) {
	cfg := DefaultBounceConfig()
	ApplyBouncePreset(&cfg, DifficultyHard)
	if cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset initial level = %f, want 0.7", cfg.Difficulty.InitialLevel)
	}
	if cfg.Gameplay.Lives != 2 {
		t.Errorf("hard preset lives = %d, want 2", cfg.Gameplay.Lives)
	}

	cfg = DefaultBounceConfig()
	ApplyBouncePreset(&cfg, DifficultyEasy)
	if cfg.Gameplay.Lives != 5 {
		t.Errorf("easy preset lives = %d, want 5", cfg.Gameplay.Lives)
	}

	cfg = DefaultBounceConfig()
	ApplyBouncePreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestDifficultyManagerLevelProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "level", MaxAt: 3},
		Scaling:      ScalingConfig{HazardSpeedMultiplier: 1.0},
	})

	if got := dm.Level(0, 0); got != 0.0 {
		t.Errorf("level 0 difficulty = %f, want 0", got)
	}
	if got := dm.Level(3, 0); got != 1.0 {
		t.Errorf("level 3 difficulty = %f, want 1", got)
	}
	// Past MaxAt clamps
	if got := dm.Level(10, 0); got != 1.0 {
		t.Errorf("level 10 difficulty = %f, want 1", got)
	}

	// Hazard speed doubles at max with multiplier 1.0
	if got := dm.HazardSpeed(0.1, 3, 0); got != 0.2 {
		t.Errorf("max hazard speed = %f, want 0.2", got)
	}
}

func TestDifficultyManagerDisabled(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "level", MaxAt: 3},
	})

	if got := dm.Level(2, 1000); got != 0.5 {
		t.Errorf("disabled manager should hold initial level, got %f", got)
	}
}
