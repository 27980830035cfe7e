// Package skin holds the ball customization model and its YAML persistence.
// A Skin is a plain value: the game copies it into ball parameters at
// construction, so editing the stored skin never affects a ball in play.
package skin

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Texture names, cycled in this order.
var Textures = []string{"solid", "striped", "gradient", "polka"}

// Clamping bounds for the adjustable fields.
const (
	MinSize     = 1
	MaxSize     = 3
	MinBounce   = 0.1
	MaxBounce   = 1.0
	MinOpacity  = 50
	MaxOpacity  = 255
	MinGlowSize = 1.0
	MaxGlowSize = 2.5
)

// Skin describes how the ball looks and how bouncy it is.
type Skin struct {
	Color        string  `yaml:"color"`
	PatternColor string  `yaml:"pattern_color"`
	Size         int     `yaml:"size"`    // Ball radius in half-cells: 1..3
	Texture      string  `yaml:"texture"` // solid, striped, gradient, polka
	Bounce       float64 `yaml:"bounce"`  // Rebound damping: 0.1..1.0
	Opacity      int     `yaml:"opacity"` // 50..255
	Glow         bool    `yaml:"glow"`
	GlowSize     float64 `yaml:"glow_size"` // 1.0..2.5
}

// Default returns the out-of-the-box skin.
func Default() Skin {
	return Skin{
		Color:        "red",
		PatternColor: "white",
		Size:         1,
		Texture:      "solid",
		Bounce:       0.7,
		Opacity:      255,
		Glow:         false,
		GlowSize:     1.5,
	}
}

// Clamp forces every field into its valid range and fixes unknown textures.
func (s *Skin) Clamp() {
	if s.Size < MinSize {
		s.Size = MinSize
	}
	if s.Size > MaxSize {
		s.Size = MaxSize
	}
	if s.Bounce < MinBounce {
		s.Bounce = MinBounce
	}
	if s.Bounce > MaxBounce {
		s.Bounce = MaxBounce
	}
	if s.Opacity < MinOpacity {
		s.Opacity = MinOpacity
	}
	if s.Opacity > MaxOpacity {
		s.Opacity = MaxOpacity
	}
	if s.GlowSize < MinGlowSize {
		s.GlowSize = MinGlowSize
	}
	if s.GlowSize > MaxGlowSize {
		s.GlowSize = MaxGlowSize
	}
	if textureIndex(s.Texture) < 0 {
		s.Texture = Textures[0]
	}
}

// Radius returns the ball radius in cells for this skin's size.
func (s Skin) Radius() float64 {
	return float64(s.Size) * 0.5
}

// NextTexture advances to the next texture in the cycle.
func (s *Skin) NextTexture() {
	i := textureIndex(s.Texture)
	s.Texture = Textures[(i+1)%len(Textures)]
}

// PrevTexture steps back to the previous texture in the cycle.
func (s *Skin) PrevTexture() {
	i := textureIndex(s.Texture)
	s.Texture = Textures[(i-1+len(Textures))%len(Textures)]
}

func textureIndex(name string) int {
	for i, t := range Textures {
		if t == name {
			return i
		}
	}
	return -1
}

// DefaultPath returns the default skin file location, or empty if the
// home directory is unavailable.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bounce", "skin.yaml")
}

// Load reads a skin from the given path. A missing file yields the
// default skin with no error; loaded values are clamped.
func Load(path string) (Skin, error) {
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("skin: cannot read %s: %w", path, err)
	}

	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("skin: cannot parse %s: %w", path, err)
	}
	s.Clamp()
	return s, nil
}

// Save writes the skin to the given path, creating parent directories.
func Save(s Skin, path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return fmt.Errorf("skin: no home directory for default path")
	}

	s.Clamp()
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("skin: cannot encode: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("skin: cannot create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("skin: cannot write %s: %w", path, err)
	}
	return nil
}
