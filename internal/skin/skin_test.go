package skin

import (
	"os"
	"path/filepath"
	"testing"
)

func TestClampBounds(t *testing.T) {
	s := Skin{Size: 9, Bounce: 5.0, Opacity: 10, GlowSize: 0.2, Texture: "plaid"}
	s.Clamp()

	if s.Size != MaxSize {
		t.Errorf("size = %d, want %d", s.Size, MaxSize)
	}
	if s.Bounce != MaxBounce {
		t.Errorf("bounce = %v, want %v", s.Bounce, MaxBounce)
	}
	if s.Opacity != MinOpacity {
		t.Errorf("opacity = %d, want %d", s.Opacity, MinOpacity)
	}
	if s.GlowSize != MinGlowSize {
		t.Errorf("glow size = %v, want %v", s.GlowSize, MinGlowSize)
	}
	if s.Texture != "solid" {
		t.Errorf("unknown texture resolved to %q, want solid", s.Texture)
	}

	s = Skin{Size: 0, Bounce: 0.0, Opacity: 999, GlowSize: 9, Texture: "polka"}
	s.Clamp()
	if s.Size != MinSize || s.Bounce != MinBounce || s.Opacity != MaxOpacity || s.GlowSize != MaxGlowSize {
		t.Errorf("lower/upper clamp failed: %+v", s)
	}
	if s.Texture != "polka" {
		t.Errorf("valid texture changed to %q", s.Texture)
	}
}

func TestTextureCycle(t *testing.T) {
	s := Default()
	seen := []string{s.Texture}
	for i := 0; i < len(Textures)-1; i++ {
		s.NextTexture()
		seen = append(seen, s.Texture)
	}
	for i, want := range Textures {
		if seen[i] != want {
			t.Fatalf("cycle[%d] = %q, want %q", i, seen[i], want)
		}
	}

	s.NextTexture()
	if s.Texture != Textures[0] {
		t.Errorf("cycle did not wrap: got %q", s.Texture)
	}

	s.PrevTexture()
	if s.Texture != Textures[len(Textures)-1] {
		t.Errorf("reverse cycle did not wrap: got %q", s.Texture)
	}
}

func TestRadius(t *testing.T) {
	for size, want := range map[int]float64{1: 0.5, 2: 1.0, 3: 1.5} {
		s := Skin{Size: size}
		if got := s.Radius(); got != want {
			t.Errorf("Radius(size=%d) = %v, want %v", size, got, want)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skin.yaml")

	s := Default()
	s.Color = "blue"
	s.Size = 2
	s.Texture = "gradient"
	s.Glow = true
	s.GlowSize = 2.0

	if err := Save(s, path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded != s {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, s)
	}
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if s != Default() {
		t.Errorf("got %+v, want default", s)
	}
}

func TestLoadBadYAMLReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skin.yaml")
	if err := os.WriteFile(path, []byte("color: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if s != Default() {
		t.Errorf("bad file should fall back to default, got %+v", s)
	}
}

func TestLoadClampsStoredValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skin.yaml")
	data := []byte("color: green\nsize: 99\nbounce: 2.0\nopacity: 1\ntexture: solid\nglow_size: 1.5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if s.Size != MaxSize || s.Bounce != MaxBounce || s.Opacity != MinOpacity {
		t.Errorf("stored values not clamped: %+v", s)
	}
}
