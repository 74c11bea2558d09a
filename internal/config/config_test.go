package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, want nil", err)
	}
	if cfg.Arcade.BlockCount != 10 {
		t.Errorf("BlockCount = %d, want 10", cfg.Arcade.BlockCount)
	}
	if cfg.Particles.ConnectionDistance != 150 {
		t.Errorf("ConnectionDistance = %v, want 150", cfg.Particles.ConnectionDistance)
	}
	if cfg.Arcade.CollectorSpeed != 200 {
		t.Errorf("CollectorSpeed = %v, want 200", cfg.Arcade.CollectorSpeed)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Window != Default().Window {
		t.Errorf("Load(\"\").Window = %+v, want defaults", cfg.Window)
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcade.yaml")
	data := []byte(`
seed: 42
arcade:
  block_count: 4
  collector_speed: 120
  background: "#102030"
particles:
  speed:
    min: 0.1
    max: 0.3
audio:
  enabled: false
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.Arcade.BlockCount != 4 || cfg.Arcade.CollectorSpeed != 120 {
		t.Errorf("Arcade = %d/%v, want 4/120", cfg.Arcade.BlockCount, cfg.Arcade.CollectorSpeed)
	}
	if cfg.Arcade.BlockSize != BlockSize {
		t.Errorf("BlockSize = %v, want untouched default %v", cfg.Arcade.BlockSize, BlockSize)
	}
	if want := (color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}); cfg.Arcade.Background.RGBA != want {
		t.Errorf("Background = %v, want %v", cfg.Arcade.Background.RGBA, want)
	}
	if cfg.Particles.Speed != (Range{Min: 0.1, Max: 0.3}) {
		t.Errorf("Speed = %+v, want {0.1 0.3}", cfg.Particles.Speed)
	}
	if cfg.Audio.Enabled {
		t.Error("Audio.Enabled = true, want false")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		invalid bool
	}{
		{"bad yaml", "arcade: [", false},
		{"bad color", "arcade:\n  grid: \"not-a-color\"\n", true},
		{"zero blocks", "arcade:\n  block_count: 0\n", true},
		{"inverted values", "arcade:\n  block_value_min: 200\n", true},
		{"inverted range", "particles:\n  radius: {min: 4, max: 1}\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.yaml")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if got := errors.Is(err, ErrInvalid); got != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalid) = %v, want %v (err: %v)", got, tt.invalid, err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load(missing) error = nil, want error")
	}
}

func TestColorWithAlpha(t *testing.T) {
	c := MustColor("#38bdf8")
	tests := []struct {
		alpha float64
		want  color.RGBA
	}{
		{0, color.RGBA{}},
		{-1, color.RGBA{}},
		{1, color.RGBA{R: 0x38, G: 0xbd, B: 0xf8, A: 0xff}},
		{2, color.RGBA{R: 0x38, G: 0xbd, B: 0xf8, A: 0xff}},
		{0.5, color.RGBA{R: 28, G: 95, B: 124, A: 128}},
	}
	for _, tt := range tests {
		if got := c.WithAlpha(tt.alpha); got != tt.want {
			t.Errorf("WithAlpha(%v) = %v, want %v", tt.alpha, got, tt.want)
		}
	}
}

func TestColorUnmarshal(t *testing.T) {
	var v struct {
		C Color `yaml:"c"`
	}
	if err := yaml.Unmarshal([]byte(`c: "#0A1B2A"`), &v); err != nil {
		t.Fatal(err)
	}
	if v.C.Hex() != "#0a1b2a" {
		t.Errorf("Hex() = %q, want #0a1b2a", v.C.Hex())
	}
}

func TestRangeLerp(t *testing.T) {
	r := Range{Min: 0.2, Max: 0.7}
	if got := r.Lerp(0); got != 0.2 {
		t.Errorf("Lerp(0) = %v, want 0.2", got)
	}
	if got := r.Lerp(0.5); got < 0.449 || got > 0.451 {
		t.Errorf("Lerp(0.5) = %v, want 0.45", got)
	}
}

func TestLoadExampleConfig(t *testing.T) {
	cfg, err := Load("../../configs/arcade.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Window.Width != 1280 || cfg.Window.Height != 800 {
		t.Errorf("window = %dx%d, want 1280x800", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Arcade.BlockCount != BlockCount {
		t.Errorf("block_count = %d, want %d", cfg.Arcade.BlockCount, BlockCount)
	}
	if cfg.Arcade.BlockSprite != BlockSprite {
		t.Errorf("untouched key changed: block_sprite = %q", cfg.Arcade.BlockSprite)
	}
}
