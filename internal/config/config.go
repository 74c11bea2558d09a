package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure returned from Load and Validate.
var ErrInvalid = errors.New("invalid config")

const (
	WindowWidth  = 1024
	WindowHeight = 720
	WindowTitle  = "Qubic vs. XMR Blocks"

	// Particle network
	ParticleSpacing     = 10  // one particle per this many surface pixels of width
	ConnectionDistance  = 150 // connections fade out at this distance
	ConnectionOpacity   = 0.2
	ParticleRadiusMin   = 1
	ParticleRadiusMax   = 3
	ParticleSpeedMin    = 0.2
	ParticleSpeedMax    = 0.7
	ParticleOpacityMin  = 0.3
	ParticleOpacityMax  = 0.8
	ConnectionsMin      = 1
	ConnectionsMax      = 2
	ParticleColor       = "#38bdf8"
	ConnectionLineWidth = 1

	// Block collector
	BlockCount      = 10
	CollectorSize   = 30
	CollectorSpeed  = 200 // px/s
	BlockSize       = 30
	BlockValueMin   = 50
	BlockValueMax   = 150 // exclusive
	SpawnMargin     = 20
	GridSpacing     = 30
	Epoch           = 161
	CollectorSprite = "qubic.png"
	BlockSprite     = "xmr.png"

	BackgroundColor = "#0A1B2A"
	GridColor       = "#1B3247"
	ScoreColor      = "#D0D8E1"
	EpochColor      = "#00F0FF"
	CollectorColor  = "#00F0FF"
	BlockColor      = "#FF4B4B"

	// Audio
	SampleRate = 44100
	Volume     = -1.0
)

// Config holds every tunable of the application. Zero values are never
// meaningful; start from Default and overlay a file with Load.
type Config struct {
	Window    Window    `yaml:"window"`
	Particles Particles `yaml:"particles"`
	Arcade    Arcade    `yaml:"arcade"`
	Audio     Audio     `yaml:"audio"`
	Seed      uint64    `yaml:"seed"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Particles struct {
	Spacing            float64 `yaml:"spacing"`
	ConnectionDistance float64 `yaml:"connection_distance"`
	ConnectionOpacity  float64 `yaml:"connection_opacity"`
	LineWidth          float64 `yaml:"line_width"`
	Radius             Range   `yaml:"radius"`
	Speed              Range   `yaml:"speed"`
	Opacity            Range   `yaml:"opacity"`
	ConnectionsMin     int     `yaml:"connections_min"`
	ConnectionsMax     int     `yaml:"connections_max"`
	Color              Color   `yaml:"color"`
}

type Arcade struct {
	BlockCount     int     `yaml:"block_count"`
	CollectorSize  float64 `yaml:"collector_size"`
	CollectorSpeed float64 `yaml:"collector_speed"`
	BlockSize      float64 `yaml:"block_size"`
	BlockValueMin  int     `yaml:"block_value_min"`
	BlockValueMax  int     `yaml:"block_value_max"`
	SpawnMargin    float64 `yaml:"spawn_margin"`
	GridSpacing    float64 `yaml:"grid_spacing"`
	Epoch          int     `yaml:"epoch"`

	// SpriteDir selects a directory to load sprites from. Empty means the
	// embedded defaults.
	SpriteDir       string `yaml:"sprite_dir"`
	CollectorSprite string `yaml:"collector_sprite"`
	BlockSprite     string `yaml:"block_sprite"`

	Background Color `yaml:"background"`
	Grid       Color `yaml:"grid"`
	Score      Color `yaml:"score"`
	EpochLabel Color `yaml:"epoch_label"`
	Collector  Color `yaml:"collector"`
	Block      Color `yaml:"block"`
}

type Audio struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"` // beep effects.Volume exponent, base 2
	// CollectSound is an optional wav/mp3/flac file played on every
	// collected block instead of the synthesized chirp.
	CollectSound string `yaml:"collect_sound"`
}

// Range is an inclusive-exclusive [Min, Max) interval.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Lerp maps t in [0,1) into the range.
func (r Range) Lerp(t float64) float64 {
	return r.Min + t*(r.Max-r.Min)
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  WindowTitle,
		},
		Particles: Particles{
			Spacing:            ParticleSpacing,
			ConnectionDistance: ConnectionDistance,
			ConnectionOpacity:  ConnectionOpacity,
			LineWidth:          ConnectionLineWidth,
			Radius:             Range{Min: ParticleRadiusMin, Max: ParticleRadiusMax},
			Speed:              Range{Min: ParticleSpeedMin, Max: ParticleSpeedMax},
			Opacity:            Range{Min: ParticleOpacityMin, Max: ParticleOpacityMax},
			ConnectionsMin:     ConnectionsMin,
			ConnectionsMax:     ConnectionsMax,
			Color:              MustColor(ParticleColor),
		},
		Arcade: Arcade{
			BlockCount:      BlockCount,
			CollectorSize:   CollectorSize,
			CollectorSpeed:  CollectorSpeed,
			BlockSize:       BlockSize,
			BlockValueMin:   BlockValueMin,
			BlockValueMax:   BlockValueMax,
			SpawnMargin:     SpawnMargin,
			GridSpacing:     GridSpacing,
			Epoch:           Epoch,
			CollectorSprite: CollectorSprite,
			BlockSprite:     BlockSprite,
			Background:      MustColor(BackgroundColor),
			Grid:            MustColor(GridColor),
			Score:           MustColor(ScoreColor),
			EpochLabel:      MustColor(EpochColor),
			Collector:       MustColor(CollectorColor),
			Block:           MustColor(BlockColor),
		},
		Audio: Audio{
			Enabled:    true,
			SampleRate: SampleRate,
			Volume:     Volume,
		},
	}
}

// Load reads a YAML file and overlays it on Default. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting that cannot drive the simulations.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Particles.Spacing <= 0:
		return fmt.Errorf("%w: particles.spacing must be positive", ErrInvalid)
	case c.Particles.ConnectionDistance <= 0:
		return fmt.Errorf("%w: particles.connection_distance must be positive", ErrInvalid)
	case !c.Particles.Radius.valid(), !c.Particles.Speed.valid(), !c.Particles.Opacity.valid():
		return fmt.Errorf("%w: particle ranges need 0 <= min <= max", ErrInvalid)
	case c.Particles.ConnectionsMin < 0 || c.Particles.ConnectionsMax < c.Particles.ConnectionsMin:
		return fmt.Errorf("%w: connections %d..%d", ErrInvalid, c.Particles.ConnectionsMin, c.Particles.ConnectionsMax)
	case c.Audio.Enabled && c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: audio.sample_rate must be positive", ErrInvalid)
	}
	return c.Arcade.Validate()
}

// Validate reports the first arcade setting the game cannot run with.
func (a Arcade) Validate() error {
	switch {
	case a.BlockCount <= 0:
		return fmt.Errorf("%w: arcade.block_count must be positive", ErrInvalid)
	case a.CollectorSize <= 0 || a.BlockSize <= 0:
		return fmt.Errorf("%w: arcade sizes must be positive", ErrInvalid)
	case a.CollectorSpeed < 0:
		return fmt.Errorf("%w: arcade.collector_speed must not be negative", ErrInvalid)
	case a.BlockValueMax <= a.BlockValueMin:
		return fmt.Errorf("%w: block values %d..%d", ErrInvalid, a.BlockValueMin, a.BlockValueMax)
	case a.GridSpacing <= 0:
		return fmt.Errorf("%w: arcade.grid_spacing must be positive", ErrInvalid)
	}
	return nil
}

func (r Range) valid() bool {
	return r.Min >= 0 && r.Max >= r.Min
}
