package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/databg/internal/field"
	"github.com/san-kum/databg/internal/typewriter"
	"github.com/san-kum/databg/internal/viewport"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS          = 60
	DefaultDataDir      = ".databg"
	DefaultPixelsPerDot = 4.0
	DefaultAlphaGain    = 4.0
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 720
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Seed       int64            `yaml:"seed"`
	FPS        int              `yaml:"fps"`
	Theme      string           `yaml:"theme"`
	DataDir    string           `yaml:"data_dir"`
	Population PopulationConfig `yaml:"population"`
	Link       LinkConfig       `yaml:"link"`
	Terminal   TerminalConfig   `yaml:"terminal"`
	Window     WindowConfig     `yaml:"window"`
	Typewriter TypewriterConfig `yaml:"typewriter"`
	Palettes   field.Palettes   `yaml:"palettes"`
}

type PopulationConfig struct {
	AreaPerParticle int `yaml:"area_per_particle"`
	MaxParticles    int `yaml:"max_particles"`
	ColumnSpacing   int `yaml:"column_spacing"`
	MaxColumns      int `yaml:"max_columns"`
}

type LinkConfig struct {
	MaxDistance float64 `yaml:"max_distance"`
	MaxOpacity  float64 `yaml:"max_opacity"`
	LineWidth   float64 `yaml:"line_width"`
}

type TerminalConfig struct {
	PixelsPerDot float64 `yaml:"pixels_per_dot"`
	AlphaGain    float64 `yaml:"alpha_gain"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type TypewriterConfig struct {
	Titles   []string `yaml:"titles"`
	TypeMs   int      `yaml:"type_ms"`
	DeleteMs int      `yaml:"delete_ms"`
	HoldMs   int      `yaml:"hold_ms"`
	NextMs   int      `yaml:"next_ms"`
}

func DefaultConfig() *Config {
	limits := viewport.DefaultLimits()
	params := field.DefaultParams()
	timing := typewriter.DefaultTiming()

	return &Config{
		FPS:     DefaultFPS,
		Theme:   "dark",
		DataDir: DefaultDataDir,
		Population: PopulationConfig{
			AreaPerParticle: limits.AreaPerParticle,
			MaxParticles:    limits.MaxParticles,
			ColumnSpacing:   limits.ColumnSpacing,
			MaxColumns:      limits.MaxColumns,
		},
		Link: LinkConfig{
			MaxDistance: params.LinkDistance,
			MaxOpacity:  params.LinkOpacity,
			LineWidth:   params.LineWidth,
		},
		Terminal: TerminalConfig{
			PixelsPerDot: DefaultPixelsPerDot,
			AlphaGain:    DefaultAlphaGain,
		},
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
		},
		Typewriter: TypewriterConfig{
			Titles:   append([]string(nil), typewriter.DefaultTitles...),
			TypeMs:   int(timing.Type / time.Millisecond),
			DeleteMs: int(timing.Delete / time.Millisecond),
			HoldMs:   int(timing.Hold / time.Millisecond),
			NextMs:   int(timing.Next / time.Millisecond),
		},
		Palettes: field.DefaultPalettes(),
	}
}

// Load reads a YAML file over the defaults, so a file only needs the keys it
// changes.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML file over base, e.g. a preset, and validates the
// result. base is modified in place.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := base.Validate(); err != nil {
		return nil, err
	}
	return base, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.FPS < 1 || c.FPS > 240:
		return fmt.Errorf("%w: fps must be in 1-240, got %d", ErrInvalid, c.FPS)
	case c.Population.AreaPerParticle <= 0:
		return fmt.Errorf("%w: population.area_per_particle must be positive", ErrInvalid)
	case c.Population.MaxParticles < 0 || c.Population.MaxParticles > viewport.ParticleCap:
		return fmt.Errorf("%w: population.max_particles must be in 0-%d, got %d", ErrInvalid, viewport.ParticleCap, c.Population.MaxParticles)
	case c.Population.ColumnSpacing <= 0:
		return fmt.Errorf("%w: population.column_spacing must be positive", ErrInvalid)
	case c.Population.MaxColumns < 0:
		return fmt.Errorf("%w: population.max_columns must not be negative", ErrInvalid)
	case c.Link.MaxDistance <= 0:
		return fmt.Errorf("%w: link.max_distance must be positive", ErrInvalid)
	case c.Link.MaxOpacity < 0 || c.Link.MaxOpacity > 1:
		return fmt.Errorf("%w: link.max_opacity must be in 0-1", ErrInvalid)
	case c.Link.LineWidth < 0:
		return fmt.Errorf("%w: link.line_width must not be negative", ErrInvalid)
	case c.Typewriter.TypeMs <= 0 || c.Typewriter.DeleteMs <= 0 || c.Typewriter.HoldMs <= 0 || c.Typewriter.NextMs <= 0:
		return fmt.Errorf("%w: typewriter delays must be positive", ErrInvalid)
	case c.Terminal.PixelsPerDot <= 0:
		return fmt.Errorf("%w: terminal.pixels_per_dot must be positive", ErrInvalid)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size must be positive", ErrInvalid)
	}
	return nil
}

// Params converts the population and link sections for the simulation.
func (c *Config) Params() field.Params {
	return field.Params{
		Limits: viewport.Limits{
			AreaPerParticle: c.Population.AreaPerParticle,
			MaxParticles:    c.Population.MaxParticles,
			ColumnSpacing:   c.Population.ColumnSpacing,
			MaxColumns:      c.Population.MaxColumns,
		},
		LinkDistance: c.Link.MaxDistance,
		LinkOpacity:  c.Link.MaxOpacity,
		LineWidth:    c.Link.LineWidth,
	}
}

func (c *Config) Timing() typewriter.Timing {
	return typewriter.Timing{
		Type:   time.Duration(c.Typewriter.TypeMs) * time.Millisecond,
		Delete: time.Duration(c.Typewriter.DeleteMs) * time.Millisecond,
		Hold:   time.Duration(c.Typewriter.HoldMs) * time.Millisecond,
		Next:   time.Duration(c.Typewriter.NextMs) * time.Millisecond,
	}
}

// FrameInterval is the delay between frames at the configured fps.
func (c *Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return time.Second / DefaultFPS
	}
	return time.Second / time.Duration(c.FPS)
}
