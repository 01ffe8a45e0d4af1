package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 60, cfg.FPS)
	assert.Equal(t, "dark", cfg.Theme)

	p := cfg.Params()
	assert.Equal(t, 8000, p.Limits.AreaPerParticle)
	assert.Equal(t, 200, p.Limits.MaxParticles)
	assert.Equal(t, 80, p.Limits.ColumnSpacing)
	assert.Equal(t, 20, p.Limits.MaxColumns)
	assert.Equal(t, 120.0, p.LinkDistance)
	assert.Equal(t, 0.06, p.LinkOpacity)
	assert.Equal(t, 0.5, p.LineWidth)
}

func TestTimingAndInterval(t *testing.T) {
	cfg := DefaultConfig()
	timing := cfg.Timing()
	assert.Equal(t, 80*time.Millisecond, timing.Type)
	assert.Equal(t, 40*time.Millisecond, timing.Delete)
	assert.Equal(t, 2*time.Second, timing.Hold)
	assert.Equal(t, 400*time.Millisecond, timing.Next)

	cfg.FPS = 50
	assert.Equal(t, 20*time.Millisecond, cfg.FrameInterval())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "databg.yaml")
	data := []byte(`
fps: 30
seed: 7
population:
  max_particles: 50
palettes:
  dark:
    accent: "rgba(0, 255, 0, 1)"
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 50, cfg.Population.MaxParticles)
	assert.Equal(t, 8000, cfg.Population.AreaPerParticle, "untouched keys keep defaults")
	assert.Equal(t, uint8(255), cfg.Palettes.Dark.Accent.G)
	assert.Equal(t, uint8(119), cfg.Palettes.Light.Accent.G)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fps: 0\n"), 0644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadOverPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "over.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fps: 45\n"), 0644))

	cfg, err := LoadOver(path, GetPreset("sparse"))
	require.NoError(t, err)
	assert.Equal(t, 45, cfg.FPS)
	assert.Equal(t, 80, cfg.Population.MaxParticles, "preset values survive")
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fps: [\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Link.MaxDistance = 99

	require.NoError(t, Save(path, cfg))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"fps too high", func(c *Config) { c.FPS = 1000 }},
		{"zero area", func(c *Config) { c.Population.AreaPerParticle = 0 }},
		{"huge pool", func(c *Config) { c.Population.MaxParticles = 5000 }},
		{"pool above cap", func(c *Config) { c.Population.MaxParticles = 201 }},
		{"negative line width", func(c *Config) { c.Link.LineWidth = -1 }},
		{"zero type delay", func(c *Config) { c.Typewriter.TypeMs = 0 }},
		{"negative delete delay", func(c *Config) { c.Typewriter.DeleteMs = -1 }},
		{"negative hold", func(c *Config) { c.Typewriter.HoldMs = -5 }},
		{"zero next delay", func(c *Config) { c.Typewriter.NextMs = 0 }},
		{"zero spacing", func(c *Config) { c.Population.ColumnSpacing = 0 }},
		{"zero link distance", func(c *Config) { c.Link.MaxDistance = 0 }},
		{"opacity above one", func(c *Config) { c.Link.MaxOpacity = 2 }},
		{"zero dot size", func(c *Config) { c.Terminal.PixelsPerDot = 0 }},
		{"zero window", func(c *Config) { c.Window.Width = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestValidateAcceptsParticleCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Population.MaxParticles = 200
	cfg.Link.LineWidth = 0
	assert.NoError(t, cfg.Validate())
}

func TestPresets(t *testing.T) {
	names := ListPresets()
	assert.Equal(t, []string{"calm", "default", "dense", "light", "sparse"}, names)

	for _, name := range names {
		cfg := GetPreset(name)
		require.NotNil(t, cfg, name)
		assert.NoError(t, cfg.Validate(), name)
	}

	assert.Equal(t, 30, GetPreset("calm").FPS)
	assert.Equal(t, "light", GetPreset("light").Theme)
	assert.Nil(t, GetPreset("nonexistent"))

	cfg := DefaultConfig()
	assert.True(t, cfg.Apply("sparse"))
	assert.Equal(t, 80, cfg.Population.MaxParticles)
	assert.False(t, cfg.Apply("nope"))
}
