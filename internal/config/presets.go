package config

import "sort"

var presets = map[string]func(*Config){
	"default": func(*Config) {},
	"dense": func(c *Config) {
		c.Population.AreaPerParticle = 4000
		c.Population.ColumnSpacing = 40
		c.Population.MaxColumns = 40
	},
	"sparse": func(c *Config) {
		c.Population.AreaPerParticle = 16000
		c.Population.MaxParticles = 80
		c.Population.ColumnSpacing = 160
		c.Population.MaxColumns = 8
	},
	"calm": func(c *Config) {
		c.FPS = 30
		c.Link.MaxDistance = 90
		c.Population.MaxColumns = 6
	},
	"light": func(c *Config) {
		c.Theme = "light"
	},
}

// GetPreset returns the defaults with the named preset applied, or nil.
func GetPreset(name string) *Config {
	apply, ok := presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

// Apply layers a preset onto an existing config.
func (c *Config) Apply(name string) bool {
	apply, ok := presets[name]
	if ok {
		apply(c)
	}
	return ok
}

func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
