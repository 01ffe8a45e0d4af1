package field

import (
	"math/rand"

	"github.com/san-kum/databg/internal/theme"
	"github.com/san-kum/databg/internal/viewport"
)

// Params tunes pool sizing and the link pass.
type Params struct {
	Limits       viewport.Limits
	LinkDistance float64
	LinkOpacity  float64
	LineWidth    float64
}

func DefaultParams() Params {
	return Params{
		Limits:       viewport.DefaultLimits(),
		LinkDistance: 120,
		LinkOpacity:  0.06,
		LineWidth:    0.5,
	}
}

// Scene is the simulation context: dimensions, the theme cached for the
// current frame, the random source and both entity pools.
type Scene struct {
	Width, Height float64

	params   Params
	palettes Palettes
	rng      *rand.Rand
	theme    theme.Theme
	palette  Palette

	particles []*Particle
	columns   []*DataColumn
}

// NewScene builds a scene for a w×h viewport and fills both pools.
func NewScene(w, h int, rng *rand.Rand, params Params, palettes Palettes) *Scene {
	s := &Scene{
		params:   params,
		palettes: palettes,
		rng:      rng,
	}
	s.SetTheme(theme.Default)
	s.Resize(w, h)
	return s
}

// Resize records the new dimensions and rebuilds both pools from scratch.
// No particle or column survives a resize.
func (s *Scene) Resize(w, h int) {
	s.Width, s.Height = float64(max(w, 0)), float64(max(h, 0))

	np, nc := viewport.Populations(w, h, s.params.Limits)

	s.particles = make([]*Particle, np)
	for i := range s.particles {
		s.particles[i] = NewParticle(s)
	}
	s.columns = make([]*DataColumn, nc)
	for i := range s.columns {
		s.columns[i] = NewDataColumn(s)
	}
}

// SetTheme caches t (and its palette) for the following draw calls.
func (s *Scene) SetTheme(t theme.Theme) {
	s.theme = theme.Parse(string(t))
	s.palette = s.palettes.For(s.theme)
}

func (s *Scene) Theme() theme.Theme     { return s.theme }
func (s *Scene) Palette() Palette       { return s.palette }
func (s *Scene) Palettes() Palettes     { return s.palettes }
func (s *Scene) Params() Params         { return s.params }
func (s *Scene) Particles() []*Particle { return s.particles }
func (s *Scene) Columns() []*DataColumn { return s.columns }

func (s *Scene) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
