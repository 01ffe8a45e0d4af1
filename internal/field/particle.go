package field

import (
	"github.com/san-kum/databg/internal/surface"
	"github.com/san-kum/databg/internal/theme"
)

const (
	minSize, maxSize           = 0.5, 3.0
	minSpeedY, maxSpeedY       = 0.2, 1.0
	maxDriftX                  = 0.15
	minOpacity, maxOpacity     = 0.1, 0.6
	minFadeSpeed, maxFadeSpeed = 0.002, 0.01

	// Opacity oscillates between these bounds.
	FadeFloor   = 0.05
	FadeCeiling = 0.6

	wrapMargin = 10.0

	glowThreshold = 1.5
	glowRadius    = 2.5
	glowOpacity   = 0.15
)

// Particle is a single glowing dot. Its color class is fixed at construction;
// everything else is re-randomized or mutated as it moves.
type Particle struct {
	X, Y           float64
	Size           float64
	SpeedX, SpeedY float64
	Opacity        float64
	FadeDirection  float64
	FadeSpeed      float64

	class ColorClass
}

func NewParticle(s *Scene) *Particle {
	p := &Particle{}
	p.reset(s)
	p.class = pickClass(s.rng.Float64())
	return p
}

// pickClass draws primary/secondary/tertiary with weights 0.55/0.25/0.20.
func pickClass(r float64) ColorClass {
	switch {
	case r < 0.55:
		return Primary
	case r < 0.8:
		return Secondary
	}
	return Tertiary
}

func (p *Particle) reset(s *Scene) {
	p.X = s.rng.Float64() * s.Width
	p.Y = s.rng.Float64() * s.Height
	p.Size = s.uniform(minSize, maxSize)
	p.SpeedY = s.uniform(minSpeedY, maxSpeedY)
	p.SpeedX = s.uniform(-maxDriftX, maxDriftX)
	p.Opacity = s.uniform(minOpacity, maxOpacity)
	p.FadeDirection = -1
	if s.rng.Float64() > 0.5 {
		p.FadeDirection = 1
	}
	p.FadeSpeed = s.uniform(minFadeSpeed, maxFadeSpeed)
}

func (p *Particle) Class() ColorClass { return p.class }

// Update moves the particle one frame, advances the opacity pulse and wraps
// it back into view once it drifts past the edges.
func (p *Particle) Update(s *Scene) {
	p.Y += p.SpeedY
	p.X += p.SpeedX

	p.Opacity += p.FadeDirection * p.FadeSpeed
	if p.Opacity >= FadeCeiling {
		p.Opacity = FadeCeiling
		p.FadeDirection = -1
	}
	if p.Opacity <= FadeFloor {
		p.Opacity = FadeFloor
		p.FadeDirection = 1
	}

	if p.Y > s.Height+wrapMargin {
		p.Y = -wrapMargin
		p.X = s.rng.Float64() * s.Width
	}
	if p.X < -wrapMargin || p.X > s.Width+wrapMargin {
		p.X = s.rng.Float64() * s.Width
	}
}

// ColorFor returns the particle color under t at its current opacity.
func (p *Particle) ColorFor(s *Scene, t theme.Theme) surface.RGBA {
	return s.palettes.ColorFor(p.class, t, p.Opacity)
}

// Draw paints the dot, and for larger particles a faint halo underneath.
func (p *Particle) Draw(s *Scene, surf surface.Surface) {
	c := p.ColorFor(s, s.theme)
	if p.Size > glowThreshold {
		surf.SetFillStyle(c.WithAlpha(p.Opacity * glowOpacity))
		surf.FillCircle(p.X, p.Y, p.Size*glowRadius)
	}
	surf.SetFillStyle(c)
	surf.FillCircle(p.X, p.Y, p.Size)
}
