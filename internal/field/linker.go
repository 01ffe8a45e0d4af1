package field

import (
	"math"

	"github.com/san-kum/databg/internal/surface"
)

// Linker draws a line between every pair of particles closer than
// MaxDistance, fading linearly with distance.
type Linker struct {
	MaxDistance float64
	MaxOpacity  float64
	LineWidth   float64
}

func NewLinker(p Params) Linker {
	return Linker{
		MaxDistance: p.LinkDistance,
		MaxOpacity:  p.LinkOpacity,
		LineWidth:   p.LineWidth,
	}
}

// LineOpacity is (1 - dist/MaxDistance) * MaxOpacity below the threshold and
// zero at or beyond it.
func (l Linker) LineOpacity(dist float64) float64 {
	if dist >= l.MaxDistance || l.MaxDistance <= 0 {
		return 0
	}
	return (1 - dist/l.MaxDistance) * l.MaxOpacity
}

// Link strokes the lines for the scene's particle pool and returns how many
// were drawn. Pool size bounds the O(n²) cost.
func (l Linker) Link(s *Scene, surf surface.Surface) int {
	ps := s.particles
	accent := s.palette.Accent
	links := 0

	surf.SetLineWidth(l.LineWidth)
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			dist := math.Hypot(ps[i].X-ps[j].X, ps[i].Y-ps[j].Y)
			if dist >= l.MaxDistance {
				continue
			}
			surf.SetStrokeStyle(accent.WithAlpha(l.LineOpacity(dist)))
			surf.StrokeLine(ps[i].X, ps[i].Y, ps[j].X, ps[j].Y)
			links++
		}
	}
	return links
}
