package field

import (
	"github.com/san-kum/databg/internal/surface"
)

const (
	minFallSpeed, maxFallSpeed     = 0.5, 2.5
	minGlyphs, maxGlyphs           = 5, 20
	minColumnAlpha, maxColumnAlpha = 0.03, 0.15

	// ColumnMargin is how far below the viewport a column falls before it
	// respawns above it.
	ColumnMargin = 200.0

	respawnMin, respawnMax = -500.0, -100.0

	RowHeight  = 14.0
	ColumnFont = "10px JetBrains Mono, monospace"
)

// DataColumn is a vertical run of glyphs falling through the viewport. The
// glyph sequence is fixed for the column's lifetime.
type DataColumn struct {
	X, Y    float64
	Speed   float64
	Opacity float64

	glyphs []rune
}

func NewDataColumn(s *Scene) *DataColumn {
	c := &DataColumn{
		X:     s.rng.Float64() * s.Width,
		Y:     s.rng.Float64() * -s.Height,
		Speed: s.uniform(minFallSpeed, maxFallSpeed),
	}
	n := minGlyphs + s.rng.Intn(maxGlyphs-minGlyphs)
	c.Opacity = s.uniform(minColumnAlpha, maxColumnAlpha)

	c.glyphs = make([]rune, n)
	for i := range c.glyphs {
		if s.rng.Float64() > 0.5 {
			c.glyphs[i] = rune('0' + s.rng.Intn(10))
		} else {
			c.glyphs[i] = rune('A' + s.rng.Intn(26))
		}
	}
	return c
}

// Glyphs returns a copy of the column's glyph sequence.
func (c *DataColumn) Glyphs() []rune {
	out := make([]rune, len(c.glyphs))
	copy(out, c.glyphs)
	return out
}

func (c *DataColumn) Len() int { return len(c.glyphs) }

// Update lets the column fall one frame and respawns it above the viewport
// once it has fallen ColumnMargin past the bottom.
func (c *DataColumn) Update(s *Scene) {
	c.Y += c.Speed
	if c.Y > s.Height+ColumnMargin {
		c.Y = s.uniform(respawnMin, respawnMax)
		c.X = s.rng.Float64() * s.Width
	}
}

// GlyphOpacity fades linearly from the base opacity at the head (i=0)
// toward zero at the tail.
func (c *DataColumn) GlyphOpacity(i int) float64 {
	return c.Opacity * (1 - float64(i)/float64(len(c.glyphs)))
}

func (c *DataColumn) Draw(s *Scene, surf surface.Surface) {
	accent := s.palette.Accent
	surf.SetFont(ColumnFont)
	for i, g := range c.glyphs {
		surf.SetFillStyle(accent.WithAlpha(c.GlyphOpacity(i)))
		surf.FillText(string(g), c.X, c.Y+float64(i)*RowHeight)
	}
}
