// Package window hosts the background animation in a desktop window driven
// by the ebiten game loop.
package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/san-kum/databg/internal/surface"
	"golang.org/x/image/font/basicfont"
)

// glyphFace is the only face; FillText positions it on the baseline.
var glyphFace = text.NewGoXFace(basicfont.Face7x13)

// Surface draws onto the ebiten image set by SetTarget. With no target every
// call is a no-op. basicfont is the only face, so SetFont only records the
// requested font.
type Surface struct {
	dst      *ebiten.Image
	backdrop func() surface.RGBA

	fill, stroke color.NRGBA
	lineWidth    float32
	font         string
}

// NewSurface returns a surface whose ClearRect paints backdrop().
func NewSurface(backdrop func() surface.RGBA) *Surface {
	return &Surface{backdrop: backdrop, lineWidth: 1}
}

func (s *Surface) SetTarget(dst *ebiten.Image) { s.dst = dst }

func (s *Surface) ClearRect(x, y, w, h float64) {
	if s.dst == nil {
		return
	}
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), nrgba(s.backdrop()), false)
}

func (s *Surface) SetFillStyle(c surface.RGBA)   { s.fill = nrgba(c) }
func (s *Surface) SetStrokeStyle(c surface.RGBA) { s.stroke = nrgba(c) }
func (s *Surface) SetLineWidth(w float64)        { s.lineWidth = float32(w) }
func (s *Surface) SetFont(font string)           { s.font = font }

func (s *Surface) FillCircle(x, y, r float64) {
	if s.dst == nil {
		return
	}
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r), s.fill, true)
}

func (s *Surface) FillText(str string, x, y float64) {
	if s.dst == nil || str == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-glyphFace.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(s.fill)
	text.Draw(s.dst, str, glyphFace, op)
}

func (s *Surface) StrokeLine(x0, y0, x1, y1 float64) {
	if s.dst == nil {
		return
	}
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), s.lineWidth, s.stroke, true)
}

// nrgba converts to a non-premultiplied color with the alpha clamped to [0, 1].
func nrgba(c surface.RGBA) color.NRGBA {
	a := math.Min(math.Max(c.A, 0), 1)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(a * 255))}
}
