package surface

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blankBraille = 0x2800

// Braille is a terminal Surface. Every cell holds a 2x4 Braille dot pattern
// and one color; pixel coordinates are scaled down by PixelsPerDot.
// Translucent paint is alpha-blended into the cell color, boosted by Gain so
// faint strokes remain visible on a terminal.
type Braille struct {
	Width, Height int // cells
	Grid          [][]rune
	PixelsPerDot  float64
	Gain          float64

	text     [][]rune
	colors   [][]colorful.Color
	stamp    [][]uint32
	opID     uint32
	backdrop colorful.Color

	fill, stroke RGBA
	lineWidth    float64
	font         string
}

func NewBraille(w, h int, pixelsPerDot, gain float64) *Braille {
	if pixelsPerDot <= 0 {
		pixelsPerDot = 1
	}
	if gain <= 0 {
		gain = 1
	}
	b := &Braille{
		PixelsPerDot: pixelsPerDot,
		Gain:         gain,
		lineWidth:    1,
	}
	b.Resize(w, h)
	return b
}

// Resize reallocates the grid to w×h cells and clears it.
func (b *Braille) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b.Width, b.Height = w, h
	b.Grid = make([][]rune, h)
	b.text = make([][]rune, h)
	b.colors = make([][]colorful.Color, h)
	b.stamp = make([][]uint32, h)
	for i := 0; i < h; i++ {
		b.Grid[i] = make([]rune, w)
		b.text[i] = make([]rune, w)
		b.colors[i] = make([]colorful.Color, w)
		b.stamp[i] = make([]uint32, w)
	}
	b.Clear()
}

// PixelSize is the drawable area in pixels.
func (b *Braille) PixelSize() (int, int) {
	return int(float64(b.Width*2) * b.PixelsPerDot), int(float64(b.Height*4) * b.PixelsPerDot)
}

// SetBackdrop sets the color cleared cells take.
func (b *Braille) SetBackdrop(c RGBA) {
	b.backdrop = toColorful(c)
}

// Clear resets the canvas
func (b *Braille) Clear() {
	for i := range b.Grid {
		for j := range b.Grid[i] {
			b.resetCell(i, j)
		}
	}
}

func (b *Braille) resetCell(row, col int) {
	b.Grid[row][col] = blankBraille
	b.text[row][col] = 0
	b.colors[row][col] = b.backdrop
}

func (b *Braille) ClearRect(x, y, w, h float64) {
	c0, r0 := b.cellAt(x, y)
	c1, r1 := b.cellAt(x+w, y+h)
	for row := max(r0, 0); row <= min(r1, b.Height-1); row++ {
		for col := max(c0, 0); col <= min(c1, b.Width-1); col++ {
			b.resetCell(row, col)
		}
	}
}

func (b *Braille) SetFillStyle(c RGBA)    { b.fill = c }
func (b *Braille) SetStrokeStyle(c RGBA)  { b.stroke = c }
func (b *Braille) SetLineWidth(w float64) { b.lineWidth = w }
func (b *Braille) SetFont(font string)    { b.font = font }

// FillCircle sets every dot inside the circle. Circles smaller than a dot
// still light the dot under their center.
func (b *Braille) FillCircle(x, y, r float64) {
	b.opID++
	cx, cy := x/b.PixelsPerDot, y/b.PixelsPerDot
	rd := math.Max(r/b.PixelsPerDot, 0.5)

	minX, maxX := int(math.Floor(cx-rd)), int(math.Ceil(cx+rd))
	minY, maxY := int(math.Floor(cy-rd)), int(math.Ceil(cy+rd))
	for dy := minY; dy <= maxY; dy++ {
		for dx := minX; dx <= maxX; dx++ {
			fx, fy := float64(dx)+0.5-cx, float64(dy)+0.5-cy
			if fx*fx+fy*fy <= rd*rd {
				b.paint(dx, dy, b.fill)
			}
		}
	}
	b.paint(int(math.Floor(cx)), int(math.Floor(cy)), b.fill)
}

// FillText writes the first rune of text into the cell under (x, y). Glyphs
// replace the dot pattern of that cell.
func (b *Braille) FillText(text string, x, y float64) {
	if text == "" {
		return
	}
	col, row := b.cellAt(x, y)
	if !b.inside(col, row) {
		return
	}
	b.opID++
	b.text[row][col] = []rune(text)[0]
	b.blend(row, col, b.fill)
}

// StrokeLine draws a line using Bresenham's algorithm
func (b *Braille) StrokeLine(x0, y0, x1, y1 float64) {
	b.opID++
	b.DrawLine(
		int(x0/b.PixelsPerDot), int(y0/b.PixelsPerDot),
		int(x1/b.PixelsPerDot), int(y1/b.PixelsPerDot),
	)
}

// DrawLine draws a line in dot coordinates with the current stroke style.
func (b *Braille) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		b.paint(x0, y0, b.stroke)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Set lights a dot at (x, y) in dot coordinates without touching the color.
// The canvas size in dots is (Width*2) x (Height*4).
func (b *Braille) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= b.Width || row >= b.Height {
		return
	}

	b.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// paint lights a dot and blends c into its cell once per drawing call.
func (b *Braille) paint(x, y int, c RGBA) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= b.Width || row >= b.Height {
		return
	}
	b.Set(x, y)
	b.blend(row, col, c)
}

func (b *Braille) blend(row, col int, c RGBA) {
	if b.stamp[row][col] == b.opID {
		return
	}
	b.stamp[row][col] = b.opID
	a := math.Min(math.Max(c.A*b.Gain, 0), 1)
	b.colors[row][col] = b.colors[row][col].BlendRgb(toColorful(c), a)
}

func (b *Braille) cellAt(x, y float64) (col, row int) {
	dx := math.Floor(x / b.PixelsPerDot)
	dy := math.Floor(y / b.PixelsPerDot)
	return int(math.Floor(dx / 2)), int(math.Floor(dy / 4))
}

func (b *Braille) inside(col, row int) bool {
	return col >= 0 && row >= 0 && col < b.Width && row < b.Height
}

// Cell returns the rune shown at a cell and its color as hex.
func (b *Braille) Cell(col, row int) (rune, string) {
	if !b.inside(col, row) {
		return 0, ""
	}
	ch := b.Grid[row][col]
	if t := b.text[row][col]; t != 0 {
		ch = t
	}
	return ch, b.colors[row][col].Hex()
}

// String renders the grid with runs of equal color sharing one style.
func (b *Braille) String() string {
	var sb strings.Builder
	bg := lipgloss.Color(b.backdrop.Hex())
	for row := 0; row < b.Height; row++ {
		var run strings.Builder
		runColor := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(runColor)).Background(bg)
			sb.WriteString(style.Render(run.String()))
			run.Reset()
		}
		for col := 0; col < b.Width; col++ {
			ch, hex := b.Cell(col, row)
			if ch == blankBraille {
				ch = ' '
			}
			if hex != runColor {
				flush()
				runColor = hex
			}
			run.WriteRune(ch)
		}
		flush()
		if row < b.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func toColorful(c RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
