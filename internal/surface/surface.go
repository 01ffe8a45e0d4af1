// Package surface defines the 2D immediate-mode drawing context the engine
// paints on, and the implementations that do not need a window.
package surface

import (
	"fmt"
	"strconv"
	"strings"
)

// Surface is an immediate-mode 2D drawing context in pixel coordinates.
// Fill and stroke styles stay in effect until changed.
type Surface interface {
	ClearRect(x, y, w, h float64)
	SetFillStyle(c RGBA)
	SetStrokeStyle(c RGBA)
	SetLineWidth(w float64)
	SetFont(font string)
	FillCircle(x, y, r float64)
	FillText(text string, x, y float64)
	StrokeLine(x0, y0, x1, y1 float64)
}

// RGBA is an 8-bit color with a floating point alpha in [0, 1].
type RGBA struct {
	R, G, B uint8
	A       float64
}

func RGB(r, g, b uint8) RGBA { return RGBA{R: r, G: g, B: b, A: 1} }

// WithAlpha returns the same color with the alpha component replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// Fade multiplies the alpha component.
func (c RGBA) Fade(f float64) RGBA {
	c.A *= f
	return c
}

// String renders the CSS form, e.g. "rgba(0, 229, 255, 0.35)".
func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// Hex drops the alpha and renders "#rrggbb".
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseRGBA accepts "rgba(r, g, b, a)", "rgb(r, g, b)" and "#rrggbb".
func ParseRGBA(s string) (RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}

	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return RGBA{}, fmt.Errorf("surface: bad color %q", s)
	}
	fn := strings.ToLower(strings.TrimSpace(s[:open]))
	parts := strings.Split(s[open+1:len(s)-1], ",")

	switch {
	case fn == "rgba" && len(parts) == 4:
	case fn == "rgb" && len(parts) == 3:
	default:
		return RGBA{}, fmt.Errorf("surface: bad color %q", s)
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(strings.TrimSpace(parts[i]), 10, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("surface: bad color %q: %w", s, err)
		}
		ch[i] = uint8(v)
	}

	c := RGBA{R: ch[0], G: ch[1], B: ch[2], A: 1}
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return RGBA{}, fmt.Errorf("surface: bad color %q: %w", s, err)
		}
		c.A = a
	}
	return c, nil
}

func parseHex(s string) (RGBA, error) {
	if len(s) != 7 {
		return RGBA{}, fmt.Errorf("surface: bad color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("surface: bad color %q: %w", s, err)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// MarshalText lets colors round-trip through config files.
func (c RGBA) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *RGBA) UnmarshalText(b []byte) error {
	parsed, err := ParseRGBA(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
