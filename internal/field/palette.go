package field

import (
	"github.com/san-kum/databg/internal/surface"
	"github.com/san-kum/databg/internal/theme"
)

// ColorClass is the palette role of a particle.
type ColorClass int

const (
	Primary ColorClass = iota
	Secondary
	Tertiary
)

func (c ColorClass) String() string {
	switch c {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	case Tertiary:
		return "tertiary"
	}
	return "unknown"
}

// Swatch is a base color and the factor applied to a particle's opacity.
type Swatch struct {
	Color   surface.RGBA `yaml:"color"`
	Opacity float64      `yaml:"opacity"`
}

// Palette holds everything a theme contributes to a frame.
type Palette struct {
	Backdrop  surface.RGBA `yaml:"backdrop"`
	Accent    surface.RGBA `yaml:"accent"`
	Primary   Swatch       `yaml:"primary"`
	Secondary Swatch       `yaml:"secondary"`
	Tertiary  Swatch       `yaml:"tertiary"`
}

// Swatch returns the swatch for a color class. Unknown classes use primary.
func (p Palette) Swatch(c ColorClass) Swatch {
	switch c {
	case Secondary:
		return p.Secondary
	case Tertiary:
		return p.Tertiary
	}
	return p.Primary
}

var (
	DarkPalette = Palette{
		Backdrop:  surface.RGB(10, 14, 23),
		Accent:    surface.RGB(0, 229, 255),
		Primary:   Swatch{surface.RGB(0, 229, 255), 1},
		Secondary: Swatch{surface.RGB(124, 77, 255), 0.7},
		Tertiary:  Swatch{surface.RGB(244, 114, 182), 0.5},
	}

	LightPalette = Palette{
		Backdrop:  surface.RGB(245, 247, 250),
		Accent:    surface.RGB(0, 119, 182),
		Primary:   Swatch{surface.RGB(0, 119, 182), 1},
		Secondary: Swatch{surface.RGB(108, 59, 170), 0.7},
		Tertiary:  Swatch{surface.RGB(214, 51, 132), 0.5},
	}
)

// Palettes maps each theme to its palette.
type Palettes struct {
	Dark  Palette `yaml:"dark"`
	Light Palette `yaml:"light"`
}

func DefaultPalettes() Palettes {
	return Palettes{Dark: DarkPalette, Light: LightPalette}
}

// For returns the palette of t. Anything but light gets the dark palette.
func (p Palettes) For(t theme.Theme) Palette {
	if theme.Parse(string(t)) == theme.Light {
		return p.Light
	}
	return p.Dark
}

// ColorFor maps a color class and theme to the particle color at opacity.
// Secondary and tertiary classes are scaled down by their swatch factor.
func (p Palettes) ColorFor(c ColorClass, t theme.Theme, opacity float64) surface.RGBA {
	sw := p.For(t).Swatch(c)
	return sw.Color.WithAlpha(opacity * sw.Opacity)
}
