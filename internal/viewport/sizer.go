// Package viewport tracks the drawing area in pixels and derives the size of
// the particle and data-column pools from it.
package viewport

// ParticleCap bounds the particle pool whatever the limits say; the link pass
// is quadratic in it.
const ParticleCap = 200

// Limits controls how pool sizes scale with the viewport.
type Limits struct {
	AreaPerParticle int // pixels² per particle
	MaxParticles    int
	ColumnSpacing   int // pixels of width per data column
	MaxColumns      int
}

func DefaultLimits() Limits {
	return Limits{
		AreaPerParticle: 8000,
		MaxParticles:    ParticleCap,
		ColumnSpacing:   80,
		MaxColumns:      20,
	}
}

// Populations returns the particle and column counts for a w×h viewport:
// min(floor(w*h/area), maxParticles) and min(floor(w/spacing), maxColumns).
// The particle count never exceeds ParticleCap.
func Populations(w, h int, l Limits) (particles, columns int) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	if l.AreaPerParticle > 0 {
		particles = min(w*h/l.AreaPerParticle, l.MaxParticles, ParticleCap)
	}
	if l.ColumnSpacing > 0 {
		columns = min(w/l.ColumnSpacing, l.MaxColumns)
	}
	return particles, columns
}

// Sizer holds the current pixel dimensions and notifies listeners when they
// change.
type Sizer struct {
	width, height int
	listeners     []func(w, h int)
}

func NewSizer(w, h int) *Sizer {
	return &Sizer{width: w, height: h}
}

func (s *Sizer) Size() (int, int) { return s.width, s.height }

// OnResize registers fn to run after every dimension change.
func (s *Sizer) OnResize(fn func(w, h int)) {
	s.listeners = append(s.listeners, fn)
}

// Resize records the new dimensions. It reports whether anything changed;
// listeners only run on a change.
func (s *Sizer) Resize(w, h int) bool {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if w == s.width && h == s.height {
		return false
	}
	s.width, s.height = w, h
	for _, fn := range s.listeners {
		fn(w, h)
	}
	return true
}
