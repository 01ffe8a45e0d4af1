package field

import (
	"math"
	"testing"
	"unicode"

	"github.com/san-kum/databg/internal/surface"
	"github.com/san-kum/databg/internal/theme"
)

func TestDataColumnConstruction(t *testing.T) {
	s := newTestScene(800, 600, 13)

	for i := 0; i < 300; i++ {
		c := NewDataColumn(s)
		if c.X < 0 || c.X >= s.Width {
			t.Errorf("x out of range: %f", c.X)
		}
		if c.Y > 0 || c.Y < -s.Height {
			t.Errorf("y should start above the viewport, got %f", c.Y)
		}
		if c.Speed < 0.5 || c.Speed >= 2.5 {
			t.Errorf("speed out of range: %f", c.Speed)
		}
		if c.Len() < 5 || c.Len() >= 20 {
			t.Errorf("glyph count out of range: %d", c.Len())
		}
		if c.Opacity < 0.03 || c.Opacity >= 0.15 {
			t.Errorf("opacity out of range: %f", c.Opacity)
		}
		for _, g := range c.Glyphs() {
			if !unicode.IsDigit(g) && !(g >= 'A' && g <= 'Z') {
				t.Errorf("unexpected glyph %q", g)
			}
		}
	}
}

func TestDataColumnGlyphsImmutable(t *testing.T) {
	s := newTestScene(800, 600, 17)

	before := make([]string, len(s.Columns()))
	for i, c := range s.Columns() {
		before[i] = string(c.Glyphs())
	}

	for step := 0; step < 2000; step++ {
		for _, c := range s.Columns() {
			c.Update(s)
		}
	}

	for i, c := range s.Columns() {
		if string(c.Glyphs()) != before[i] {
			t.Errorf("column %d glyphs changed: %q -> %q", i, before[i], string(c.Glyphs()))
		}
	}

	g := s.Columns()[0].Glyphs()
	g[0] = '#'
	if s.Columns()[0].Glyphs()[0] == '#' {
		t.Error("Glyphs exposed internal storage")
	}
}

func TestDataColumnRespawn(t *testing.T) {
	s := newTestScene(800, 600, 19)

	for i := 0; i < 100; i++ {
		c := NewDataColumn(s)
		c.Y = s.Height + ColumnMargin + 0.001
		c.Update(s)
		if c.Y >= -100 || c.Y < -500 {
			t.Fatalf("expected respawn in [-500, -100), got %f", c.Y)
		}
		if c.X < 0 || c.X >= s.Width {
			t.Fatalf("expected fresh x, got %f", c.X)
		}
	}
}

func TestDataColumnFalls(t *testing.T) {
	s := newTestScene(800, 600, 19)
	c := NewDataColumn(s)
	c.Y = 0
	y0 := c.Y
	c.Update(s)
	if c.Y != y0+c.Speed {
		t.Errorf("expected y to advance by speed, got %f", c.Y)
	}
}

func TestDataColumnDraw(t *testing.T) {
	s := newTestScene(800, 600, 23)
	s.SetTheme(theme.Light)
	rec := surface.NewRecorder()

	c := &DataColumn{X: 40, Y: 100, Opacity: 0.1, glyphs: []rune("A1B2")}
	c.Draw(s, rec)

	ops := rec.Ops()
	if len(ops) != 4 {
		t.Fatalf("expected 4 glyphs drawn, got %d", len(ops))
	}
	for i, op := range ops {
		if op.Kind != surface.OpText {
			t.Fatalf("op %d is %s, want text", i, op.Kind)
		}
		if op.Font != ColumnFont {
			t.Errorf("op %d font %q", i, op.Font)
		}
		if op.X != 40 || op.Y != 100+float64(i)*RowHeight {
			t.Errorf("op %d at (%f, %f)", i, op.X, op.Y)
		}
		if op.Color.R != 0 || op.Color.G != 119 || op.Color.B != 182 {
			t.Errorf("op %d not in light accent: %s", i, op.Color)
		}
		want := 0.1 * (1 - float64(i)/4)
		if math.Abs(op.Color.A-want) > eps {
			t.Errorf("op %d opacity %f, want %f", i, op.Color.A, want)
		}
	}
	if ops[0].Text != "A" || ops[3].Text != "2" {
		t.Errorf("glyph order wrong: %q..%q", ops[0].Text, ops[3].Text)
	}
}
