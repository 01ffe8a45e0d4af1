package theme

import (
	"errors"
	"strings"
)

// Theme is the active light/dark palette selection.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// Default is used when nothing has been stored yet.
const Default = Dark

var ErrUnknownTheme = errors.New("theme: unknown theme (want dark or light)")

// Parse maps any value to a theme. Anything that is not "light" renders with
// the dark palette.
func Parse(s string) Theme {
	if strings.EqualFold(strings.TrimSpace(s), string(Light)) {
		return Light
	}
	return Dark
}

// ParseStrict is Parse for user input: unknown names are an error instead of
// falling back to dark.
func ParseStrict(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Dark):
		return Dark, nil
	case string(Light):
		return Light, nil
	}
	return "", ErrUnknownTheme
}

// Next returns the other theme. Unknown values toggle like dark.
func (t Theme) Next() Theme {
	if Parse(string(t)) == Light {
		return Dark
	}
	return Light
}

func (t Theme) String() string { return string(t) }

// Provider exposes the current theme. The engine reads it once per frame and
// never writes it.
type Provider interface {
	Theme() Theme
}

// Static is a Provider with a fixed theme.
type Static Theme

func (s Static) Theme() Theme { return Parse(string(s)) }
