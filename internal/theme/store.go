package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// Key is the namespaced preference key the theme is stored under.
	Key = "portfolio-theme"

	prefsFile = "prefs.json"
)

// Store persists the theme in a small key/value preferences file under
// baseDir. The current value is cached in memory so Theme is cheap enough to
// call every frame.
type Store struct {
	baseDir  string
	fallback Theme
	current  Theme
	prefs    map[string]string
}

func NewStore(baseDir string, fallback Theme) *Store {
	fallback = Parse(string(fallback))
	return &Store{
		baseDir:  baseDir,
		fallback: fallback,
		current:  fallback,
		prefs:    make(map[string]string),
	}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) path() string {
	return filepath.Join(s.baseDir, prefsFile)
}

// Load reads the preferences file. A missing file leaves the fallback theme
// in place.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			s.current = s.fallback
			return nil
		}
		return fmt.Errorf("theme: read prefs: %w", err)
	}

	prefs := make(map[string]string)
	if err := json.Unmarshal(data, &prefs); err != nil {
		return fmt.Errorf("theme: decode prefs: %w", err)
	}
	if prefs == nil {
		prefs = make(map[string]string)
	}
	s.prefs = prefs

	if v, ok := prefs[Key]; ok && v != "" {
		s.current = Parse(v)
	} else {
		s.current = s.fallback
	}
	return nil
}

func (s *Store) Theme() Theme { return s.current }

// Set stores t and writes the preferences file. On a failed write the store
// keeps its previous state.
func (s *Store) Set(t Theme) error {
	t = Parse(string(t))
	prefs := make(map[string]string, len(s.prefs)+1)
	for k, v := range s.prefs {
		prefs[k] = v
	}
	prefs[Key] = string(t)
	if err := s.save(prefs); err != nil {
		return err
	}
	s.prefs = prefs
	s.current = t
	return nil
}

// Toggle flips between dark and light and persists the result.
func (s *Store) Toggle() (Theme, error) {
	next := s.current.Next()
	if err := s.Set(next); err != nil {
		return s.current, err
	}
	return next, nil
}

func (s *Store) save(prefs map[string]string) error {
	if err := s.Init(); err != nil {
		return fmt.Errorf("theme: create data dir: %w", err)
	}

	f, err := os.Create(s.path())
	if err != nil {
		return fmt.Errorf("theme: write prefs: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(prefs); err != nil {
		return fmt.Errorf("theme: encode prefs: %w", err)
	}
	return nil
}
