// Package logging builds the structured loggers used by both hosts.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const filePrefix = "databg"

// ParseLevel accepts debug, info, warn and error. An empty string is info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", s)
}

func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func Discard() *slog.Logger {
	return New(io.Discard, slog.LevelError)
}

// ToFile routes logs to path through bubbletea so nothing is written over
// the terminal UI. The caller closes the returned file.
func ToFile(path string, level slog.Level) (*slog.Logger, io.Closer, error) {
	f, err := tea.LogToFile(path, filePrefix)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: open %s: %w", path, err)
	}
	return New(f, level).With("app", filePrefix), f, nil
}
