package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/databg/internal/field"
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444")).Bold(true)

	statusRunning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	statusPaused  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00"))
)

// headerStyle colors the title line after the active palette.
func headerStyle(p field.Palette) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(p.Accent.Hex())).
		Background(lipgloss.Color(p.Backdrop.Hex()))
}

