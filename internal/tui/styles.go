package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/npratt/voyage/internal/carousel"
)

// styles contains all lipgloss styles used by the TUI.
var styles = struct {
	// Header styles
	Brand lipgloss.Style
	Pane  lipgloss.Style

	// Slide styles
	SlideTitle  lipgloss.Style
	DotActive   lipgloss.Style
	DotInactive lipgloss.Style

	// Status colors
	StatusPlaying lipgloss.Style
	StatusPaused  lipgloss.Style
	StatusClosed  lipgloss.Style

	// Trips
	Trip    lipgloss.Style
	Spinner lipgloss.Style

	Muted lipgloss.Style
	Error lipgloss.Style

	// Focus indicators
	FocusedBorder   lipgloss.Style
	UnfocusedBorder lipgloss.Style
}{
	Brand: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("212")),

	Pane: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")),

	SlideTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("230")),

	DotActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color("212")),

	DotInactive: lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")),

	StatusPlaying: lipgloss.NewStyle().
		Foreground(lipgloss.Color("82")),

	StatusPaused: lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")),

	StatusClosed: lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")),

	Trip: lipgloss.NewStyle().
		Foreground(lipgloss.Color("250")),

	Spinner: lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")),

	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")),

	FocusedBorder: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")), // Bright blue for focused

	UnfocusedBorder: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")), // Dimmed gray for unfocused
}

// statusStyle picks the color for a snapshot's autoplay status.
func statusStyle(s carousel.Snapshot) lipgloss.Style {
	switch {
	case s.Disposed:
		return styles.StatusClosed
	case s.Running:
		return styles.StatusPlaying
	default:
		return styles.StatusPaused
	}
}
