package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/npratt/voyage/internal/carousel"
	"github.com/npratt/voyage/internal/trips"
)

const truncateIndicator = "…"

// FormatSnapshot converts a carousel snapshot to a single human-readable line.
func FormatSnapshot(s carousel.Snapshot) string {
	var b strings.Builder
	b.WriteString(s.Name)

	slide, ok := s.Current()
	if !ok {
		b.WriteString(": no slides")
	} else {
		fmt.Fprintf(&b, " [%d/%d] %s", s.CurrentIndex+1, s.Len, slide.DisplayName)
	}

	if s.Reason != "" {
		fmt.Fprintf(&b, " (%s)", s.Reason)
	}
	if status := autoplayStatus(s); status != "" {
		b.WriteString(" ")
		b.WriteString(status)
	}
	return b.String()
}

// autoplayStatus describes the autoplay state of a snapshot.
func autoplayStatus(s carousel.Snapshot) string {
	switch {
	case s.Disposed:
		return "closed"
	case s.Running:
		return "playing"
	case s.ResumePending:
		return "paused, resuming at " + s.ResumeAt.Format("15:04:05")
	case s.AutoplayEnabled:
		// Enabled but a single slide has nothing to rotate.
		return ""
	default:
		return "paused"
	}
}

// FormatTrip converts a trip to a single line no wider than width cells.
// A width of zero or less disables truncation.
func FormatTrip(t trips.Trip, width int) string {
	line := t.Title
	if t.Category != "" {
		line += " · " + t.Category
	}
	if t.Description != "" {
		line += ": " + t.Description
	}
	return truncate(line, width)
}

// truncate shortens s to width cells, ANSI-aware.
func truncate(s string, width int) string {
	if width <= 0 || ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, truncateIndicator)
}
