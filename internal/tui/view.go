package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// tripsPaneMinLines is the least number of trip lines shown.
const tripsPaneMinLines = 3

// View implements tea.Model. This renders the full TUI display.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Handle too small terminal
	if m.width < minWidth || m.height < minHeight {
		return m.renderTooSmall()
	}

	// Border plus padding on each side.
	inner := safeWidth(m.width - 4)

	header := styles.Brand.Render("voyage") + styles.Muted.Render("  featured destinations")
	hero := m.renderPane(paneHero, "Hero", m.hero.view(inner), inner)
	homepage := m.renderPane(paneHomepage, "Homepage", m.homepage.view(inner), inner)

	footer := m.help.View(m.keys)

	// Whatever height is left goes to the trips list.
	used := lipgloss.Height(header) + lipgloss.Height(hero) + lipgloss.Height(homepage) + lipgloss.Height(footer)
	tripLines := max(tripsPaneMinLines, m.height-used-3)
	trips := m.renderPane(paneTrips, "Featured trips", m.trips.view(inner, tripLines), inner)

	content := lipgloss.JoinVertical(lipgloss.Left, header, hero, homepage, trips, footer)

	// Place content at top-left of terminal
	return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, content)
}

// renderPane draws a titled, bordered pane. The focused carousel gets the
// highlighted border.
func (m model) renderPane(id paneID, title, body string, inner int) string {
	style := styles.UnfocusedBorder
	if id == m.focus {
		style = styles.FocusedBorder
	}
	content := styles.Pane.Render(title) + "\n" + body
	return style.
		Width(inner + 2).
		Padding(0, 1).
		Render(content)
}

// renderTooSmall renders a minimal message for terminals that are too small.
func (m model) renderTooSmall() string {
	return fmt.Sprintf("Terminal too small (%dx%d). Need %dx%d minimum.",
		m.width, m.height, minWidth, minHeight)
}

// safeWidth ensures width is at least 1.
func safeWidth(w int) int {
	if w < 1 {
		return 1
	}
	return w
}
