package tui

import (
	"github.com/charmbracelet/bubbles/help"
)

// Layout size constants.
const (
	minWidth  = 50
	minHeight = 20
)

// model is the bubbletea model for the TUI.
type model struct {
	hero     carouselPane
	homepage carouselPane
	trips    tripsPane

	// focus is the carousel receiving navigation keys.
	focus paneID

	keys keyMap
	help help.Model

	width  int
	height int

	onQuit func()
}

// newModel creates a model from already constructed panes. The carousels are
// started by Init.
func newModel(hero, homepage carouselPane, trips tripsPane, onQuit func()) model {
	return model{
		hero:     hero,
		homepage: homepage,
		trips:    trips,
		focus:    paneHero,
		keys:     defaultKeyMap(),
		help:     help.New(),
		onQuit:   onQuit,
	}
}

// focused returns the carousel pane that receives navigation keys.
func (m *model) focused() *carouselPane {
	if m.focus == paneHomepage {
		return &m.homepage
	}
	return &m.hero
}

// cycleFocus moves navigation focus to the other carousel.
func (m *model) cycleFocus() {
	if m.focus == paneHero {
		m.focus = paneHomepage
	} else {
		m.focus = paneHero
	}
}

// shutdown unmounts both carousels. Safe to call more than once.
func (m model) shutdown() {
	m.hero.unmount()
	m.homepage.unmount()
	if m.onQuit != nil {
		m.onQuit()
	}
}
