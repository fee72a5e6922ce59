package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Init implements tea.Model. It mounts both carousels and loads the trips.
func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.hero.mount(),
		m.homepage.mount(),
		m.trips.refreshCmd(),
	)
}

// Update implements tea.Model. It handles all message types and updates the model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case snapshotMsg:
		var cmd tea.Cmd
		switch msg.pane {
		case paneHero:
			m.hero, cmd = m.hero.apply(msg.snap)
		case paneHomepage:
			m.homepage, cmd = m.homepage.apply(msg.snap)
		default:
			slog.Warn("snapshot for unknown pane", "pane", msg.pane)
		}
		return m, cmd

	case tripsStartLoadingMsg, tripsResultMsg, spinner.TickMsg:
		var cmd tea.Cmd
		m.trips, cmd = m.trips.update(msg)
		return m, cmd

	default:
		return m, nil
	}
}

// handleKey processes keyboard input and returns the updated model and command.
func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.shutdown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Focus):
		m.cycleFocus()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		p := m.focused()
		*p = p.next()
		return m, nil

	case key.Matches(msg, m.keys.Previous):
		p := m.focused()
		*p = p.previous()
		return m, nil

	case key.Matches(msg, m.keys.Goto):
		p := m.focused()
		*p = p.jump(int(msg.Runes[0] - '1'))
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		p := m.focused()
		*p = p.toggle()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.trips.refreshCmd()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	default:
		return m, nil
	}
}
