package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/npratt/voyage/internal/trips"
)

// tripsFetchTimeout bounds one refresh; the client applies its own timeout too.
const tripsFetchTimeout = 30 * time.Second

// tripsStartLoadingMsg signals the start of a fetch.
type tripsStartLoadingMsg struct {
	requestID int
}

// tripsResultMsg carries the result of a fetch.
type tripsResultMsg struct {
	trips     []trips.Trip
	requestID int
}

// tripsPane shows the featured trips list.
type tripsPane struct {
	fetcher   trips.Fetcher
	category  string
	spinner   spinner.Model
	loading   bool
	loaded    bool
	requestID int
	trips     []trips.Trip
}

func newTripsPane(fetcher trips.Fetcher, category string) tripsPane {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return tripsPane{
		fetcher:  fetcher,
		category: category,
		spinner:  sp,
	}
}

// refreshCmd starts a fetch unless one is already running. The request ID
// is recorded before the fetch starts so a fast result is not dropped.
func (p tripsPane) refreshCmd() tea.Cmd {
	if p.loading {
		return nil
	}
	reqID := p.requestID + 1
	return func() tea.Msg {
		return tripsStartLoadingMsg{requestID: reqID}
	}
}

// fetchCmd fetches trips in the background. Featured never fails; a broken
// backend shows up as an empty list.
func (p tripsPane) fetchCmd(requestID int) tea.Cmd {
	fetcher, category := p.fetcher, p.category
	return func() tea.Msg {
		if fetcher == nil {
			return tripsResultMsg{trips: []trips.Trip{}, requestID: requestID}
		}
		ctx, cancel := context.WithTimeout(context.Background(), tripsFetchTimeout)
		defer cancel()
		return tripsResultMsg{trips: fetcher.Featured(ctx, category), requestID: requestID}
	}
}

func (p tripsPane) update(msg tea.Msg) (tripsPane, tea.Cmd) {
	switch msg := msg.(type) {
	case tripsStartLoadingMsg:
		// A second refresh issued before the first start was handled
		// carries the same ID; only the first one fetches.
		if msg.requestID <= p.requestID {
			return p, nil
		}
		p.requestID = msg.requestID
		p.loading = true
		return p, tea.Batch(p.fetchCmd(msg.requestID), p.spinner.Tick)

	case tripsResultMsg:
		// Drop stale results
		if msg.requestID != p.requestID {
			return p, nil
		}
		p.loading = false
		p.loaded = true
		p.trips = msg.trips
		return p, nil

	case spinner.TickMsg:
		if p.loading {
			var cmd tea.Cmd
			p.spinner, cmd = p.spinner.Update(msg)
			return p, cmd
		}
		return p, nil
	}
	return p, nil
}

// view renders up to maxLines trips at the given inner width.
func (p tripsPane) view(width, maxLines int) string {
	if p.loading {
		return p.spinner.View() + " Loading featured trips..."
	}
	if !p.loaded {
		return styles.Muted.Render("Featured trips not loaded")
	}
	if len(p.trips) == 0 {
		return styles.Muted.Render("No featured trips right now")
	}

	shown := p.trips
	if maxLines > 0 && len(shown) > maxLines {
		shown = shown[:maxLines-1]
	}

	lines := make([]string, 0, len(shown)+1)
	for _, t := range shown {
		lines = append(lines, styles.Trip.Render(FormatTrip(t, width)))
	}
	if hidden := len(p.trips) - len(shown); hidden > 0 {
		lines = append(lines, styles.Muted.Render(fmt.Sprintf("+%d more", hidden)))
	}
	return strings.Join(lines, "\n")
}
