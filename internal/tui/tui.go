// Package tui renders the landing page in the terminal using bubbletea: the
// Hero carousel, the Homepage slideshow and the featured trips list.
package tui

import (
	"context"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/npratt/voyage/internal/clock"
	"github.com/npratt/voyage/internal/trips"
)

// TUI is the terminal landing page.
type TUI struct {
	hero     CarouselSpec
	homepage CarouselSpec
	fetcher  trips.Fetcher
	category string
	clock    clock.Clock
	logger   *slog.Logger
	out      io.Writer
	plain    bool
}

// Option configures the TUI.
type Option func(*TUI)

// New creates a new TUI for the two carousels and options.
func New(hero, homepage CarouselSpec, opts ...Option) *TUI {
	t := &TUI{
		hero:     hero,
		homepage: homepage,
		out:      os.Stdout,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// WithFetcher sets the featured trips source and category filter.
func WithFetcher(f trips.Fetcher, category string) Option {
	return func(t *TUI) {
		t.fetcher = f
		t.category = category
	}
}

// WithClock sets the clock driving both carousels.
func WithClock(clk clock.Clock) Option {
	return func(t *TUI) {
		t.clock = clk
	}
}

// WithLogger sets the logger handed to both carousels.
func WithLogger(logger *slog.Logger) Option {
	return func(t *TUI) {
		t.logger = logger
	}
}

// WithOutput sets where plain mode writes. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(t *TUI) {
		t.out = w
	}
}

// WithPlain forces line-by-line output instead of the full screen UI.
func WithPlain(plain bool) Option {
	return func(t *TUI) {
		t.plain = plain
	}
}

// Run starts the TUI and blocks until it exits or ctx is cancelled. Without
// a usable terminal it falls back to plain line output.
func (t *TUI) Run(ctx context.Context) error {
	if t.plain || !isTerminal() || terminalTooSmall() {
		return t.runSimple(ctx)
	}

	hero, err := newCarouselPane(paneHero, t.hero, t.clock, t.logger)
	if err != nil {
		return err
	}
	homepage, err := newCarouselPane(paneHomepage, t.homepage, t.clock, t.logger)
	if err != nil {
		return err
	}
	// Quitting from the keyboard closes both already; this covers ctx cancellation.
	defer hero.unmount()
	defer homepage.unmount()

	m := newModel(hero, homepage, newTripsPane(t.fetcher, t.category), nil)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	if ctx.Err() != nil {
		return nil
	}
	return err
}
