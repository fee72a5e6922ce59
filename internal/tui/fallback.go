package tui

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"
)

// isTerminal returns true if both stdout and stdin are TTYs.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
}

// terminalSize returns the current terminal width and height.
// Returns 0, 0 if the terminal size cannot be determined.
func terminalSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0
	}
	return width, height
}

// terminalTooSmall returns true if the terminal is below the minimum size.
func terminalTooSmall() bool {
	width, height := terminalSize()
	return width < minWidth || height < minHeight
}

// runSimple provides line-by-line output for non-interactive environments.
// It prints the featured trips once, then every carousel change until ctx is
// cancelled or an interrupt arrives.
func (t *TUI) runSimple(ctx context.Context) error {
	// Set up interrupt handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	hero, err := newCarouselPane(paneHero, t.hero, t.clock, t.logger)
	if err != nil {
		return err
	}
	defer hero.unmount()
	homepage, err := newCarouselPane(paneHomepage, t.homepage, t.clock, t.logger)
	if err != nil {
		return err
	}
	defer homepage.unmount()

	t.printTrips(ctx)

	hero.ctrl.Start()
	homepage.ctrl.Start()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-sigChan:
			// Clean exit on interrupt
			return nil
		case snap := <-hero.snaps:
			t.printLine(FormatSnapshot(snap))
		case snap := <-homepage.snaps:
			t.printLine(FormatSnapshot(snap))
		}
	}
}

// printTrips fetches and prints the featured trips.
func (t *TUI) printTrips(ctx context.Context) {
	if t.fetcher == nil {
		return
	}
	fetchCtx, cancel := context.WithTimeout(ctx, tripsFetchTimeout)
	defer cancel()

	list := t.fetcher.Featured(fetchCtx, t.category)
	if len(list) == 0 {
		t.printLine("no featured trips")
		return
	}
	for _, trip := range list {
		t.printLine("trip: " + FormatTrip(trip, 0))
	}
}

func (t *TUI) printLine(text string) {
	timestamp := time.Now().Format("15:04:05")
	_, _ = fmt.Fprintf(t.out, "%s %s\n", timestamp, text)
}
