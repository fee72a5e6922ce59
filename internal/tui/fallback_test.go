package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/npratt/voyage/internal/carousel"
	"github.com/npratt/voyage/internal/clock"
	"github.com/npratt/voyage/internal/trips"
)

func TestIsTerminal_ReturnsBoolean(t *testing.T) {
	// isTerminal should return a boolean without panicking
	// The actual value depends on how the test is run
	result := isTerminal()
	_ = result // just verify it returns without error
}

func TestTerminalSize_ReturnsInts(t *testing.T) {
	// terminalSize should return integers without panicking
	// May return 0,0 if not a terminal
	width, height := terminalSize()
	if width < 0 || height < 0 {
		t.Errorf("terminalSize returned negative values: %d, %d", width, height)
	}
}

func TestRunSimple_PrintsTripsAndSlides(t *testing.T) {
	var buf bytes.Buffer
	fetcher := &fakeFetcher{trips: []trips.Trip{{ID: "a", Title: "Iceland Ring Road", Category: "adventure"}}}

	tui := New(
		testSpec("Hero", carousel.Hero, 3),
		testSpec("Homepage", carousel.Homepage, 2),
		WithFetcher(fetcher, ""),
		WithClock(clock.Fake(epoch)),
		WithOutput(&buf),
		WithPlain(true),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	if err := tui.Run(ctx); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"trip: Iceland Ring Road · adventure",
		"hero [1/3] Destination 0 (start) playing",
		"homepage [1/2] Destination 0 (start) playing",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestRunSimple_NoTrips(t *testing.T) {
	var buf bytes.Buffer

	tui := New(
		testSpec("Hero", carousel.Hero, 1),
		testSpec("Homepage", carousel.Homepage, 1),
		WithFetcher(&fakeFetcher{}, ""),
		WithClock(clock.Fake(epoch)),
		WithOutput(&buf),
		WithPlain(true),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := tui.Run(ctx); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "no featured trips") {
		t.Errorf("output missing empty trips line\n%s", buf.String())
	}
}

func TestRunSimple_InvalidTiming(t *testing.T) {
	tui := New(
		testSpec("Hero", carousel.Preset{Name: "hero"}, 3),
		testSpec("Homepage", carousel.Homepage, 2),
		WithPlain(true),
	)
	if err := tui.Run(context.Background()); err == nil {
		t.Error("expected error for zero interval")
	}
}
