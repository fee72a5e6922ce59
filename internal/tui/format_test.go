package tui

import (
	"strings"
	"testing"

	"github.com/npratt/voyage/internal/carousel"
	"github.com/npratt/voyage/internal/clock"
	"github.com/npratt/voyage/internal/testutil"
	"github.com/npratt/voyage/internal/trips"
)

func TestFormatSnapshot(t *testing.T) {
	clk := clock.Fake(epoch)

	newCtrl := func(n int) *carousel.Controller {
		c, err := carousel.New(testutil.Slides(n), carousel.WithClock(clk), carousel.WithPreset(carousel.Hero))
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		t.Cleanup(c.Close)
		return c
	}

	playing := newCtrl(3)
	playing.Start()

	paused := newCtrl(3)
	paused.Start()
	paused.Gate().Next()

	stopped := newCtrl(3)
	stopped.Start()
	stopped.Gate().Pause()

	empty := newCtrl(0)
	empty.Start()

	closed := newCtrl(2)
	closed.Start()
	closed.Close()

	tests := []struct {
		name string
		snap carousel.Snapshot
		want []string
	}{
		{"playing", playing.Snapshot(), []string{"hero [1/3] Destination 0", "playing"}},
		{"resume pending", paused.Snapshot(), []string{"[2/3] Destination 1", "paused, resuming at 09:00:10"}},
		{"paused", stopped.Snapshot(), []string{"[1/3]", "paused"}},
		{"empty", empty.Snapshot(), []string{"hero: no slides"}},
		{"closed", closed.Snapshot(), []string{"closed"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatSnapshot(tt.snap)
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("FormatSnapshot() = %q, want it to contain %q", got, want)
				}
			}
		})
	}
}

func TestFormatSnapshot_IncludesReason(t *testing.T) {
	snap := carousel.Snapshot{Name: "homepage", Reason: carousel.ReasonTick}
	if got := FormatSnapshot(snap); !strings.Contains(got, "(tick)") {
		t.Errorf("FormatSnapshot() = %q, want reason", got)
	}
}

func TestFormatTrip(t *testing.T) {
	trip := trips.Trip{Title: "Tokyo Nights", Category: "city", Description: "Neon and ramen"}

	tests := []struct {
		name  string
		trip  trips.Trip
		width int
		want  string
	}{
		{"full", trip, 0, "Tokyo Nights · city: Neon and ramen"},
		{"title only", trips.Trip{Title: "Tokyo Nights"}, 0, "Tokyo Nights"},
		{"fits", trip, 80, "Tokyo Nights · city: Neon and ramen"},
		{"truncated", trip, 12, "Tokyo Night…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTrip(tt.trip, tt.width); got != tt.want {
				t.Errorf("FormatTrip() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate() = %q, want unchanged", got)
	}
	if got := truncate("abcdefghij", 5); got != "abcd…" {
		t.Errorf("truncate() = %q, want %q", got, "abcd…")
	}
}
