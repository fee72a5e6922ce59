package tui

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/npratt/voyage/internal/carousel"
	"github.com/npratt/voyage/internal/clock"
	"github.com/npratt/voyage/internal/testutil"
	"github.com/npratt/voyage/internal/trips"
)

var epoch = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// fakeFetcher is a trips.Fetcher returning a fixed list.
type fakeFetcher struct {
	mu         sync.Mutex
	trips      []trips.Trip
	categories []string
}

func (f *fakeFetcher) Featured(_ context.Context, category string) []trips.Trip {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.categories = append(f.categories, category)
	out := make([]trips.Trip, len(f.trips))
	copy(out, f.trips)
	return out
}

func (f *fakeFetcher) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.categories)
}

func testSpec(title string, preset carousel.Preset, n int) CarouselSpec {
	return CarouselSpec{Title: title, Slides: testutil.Slides(n), Preset: preset, Autoplay: true}
}

// newTestPane creates a mounted pane on a fake clock with the start snapshot
// already consumed.
func newTestPane(t *testing.T, n int) (carouselPane, *clock.FakeClock) {
	t.Helper()
	clk := clock.Fake(epoch)
	p, err := newCarouselPane(paneHero, testSpec("Hero", carousel.Hero, n), clk, nil)
	if err != nil {
		t.Fatalf("newCarouselPane failed: %v", err)
	}
	t.Cleanup(p.unmount)
	p.ctrl.Start()
	<-p.snaps
	return p, clk
}

func TestPublishLatest_KeepsOnlyNewest(t *testing.T) {
	ch := make(chan carousel.Snapshot, 1)
	publish := publishLatest(ch)

	for i := 0; i < 3; i++ {
		publish(carousel.Snapshot{State: carousel.State{CurrentIndex: i}})
	}

	got := <-ch
	if got.CurrentIndex != 2 {
		t.Errorf("CurrentIndex = %d, want newest (2)", got.CurrentIndex)
	}
	select {
	case extra := <-ch:
		t.Errorf("unexpected second snapshot: %+v", extra)
	default:
	}
}

func TestNewCarouselPane_InvalidTiming(t *testing.T) {
	spec := testSpec("Hero", carousel.Preset{Name: "hero"}, 3)
	if _, err := newCarouselPane(paneHero, spec, clock.Fake(epoch), nil); err == nil {
		t.Error("expected error for zero interval")
	}
}

func TestCarouselPane_NextPausesAutoplay(t *testing.T) {
	p, _ := newTestPane(t, 5)

	p = p.next()
	snap := <-p.snaps

	if snap.CurrentIndex != 1 {
		t.Errorf("CurrentIndex = %d, want 1", snap.CurrentIndex)
	}
	if snap.AutoplayEnabled {
		t.Error("AutoplayEnabled = true after user navigation")
	}
	if !snap.ResumePending {
		t.Error("expected a pending resume after user navigation")
	}
}

func TestCarouselPane_PreviousWraps(t *testing.T) {
	p, _ := newTestPane(t, 5)

	p = p.previous()
	snap := <-p.snaps

	if snap.CurrentIndex != 4 {
		t.Errorf("CurrentIndex = %d, want 4", snap.CurrentIndex)
	}
}

func TestCarouselPane_JumpOutOfRange(t *testing.T) {
	p, _ := newTestPane(t, 5)

	p = p.jump(8)

	if p.err != "no slide 9" {
		t.Errorf("err = %q, want %q", p.err, "no slide 9")
	}
	snap := p.ctrl.Snapshot()
	if snap.CurrentIndex != 0 || !snap.AutoplayEnabled || snap.ResumePending {
		t.Errorf("rejected jump changed state: %+v", snap)
	}

	// The next valid action clears the message.
	p = p.jump(2)
	if p.err != "" {
		t.Errorf("err = %q after valid jump, want empty", p.err)
	}
	if got := p.ctrl.Snapshot().CurrentIndex; got != 2 {
		t.Errorf("CurrentIndex = %d, want 2", got)
	}
}

func TestCarouselPane_AutoplayPublishesTicks(t *testing.T) {
	p, clk := newTestPane(t, 5)

	clk.Advance(5 * time.Second)
	snap := <-p.snaps

	if snap.Reason != carousel.ReasonTick || snap.CurrentIndex != 1 {
		t.Errorf("got reason=%s index=%d, want tick at 1", snap.Reason, snap.CurrentIndex)
	}
}

func TestCarouselPane_ApplyStopsListeningWhenClosed(t *testing.T) {
	p, _ := newTestPane(t, 3)

	p, cmd := p.apply(p.ctrl.Snapshot())
	if cmd == nil {
		t.Error("expected a wait command while the controller is open")
	}

	p.unmount()
	closed := <-p.snaps
	if !closed.Disposed {
		t.Fatalf("expected disposed snapshot, got %+v", closed)
	}
	if _, cmd = p.apply(closed); cmd != nil {
		t.Error("expected no wait command after close")
	}
}

func TestCarouselPane_ApplyMovesDots(t *testing.T) {
	p, _ := newTestPane(t, 4)

	_ = p.ctrl.Goto(3)
	p, _ = p.apply(<-p.snaps)

	if p.dots.Page != 3 {
		t.Errorf("dots.Page = %d, want 3", p.dots.Page)
	}
	if p.dots.TotalPages != 4 {
		t.Errorf("dots.TotalPages = %d, want 4", p.dots.TotalPages)
	}
}

func TestWaitForSnapshot(t *testing.T) {
	ch := make(chan carousel.Snapshot, 1)
	ch <- carousel.Snapshot{Name: "homepage"}

	msg := waitForSnapshot(paneHomepage, ch)()
	sm, ok := msg.(snapshotMsg)
	if !ok {
		t.Fatalf("got %T, want snapshotMsg", msg)
	}
	if sm.pane != paneHomepage || sm.snap.Name != "homepage" {
		t.Errorf("got %+v", sm)
	}

	close(ch)
	if msg := waitForSnapshot(paneHomepage, ch)(); msg != nil {
		t.Errorf("got %v from closed channel, want nil", msg)
	}
}
