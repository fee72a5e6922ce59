package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/npratt/voyage/internal/carousel"
	"github.com/npratt/voyage/internal/clock"
)

// paneID identifies a pane in the layout.
type paneID int

const (
	paneHero paneID = iota
	paneHomepage
	paneTrips
)

// snapshotMsg carries the latest snapshot of one carousel.
type snapshotMsg struct {
	pane paneID
	snap carousel.Snapshot
}

// CarouselSpec describes one carousel pane.
type CarouselSpec struct {
	Title    string
	Slides   carousel.SlideSet
	Preset   carousel.Preset
	Autoplay bool
}

// carouselPane adapts a carousel controller to the bubbletea message loop.
// The pane owns the controller: it starts it on mount and closes it on quit.
type carouselPane struct {
	id    paneID
	title string
	ctrl  *carousel.Controller
	snaps chan carousel.Snapshot
	snap  carousel.Snapshot
	dots  paginator.Model
	err   string
}

// newCarouselPane creates the pane and its controller. The controller is not
// started until the pane is mounted.
func newCarouselPane(id paneID, spec CarouselSpec, clk clock.Clock, logger *slog.Logger) (carouselPane, error) {
	snaps := make(chan carousel.Snapshot, 1)

	opts := []carousel.Option{
		carousel.WithPreset(spec.Preset),
		carousel.WithAutoplay(spec.Autoplay),
		carousel.WithListener(publishLatest(snaps)),
	}
	if clk != nil {
		opts = append(opts, carousel.WithClock(clk))
	}
	if logger != nil {
		opts = append(opts, carousel.WithLogger(logger))
	}

	ctrl, err := carousel.New(spec.Slides, opts...)
	if err != nil {
		return carouselPane{}, fmt.Errorf("%s carousel: %w", spec.Preset.Name, err)
	}

	dots := paginator.New()
	dots.Type = paginator.Dots
	dots.PerPage = 1
	dots.ActiveDot = styles.DotActive.Render("•")
	dots.InactiveDot = styles.DotInactive.Render("•")
	if spec.Slides.Len() > 0 {
		dots.SetTotalPages(spec.Slides.Len())
	}

	return carouselPane{
		id:    id,
		title: spec.Title,
		ctrl:  ctrl,
		snaps: snaps,
		snap:  ctrl.Snapshot(),
		dots:  dots,
	}, nil
}

// publishLatest returns a listener that keeps only the newest snapshot in ch.
// The controller calls it with its lock held, so it never blocks: a snapshot
// the UI has not consumed yet is replaced.
func publishLatest(ch chan carousel.Snapshot) carousel.Listener {
	return func(s carousel.Snapshot) {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- s:
		default:
		}
	}
}

// waitForSnapshot creates a command that waits for the next snapshot of a pane.
func waitForSnapshot(id paneID, ch <-chan carousel.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return nil
		}
		return snapshotMsg{pane: id, snap: snap}
	}
}

// mount starts the controller and begins listening for its snapshots.
func (p carouselPane) mount() tea.Cmd {
	p.ctrl.Start()
	return p.listen()
}

func (p carouselPane) listen() tea.Cmd {
	return waitForSnapshot(p.id, p.snaps)
}

// unmount closes the controller. No timer fires after it returns.
func (p carouselPane) unmount() {
	p.ctrl.Close()
}

// apply records a snapshot. It returns the command that waits for the next
// one, or nil once the controller is closed.
func (p carouselPane) apply(s carousel.Snapshot) (carouselPane, tea.Cmd) {
	p.snap = s
	if s.Len > 0 {
		p.dots.Page = s.CurrentIndex
	}
	if s.Disposed {
		return p, nil
	}
	return p, p.listen()
}

// User input. Everything goes through the interaction gate so autoplay
// pauses and resumes after the quiet period.

func (p carouselPane) next() carouselPane {
	p.err = ""
	p.ctrl.Gate().Next()
	return p
}

func (p carouselPane) previous() carouselPane {
	p.err = ""
	p.ctrl.Gate().Previous()
	return p
}

func (p carouselPane) jump(i int) carouselPane {
	p.err = ""
	if err := p.ctrl.Gate().Goto(i); err != nil {
		p.err = fmt.Sprintf("no slide %d", i+1)
	}
	return p
}

func (p carouselPane) toggle() carouselPane {
	p.err = ""
	p.ctrl.Gate().Toggle()
	return p
}

// view renders the pane body for the given inner width.
func (p carouselPane) view(width int) string {
	var b strings.Builder

	slide, ok := p.snap.Current()
	if !ok {
		b.WriteString(styles.Muted.Render("No destinations to show"))
		return b.String()
	}

	b.WriteString(styles.SlideTitle.Render(truncate(slide.DisplayName, width)))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render(truncate(slide.ResourceRef, width)))
	b.WriteString("\n")

	counter := fmt.Sprintf(" %d/%d", p.snap.CurrentIndex+1, p.snap.Len)
	b.WriteString(p.dots.View() + styles.Muted.Render(counter))

	if status := autoplayStatus(p.snap); status != "" {
		b.WriteString("  ")
		b.WriteString(statusStyle(p.snap).Render(status))
	}
	if p.err != "" {
		b.WriteString("  ")
		b.WriteString(styles.Error.Render(p.err))
	}
	return b.String()
}
