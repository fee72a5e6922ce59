package carousel

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/npratt/voyage/internal/clock"
)

var (
	// ErrInvalidIndex is returned by Goto when the target is outside [0, N).
	ErrInvalidIndex = errors.New("carousel: invalid index")
	// ErrClosed is returned by Goto after the controller has been closed.
	ErrClosed = errors.New("carousel: controller closed")
	// ErrInvalidTiming is returned by New for a non-positive interval or
	// resume delay.
	ErrInvalidTiming = errors.New("carousel: interval and resume delay must be positive")
)

// Listener receives a snapshot after every state change. It is called
// with the controller locked: it must not block and must not call back
// into the controller.
type Listener func(Snapshot)

// Controller owns a slide set, the current position, the autoplay timer
// and the pending resume. All state changes are serialized by mu; timer
// callbacks take the same lock, so the controller behaves as a single
// event loop.
type Controller struct {
	name        string
	slides      SlideSet
	interval    time.Duration
	resumeDelay time.Duration
	autoplay    bool
	clock       clock.Clock
	listener    Listener
	logger      *slog.Logger

	mu      sync.Mutex
	state   State
	started bool
	closed  bool

	// Autoplay timer handle. tickGen is bumped on every arm and cancel so
	// a callback that lost the race with Stop can tell it is stale.
	tick    *clock.Timer
	tickGen uint64

	// Pending resume handle, same scheme as the tick.
	resume    *clock.Timer
	resumeGen uint64
	resumeAt  time.Time
}

// Option configures a Controller.
type Option func(*Controller)

// WithName sets the name used in snapshots and logs.
func WithName(name string) Option {
	return func(c *Controller) { c.name = name }
}

// WithInterval sets the autoplay period T.
func WithInterval(d time.Duration) Option {
	return func(c *Controller) { c.interval = d }
}

// WithResumeDelay sets the quiet period D after a user interaction.
func WithResumeDelay(d time.Duration) Option {
	return func(c *Controller) { c.resumeDelay = d }
}

// WithAutoplay sets whether autoplay starts enabled (default true).
func WithAutoplay(enabled bool) Option {
	return func(c *Controller) { c.autoplay = enabled }
}

// WithClock sets the clock used for timers. Defaults to clock.Real().
func WithClock(clk clock.Clock) Option {
	return func(c *Controller) { c.clock = clk }
}

// WithListener sets the state change listener.
func WithListener(fn Listener) Option {
	return func(c *Controller) { c.listener = fn }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// New creates a stopped controller positioned on the first slide. Call
// Start to arm autoplay and Close to tear it down.
func New(slides SlideSet, opts ...Option) (*Controller, error) {
	c := &Controller{
		name:        Hero.Name,
		slides:      slides,
		interval:    Hero.Interval,
		resumeDelay: Hero.ResumeDelay,
		autoplay:    true,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.interval <= 0 || c.resumeDelay <= 0 {
		return nil, fmt.Errorf("%w (interval=%s, resume_delay=%s)", ErrInvalidTiming, c.interval, c.resumeDelay)
	}
	if c.clock == nil {
		c.clock = clock.Real()
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	c.logger = c.logger.With("carousel", c.name)

	// An empty set never autoplays.
	c.state = State{
		CurrentIndex:    0,
		AutoplayEnabled: c.autoplay && slides.Len() > 0,
	}
	return c, nil
}

// Name returns the controller's name.
func (c *Controller) Name() string { return c.name }

// Start arms the autoplay timer if autoplay is enabled and there is more
// than one slide. Calling Start again, or after Close, does nothing.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started || c.closed {
		return
	}
	c.started = true
	c.syncTimerLocked()
	c.logger.Debug("carousel started",
		"slides", c.slides.Len(),
		"interval", c.interval,
		"resume_delay", c.resumeDelay,
		"running", c.tick != nil,
	)
	c.emitLocked(ReasonStart)
}

// Close cancels the autoplay timer and any pending resume. Once Close
// returns no callback will read or change state. Close is idempotent.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	c.cancelTickLocked()
	c.cancelResumeLocked()
	c.logger.Debug("carousel closed", "index", c.state.CurrentIndex)
	c.emitLocked(ReasonClose)
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked("")
}

// Next advances to the following slide, wrapping at the end. It does not
// touch autoplay; user input goes through Gate instead.
func (c *Controller) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.stepLocked(1)
	c.emitLocked(ReasonNext)
}

// Previous moves to the preceding slide, wrapping at the start.
func (c *Controller) Previous() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.stepLocked(-1)
	c.emitLocked(ReasonPrevious)
}

// Goto jumps to slide i. It returns ErrInvalidIndex, leaving state
// unchanged, when i is out of range.
func (c *Controller) Goto(i int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkGotoLocked(i); err != nil {
		return err
	}
	c.state.CurrentIndex = i
	c.emitLocked(ReasonGoto)
	return nil
}

// Gate returns the user-facing entry points. Every call made through it
// pauses autoplay and (re)schedules the resume.
func (c *Controller) Gate() InteractionGate {
	return InteractionGate{c: c}
}

func (c *Controller) checkGotoLocked(i int) error {
	if c.closed {
		return ErrClosed
	}
	if i < 0 || i >= c.slides.Len() {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidIndex, i, c.slides.Len())
	}
	return nil
}

// stepLocked moves delta positions with wraparound. No-op on an empty set.
func (c *Controller) stepLocked(delta int) {
	n := c.slides.Len()
	if n == 0 {
		return
	}
	c.state.CurrentIndex = wrap(c.state.CurrentIndex+delta, n)
}

// shouldRunLocked reports whether the autoplay timer belongs armed.
func (c *Controller) shouldRunLocked() bool {
	return c.started && !c.closed && c.state.AutoplayEnabled && c.slides.Len() > 1
}

// setAutoplayLocked changes AutoplayEnabled and restarts or stops the
// timer accordingly. Setting the current value is a no-op, so a running
// interval is not reset.
func (c *Controller) setAutoplayLocked(enabled bool) {
	if c.slides.Len() == 0 {
		enabled = false
	}
	if c.state.AutoplayEnabled == enabled {
		return
	}
	c.state.AutoplayEnabled = enabled
	c.syncTimerLocked()
}

// syncTimerLocked cancels any armed timer, then arms a fresh one when
// autoplay should be running. Re-arming always starts a full interval.
func (c *Controller) syncTimerLocked() {
	c.cancelTickLocked()
	if c.shouldRunLocked() {
		c.armTickLocked()
	}
}

func (c *Controller) armTickLocked() {
	c.tickGen++
	gen := c.tickGen
	c.tick = c.clock.AfterFunc(c.interval, func() { c.onTick(gen) })
}

func (c *Controller) cancelTickLocked() {
	c.tickGen++
	if c.tick != nil {
		c.tick.Stop()
		c.tick = nil
	}
}

// onTick is the autoplay callback. It calls the navigation step directly,
// bypassing the interaction gate.
func (c *Controller) onTick(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || gen != c.tickGen {
		return
	}
	c.tick = nil
	if !c.shouldRunLocked() {
		return
	}
	c.stepLocked(1)
	c.armTickLocked()
	c.emitLocked(ReasonTick)
}

func (c *Controller) emitLocked(reason Reason) {
	if c.listener == nil {
		return
	}
	c.listener(c.snapshotLocked(reason))
}

func (c *Controller) snapshotLocked(reason Reason) Snapshot {
	return Snapshot{
		Name:          c.name,
		Reason:        reason,
		State:         c.state,
		Len:           c.slides.Len(),
		Running:       c.tick != nil,
		ResumePending: c.resume != nil,
		ResumeAt:      c.resumeAt,
		Disposed:      c.closed,
		slides:        c.slides,
	}
}
