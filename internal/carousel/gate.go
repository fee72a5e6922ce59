package carousel

import "time"

// InteractionGate routes user-originated navigation. Each call disables
// autoplay before navigating and schedules a resume after the quiet
// period; a later interaction replaces the pending resume rather than
// adding a second one.
type InteractionGate struct {
	c *Controller
}

// Next pauses autoplay and advances one slide.
func (g InteractionGate) Next() {
	c := g.c
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.interactLocked()
	c.stepLocked(1)
	c.emitLocked(ReasonNext)
}

// Previous pauses autoplay and moves back one slide.
func (g InteractionGate) Previous() {
	c := g.c
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.interactLocked()
	c.stepLocked(-1)
	c.emitLocked(ReasonPrevious)
}

// Goto pauses autoplay and jumps to slide i. An out-of-range index is
// rejected with ErrInvalidIndex before anything changes, so it does not
// count as an interaction.
func (g InteractionGate) Goto(i int) error {
	c := g.c
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkGotoLocked(i); err != nil {
		return err
	}
	c.interactLocked()
	c.state.CurrentIndex = i
	c.emitLocked(ReasonGoto)
	return nil
}

// Pause disables autoplay until Resume is called. Any scheduled resume
// is dropped.
func (g InteractionGate) Pause() {
	c := g.c
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.pauseLocked()
}

// Resume re-enables autoplay immediately, dropping any scheduled resume.
func (g InteractionGate) Resume() {
	c := g.c
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.resumeLocked()
}

// Toggle pauses when autoplay is enabled or a resume is pending, and
// resumes otherwise.
func (g InteractionGate) Toggle() {
	c := g.c
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	if c.state.AutoplayEnabled || c.resume != nil {
		c.pauseLocked()
		return
	}
	c.resumeLocked()
}

func (c *Controller) pauseLocked() {
	c.cancelResumeLocked()
	c.setAutoplayLocked(false)
	c.logger.Debug("autoplay paused", "index", c.state.CurrentIndex)
	c.emitLocked(ReasonPause)
}

func (c *Controller) resumeLocked() {
	c.cancelResumeLocked()
	c.setAutoplayLocked(true)
	c.logger.Debug("autoplay resumed", "index", c.state.CurrentIndex, "running", c.tick != nil)
	c.emitLocked(ReasonResume)
}

// interactLocked disables autoplay and replaces any pending resume with
// one due a full resume delay from now. The old resume is cancelled
// before the new one exists, so at most one is ever pending. A carousel
// configured without autoplay never schedules a resume.
func (c *Controller) interactLocked() {
	if c.slides.Len() == 0 {
		return
	}
	c.cancelResumeLocked()
	c.setAutoplayLocked(false)
	if c.autoplay {
		c.scheduleResumeLocked()
	}
}

func (c *Controller) scheduleResumeLocked() {
	c.resumeGen++
	gen := c.resumeGen
	c.resumeAt = c.clock.Now().Add(c.resumeDelay)
	c.resume = c.clock.AfterFunc(c.resumeDelay, func() { c.onResume(gen) })
}

func (c *Controller) cancelResumeLocked() {
	c.resumeGen++
	if c.resume != nil {
		c.resume.Stop()
		c.resume = nil
	}
	c.resumeAt = time.Time{}
}

// onResume re-enables autoplay once the quiet period has passed. A
// callback from a cancelled schedule is ignored.
func (c *Controller) onResume(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || gen != c.resumeGen || c.resume == nil {
		c.logger.Debug("stale resume ignored")
		return
	}
	c.resume = nil
	c.resumeAt = time.Time{}
	c.setAutoplayLocked(true)
	c.logger.Debug("autoplay resumed after quiet period", "index", c.state.CurrentIndex)
	c.emitLocked(ReasonResume)
}
