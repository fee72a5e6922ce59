package carousel

import "time"

// Preset bundles the timing constants of a carousel instance.
type Preset struct {
	Name        string
	Interval    time.Duration
	ResumeDelay time.Duration
}

var (
	// Hero is the landing page banner carousel.
	Hero = Preset{Name: "hero", Interval: 5 * time.Second, ResumeDelay: 10 * time.Second}
	// Homepage is the full-screen homepage slideshow.
	Homepage = Preset{Name: "homepage", Interval: 5 * time.Second, ResumeDelay: 8 * time.Second}
)

// WithPreset applies a preset's name, interval and resume delay.
func WithPreset(p Preset) Option {
	return func(c *Controller) {
		c.name = p.Name
		c.interval = p.Interval
		c.resumeDelay = p.ResumeDelay
	}
}
