package carousel

import "time"

// State is the mutable part of a carousel.
type State struct {
	CurrentIndex    int
	AutoplayEnabled bool
}

// Reason names what caused a state change notification.
type Reason string

const (
	ReasonStart    Reason = "start"
	ReasonNext     Reason = "next"
	ReasonPrevious Reason = "previous"
	ReasonGoto     Reason = "goto"
	ReasonTick     Reason = "tick"
	ReasonPause    Reason = "pause"
	ReasonResume   Reason = "resume"
	ReasonClose    Reason = "close"
)

// Snapshot is a read-only copy of a controller's state handed to the
// presentation layer.
type Snapshot struct {
	Name   string
	Reason Reason
	State

	// Len is the number of slides in the set.
	Len int
	// Running reports whether the autoplay timer is armed.
	Running bool
	// ResumePending reports whether a resume is scheduled, due at ResumeAt.
	ResumePending bool
	ResumeAt      time.Time
	Disposed      bool

	slides SlideSet
}

// Current returns the slide at CurrentIndex. It returns false for an
// empty set.
func (s Snapshot) Current() (Slide, bool) {
	if s.Len == 0 {
		return Slide{}, false
	}
	return s.slides.At(s.CurrentIndex)
}

// Slides returns the slide set the snapshot was taken from.
func (s Snapshot) Slides() SlideSet { return s.slides }
