// Package carousel implements the slide controller shared by the hero
// banner and the homepage slideshow: index management with wraparound,
// periodic autoplay, and pause-on-interaction with a debounced resume.
package carousel

// Slide is one displayable item. The controller treats it as opaque.
type Slide struct {
	ResourceRef string `json:"resource_ref" yaml:"resource_ref"`
	DisplayName string `json:"display_name" yaml:"display_name"`
}

// SlideSet is an immutable ordered sequence of slides.
type SlideSet struct {
	slides []Slide
}

// NewSlideSet copies slides into a SlideSet. Later changes to the input
// slice are not observed.
func NewSlideSet(slides ...Slide) SlideSet {
	if len(slides) == 0 {
		return SlideSet{}
	}
	cp := make([]Slide, len(slides))
	copy(cp, slides)
	return SlideSet{slides: cp}
}

// Len returns the number of slides.
func (s SlideSet) Len() int { return len(s.slides) }

// At returns the slide at i and whether i is in range.
func (s SlideSet) At(i int) (Slide, bool) {
	if i < 0 || i >= len(s.slides) {
		return Slide{}, false
	}
	return s.slides[i], true
}

// Slides returns a copy of the slides in order.
func (s SlideSet) Slides() []Slide {
	cp := make([]Slide, len(s.slides))
	copy(cp, s.slides)
	return cp
}

// wrap maps any integer onto [0, n). n must be positive.
func wrap(i, n int) int {
	return ((i % n) + n) % n
}
