package appstate

// Slide is one promotional slide of the home carousel.
type Slide struct {
	ImageName string `json:"image_name"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Button    string `json:"button,omitempty"`
}

// CarouselState holds the home carousel position. Tick events advance
// the slide with wrap-around. A manual Select holds the chosen slide
// through the next tick so user input is not immediately overridden.
type CarouselState struct {
	Slides []Slide `json:"slides"`
	Index  int     `json:"index"`
	Hold   bool    `json:"hold"`
}

func NewCarouselState(slides []Slide) *CarouselState {
	return &CarouselState{Slides: slides}
}

// Tick advances to the next slide, wrapping to the first after the
// last. A carousel with no slides ignores ticks.
func (s *CarouselState) Tick() {
	if len(s.Slides) == 0 {
		return
	}
	if s.Hold {
		s.Hold = false
		return
	}
	s.Index = (s.Index + 1) % len(s.Slides)
}

// Select jumps directly to the given slide.
func (s *CarouselState) Select(index int) error {
	if index < 0 || index >= len(s.Slides) {
		return ErrInvalidSlide
	}
	s.Index = index
	s.Hold = true
	return nil
}

// Current returns the visible slide, or nil when the carousel is
// empty.
func (s *CarouselState) Current() *Slide {
	if len(s.Slides) == 0 {
		return nil
	}
	return &s.Slides[s.Index]
}
