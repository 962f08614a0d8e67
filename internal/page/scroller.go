package page

import "github.com/charmbracelet/harmonica"

// Scroller eases the rendered scroll position toward a clamped target with
// a critically damped spring, one step per frame.
type Scroller struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	limit  float64
}

// NewScroller creates a scroller stepping at fps frames per second.
func NewScroller(fps int, frequency, damping float64) *Scroller {
	return &Scroller{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// SetLimit sets the maximum scroll and re-clamps both target and position.
func (s *Scroller) SetLimit(limit float64) {
	s.limit = max(0, limit)
	s.target = s.clamp(s.target)
	s.pos = s.clamp(s.pos)
}

// ScrollBy moves the target by delta.
func (s *Scroller) ScrollBy(delta float64) {
	s.target = s.clamp(s.target + delta)
}

// ScrollTo sets the target.
func (s *Scroller) ScrollTo(y float64) {
	s.target = s.clamp(y)
}

// Jump moves target and position at once, without easing.
func (s *Scroller) Jump(y float64) {
	s.target = s.clamp(y)
	s.pos = s.target
	s.vel = 0
}

// Step advances the spring one frame and returns the new position.
func (s *Scroller) Step() float64 {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	return s.pos
}

// Position is the eased scroll position.
func (s *Scroller) Position() float64 { return s.pos }

// Target is where the scroller is heading.
func (s *Scroller) Target() float64 { return s.target }

// Limit is the maximum scroll.
func (s *Scroller) Limit() float64 { return s.limit }

func (s *Scroller) clamp(y float64) float64 {
	if y < 0 {
		return 0
	}
	if y > s.limit {
		return s.limit
	}
	return y
}
