package waves

// Clock is the time base shared by every wave system. It advances a fixed
// amount per displayed frame rather than with wall time.
type Clock struct {
	speed float64
	now   float64
}

// NewClock returns a clock advancing speed per frame.
func NewClock(speed float64) Clock {
	return Clock{speed: speed}
}

// Advance moves the clock one frame forward and returns the new time.
func (c *Clock) Advance() float64 {
	c.now += c.speed
	return c.now
}

// Now returns the current time.
func (c *Clock) Now() float64 { return c.now }
