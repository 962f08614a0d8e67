package ui

import "time"

// frameRate keeps the most recent frame intervals for the FPS read-out.
type frameRate struct {
	buf []time.Duration
	w   int // write position
	len int // current fill level
}

func newFrameRate(size int) *frameRate {
	return &frameRate{buf: make([]time.Duration, max(1, size))}
}

// Add records one frame interval, overwriting the oldest when full.
func (r *frameRate) Add(d time.Duration) {
	if d <= 0 {
		return
	}
	r.buf[r.w] = d
	r.w = (r.w + 1) % len(r.buf)
	if r.len < len(r.buf) {
		r.len++
	}
}

// FPS is the mean frame rate over the recorded intervals.
func (r *frameRate) FPS() float64 {
	if r.len == 0 {
		return 0
	}
	var total time.Duration
	for i := range r.len {
		total += r.buf[i]
	}
	return float64(r.len) / total.Seconds()
}

// Reset forgets every interval.
func (r *frameRate) Reset() {
	r.w = 0
	r.len = 0
}
