// Package pointer tracks the cursor position the particle field is
// attracted to.
package pointer

import "github.com/olivier-w/backdrop/internal/surface"

// EdgeMargin is how close to a viewport edge a position may be before it
// counts as having left the window.
const EdgeMargin = 2.0

// State is a cursor position in surface-local units. The pair is either
// fully present or absent; the zero value is absent.
type State struct {
	x, y   float64
	active bool
}

// Absent is the "no magnetic influence" state.
var Absent = State{}

// At returns a present state at (x, y).
func At(x, y float64) State {
	return State{x: x, y: y, active: true}
}

// Position returns the coordinates and whether the pointer is present.
func (s State) Position() (x, y float64, ok bool) {
	return s.x, s.y, s.active
}

// Active reports whether the pointer is present.
func (s State) Active() bool { return s.active }

// Viewport is the host window size in units.
type Viewport struct {
	W, H float64
}

// Locate converts a viewport-frame position into coordinates local to rect.
// Positions hugging the viewport edge or falling outside rect are absent.
func Locate(x, y float64, vp Viewport, rect surface.Rect) State {
	outsideViewport := x <= EdgeMargin || y <= EdgeMargin ||
		x >= vp.W-EdgeMargin || y >= vp.H-EdgeMargin
	if outsideViewport || !rect.Contains(x, y) {
		return Absent
	}
	return At(x-rect.X, y-rect.Y)
}

// Tracker holds the latest pointer state between input notifications.
type Tracker struct {
	state State
}

// Move records a move or enter notification.
func (t *Tracker) Move(x, y float64, vp Viewport, rect surface.Rect) {
	t.state = Locate(x, y, vp, rect)
}

// Leave clears the pointer, e.g. when it leaves the document.
func (t *Tracker) Leave() { t.state = Absent }

// Blur clears the pointer when the window loses focus.
func (t *Tracker) Blur() { t.state = Absent }

// Visibility clears the pointer when the view becomes hidden.
func (t *Tracker) Visibility(hidden bool) {
	if hidden {
		t.state = Absent
	}
}

// State returns the most recent state.
func (t *Tracker) State() State { return t.state }
