// Package surface defines the render targets the animations draw into and
// an in-memory raster that terminal and headless hosts composite with.
package surface

import "image/color"

// Rect is an axis-aligned region in surface units.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Pixel is an immediate-mode target: the caller clears and redraws every frame.
type Pixel interface {
	Clear(r Rect)
	FillCircle(x, y, radius float64, c color.NRGBA)
}

// Op is a path command verb.
type Op uint8

const (
	MoveTo Op = iota
	LineTo
	Close
)

// Command is one step of a path outline.
type Command struct {
	Op   Op
	X, Y float64
}

// Path is a retained, fillable shape owned by a Vector surface.
type Path interface {
	SetGeometry(cmds []Command)
	SetFill(c color.NRGBA)
	SetOpacity(o float64)
}

// Vector is a retained-mode target. Paths stay until Reset.
type Vector interface {
	AppendPath() Path
	Reset()
}
