// Package particles implements the pointer-magnetic particle grid: point
// masses on a spring back to their rest position, pulled toward the cursor
// while it is within reach.
package particles

import (
	"log/slog"
	"math"

	"github.com/olivier-w/backdrop/internal/pointer"
	"github.com/olivier-w/backdrop/internal/surface"
	"github.com/olivier-w/backdrop/internal/theme"
)

// Stats summarises the last simulated frame.
type Stats struct {
	Count        int
	Held         int     // particles inside the magnetic radius
	Kinetic      float64 // sum of ½|v|² over all particles
	Displacement float64 // mean distance from rest position
}

// Field owns the particle set and draws it to a pixel surface. It is driven
// from a single goroutine: the host's frame loop.
type Field struct {
	params    Params
	target    surface.Pixel
	theme     theme.Theme
	width     float64
	height    float64
	particles []Particle
	pointer   pointer.State
	stats     Stats
}

// NewField creates an empty field. target may be nil, in which case the
// field simulates but draws nothing.
func NewField(target surface.Pixel, params Params, t theme.Theme) *Field {
	return &Field{params: params, target: target, theme: t}
}

// Initialize discards every particle and lays a fresh grid over a
// width×height surface. Rows and columns start at 0 and include the first
// position at or past the far edge.
func (f *Field) Initialize(width, height float64) {
	f.width, f.height = width, height
	f.particles = nil
	f.stats = Stats{}

	gap := f.params.Gap
	if width <= 0 || height <= 0 || gap <= 0 {
		return
	}
	for j := 0; float64(j)*gap < height+gap; j++ {
		y := float64(j) * gap
		for i := 0; float64(i)*gap < width+gap; i++ {
			f.particles = append(f.particles, newParticle(float64(i)*gap, y, width, f.theme))
		}
	}
	f.stats.Count = len(f.particles)
}

// Reconfigure applies a new environment: theme and surface size.
func (f *Field) Reconfigure(width, height float64, t theme.Theme) {
	f.theme = t
	f.Initialize(width, height)
	slog.Debug("particle field rebuilt",
		"width", width,
		"height", height,
		"theme", t.String(),
		"particles", len(f.particles),
	)
}

// SetPointer records the latest pointer state; Absent clears it.
func (f *Field) SetPointer(p pointer.State) {
	f.pointer = p
}

// OnThemeChange recolours every particle in place. Positions and velocities
// are left alone.
func (f *Field) OnThemeChange(t theme.Theme) {
	f.theme = t
	for i := range f.particles {
		f.particles[i].assign(t, f.width)
	}
}

// Tick steps every particle once, then clears the surface and draws them.
func (f *Field) Tick() {
	st := Stats{Count: len(f.particles)}
	for i := range f.particles {
		p := &f.particles[i]
		if p.step(f.pointer, f.params, f.theme) {
			st.Held++
		}
		st.Kinetic += 0.5 * (p.VX*p.VX + p.VY*p.VY)
		st.Displacement += math.Hypot(p.X-p.BaseX, p.Y-p.BaseY)
	}
	if st.Count > 0 {
		st.Displacement /= float64(st.Count)
	}
	f.stats = st
	f.Draw()
}

// Draw clears the surface and paints every particle where it stands,
// without advancing the simulation.
func (f *Field) Draw() {
	if f.target == nil {
		return
	}
	f.target.Clear(surface.Rect{W: f.width, H: f.height})
	for i := range f.particles {
		p := &f.particles[i]
		f.target.FillCircle(p.X, p.Y, p.Size, p.CurrentColor)
	}
}

// Particles exposes the current set. Callers must not keep it across a
// rebuild.
func (f *Field) Particles() []Particle { return f.particles }

// Len returns the number of particles.
func (f *Field) Len() int { return len(f.particles) }

// Stats returns the summary of the last Tick.
func (f *Field) Stats() Stats { return f.stats }

// Theme returns the scheme currently applied.
func (f *Field) Theme() theme.Theme { return f.theme }
