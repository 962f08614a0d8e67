package particles

import (
	"image/color"
	"math"

	"github.com/olivier-w/backdrop/internal/pointer"
	"github.com/olivier-w/backdrop/internal/theme"
)

// Params are the simulation constants shared by every particle.
type Params struct {
	Gap         float64 // grid spacing
	Friction    float64 // velocity kept per frame
	Spring      float64 // pull toward the rest position per unit displacement
	MaxDistance float64 // magnetic radius
	Gain        float64 // attraction impulse at zero distance
	BaseAlpha   float64 // active alpha at the edge of the radius
	MaxAlpha    float64 // active alpha at the pointer
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		Gap:         35,
		Friction:    0.92,
		Spring:      0.008,
		MaxDistance: 200,
		Gain:        0.3,
		BaseAlpha:   0.4,
		MaxAlpha:    0.8,
	}
}

// proximity is 1 at the pointer, falling linearly to 0 at MaxDistance.
// Distances at or beyond the radius are outside the field.
func (p Params) proximity(d float64) float64 {
	if d >= p.MaxDistance || p.MaxDistance <= 0 {
		return 0
	}
	return (p.MaxDistance - d) / p.MaxDistance
}

// impulse is the magnitude of the attraction added to velocity at distance d.
func (p Params) impulse(d float64) float64 {
	return p.proximity(d) * p.Gain
}

// Particle is one point mass of the field.
type Particle struct {
	X, Y         float64
	BaseX, BaseY float64
	VX, VY       float64
	Size         float64
	Hue          float64
	Color        color.NRGBA
	CurrentColor color.NRGBA
}

func newParticle(x, y, width float64, t theme.Theme) Particle {
	p := Particle{X: x, Y: y, BaseX: x, BaseY: y}
	p.assign(t, width)
	return p
}

// assign re-derives the theme-dependent look without moving the particle.
func (p *Particle) assign(t theme.Theme, width float64) {
	p.Size, p.Hue, p.Color = appearance(t, p.X, width)
	p.CurrentColor = p.Color
}

// step advances the particle one frame and reports whether the pointer
// held it this frame.
func (p *Particle) step(ptr pointer.State, prm Params, t theme.Theme) bool {
	px, py, ok := ptr.Position()
	dx := px - p.X
	dy := py - p.Y
	d := math.Hypot(dx, dy)

	held := ok && d < prm.MaxDistance
	if held {
		force := prm.proximity(d)
		// Right on the pointer there is no direction to pull in.
		if d > 0 {
			p.VX += dx / d * force * prm.Gain
			p.VY += dy / d * force * prm.Gain
		}
		p.CurrentColor = activeColor(t, p.Hue, prm.BaseAlpha+force*(prm.MaxAlpha-prm.BaseAlpha))
	} else {
		p.VX += (p.BaseX - p.X) * prm.Spring
		p.VY += (p.BaseY - p.Y) * prm.Spring
		p.CurrentColor = p.Color
	}

	p.VX *= prm.Friction
	p.VY *= prm.Friction

	p.X += p.VX
	p.Y += p.VY
	return held
}
