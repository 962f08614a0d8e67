package waves

import (
	"image/color"
	"math"

	"github.com/olivier-w/backdrop/internal/surface"
)

// Params are the wave tuning values shared by every system.
type Params struct {
	Lines          int     // layers per container
	Speed          float64 // clock advance per frame
	Amplitude      float64
	Wavelength     float64
	ParallaxFactor float64
	FusionOffset   float64 // top band kept free of layer bases
	Step           float64 // horizontal sample spacing
	Margin         float64 // overdraw past the left and right edges
	Seal           float64 // how far below the container the shape closes
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		Lines:          10,
		Speed:          0.015,
		Amplitude:      40,
		Wavelength:     180,
		ParallaxFactor: 0.15,
		FusionOffset:   150,
		Step:           40,
		Margin:         100,
		Seal:           200,
	}
}

// Traits are drawn once per layer and never change afterwards.
type Traits struct {
	Speed     float64 // in [0.5, 2)
	Amplitude float64 // in [0.6, 1.8)
	Phase     float64 // in [0, 2π)
}

// Geometry is a container's box plus the scroll position at which its
// parallax offset is zero.
type Geometry struct {
	Width   float64
	Height  float64
	ScrollY float64
}

// Layer is one filled wave band.
type Layer struct {
	Index    int
	BaseY    float64
	Fill     color.NRGBA
	Opacity  float64
	Parallax float64
	Traits   Traits

	path surface.Path
}

// Y is the wave's top edge at x for the given clock time and page scroll.
func (l *Layer) Y(x, time, scroll float64, g Geometry, p Params) float64 {
	offset := (scroll - g.ScrollY) * l.Parallax
	phase := time*l.Traits.Speed + x/p.Wavelength + float64(l.Index) + l.Traits.Phase
	return l.BaseY - offset + math.Sin(phase)*p.Amplitude*l.Traits.Amplitude
}

// Outline builds the closed shape for one frame: up from below the
// bottom-left corner, along the sampled top edge, and back down past the
// bottom-right corner.
func Outline(l *Layer, g Geometry, time, scroll float64, p Params) []surface.Command {
	bottom := g.Height + p.Seal
	left := -p.Margin
	right := g.Width + p.Margin

	n := 0
	if p.Step > 0 {
		n = int(math.Ceil((right - left) / p.Step))
	}
	cmds := make([]surface.Command, 0, n+3)
	cmds = append(cmds, surface.Command{Op: surface.MoveTo, X: left, Y: bottom})
	for i := range n {
		x := left + float64(i)*p.Step
		if x >= right {
			break
		}
		cmds = append(cmds, surface.Command{Op: surface.LineTo, X: x, Y: l.Y(x, time, scroll, g, p)})
	}
	cmds = append(cmds,
		surface.Command{Op: surface.LineTo, X: right, Y: bottom},
		surface.Command{Op: surface.Close},
	)
	return cmds
}
