package waves

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/olivier-w/backdrop/internal/theme"
)

// Interpolator spreads n colours evenly across the ordered stops, first and
// last stop included.
type Interpolator func(stops []colorful.Color, n int) []colorful.Color

// LCh interpolates through CIE LCh(ab), so lightness changes evenly along
// the ramp.
func LCh(stops []colorful.Color, n int) []colorful.Color {
	if n <= 0 || len(stops) == 0 {
		return nil
	}
	out := make([]colorful.Color, n)
	if len(stops) == 1 || n == 1 {
		for i := range out {
			out[i] = stops[0]
		}
		return out
	}
	segs := len(stops) - 1
	for i := range n {
		t := float64(i) / float64(n-1) * float64(segs)
		k := min(int(t), segs-1)
		out[i] = stops[k].BlendHcl(stops[k+1], t-float64(k)).Clamped()
	}
	return out
}

// stopsFor returns the ramp end points of a theme: pale blue to lavender
// for light, deep navy to near-black violet for dark.
func stopsFor(t theme.Theme) []colorful.Color {
	if t == theme.Light {
		return []colorful.Color{colorful.Hsl(210, 0.8, 0.9), colorful.Hsl(250, 0.7, 0.95)}
	}
	return []colorful.Color{colorful.Hsl(215, 0.6, 0.15), colorful.Hsl(260, 0.5, 0.05)}
}

// palette returns n opaque fills for theme t, or nil without an interpolator.
func palette(t theme.Theme, n int, interp Interpolator) []color.NRGBA {
	if interp == nil {
		return nil
	}
	cols := interp(stopsFor(t), n)
	out := make([]color.NRGBA, len(cols))
	for i, c := range cols {
		r, g, b := c.Clamped().RGB255()
		out[i] = color.NRGBA{R: r, G: g, B: b, A: 255}
	}
	return out
}
