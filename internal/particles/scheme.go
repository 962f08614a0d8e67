package particles

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/olivier-w/backdrop/internal/theme"
)

// Light scheme hue ramp: cyan at the left edge to violet at the right.
const (
	hueStart = 200.0
	hueSpan  = 80.0
)

const (
	darkSize  = 1.2
	lightSize = 1.6
)

var (
	darkBase   = color.NRGBA{R: 100, G: 149, B: 237, A: alpha8(0.3)}
	darkActive = color.NRGBA{R: 0, G: 242, B: 254}
)

// appearance returns the size, hue and resting colour of a particle at x on
// a surface of the given width.
func appearance(t theme.Theme, x, width float64) (size, hue float64, base color.NRGBA) {
	if t != theme.Light {
		return darkSize, 0, darkBase
	}
	rel := 0.0
	if width > 0 {
		rel = x / width
	}
	hue = hueStart + rel*hueSpan
	return lightSize, hue, hsla(hue, 0.85, 0.55, 0.75)
}

// activeColor is the colour of a particle caught by the pointer.
func activeColor(t theme.Theme, hue, alpha float64) color.NRGBA {
	if t != theme.Light {
		c := darkActive
		c.A = alpha8(alpha)
		return c
	}
	return hsla(hue, 1, 0.6, alpha)
}

func hsla(h, s, l, a float64) color.NRGBA {
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha8(a)}
}

func alpha8(a float64) uint8 {
	if a <= 0 {
		return 0
	}
	if a >= 1 {
		return 255
	}
	return uint8(math.Round(a * 255))
}
