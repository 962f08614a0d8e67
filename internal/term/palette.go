package term

import (
	"image/color"
	"strconv"
	"sync"

	"github.com/muesli/termenv"
)

// ColorMode describes how colours are written to the terminal.
type ColorMode uint8

const (
	ColorOff     ColorMode = iota // NO_COLOR, dumb or non-interactive output
	ColorANSI16                   // basic 16-colour
	ColorANSI256                  // 256-colour
	ColorTrue                     // 24-bit truecolour
)

func (m ColorMode) String() string {
	switch m {
	case ColorANSI16:
		return "16"
	case ColorANSI256:
		return "256"
	case ColorTrue:
		return "truecolor"
	default:
		return "off"
	}
}

var (
	detectOnce sync.Once
	termColor  ColorMode
)

// DetectColorMode asks termenv for the output's colour profile once per
// process. NO_COLOR and CLICOLOR_FORCE are honoured.
func DetectColorMode() ColorMode {
	detectOnce.Do(func() {
		termColor = modeFor(termenv.EnvColorProfile())
	})
	return termColor
}

func modeFor(p termenv.Profile) ColorMode {
	switch p {
	case termenv.TrueColor:
		return ColorTrue
	case termenv.ANSI256:
		return ColorANSI256
	case termenv.ANSI:
		return ColorANSI16
	}
	return ColorOff
}

func (m ColorMode) profile() termenv.Profile {
	switch m {
	case ColorTrue:
		return termenv.TrueColor
	case ColorANSI256:
		return termenv.ANSI256
	case ColorANSI16:
		return termenv.ANSI
	}
	return termenv.Ascii
}

// colorSeq returns the SGR escape selecting an RGB colour as foreground or
// background, empty when colours are off. Truecolour is written directly;
// reduced palettes go through termenv's perceptual nearest-colour match.
func colorSeq(mode ColorMode, bg bool, r, g, b uint8) string {
	switch mode {
	case ColorOff:
		return ""
	case ColorTrue:
		buf := make([]byte, 0, 20)
		buf = append(buf, termenv.CSI...)
		if bg {
			buf = append(buf, termenv.Background...)
		} else {
			buf = append(buf, termenv.Foreground...)
		}
		buf = append(buf, ";2;"...)
		buf = strconv.AppendUint(buf, uint64(r), 10)
		buf = append(buf, ';')
		buf = strconv.AppendUint(buf, uint64(g), 10)
		buf = append(buf, ';')
		buf = strconv.AppendUint(buf, uint64(b), 10)
		return string(append(buf, 'm'))
	}
	c := mode.profile().FromColor(color.RGBA{R: r, G: g, B: b, A: 255})
	if c == nil {
		return ""
	}
	return termenv.CSI + c.Sequence(bg) + "m"
}

const ansiReset = termenv.CSI + termenv.ResetSeq + "m"

// asciiRamp runs from empty to dense.
const asciiRamp = " .:-=+*#%@"

// contrast is the luminance distance between two colours, 0 to 255.
func contrast(r, g, b uint8, bg [3]uint8) int {
	d := int(luminance(r, g, b)) - int(luminance(bg[0], bg[1], bg[2]))
	if d < 0 {
		return -d
	}
	return d
}

// rampChar picks the ASCII character for a contrast level.
func rampChar(level int) byte {
	return asciiRamp[min(255, max(0, level))*(len(asciiRamp)-1)/255]
}
