// Package term turns RGB frames into terminal text.
package term

import (
	"image/color"
	"strings"
)

// Style selects how frame pixels map onto character cells.
type Style int

const (
	StyleAuto      Style = iota // half blocks with colour, ASCII without
	StyleHalfBlock              // 1×2 pixels per cell
	StyleBraille                // 2×4 dots per cell
	StyleASCII                  // 1×1, brightness ramp
)

func (s Style) String() string {
	switch s {
	case StyleHalfBlock:
		return "halfblock"
	case StyleBraille:
		return "braille"
	case StyleASCII:
		return "ascii"
	default:
		return "auto"
	}
}

// ParseStyle reads a style name.
func ParseStyle(name string) (Style, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return StyleAuto, true
	case "halfblock":
		return StyleHalfBlock, true
	case "braille":
		return StyleBraille, true
	case "ascii":
		return StyleASCII, true
	}
	return StyleAuto, false
}

// Renderer converts RGB24 frames into terminal strings. Half-block output
// packs two pixel rows into each text row using "▀" (fg = top, bg =
// bottom); braille output lights a dot for every pixel that stands out
// from the background; ASCII output maps every pixel's contrast against
// the background to a density character.
type Renderer struct {
	mode  ColorMode
	style Style
	bg    [3]uint8
	sb    strings.Builder
}

// NewRendererWithMode creates a renderer with a fixed colour mode.
func NewRendererWithMode(mode ColorMode) *Renderer {
	return NewRendererWithStyle(mode, StyleAuto)
}

// NewRendererWithStyle creates a renderer with a fixed colour mode and
// style. Half blocks need colour and fall back to ASCII without it.
func NewRendererWithStyle(mode ColorMode, style Style) *Renderer {
	switch {
	case style == StyleAuto && mode == ColorOff, style == StyleHalfBlock && mode == ColorOff:
		style = StyleASCII
	case style == StyleAuto:
		style = StyleHalfBlock
	}
	return &Renderer{mode: mode, style: style}
}

// Style returns the resolved style.
func (r *Renderer) Style() Style { return r.style }

// SetBackground tells the braille and ASCII styles which colour counts as
// empty.
func (r *Renderer) SetBackground(c color.NRGBA) {
	r.bg = [3]uint8{c.R, c.G, c.B}
}

// PixelRows reports how many pixel rows fit in the given number of text rows.
func (r *Renderer) PixelRows(textRows int) int {
	switch r.style {
	case StyleHalfBlock:
		return textRows * 2
	case StyleBraille:
		return textRows * 4
	}
	return textRows
}

// PixelCols reports how many pixel columns fit in the given number of text
// columns.
func (r *Renderer) PixelCols(textCols int) int {
	if r.style == StyleBraille {
		return textCols * 2
	}
	return textCols
}

// Render converts a frameW×frameH RGB24 frame.
func (r *Renderer) Render(frame []byte, frameW, frameH int) string {
	if frameW <= 0 || frameH <= 0 || len(frame) < frameW*frameH*3 {
		return ""
	}

	r.sb.Reset()
	r.sb.Grow(frameW * frameH * 24)

	switch r.style {
	case StyleHalfBlock:
		r.renderHalfBlock(frame, frameW, frameH)
	case StyleBraille:
		r.renderBraille(frame, frameW, frameH)
	default:
		r.renderASCII(frame, frameW, frameH)
	}
	return r.sb.String()
}

func (r *Renderer) renderHalfBlock(frame []byte, frameW, frameH int) {
	rows := (frameH + 1) / 2
	var lastFg, lastBg string

	for row := 0; row < rows; row++ {
		top := row * 2
		bot := top + 1
		for col := 0; col < frameW; col++ {
			tr, tg, tb := samplePixel(frame, frameW, col, top)
			br, bgr, bb := tr, tg, tb
			if bot < frameH {
				br, bgr, bb = samplePixel(frame, frameW, col, bot)
			}

			fg := colorSeq(r.mode, false, tr, tg, tb)
			bg := colorSeq(r.mode, true, br, bgr, bb)
			if fg != lastFg {
				r.sb.WriteString(fg)
				lastFg = fg
			}
			if bg != lastBg {
				r.sb.WriteString(bg)
				lastBg = bg
			}
			r.sb.WriteString("▀")
		}

		r.sb.WriteString(ansiReset)
		lastFg, lastBg = "", ""
		if row < rows-1 {
			r.sb.WriteByte('\n')
		}
	}
}

func (r *Renderer) renderASCII(frame []byte, frameW, frameH int) {
	for row := 0; row < frameH; row++ {
		for col := 0; col < frameW; col++ {
			pr, pg, pb := samplePixel(frame, frameW, col, row)
			r.sb.WriteByte(rampChar(contrast(pr, pg, pb, r.bg)))
		}
		if row < frameH-1 {
			r.sb.WriteByte('\n')
		}
	}
}

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// brailleThreshold is the luminance distance from the background at which
// a dot lights up.
const brailleThreshold = 4

func (r *Renderer) renderBraille(frame []byte, frameW, frameH int) {
	cols := (frameW + 1) / 2
	rows := (frameH + 3) / 4
	var last string

	for row := range rows {
		for col := range cols {
			var pattern uint
			var cr, cg, cb uint8
			best := -1
			for dx := range 2 {
				for dy := range 4 {
					x, y := col*2+dx, row*4+dy
					if x >= frameW || y >= frameH {
						continue
					}
					pr, pg, pb := samplePixel(frame, frameW, x, y)
					d := contrast(pr, pg, pb, r.bg)
					if d < brailleThreshold {
						continue
					}
					pattern |= 1 << brailleBits[dx][dy]
					if d > best {
						best = d
						cr, cg, cb = pr, pg, pb
					}
				}
			}
			// The strongest dot colours the whole cell.
			if r.mode != ColorOff && pattern != 0 {
				if seq := colorSeq(r.mode, false, cr, cg, cb); seq != last {
					r.sb.WriteString(seq)
					last = seq
				}
			}
			r.sb.WriteRune(rune(0x2800 + pattern))
		}
		if last != "" {
			r.sb.WriteString(ansiReset)
			last = ""
		}
		if row < rows-1 {
			r.sb.WriteByte('\n')
		}
	}
}

func samplePixel(frame []byte, stride, x, y int) (uint8, uint8, uint8) {
	off := (y*stride + x) * 3
	if off+2 >= len(frame) {
		return 0, 0, 0
	}
	return frame[off], frame[off+1], frame[off+2]
}

// luminance computes perceived brightness (ITU-R BT.601).
func luminance(r, g, b uint8) uint8 {
	return uint8((299*int(r) + 587*int(g) + 114*int(b)) / 1000)
}
