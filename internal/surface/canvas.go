package surface

import (
	"image/color"
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Canvas is an opaque RGB raster addressed in surface units. One pixel
// covers sx by sy units. It implements Pixel and can rasterise Scenes.
type Canvas struct {
	w, h   int
	sx, sy float64
	bg     colorful.Color
	pix    []colorful.Color

	xs []crossing // scanline scratch
}

type crossing struct {
	x   float64
	dir int
}

type edge struct {
	x0, y0, x1, y1 float64
}

// NewCanvas allocates a w×h pixel canvas. Non-positive scales fall back to 1.
func NewCanvas(w, h int, sx, sy float64) *Canvas {
	if sx <= 0 {
		sx = 1
	}
	if sy <= 0 {
		sy = 1
	}
	c := &Canvas{sx: sx, sy: sy}
	c.Resize(w, h)
	return c
}

// Resize reallocates the pixel buffer and fills it with the background.
func (c *Canvas) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c.w, c.h = w, h
	c.pix = make([]colorful.Color, w*h)
	for i := range c.pix {
		c.pix[i] = c.bg
	}
}

// Size returns the pixel dimensions.
func (c *Canvas) Size() (int, int) { return c.w, c.h }

// Bounds returns the canvas extent in units.
func (c *Canvas) Bounds() Rect {
	return Rect{W: float64(c.w) * c.sx, H: float64(c.h) * c.sy}
}

// SetBackground sets the colour Clear paints with.
func (c *Canvas) SetBackground(col color.Color) {
	bg, _ := colorful.MakeColor(col)
	c.bg = bg
}

// Clear paints r with the background colour.
func (c *Canvas) Clear(r Rect) {
	x0, y0, x1, y1 := c.pixelSpan(r)
	for py := y0; py < y1; py++ {
		row := c.pix[py*c.w : (py+1)*c.w]
		for px := x0; px < x1; px++ {
			row[px] = c.bg
		}
	}
}

// FillCircle blends a disc over the canvas. Discs smaller than a pixel still
// mark the pixel holding their centre so sparse fields stay visible.
func (c *Canvas) FillCircle(x, y, radius float64, col color.NRGBA) {
	if radius <= 0 || col.A == 0 {
		return
	}
	src, a := nrgba(col)
	cx, cy := x/c.sx, y/c.sy
	rx, ry := radius/c.sx, radius/c.sy

	if rx < 0.5 && ry < 0.5 {
		c.blend(int(math.Floor(cx)), int(math.Floor(cy)), src, a)
		return
	}

	x0 := int(math.Floor(cx - rx))
	x1 := int(math.Ceil(cx + rx))
	y0 := int(math.Floor(cy - ry))
	y1 := int(math.Ceil(cy + ry))
	for py := y0; py <= y1; py++ {
		dy := (float64(py) + 0.5 - cy) / ry
		for px := x0; px <= x1; px++ {
			dx := (float64(px) + 0.5 - cx) / rx
			if dx*dx+dy*dy <= 1 {
				c.blend(px, py, src, a)
			}
		}
	}
}

// FillPath fills the outline with the non-zero winding rule. The outline is
// translated by (dx, dy) units and clipped to clip. Open subpaths are closed.
func (c *Canvas) FillPath(cmds []Command, col color.NRGBA, opacity, dx, dy float64, clip Rect) {
	a := float64(col.A) / 255 * clamp01(opacity)
	if a == 0 || len(cmds) == 0 {
		return
	}
	src, _ := nrgba(col)
	edges := c.edges(cmds, dx, dy)
	if len(edges) == 0 {
		return
	}

	x0, y0, x1, y1 := c.pixelSpan(clip)
	for py := y0; py < y1; py++ {
		yc := float64(py) + 0.5
		c.xs = c.xs[:0]
		for _, e := range edges {
			switch {
			case e.y0 <= yc && e.y1 > yc:
				c.xs = append(c.xs, crossing{x: e.x0 + (yc-e.y0)*(e.x1-e.x0)/(e.y1-e.y0), dir: 1})
			case e.y1 <= yc && e.y0 > yc:
				c.xs = append(c.xs, crossing{x: e.x0 + (yc-e.y0)*(e.x1-e.x0)/(e.y1-e.y0), dir: -1})
			}
		}
		if len(c.xs) < 2 {
			continue
		}
		sort.Slice(c.xs, func(i, j int) bool { return c.xs[i].x < c.xs[j].x })

		winding := 0
		for i := 0; i < len(c.xs)-1; i++ {
			winding += c.xs[i].dir
			if winding == 0 {
				continue
			}
			start := max(x0, int(math.Ceil(c.xs[i].x-0.5)))
			end := min(x1, int(math.Ceil(c.xs[i+1].x-0.5)))
			for px := start; px < end; px++ {
				c.blend(px, py, src, a)
			}
		}
	}
}

// DrawScene fills every path of s in order, translated and clipped.
func (c *Canvas) DrawScene(s *Scene, dx, dy float64, clip Rect) {
	if s == nil {
		return
	}
	for _, p := range s.paths {
		c.FillPath(p.cmds, p.fill, p.opacity, dx, dy, clip)
	}
}

// Blit copies src onto c with its top-left corner at (dx, dy) units.
// Both canvases are assumed to share a scale.
func (c *Canvas) Blit(src *Canvas, dx, dy float64) {
	if src == nil {
		return
	}
	ox := int(math.Round(dx / c.sx))
	oy := int(math.Round(dy / c.sy))
	for sy := 0; sy < src.h; sy++ {
		py := sy + oy
		if py < 0 || py >= c.h {
			continue
		}
		for sx := 0; sx < src.w; sx++ {
			px := sx + ox
			if px < 0 || px >= c.w {
				continue
			}
			c.pix[py*c.w+px] = src.pix[sy*src.w+sx]
		}
	}
}

// At returns the pixel at (px, py), or the background when out of range.
func (c *Canvas) At(px, py int) colorful.Color {
	if px < 0 || py < 0 || px >= c.w || py >= c.h {
		return c.bg
	}
	return c.pix[py*c.w+px]
}

// RGB encodes the canvas as RGB24, reusing dst when it is large enough.
func (c *Canvas) RGB(dst []byte) []byte {
	n := c.w * c.h * 3
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, p := range c.pix {
		r, g, b := p.Clamped().RGB255()
		dst[i*3] = r
		dst[i*3+1] = g
		dst[i*3+2] = b
	}
	return dst
}

func (c *Canvas) blend(px, py int, src colorful.Color, a float64) {
	if px < 0 || py < 0 || px >= c.w || py >= c.h {
		return
	}
	i := py*c.w + px
	c.pix[i] = c.pix[i].BlendRgb(src, a)
}

// pixelSpan converts a unit rect to a half-open pixel range clamped to the canvas.
func (c *Canvas) pixelSpan(r Rect) (x0, y0, x1, y1 int) {
	x0 = max(0, int(math.Floor(r.X/c.sx)))
	y0 = max(0, int(math.Floor(r.Y/c.sy)))
	x1 = min(c.w, int(math.Ceil((r.X+r.W)/c.sx)))
	y1 = min(c.h, int(math.Ceil((r.Y+r.H)/c.sy)))
	return x0, y0, x1, y1
}

// edges flattens path commands into pixel-space edges.
func (c *Canvas) edges(cmds []Command, dx, dy float64) []edge {
	var (
		out            []edge
		curX, curY     float64
		startX, startY float64
		open           bool
	)
	closeSub := func() {
		if open && (curX != startX || curY != startY) {
			out = append(out, edge{curX, curY, startX, startY})
		}
		curX, curY = startX, startY
		open = false
	}
	for _, cmd := range cmds {
		x := (cmd.X + dx) / c.sx
		y := (cmd.Y + dy) / c.sy
		switch cmd.Op {
		case MoveTo:
			closeSub()
			curX, curY, startX, startY = x, y, x, y
			open = true
		case LineTo:
			if !open {
				startX, startY = curX, curY
				open = true
			}
			out = append(out, edge{curX, curY, x, y})
			curX, curY = x, y
		case Close:
			closeSub()
		}
	}
	closeSub()
	return out
}

func nrgba(col color.NRGBA) (colorful.Color, float64) {
	return colorful.Color{
		R: float64(col.R) / 255,
		G: float64(col.G) / 255,
		B: float64(col.B) / 255,
	}, float64(col.A) / 255
}
