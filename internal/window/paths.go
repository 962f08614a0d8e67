package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivier-w/backdrop/internal/surface"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// drawScene fills every path of s onto dst, offset by dy and clipped to clip.
func drawScene(dst *ebiten.Image, s *surface.Scene, dy float64, clip image.Rectangle) {
	clip = clip.Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}
	target := dst.SubImage(clip).(*ebiten.Image)

	var (
		vs []ebiten.Vertex
		is []uint16
	)
	for _, p := range s.Paths() {
		var path vector.Path
		for _, c := range p.Geometry() {
			switch c.Op {
			case surface.MoveTo:
				path.MoveTo(float32(c.X), float32(c.Y+dy))
			case surface.LineTo:
				path.LineTo(float32(c.X), float32(c.Y+dy))
			case surface.Close:
				path.Close()
			}
		}

		vs, is = path.AppendVerticesAndIndicesForFilling(vs[:0], is[:0])
		if len(is) == 0 {
			continue
		}
		fill := p.Fill()
		a := float32(fill.A) / 255 * float32(p.Opacity())
		for i := range vs {
			vs[i].SrcX = 1
			vs[i].SrcY = 1
			vs[i].ColorR = float32(fill.R) / 255
			vs[i].ColorG = float32(fill.G) / 255
			vs[i].ColorB = float32(fill.B) / 255
			vs[i].ColorA = a
		}
		target.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{
			FillRule:  ebiten.FillRuleNonZero,
			AntiAlias: true,
		})
	}
}
