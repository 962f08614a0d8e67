package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivier-w/backdrop/internal/surface"
)

// imageSurface draws particles onto an offscreen ebiten image. The image is
// swapped out on resize; the surface value itself stays put so the particle
// field keeps a stable target.
type imageSurface struct {
	img *ebiten.Image
}

func (s *imageSurface) resize(w, h int) {
	if s.img != nil {
		s.img.Deallocate()
	}
	s.img = ebiten.NewImage(max(1, w), max(1, h))
}

func (s *imageSurface) Clear(r surface.Rect) {
	if s.img == nil {
		return
	}
	rect := toRectangle(r).Intersect(s.img.Bounds())
	if rect.Empty() {
		return
	}
	s.img.SubImage(rect).(*ebiten.Image).Clear()
}

func (s *imageSurface) FillCircle(x, y, radius float64, c color.NRGBA) {
	if s.img == nil {
		return
	}
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(radius), c, true)
}

func toRectangle(r surface.Rect) image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X+r.W+0.5), int(r.Y+r.H+0.5))
}
