// Package waves implements the layered wave backdrop: per section, a stack
// of filled sine bands whose top edges are recomputed from scratch every
// frame and drift apart in depth as the page scrolls.
package waves

import (
	"image/color"
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/olivier-w/backdrop/internal/surface"
	"github.com/olivier-w/backdrop/internal/theme"
)

// Section is the box of the page section a container lives in, in page units.
type Section struct {
	Top    float64
	Width  float64
	Height float64
}

// Container is a watched wave target. A nil Section means the container has
// no parent section and is skipped.
type Container struct {
	Name    string
	Section *Section
	Target  surface.Vector
}

// System is one container's geometry and its layers.
type System struct {
	Name     string
	Geometry Geometry
	Layers   []*Layer
}

// Field owns every wave system and the layers inside them.
type Field struct {
	params Params
	interp Interpolator
	theme  theme.Theme
	rng    *rand.Rand

	containers []Container
	viewportH  float64
	systems    []*System
}

// NewField creates a field. A nil interp leaves the field inert; a nil rng
// uses a randomly seeded source.
func NewField(params Params, interp Interpolator, t theme.Theme, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Field{params: params, interp: interp, theme: t, rng: rng}
}

// Initialize rebuilds every system from the containers' current geometry.
// Previous layers are erased from their targets and traits are redrawn.
func (f *Field) Initialize(containers []Container, viewportHeight float64) {
	f.containers = containers
	f.viewportH = viewportHeight
	f.systems = nil

	if f.interp == nil {
		return
	}

	lines := f.params.Lines
	for _, c := range containers {
		if c.Section == nil || c.Target == nil {
			continue
		}
		c.Target.Reset()

		colors := palette(f.theme, lines+1, f.interp)
		if len(colors) < lines {
			continue
		}

		sys := &System{
			Name: c.Name,
			Geometry: Geometry{
				Width:   c.Section.Width,
				Height:  c.Section.Height,
				ScrollY: c.Section.Top - viewportHeight,
			},
		}

		effective := c.Section.Height - f.params.FusionOffset
		for i := range lines {
			baseY := f.params.FusionOffset
			if lines > 1 {
				baseY += effective / float64(lines-1) * float64(i)
			}
			sys.Layers = append(sys.Layers, f.newLayer(i, baseY, colors[i], c.Target))
		}
		f.systems = append(f.systems, sys)
	}
}

func (f *Field) newLayer(index int, baseY float64, fill color.NRGBA, target surface.Vector) *Layer {
	depth := float64(index) / float64(f.params.Lines)
	l := &Layer{
		Index:    index,
		BaseY:    baseY,
		Fill:     fill,
		Opacity:  0.3 + depth*0.7,
		Parallax: depth * f.params.ParallaxFactor,
		Traits: Traits{
			Speed:     0.5 + f.rng.Float64()*1.5,
			Amplitude: 0.6 + f.rng.Float64()*1.2,
			Phase:     f.rng.Float64() * math.Pi * 2,
		},
		path: target.AppendPath(),
	}
	l.path.SetFill(fill)
	l.path.SetOpacity(l.Opacity)
	return l
}

// Reconfigure applies a new environment and rebuilds every system.
func (f *Field) Reconfigure(containers []Container, viewportHeight float64, t theme.Theme) {
	f.theme = t
	f.Initialize(containers, viewportHeight)
	slog.Debug("wave field rebuilt",
		"containers", len(containers),
		"systems", len(f.systems),
		"viewport_height", viewportHeight,
		"theme", t.String(),
	)
}

// OnThemeChange rebuilds the last configured containers with the new
// palette. Layer traits are not preserved.
func (f *Field) OnThemeChange(t theme.Theme) {
	f.Reconfigure(f.containers, f.viewportH, t)
}

// Tick regenerates every layer's outline for the given clock time and page
// scroll position.
func (f *Field) Tick(time, scroll float64) {
	for _, sys := range f.systems {
		for _, l := range sys.Layers {
			l.path.SetGeometry(Outline(l, sys.Geometry, time, scroll, f.params))
		}
	}
}

// Systems returns the live systems.
func (f *Field) Systems() []*System { return f.systems }

// Theme returns the palette theme in use.
func (f *Field) Theme() theme.Theme { return f.theme }

// Params returns the tuning in use.
func (f *Field) Params() Params { return f.params }
