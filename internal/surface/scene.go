package surface

import "image/color"

// ScenePath is the Path implementation backing a Scene.
type ScenePath struct {
	cmds    []Command
	fill    color.NRGBA
	opacity float64
}

// SetGeometry replaces the outline. The slice is kept, not copied; callers
// hand over a fresh slice each frame.
func (p *ScenePath) SetGeometry(cmds []Command) { p.cmds = cmds }

func (p *ScenePath) SetFill(c color.NRGBA) { p.fill = c }

func (p *ScenePath) SetOpacity(o float64) { p.opacity = clamp01(o) }

func (p *ScenePath) Geometry() []Command { return p.cmds }

func (p *ScenePath) Fill() color.NRGBA { return p.fill }

func (p *ScenePath) Opacity() float64 { return p.opacity }

// Scene is a retained list of paths drawn back to front.
type Scene struct {
	paths []*ScenePath
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// AppendPath adds a path on top of the existing ones. New paths are fully
// opaque until told otherwise.
func (s *Scene) AppendPath() Path {
	p := &ScenePath{opacity: 1}
	s.paths = append(s.paths, p)
	return p
}

// Reset drops every path.
func (s *Scene) Reset() {
	s.paths = nil
}

// Paths returns the paths in draw order.
func (s *Scene) Paths() []*ScenePath {
	return s.paths
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
