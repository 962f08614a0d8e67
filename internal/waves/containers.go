package waves

import (
	"github.com/olivier-w/backdrop/internal/page"
	"github.com/olivier-w/backdrop/internal/surface"
)

// FromLayout builds one container per page section, reusing or creating a
// scene for each in scenes. Sections without waves get no parent section
// and their scene is emptied.
func FromLayout(sections []page.Section, scenes map[string]*surface.Scene) []Container {
	containers := make([]Container, 0, len(sections))
	for _, s := range sections {
		scene, ok := scenes[s.Name]
		if !ok {
			scene = surface.NewScene()
			scenes[s.Name] = scene
		}
		c := Container{Name: s.Name, Target: scene}
		if s.Waves {
			c.Section = &Section{Top: s.Top, Width: s.Width, Height: s.Height}
		} else {
			scene.Reset()
		}
		containers = append(containers, c)
	}
	return containers
}
