// Package window is the desktop host: the same page and animations drawn
// into a resizable ebiten window.
package window

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olivier-w/backdrop/internal/config"
	"github.com/olivier-w/backdrop/internal/page"
	"github.com/olivier-w/backdrop/internal/particles"
	"github.com/olivier-w/backdrop/internal/pointer"
	"github.com/olivier-w/backdrop/internal/surface"
	"github.com/olivier-w/backdrop/internal/theme"
	"github.com/olivier-w/backdrop/internal/waves"
)

// Game implements ebiten.Game.
type Game struct {
	cfg  *config.Config
	flag *theme.Flag

	layout   page.Layout
	scroller *page.Scroller
	pointer  pointer.Tracker

	hero      *imageSurface
	particles *particles.Field
	waves     *waves.Field
	scenes    map[string]*surface.Scene
	clock     waves.Clock

	width    int
	height   int
	paused   bool
	showInfo bool
}

// NewGame wires the animations to the theme flag.
func NewGame(cfg *config.Config, flag *theme.Flag) *Game {
	wc := cfg.Window
	hero := &imageSurface{}
	g := &Game{
		cfg:       cfg,
		flag:      flag,
		scroller:  page.NewScroller(ebiten.DefaultTPS, wc.ScrollFrequency, wc.ScrollDamping),
		hero:      hero,
		particles: particles.NewField(hero, cfg.ParticleParams(), flag.Get()),
		waves:     waves.NewField(cfg.WaveParams(), waves.LCh, flag.Get(), nil),
		scenes:    make(map[string]*surface.Scene),
		clock:     waves.NewClock(cfg.Waves.Speed),
		showInfo:  true,
	}
	flag.OnChange(g.particles.OnThemeChange)
	flag.OnChange(g.waves.OnThemeChange)
	flag.OnChange(func(t theme.Theme) {
		slog.Info("theme changed", "theme", t.String())
	})
	return g
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, flag *theme.Flag) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(NewGame(cfg, flag))
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	g.handleKeys()

	switch {
	case ebiten.IsWindowMinimized():
		g.pointer.Visibility(true)
	case !ebiten.IsFocused():
		g.pointer.Blur()
	default:
		g.trackCursor(ebiten.CursorPosition())
	}

	if g.paused {
		return nil
	}
	scroll := g.scroller.Step()
	g.particles.SetPointer(g.pointer.State())
	g.particles.Tick()
	g.waves.Tick(g.clock.Advance(), scroll)
	return nil
}

// trackCursor feeds the cursor position to the pointer. The last position
// ebiten saw before the cursor left is re-reported every tick, so anything
// outside the window counts as having left.
func (g *Game) trackCursor(cx, cy int) {
	if cx < 0 || cy < 0 || cx >= g.width || cy >= g.height {
		g.pointer.Leave()
		return
	}
	vp := pointer.Viewport{W: g.layout.ViewportW, H: g.layout.ViewportH}
	g.pointer.Move(float64(cx), float64(cy), vp, g.layout.Hero().Rect(g.scroller.Position()))
}

func (g *Game) handleKeys() {
	step := g.cfg.Window.ScrollStep
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.flag.Toggle()
		g.redraw()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showInfo = !g.showInfo
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyJ) {
		g.scroller.ScrollBy(step)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyK) {
		g.scroller.ScrollBy(-step)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.scroller.ScrollBy(g.layout.ViewportH * 0.9)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		g.scroller.ScrollBy(-g.layout.ViewportH * 0.9)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		g.scroller.ScrollTo(0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		g.scroller.ScrollTo(g.scroller.Limit())
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.scroller.ScrollBy(-wy * step)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(theme.Background(g.flag.Get()))
	scroll := g.scroller.Position()

	hero := g.layout.Hero()
	if g.hero.img != nil && scroll < hero.Top+hero.Height {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, hero.Top-scroll)
		screen.DrawImage(g.hero.img, op)
	}
	for _, s := range g.layout.Content() {
		scene := g.scenes[s.Name]
		if scene == nil {
			continue
		}
		r := s.Rect(scroll)
		if r.Y >= g.layout.ViewportH || r.Y+r.H <= 0 {
			continue
		}
		drawScene(screen, scene, r.Y, toRectangle(r))
	}

	if g.showInfo {
		t := g.flag.Get()
		msg := fmt.Sprintf("%s %s  %.0f fps  t theme  p pause  esc quit", t.Icon(), t, ebiten.ActualFPS())
		if g.paused {
			msg += "  [paused]"
		}
		ebitenutil.DebugPrintAt(screen, msg, 8, 8)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.relayout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) relayout(w, h int) {
	g.width, g.height = w, h
	vw, vh := float64(w), float64(h)
	g.layout = page.Build(g.cfg.PageParams(), vw, vh)
	g.scroller.SetLimit(g.layout.MaxScroll())
	g.hero.resize(w, h)

	t := g.flag.Get()
	g.particles.Reconfigure(vw, vh, t)

	g.waves.Reconfigure(waves.FromLayout(g.layout.Content(), g.scenes), vh, t)
	g.redraw()
	slog.Debug("window resized", "width", w, "height", h)
}

// redraw repaints both animations in place after a relayout or theme
// change, so a paused window never shows empty sections.
func (g *Game) redraw() {
	g.particles.Draw()
	g.waves.Tick(g.clock.Now(), g.scroller.Position())
}
