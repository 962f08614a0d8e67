// Package ui is the terminal host: it lays the page out in character cells,
// drives both animations off a frame tick, and paints them with half blocks.
package ui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/olivier-w/backdrop/internal/config"
	"github.com/olivier-w/backdrop/internal/page"
	"github.com/olivier-w/backdrop/internal/particles"
	"github.com/olivier-w/backdrop/internal/pointer"
	"github.com/olivier-w/backdrop/internal/surface"
	"github.com/olivier-w/backdrop/internal/term"
	"github.com/olivier-w/backdrop/internal/theme"
	"github.com/olivier-w/backdrop/internal/waves"
)

// Model is the Bubbletea model for the backdrop TUI.
type Model struct {
	cfg      *config.Config
	flag     *theme.Flag
	renderer *term.Renderer
	keys     keyMap
	help     help.Model

	layout   page.Layout
	scroller *page.Scroller
	pointer  *pointer.Tracker

	particles *particles.Field
	hero      *surface.Canvas
	waves     *waves.Field
	scenes    map[string]*surface.Scene
	clock     *waves.Clock

	frame *surface.Canvas
	rgb   []byte
	fps   *frameRate
	last  time.Time

	width    int
	height   int
	paused   bool
	quitting bool
	view     string
}

// New creates a Model that renders in the terminal's detected colour mode
// with the configured renderer style.
func New(cfg *config.Config, flag *theme.Flag) Model {
	return NewWithRenderer(cfg, flag, term.NewRendererWithStyle(term.DetectColorMode(), cfg.RendererStyle()))
}

// NewWithRenderer creates a Model around an explicit renderer.
func NewWithRenderer(cfg *config.Config, flag *theme.Flag, r *term.Renderer) Model {
	tc := cfg.Terminal
	sx := tc.CellWidth / float64(r.PixelCols(1))
	sy := tc.CellHeight / float64(r.PixelRows(1))

	hero := surface.NewCanvas(0, 0, sx, sy)
	clock := waves.NewClock(cfg.Waves.Speed)
	m := Model{
		cfg:       cfg,
		flag:      flag,
		renderer:  r,
		keys:      newKeyMap(),
		help:      help.New(),
		scroller:  page.NewScroller(tc.FPS, tc.ScrollFrequency, tc.ScrollDamping),
		pointer:   &pointer.Tracker{},
		particles: particles.NewField(hero, cfg.ParticleParams(), flag.Get()),
		hero:      hero,
		waves:     waves.NewField(cfg.WaveParams(), waves.LCh, flag.Get(), nil),
		scenes:    make(map[string]*surface.Scene),
		clock:     &clock,
		frame:     surface.NewCanvas(0, 0, sx, sy),
		fps:       newFrameRate(tc.FPS),
	}
	m.help.ShortSeparator = "  "
	m.help.Styles.ShortKey = helpStyle
	m.help.Styles.ShortDesc = helpStyle
	m.help.Styles.FullKey = helpStyle
	m.help.Styles.FullDesc = helpStyle

	flag.OnChange(m.particles.OnThemeChange)
	flag.OnChange(m.waves.OnThemeChange)
	flag.OnChange(func(t theme.Theme) {
		slog.Info("theme changed", "theme", t.String())
	})
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(frameCmd(m.cfg.Terminal.FPS), tea.SetWindowTitle("backdrop"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.BlurMsg:
		m.pointer.Blur()
		m.particles.SetPointer(m.pointer.State())
		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.redraw()
		return m, nil

	case frameMsg:
		now := time.Time(msg)
		if !m.last.IsZero() {
			m.fps.Add(now.Sub(m.last))
		}
		m.last = now
		if !m.paused {
			m.step()
			m.render()
		}
		return m, frameCmd(m.cfg.Terminal.FPS)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := m.cfg.Terminal.ScrollStep
	pageStep := m.layout.ViewportH * 0.9

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Theme):
		m.flag.Toggle()
		m.redraw()
	case key.Matches(msg, m.keys.Up):
		m.scroller.ScrollBy(-step)
	case key.Matches(msg, m.keys.Down):
		m.scroller.ScrollBy(step)
	case key.Matches(msg, m.keys.PageUp):
		m.scroller.ScrollBy(-pageStep)
	case key.Matches(msg, m.keys.PageDown):
		m.scroller.ScrollBy(pageStep)
	case key.Matches(msg, m.keys.Top):
		m.scroller.ScrollTo(0)
	case key.Matches(msg, m.keys.Bottom):
		m.scroller.ScrollTo(m.scroller.Limit())
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		m.fps.Reset()
		m.last = time.Time{}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
		m.redraw()
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scroller.ScrollBy(-m.cfg.Terminal.ScrollStep)
		return
	case tea.MouseButtonWheelDown:
		m.scroller.ScrollBy(m.cfg.Terminal.ScrollStep)
		return
	}

	// Terminals report no leave event; the last cell seen on the left,
	// right or top edge is how the cursor exits.
	if msg.X <= 0 || msg.Y <= 0 || msg.X >= m.width-1 {
		m.pointer.Leave()
		m.particles.SetPointer(m.pointer.State())
		return
	}

	tc := m.cfg.Terminal
	x := (float64(msg.X) + 0.5) * tc.CellWidth
	y := (float64(msg.Y) + 0.5) * tc.CellHeight
	vp := pointer.Viewport{W: m.layout.ViewportW, H: m.layout.ViewportH}
	m.pointer.Move(x, y, vp, m.layout.Hero().Rect(m.scroller.Position()))
	m.particles.SetPointer(m.pointer.State())
}

// resize lays the page out for a terminal of w×h cells.
func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.help.Width = max(0, w/2)
	rows := max(1, h-lipgloss.Height(m.footer()))
	if w <= 0 {
		rows = 0
	}

	tc := m.cfg.Terminal
	vw := float64(max(0, w)) * tc.CellWidth
	vh := float64(rows) * tc.CellHeight
	m.layout = page.Build(m.cfg.PageParams(), vw, vh)
	m.scroller.SetLimit(m.layout.MaxScroll())

	pixCols, pixRows := m.renderer.PixelCols(max(0, w)), m.renderer.PixelRows(rows)
	m.hero.Resize(pixCols, pixRows)
	m.frame.Resize(pixCols, pixRows)

	t := m.flag.Get()
	m.particles.Reconfigure(vw, vh, t)

	m.waves.Reconfigure(waves.FromLayout(m.layout.Content(), m.scenes), vh, t)

	slog.Debug("terminal resized", "cols", w, "rows", rows, "viewport_w", vw, "viewport_h", vh)
}

// step advances scrolling and both animations by one frame.
func (m *Model) step() {
	scroll := m.scroller.Step()
	m.particles.SetPointer(m.pointer.State())
	m.hero.SetBackground(theme.Background(m.flag.Get()))
	m.particles.Tick()
	m.waves.Tick(m.clock.Advance(), scroll)
}

// redraw repaints both animations in their current state after a relayout
// or theme change, so a paused view never shows empty scenes.
func (m *Model) redraw() {
	m.hero.SetBackground(theme.Background(m.flag.Get()))
	m.particles.Draw()
	m.waves.Tick(m.clock.Now(), m.scroller.Position())
	m.render()
}

// render composites the hero and the section scenes into the viewport frame.
func (m *Model) render() {
	w, h := m.frame.Size()
	if w == 0 || h == 0 {
		m.view = ""
		return
	}
	scroll := m.scroller.Position()
	bg := theme.Background(m.flag.Get())
	m.frame.SetBackground(bg)
	m.renderer.SetBackground(bg)
	m.frame.Clear(m.frame.Bounds())

	hero := m.layout.Hero()
	if scroll < hero.Top+hero.Height {
		m.frame.Blit(m.hero, 0, hero.Top-scroll)
	}
	for _, s := range m.layout.Content() {
		scene := m.scenes[s.Name]
		if scene == nil {
			continue
		}
		r := s.Rect(scroll)
		if r.Y >= m.layout.ViewportH || r.Y+r.H <= 0 {
			continue
		}
		m.frame.DrawScene(scene, 0, r.Y, r)
	}
	m.rgb = m.frame.RGB(m.rgb)
	m.view = m.renderer.Render(m.rgb, w, h)
}

func (m Model) footer() string {
	left := statusStyle.Render(renderStatus(m.flag.Get(), m.fps.FPS(), m.scroller.Position(), m.scroller.Limit(), m.paused))
	brand := brandStyle.Render("backdrop")
	if m.help.ShowAll {
		return joinStatus(m.width, brand, left) + "\n" + m.help.View(m.keys)
	}
	return joinStatus(m.width, brand+"  "+left, m.help.View(m.keys))
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.view == "" {
		return m.footer()
	}
	return m.view + "\n" + m.footer()
}
