package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/backdrop/internal/config"
	"github.com/olivier-w/backdrop/internal/term"
	"github.com/olivier-w/backdrop/internal/theme"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := NewWithRenderer(config.Default(), theme.NewFlag(theme.Dark), term.NewRendererWithMode(term.ColorTrue))
	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return model.(Model)
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	model, cmd := m.Update(msg)
	next, ok := model.(Model)
	if !ok {
		t.Fatalf("expected Model, got %T", model)
	}
	return next, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestResizeLaysOutPage(t *testing.T) {
	m := newTestModel(t)

	if m.particles.Len() == 0 {
		t.Fatal("expected particles after resize")
	}
	if got := len(m.waves.Systems()); got != 4 {
		t.Fatalf("expected 4 wave systems, got %d", got)
	}
	w, h := m.frame.Size()
	if w != 80 || h != 46 {
		t.Fatalf("expected 80x46 pixel frame, got %dx%d", w, h)
	}
	if m.layout.ViewportH != 23*16 {
		t.Fatalf("expected viewport height %v, got %v", 23*16, m.layout.ViewportH)
	}
	if m.scroller.Limit() != m.layout.MaxScroll() {
		t.Fatalf("scroll limit %v does not match layout %v", m.scroller.Limit(), m.layout.MaxScroll())
	}
}

func TestFrameRendersAndReschedules(t *testing.T) {
	m := newTestModel(t)

	m, cmd := send(t, m, frameMsg(time.Now()))
	if cmd == nil {
		t.Fatal("expected next frame to be scheduled")
	}
	view := m.View()
	if !strings.Contains(view, "▀") {
		t.Fatal("expected half-block frame in view")
	}
	if !strings.Contains(view, "backdrop") {
		t.Fatal("expected status line in view")
	}
	if m.clock.Now() == 0 {
		t.Fatal("expected wave clock to advance")
	}
}

func TestMouseMotionAttractsParticles(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionMotion})
	if !m.pointer.State().Active() {
		t.Fatal("expected pointer over the hero to be active")
	}
	m, _ = send(t, m, frameMsg(time.Now()))
	if m.particles.Stats().Held == 0 {
		t.Fatal("expected particles inside the magnetic radius")
	}

	m, _ = send(t, m, tea.BlurMsg{})
	if m.pointer.State().Active() {
		t.Fatal("expected blur to clear the pointer")
	}
	m, _ = send(t, m, frameMsg(time.Now()))
	if m.particles.Stats().Held != 0 {
		t.Fatalf("expected no held particles after blur, got %d", m.particles.Stats().Held)
	}
}

func TestMouseOverFooterIsIgnored(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tea.MouseMsg{X: 10, Y: 23, Action: tea.MouseActionMotion})
	if m.pointer.State().Active() {
		t.Fatal("expected pointer below the viewport to be ignored")
	}
}

func TestThemeKeyTogglesBothFields(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, runeKey('t'))
	if m.flag.Get() != theme.Light {
		t.Fatalf("expected light theme, got %v", m.flag.Get())
	}
	if m.particles.Theme() != theme.Light {
		t.Fatal("expected particles to follow the theme")
	}
	if m.waves.Theme() != theme.Light {
		t.Fatal("expected waves to follow the theme")
	}
	if got := len(m.waves.Systems()); got != 4 {
		t.Fatalf("expected systems rebuilt on theme change, got %d", got)
	}
}

func TestWheelAndKeysScroll(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if m.scroller.Target() != m.cfg.Terminal.ScrollStep {
		t.Fatalf("expected target %v, got %v", m.cfg.Terminal.ScrollStep, m.scroller.Target())
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	if m.scroller.Target() != m.scroller.Limit() {
		t.Fatalf("expected target at limit %v, got %v", m.scroller.Limit(), m.scroller.Target())
	}

	m, _ = send(t, m, runeKey('g'))
	if m.scroller.Target() != 0 {
		t.Fatalf("expected target at top, got %v", m.scroller.Target())
	}

	m, _ = send(t, m, runeKey('k'))
	if m.scroller.Target() != 0 {
		t.Fatalf("expected target clamped at top, got %v", m.scroller.Target())
	}
}

func TestPauseFreezesAnimation(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, runeKey('p'))
	if !m.paused {
		t.Fatal("expected paused")
	}
	m, cmd := send(t, m, frameMsg(time.Now()))
	if cmd == nil {
		t.Fatal("expected frames to keep ticking while paused")
	}
	if m.clock.Now() != 0 {
		t.Fatalf("expected clock frozen, got %v", m.clock.Now())
	}
}

func TestHelpGrowsFooter(t *testing.T) {
	m := newTestModel(t)
	_, before := m.frame.Size()

	m, _ = send(t, m, runeKey('?'))
	_, after := m.frame.Size()
	if after >= before {
		t.Fatalf("expected full help to take rows from the frame, %d -> %d", before, after)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m := newTestModel(t)
		m, cmd := send(t, m, msg)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", msg)
		}
		if !m.quitting {
			t.Fatalf("%s: expected quitting", msg)
		}
		if m.View() != "" {
			t.Fatalf("%s: expected empty view after quit", msg)
		}
	}
}

func TestFrameRate(t *testing.T) {
	r := newFrameRate(4)
	if r.FPS() != 0 {
		t.Fatal("expected 0 fps when empty")
	}
	for range 6 {
		r.Add(50 * time.Millisecond)
	}
	if got := r.FPS(); got < 19.99 || got > 20.01 {
		t.Fatalf("expected 20 fps, got %v", got)
	}
	r.Add(0)
	r.Reset()
	if r.FPS() != 0 {
		t.Fatal("expected 0 fps after reset")
	}
}

func TestRenderScroll(t *testing.T) {
	if got := renderScroll(0, 0); got != "scroll -" {
		t.Fatalf("unexpected %q", got)
	}
	if got := renderScroll(50, 200); got != "scroll 25%" {
		t.Fatalf("unexpected %q", got)
	}
	if got := renderScroll(300, 200); got != "scroll 100%" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestBrailleRendererDoublesColumns(t *testing.T) {
	m := NewWithRenderer(config.Default(), theme.NewFlag(theme.Dark), term.NewRendererWithStyle(term.ColorTrue, term.StyleBraille))
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 11})

	w, h := m.frame.Size()
	if w != 80 || h != 40 {
		t.Fatalf("expected 80x40 dot frame, got %dx%d", w, h)
	}
	m, _ = send(t, m, frameMsg(time.Now()))
	if strings.Contains(m.View(), "▀") {
		t.Fatal("expected braille output, not half blocks")
	}
}

func wavePathsWithGeometry(m Model) int {
	n := 0
	for _, scene := range m.scenes {
		for _, p := range scene.Paths() {
			if len(p.Geometry()) > 0 {
				n++
			}
		}
	}
	return n
}

func TestEdgeCellsReleasePointer(t *testing.T) {
	for _, cell := range [][2]int{{0, 10}, {79, 10}, {40, 0}} {
		m := newTestModel(t)
		m, _ = send(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionMotion})
		if !m.pointer.State().Active() {
			t.Fatal("expected pointer active inside the hero")
		}

		m, _ = send(t, m, tea.MouseMsg{X: cell[0], Y: cell[1], Action: tea.MouseActionMotion})
		if m.pointer.State().Active() {
			t.Fatalf("cell %v: expected edge cell to release the pointer", cell)
		}
		m, _ = send(t, m, frameMsg(time.Now()))
		if held := m.particles.Stats().Held; held != 0 {
			t.Fatalf("cell %v: expected no held particles, got %d", cell, held)
		}
	}
}

func TestThemeToggleWhilePausedKeepsScenes(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, frameMsg(time.Now()))
	want := wavePathsWithGeometry(m)
	if want != 40 {
		t.Fatalf("expected 40 drawn wave paths, got %d", want)
	}

	m, _ = send(t, m, runeKey('p'))
	m, _ = send(t, m, runeKey('t'))
	m, _ = send(t, m, frameMsg(time.Now()))
	if got := wavePathsWithGeometry(m); got != want {
		t.Fatalf("expected %d drawn wave paths after paused toggle, got %d", want, got)
	}
	if bg := m.hero.At(2, 2); bg.R < 0.9 || bg.G < 0.9 || bg.B < 0.9 {
		t.Fatalf("expected hero repainted on the light background, got %v", bg)
	}
}

func TestResizeWhilePausedKeepsScenes(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, runeKey('p'))
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if got := wavePathsWithGeometry(m); got != 40 {
		t.Fatalf("expected 40 drawn wave paths after paused resize, got %d", got)
	}
	if !strings.Contains(m.View(), "▀") {
		t.Fatal("expected a painted frame while paused")
	}
}
