package term

import (
	"image/color"
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

func TestRenderASCIIMapsBrightness(t *testing.T) {
	r := NewRendererWithMode(ColorOff)
	frame := []byte{
		0, 0, 0, 255, 255, 255,
		255, 255, 255, 0, 0, 0,
	}
	got := r.Render(frame, 2, 2)
	if got != " @\n@ " {
		t.Fatalf("unexpected ascii frame %q", got)
	}
}

func TestRenderHalfBlockPacksRows(t *testing.T) {
	r := NewRendererWithMode(ColorTrue)
	frame := []byte{
		255, 0, 0,
		0, 0, 255,
		0, 255, 0,
	}
	got := r.Render(frame, 1, 3)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 text rows, got %d: %q", len(lines), got)
	}
	if !strings.Contains(lines[0], "\x1b[38;2;255;0;0m") || !strings.Contains(lines[0], "\x1b[48;2;0;0;255m") {
		t.Fatalf("expected red over blue in first row, got %q", lines[0])
	}
	// Odd heights repeat the top pixel in the background.
	if !strings.Contains(lines[1], "\x1b[48;2;0;255;0m") {
		t.Fatalf("expected green background in last row, got %q", lines[1])
	}
	if strings.Count(got, "▀") != 2 {
		t.Fatalf("expected 2 half blocks, got %q", got)
	}
}

func TestRenderSkipsRepeatedEscapes(t *testing.T) {
	r := NewRendererWithMode(ColorANSI256)
	frame := make([]byte, 4*2*3)
	got := r.Render(frame, 4, 2)
	if n := strings.Count(got, "\x1b[38;5;16m"); n != 1 {
		t.Fatalf("expected one foreground escape, got %d in %q", n, got)
	}
}

func TestRenderRejectsShortFrame(t *testing.T) {
	r := NewRendererWithMode(ColorTrue)
	if got := r.Render([]byte{1, 2}, 2, 2); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestModeForProfile(t *testing.T) {
	tests := []struct {
		profile termenv.Profile
		want    ColorMode
	}{
		{termenv.TrueColor, ColorTrue},
		{termenv.ANSI256, ColorANSI256},
		{termenv.ANSI, ColorANSI16},
		{termenv.Ascii, ColorOff},
	}
	for _, tt := range tests {
		got := modeFor(tt.profile)
		if got != tt.want {
			t.Errorf("modeFor(%v) = %v, want %v", tt.profile, got, tt.want)
		}
		if got.profile() != tt.profile {
			t.Errorf("%v.profile() = %v, want %v", got, got.profile(), tt.profile)
		}
	}
}

func TestColorSeq(t *testing.T) {
	tests := []struct {
		mode    ColorMode
		bg      bool
		r, g, b uint8
		want    string
	}{
		{ColorTrue, false, 200, 40, 7, "\x1b[38;2;200;40;7m"},
		{ColorTrue, true, 0, 0, 255, "\x1b[48;2;0;0;255m"},
		{ColorANSI256, false, 255, 0, 0, "\x1b[38;5;196m"},
		{ColorOff, false, 255, 0, 0, ""},
	}
	for _, tt := range tests {
		if got := colorSeq(tt.mode, tt.bg, tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("colorSeq(%v, %v, %d, %d, %d) = %q, want %q", tt.mode, tt.bg, tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

func TestRenderASCIIMeasuresAgainstBackground(t *testing.T) {
	r := NewRendererWithMode(ColorOff)
	r.SetBackground(color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	frame := []byte{255, 255, 255, 0, 0, 0}
	if got := r.Render(frame, 2, 1); got != " @" {
		t.Fatalf("expected background blank and black dense, got %q", got)
	}
}

func TestANSI16Background(t *testing.T) {
	if got := colorSeq(ColorANSI16, true, 255, 255, 255); got != "\x1b[107m" {
		t.Fatalf("expected bright white background, got %q", got)
	}
	if got := colorSeq(ColorANSI16, false, 0, 0, 0); got != "\x1b[30m" {
		t.Fatalf("expected black foreground, got %q", got)
	}
}

func TestPixelRows(t *testing.T) {
	if got := NewRendererWithMode(ColorTrue).PixelRows(10); got != 20 {
		t.Fatalf("expected 20 pixel rows, got %d", got)
	}
	if got := NewRendererWithMode(ColorOff).PixelRows(10); got != 10 {
		t.Fatalf("expected 10 pixel rows, got %d", got)
	}
}

func TestStyleResolution(t *testing.T) {
	tests := []struct {
		mode  ColorMode
		style Style
		want  Style
	}{
		{ColorTrue, StyleAuto, StyleHalfBlock},
		{ColorOff, StyleAuto, StyleASCII},
		{ColorOff, StyleHalfBlock, StyleASCII},
		{ColorOff, StyleBraille, StyleBraille},
		{ColorANSI256, StyleASCII, StyleASCII},
	}
	for _, tt := range tests {
		if got := NewRendererWithStyle(tt.mode, tt.style).Style(); got != tt.want {
			t.Errorf("NewRendererWithStyle(%v, %v) style = %v, want %v", tt.mode, tt.style, got, tt.want)
		}
	}
}

func TestParseStyle(t *testing.T) {
	for _, name := range []string{"auto", "halfblock", "braille", "ascii"} {
		s, ok := ParseStyle(name)
		if !ok || s.String() != name {
			t.Errorf("ParseStyle(%q) = %v, %v", name, s, ok)
		}
	}
	if _, ok := ParseStyle("sixel"); ok {
		t.Fatal("expected unknown style to be rejected")
	}
}

func TestBrailleGeometry(t *testing.T) {
	r := NewRendererWithStyle(ColorOff, StyleBraille)
	if got := r.PixelRows(3); got != 12 {
		t.Fatalf("expected 12 pixel rows, got %d", got)
	}
	if got := r.PixelCols(5); got != 10 {
		t.Fatalf("expected 10 pixel columns, got %d", got)
	}
}

func TestRenderBrailleLightsDots(t *testing.T) {
	r := NewRendererWithStyle(ColorOff, StyleBraille)
	// 2×4 black frame with the top-left and bottom-right pixels lit.
	frame := make([]byte, 2*4*3)
	copy(frame[0:3], []byte{255, 255, 255})
	copy(frame[(3*2+1)*3:], []byte{255, 255, 255})

	got := r.Render(frame, 2, 4)
	want := string(rune(0x2800 | 1<<0 | 1<<7))
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRenderBrailleColoursCell(t *testing.T) {
	r := NewRendererWithStyle(ColorTrue, StyleBraille)
	r.SetBackground(color.NRGBA{R: 0, G: 0, B: 0, A: 255})
	frame := make([]byte, 4*4*3)
	copy(frame[0:3], []byte{200, 40, 40})

	got := r.Render(frame, 4, 4)
	if !strings.Contains(got, "\x1b[38;2;200;40;40m") {
		t.Fatalf("expected lit cell coloured red, got %q", got)
	}
	if !strings.HasSuffix(got, string(rune(0x2800))+ansiReset) {
		t.Fatalf("expected empty second cell then reset, got %q", got)
	}
}
