// Package theme holds the process-wide light/dark flag both animations read.
package theme

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme selects one of the two appearance schemes.
type Theme int

const (
	Dark Theme = iota
	Light
)

// Next toggles to the other theme.
func (t Theme) Next() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

// String returns the name of the theme.
func (t Theme) String() string {
	if t == Light {
		return "light"
	}
	return "dark"
}

// Icon returns a short marker for status lines.
func (t Theme) Icon() string {
	if t == Light {
		return "☀"
	}
	return "☾"
}

// Parse maps "dark"/"light" to a Theme. "auto" and unknown names report false.
func Parse(s string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark":
		return Dark, true
	case "light":
		return Light, true
	}
	return Dark, false
}

// Detect guesses the theme from the terminal background.
func Detect() Theme {
	if lipgloss.HasDarkBackground() {
		return Dark
	}
	return Light
}

// Flag is the externally owned theme state. Hosts write it; the animations
// only read it and learn about flips through OnChange callbacks.
type Flag struct {
	current  Theme
	watchers []func(Theme)
}

// NewFlag creates a flag holding t.
func NewFlag(t Theme) *Flag {
	return &Flag{current: t}
}

// Get returns the active theme.
func (f *Flag) Get() Theme {
	return f.current
}

// Set stores t and notifies watchers in registration order. Setting the
// current value again is not a change and notifies nobody.
func (f *Flag) Set(t Theme) {
	if t == f.current {
		return
	}
	f.current = t
	for _, fn := range f.watchers {
		fn(t)
	}
}

// Toggle flips the flag and returns the new value.
func (f *Flag) Toggle() Theme {
	f.Set(f.current.Next())
	return f.current
}

// OnChange registers fn to run after every change.
func (f *Flag) OnChange(fn func(Theme)) {
	if fn == nil {
		return
	}
	f.watchers = append(f.watchers, fn)
}

// Background is the page colour behind the animations.
func Background(t Theme) color.NRGBA {
	if t == Light {
		return color.NRGBA{R: 245, G: 247, B: 252, A: 255}
	}
	return color.NRGBA{R: 8, G: 11, B: 22, A: 255}
}
