// Package config loads backdrop settings from YAML over embedded defaults.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/olivier-w/backdrop/internal/page"
	"github.com/olivier-w/backdrop/internal/particles"
	"github.com/olivier-w/backdrop/internal/term"
	"github.com/olivier-w/backdrop/internal/waves"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds every tunable value.
type Config struct {
	Particles ParticlesConfig `yaml:"particles"`
	Waves     WavesConfig     `yaml:"waves"`
	Page      PageConfig      `yaml:"page"`
	Terminal  TerminalConfig  `yaml:"terminal"`
	Window    WindowConfig    `yaml:"window"`
	Headless  HeadlessConfig  `yaml:"headless"`
}

// ParticlesConfig tunes the particle grid.
type ParticlesConfig struct {
	Gap         float64 `yaml:"gap"`
	Friction    float64 `yaml:"friction"`     // velocity kept per frame, in (0, 1)
	Spring      float64 `yaml:"spring"`       // pull toward rest per unit displacement
	MaxDistance float64 `yaml:"max_distance"` // magnetic radius
	Gain        float64 `yaml:"gain"`
	BaseAlpha   float64 `yaml:"base_alpha"`
	MaxAlpha    float64 `yaml:"max_alpha"`
}

// WavesConfig tunes the wave layers.
type WavesConfig struct {
	Lines          int     `yaml:"lines"`
	Speed          float64 `yaml:"speed"` // clock advance per frame
	Amplitude      float64 `yaml:"amplitude"`
	Wavelength     float64 `yaml:"wavelength"`
	ParallaxFactor float64 `yaml:"parallax_factor"`
	FusionOffset   float64 `yaml:"fusion_offset"`
	Step           float64 `yaml:"step"`
	Margin         float64 `yaml:"margin"`
	Seal           float64 `yaml:"seal"`
}

// PageConfig describes the sections under the hero.
type PageConfig struct {
	MinSectionHeight float64         `yaml:"min_section_height"`
	SectionRatio     float64         `yaml:"section_ratio"`
	Sections         []SectionConfig `yaml:"sections"`
}

// SectionConfig is one page section.
type SectionConfig struct {
	Name  string `yaml:"name"`
	Waves bool   `yaml:"waves"`
}

// TerminalConfig holds terminal host settings. Cells are measured in the
// same units as the animations.
type TerminalConfig struct {
	FPS             int     `yaml:"fps"`
	CellWidth       float64 `yaml:"cell_width"`
	CellHeight      float64 `yaml:"cell_height"`
	ScrollStep      float64 `yaml:"scroll_step"`
	ScrollFrequency float64 `yaml:"scroll_frequency"`
	ScrollDamping   float64 `yaml:"scroll_damping"`
	Renderer        string  `yaml:"renderer"` // auto, halfblock, braille or ascii
}

// WindowConfig holds windowed host settings.
type WindowConfig struct {
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	Title           string  `yaml:"title"`
	ScrollStep      float64 `yaml:"scroll_step"`
	ScrollFrequency float64 `yaml:"scroll_frequency"`
	ScrollDamping   float64 `yaml:"scroll_damping"`
}

// HeadlessConfig holds defaults for display-less runs.
type HeadlessConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Frames int     `yaml:"frames"`
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load reads path over the embedded defaults; fields missing from the file
// keep their default. An empty path loads the defaults only.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the animations cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Particles.Gap <= 0:
		return fmt.Errorf("%w: particles.gap must be positive", ErrInvalid)
	case c.Particles.Friction <= 0 || c.Particles.Friction >= 1:
		return fmt.Errorf("%w: particles.friction must be in (0, 1)", ErrInvalid)
	case c.Particles.MaxDistance <= 0:
		return fmt.Errorf("%w: particles.max_distance must be positive", ErrInvalid)
	case c.Waves.Lines < 1:
		return fmt.Errorf("%w: waves.lines must be at least 1", ErrInvalid)
	case c.Waves.Step <= 0:
		return fmt.Errorf("%w: waves.step must be positive", ErrInvalid)
	case c.Waves.Wavelength == 0:
		return fmt.Errorf("%w: waves.wavelength must not be zero", ErrInvalid)
	case c.Terminal.FPS <= 0:
		return fmt.Errorf("%w: terminal.fps must be positive", ErrInvalid)
	case c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0:
		return fmt.Errorf("%w: terminal cell size must be positive", ErrInvalid)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size must be positive", ErrInvalid)
	}
	if _, ok := term.ParseStyle(c.Terminal.Renderer); !ok {
		return fmt.Errorf("%w: unknown terminal.renderer %q", ErrInvalid, c.Terminal.Renderer)
	}
	return nil
}

// WriteYAML saves the configuration to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// ParticleParams converts the particle section for the simulation.
func (c *Config) ParticleParams() particles.Params {
	p := c.Particles
	return particles.Params{
		Gap:         p.Gap,
		Friction:    p.Friction,
		Spring:      p.Spring,
		MaxDistance: p.MaxDistance,
		Gain:        p.Gain,
		BaseAlpha:   p.BaseAlpha,
		MaxAlpha:    p.MaxAlpha,
	}
}

// WaveParams converts the wave section for the simulation.
func (c *Config) WaveParams() waves.Params {
	w := c.Waves
	return waves.Params{
		Lines:          w.Lines,
		Speed:          w.Speed,
		Amplitude:      w.Amplitude,
		Wavelength:     w.Wavelength,
		ParallaxFactor: w.ParallaxFactor,
		FusionOffset:   w.FusionOffset,
		Step:           w.Step,
		Margin:         w.Margin,
		Seal:           w.Seal,
	}
}

// PageParams converts the page section for layout.
func (c *Config) PageParams() page.Params {
	p := page.Params{
		MinHeight:    c.Page.MinSectionHeight,
		SectionRatio: c.Page.SectionRatio,
	}
	for _, s := range c.Page.Sections {
		p.Sections = append(p.Sections, page.SectionSpec{Name: s.Name, Waves: s.Waves})
	}
	return p
}

// RendererStyle returns the configured terminal renderer style.
func (c *Config) RendererStyle() term.Style {
	s, _ := term.ParseStyle(c.Terminal.Renderer)
	return s
}
