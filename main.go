package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/backdrop/internal/config"
	"github.com/olivier-w/backdrop/internal/theme"
	"github.com/olivier-w/backdrop/internal/ui"
	"github.com/olivier-w/backdrop/internal/window"
)

type options struct {
	configPath string
	themeName  string
	renderer   string
	window     bool
	headless   bool
	frames     int
	width      float64
	height     float64
	trace      string
	orbit      bool
	seed       uint64
	debug      bool
	logFile    string
	dumpConfig string
}

func main() {
	var o options
	flag.StringVar(&o.configPath, "config", "", "Path to config.yaml (empty = use defaults)")
	flag.StringVar(&o.themeName, "theme", "auto", "Theme: auto, dark or light")
	flag.StringVar(&o.renderer, "renderer", "", "Terminal renderer: auto, halfblock, braille or ascii (empty = use config)")
	flag.BoolVar(&o.window, "window", false, "Open a desktop window instead of drawing in the terminal")
	flag.BoolVar(&o.headless, "headless", false, "Run the simulation without a display")
	flag.IntVar(&o.frames, "frames", 0, "Frames to simulate in headless mode (0 = use config)")
	flag.Float64Var(&o.width, "width", 0, "Headless viewport width (0 = use config)")
	flag.Float64Var(&o.height, "height", 0, "Headless viewport height (0 = use config)")
	flag.StringVar(&o.trace, "trace", "", "Write per-frame CSV telemetry to this file (headless)")
	flag.BoolVar(&o.orbit, "orbit", true, "Move a scripted pointer around the hero (headless)")
	flag.Uint64Var(&o.seed, "seed", 0, "Wave trait seed (0 = random)")
	flag.BoolVar(&o.debug, "debug", false, "Write debug logs")
	flag.StringVar(&o.logFile, "log-file", "backdrop.log", "Debug log file for the interactive hosts")
	flag.StringVar(&o.dumpConfig, "dump-config", "", "Write the effective config to this file and exit")
	flag.Parse()

	if err := run(o); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(o options) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.renderer != "" {
		cfg.Terminal.Renderer = o.renderer
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if o.dumpConfig != "" {
		return cfg.WriteYAML(o.dumpConfig)
	}

	if o.headless {
		setupHeadlessLogging(os.Stderr, o.debug)
		t, err := resolveTheme(o.themeName, func() theme.Theme { return theme.Dark })
		if err != nil {
			return err
		}
		_, err = runHeadless(cfg, theme.NewFlag(t), headlessOptions{
			Width:  orDefault(o.width, cfg.Headless.Width),
			Height: orDefault(o.height, cfg.Headless.Height),
			Frames: int(orDefault(float64(o.frames), float64(cfg.Headless.Frames))),
			Trace:  o.trace,
			Orbit:  o.orbit,
			Seed:   o.seed,
		})
		return err
	}

	closeLog, err := setupLogging(o.logFile, o.debug)
	if err != nil {
		return err
	}
	defer closeLog()

	t, err := resolveTheme(o.themeName, theme.Detect)
	if err != nil {
		return err
	}
	themeFlag := theme.NewFlag(t)
	slog.Info("starting", "window", o.window, "theme", t.String(), "config", o.configPath)

	if o.window {
		err = window.Run(cfg, themeFlag)
	} else {
		p := tea.NewProgram(ui.New(cfg, themeFlag), tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithReportFocus())
		_, err = p.Run()
	}
	slog.Info("shutdown", "error", err)
	return err
}

// resolveTheme parses name, asking auto for "auto".
func resolveTheme(name string, auto func() theme.Theme) (theme.Theme, error) {
	if name == "" || name == "auto" {
		return auto(), nil
	}
	t, ok := theme.Parse(name)
	if !ok {
		return 0, fmt.Errorf("unknown theme %q", name)
	}
	return t, nil
}

func orDefault(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}
