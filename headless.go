package main

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"path/filepath"
	"strings"

	"github.com/olivier-w/backdrop/internal/config"
	"github.com/olivier-w/backdrop/internal/page"
	"github.com/olivier-w/backdrop/internal/particles"
	"github.com/olivier-w/backdrop/internal/pointer"
	"github.com/olivier-w/backdrop/internal/surface"
	"github.com/olivier-w/backdrop/internal/telemetry"
	"github.com/olivier-w/backdrop/internal/theme"
	"github.com/olivier-w/backdrop/internal/waves"
)

const (
	headlessFPS    = 60
	orbitPeriod    = 240 // frames per pointer revolution
	traceFlushRows = 120
)

type headlessOptions struct {
	Width  float64
	Height float64
	Frames int
	Trace  string
	Orbit  bool
	Seed   uint64
}

// runHeadless simulates both animations without drawing, scrolling once
// down the page over the run. It returns the last frame's record.
func runHeadless(cfg *config.Config, themeFlag *theme.Flag, opts headlessOptions) (telemetry.FrameRecord, error) {
	var last telemetry.FrameRecord

	rec, err := telemetry.NewRecorder(opts.Trace, traceFlushRows)
	if err != nil {
		return last, err
	}
	defer rec.Close()

	if opts.Trace != "" {
		snapshot := strings.TrimSuffix(opts.Trace, filepath.Ext(opts.Trace)) + ".config.yaml"
		if err := cfg.WriteYAML(snapshot); err != nil {
			return last, err
		}
	}

	var rng *rand.Rand
	if opts.Seed != 0 {
		rng = rand.New(rand.NewPCG(opts.Seed, opts.Seed))
	}

	layout := page.Build(cfg.PageParams(), opts.Width, opts.Height)
	scroller := page.NewScroller(headlessFPS, cfg.Window.ScrollFrequency, cfg.Window.ScrollDamping)
	scroller.SetLimit(layout.MaxScroll())

	pf := particles.NewField(nil, cfg.ParticleParams(), themeFlag.Get())
	wf := waves.NewField(cfg.WaveParams(), waves.LCh, themeFlag.Get(), rng)
	themeFlag.OnChange(pf.OnThemeChange)
	themeFlag.OnChange(wf.OnThemeChange)

	scenes := make(map[string]*surface.Scene)
	pf.Reconfigure(opts.Width, opts.Height, themeFlag.Get())
	wf.Reconfigure(waves.FromLayout(layout.Content(), scenes), opts.Height, themeFlag.Get())

	slog.Info("starting headless run",
		"width", opts.Width,
		"height", opts.Height,
		"frames", opts.Frames,
		"particles", pf.Len(),
		"systems", len(wf.Systems()),
		"theme", themeFlag.Get().String(),
	)

	clock := waves.NewClock(cfg.Waves.Speed)
	vp := pointer.Viewport{W: opts.Width, H: opts.Height}
	for i := range opts.Frames {
		scroller.ScrollTo(layout.MaxScroll() * float64(i) / float64(max(1, opts.Frames-1)))
		scroll := scroller.Step()

		ptr := pointer.Absent
		if opts.Orbit {
			x, y := orbit(i, opts.Width, opts.Height)
			ptr = pointer.Locate(x, y, vp, layout.Hero().Rect(scroll))
		}
		pf.SetPointer(ptr)
		pf.Tick()

		now := clock.Advance()
		wf.Tick(now, scroll)

		last = telemetry.Sample(i, now, scroll, pf, wf)
		last.PointerX, last.PointerY, last.PointerOn = ptr.Position()
		if err := rec.Write(last); err != nil {
			return last, err
		}
		if rec != nil && i > 0 && i%traceFlushRows == 0 {
			slog.Debug("trace flushed", "rows", rec.Rows())
		}
	}

	if err := rec.Close(); err != nil {
		return last, fmt.Errorf("closing trace: %w", err)
	}
	slog.Info("headless run finished", "frames", opts.Frames, "trace_rows", rec.Rows())
	return last, nil
}

// orbit places the scripted pointer on a circle around the viewport centre.
func orbit(frame int, w, h float64) (float64, float64) {
	r := math.Min(w, h) / 4
	a := 2 * math.Pi * float64(frame) / orbitPeriod
	return w/2 + r*math.Cos(a), h/2 + r*math.Sin(a)
}
