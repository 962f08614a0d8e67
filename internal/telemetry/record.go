// Package telemetry writes per-frame simulation summaries to CSV.
package telemetry

import (
	"math"

	"github.com/olivier-w/backdrop/internal/particles"
	"github.com/olivier-w/backdrop/internal/waves"
)

// FrameRecord is one CSV row.
type FrameRecord struct {
	Frame        int     `csv:"frame"`
	Time         float64 `csv:"time"`
	PointerX     float64 `csv:"pointer_x"`
	PointerY     float64 `csv:"pointer_y"`
	PointerOn    bool    `csv:"pointer_on"`
	Particles    int     `csv:"particles"`
	Held         int     `csv:"held"`
	Kinetic      float64 `csv:"kinetic"`
	Displacement float64 `csv:"displacement"`
	Systems      int     `csv:"systems"`
	Layers       int     `csv:"layers"`
	WaveMinY     float64 `csv:"wave_min_y"`
	WaveMaxY     float64 `csv:"wave_max_y"`
}

// Sample summarises both fields after a frame. The wave extent is measured
// on the sampled top edges at the given time and scroll.
func Sample(frame int, time, scroll float64, pf *particles.Field, wf *waves.Field) FrameRecord {
	rec := FrameRecord{Frame: frame, Time: time}

	if pf != nil {
		st := pf.Stats()
		rec.Particles = st.Count
		rec.Held = st.Held
		rec.Kinetic = st.Kinetic
		rec.Displacement = st.Displacement
	}

	if wf != nil {
		minY, maxY := math.Inf(1), math.Inf(-1)
		prm := wf.Params()
		for _, sys := range wf.Systems() {
			rec.Systems++
			for _, l := range sys.Layers {
				rec.Layers++
				for _, c := range waves.Outline(l, sys.Geometry, time, scroll, prm) {
					// Only the sampled edge; the corners sit on the seal line.
					if c.Y >= sys.Geometry.Height+prm.Seal {
						continue
					}
					minY = math.Min(minY, c.Y)
					maxY = math.Max(maxY, c.Y)
				}
			}
		}
		if rec.Layers > 0 && !math.IsInf(minY, 0) {
			rec.WaveMinY, rec.WaveMaxY = minY, maxY
		}
	}
	return rec
}
