package stipple

import (
	gomath "math"

	"github.com/stipple-dev/stipple/pkg/math"
)

// DashConfig controls how a line is cut into animated dashes.
type DashConfig struct {
	// SegmentLength is the drawn length of each dash in world units.
	// Values <= 0 suppress the whole call.
	SegmentLength float32

	// Spacing is the gap between dashes. Values <= 0 collapse the line
	// into one solid segment.
	Spacing float32

	// Color of the dashes. The zero value resolves to opaque white;
	// alpha <= 0 suppresses the call.
	Color Color

	// TimeScale scrolls the pattern along the line in world units per
	// second. Zero freezes it; negative scrolls backwards.
	TimeScale float32

	// Duration and DepthTest pass through to the line backend.
	Duration  float32
	DepthTest bool
}

// DefaultDashConfig returns the stock dash appearance: 0.4 units drawn,
// 0.2 skipped, no animation, depth tested.
func DefaultDashConfig() DashConfig {
	return DashConfig{
		SegmentLength: 0.4,
		Spacing:       0.2,
		DepthTest:     true,
	}
}

// period returns the length of one dash-plus-gap cycle.
func (c DashConfig) period() float32 {
	return c.SegmentLength + c.Spacing
}

// DrawSegmentedLine draws a dashed line from start to end.
func (d *Drawer) DrawSegmentedLine(start, end math.Vec3, cfg DashConfig) {
	d.dashLine(start, end, cfg, 0, d.clock())
}

// DrawSegmentedPath draws a dashed polyline through points in order. The
// dash phase carries across every joint, so the pattern flows through
// corners instead of restarting per edge. With loop set, one extra edge
// connects the last point back to the first. Fewer than two points draw
// nothing.
func (d *Drawer) DrawSegmentedPath(points []math.Vec3, loop bool, cfg DashConfig) {
	if len(points) < 2 {
		return
	}
	now := d.clock()
	var carry float32
	for i := 0; i < len(points)-1; i++ {
		carry = d.dashLine(points[i], points[i+1], cfg, carry, now)
	}
	if loop {
		// The loop closes here; the final carry has no edge to flow into.
		d.dashLine(points[len(points)-1], points[0], cfg, carry, now)
	}
}

// dashLine cuts one straight edge into dashes and returns how far the
// pattern ran past the edge's end, so a caller can thread the phase into
// the next edge. A positive carry means a dash is still in flight across
// the joint; zero or below means the next edge starts fresh and derives
// its scroll offset from the clock.
func (d *Drawer) dashLine(start, end math.Vec3, cfg DashConfig, carry float32, now float64) float32 {
	col, ok := cfg.Color.resolve(ColorWhite)
	if !ok {
		return 0
	}
	if cfg.SegmentLength <= 0 {
		return 0
	}

	delta := end.Sub(start)
	length := delta.Length()
	if length == 0 {
		// Nothing travelled, phase unchanged
		return carry
	}
	dir := delta.Scale(1 / length)

	// Gapless pattern: the whole edge is one dash
	if cfg.Spacing <= 0 {
		d.lines.DrawLine(start, end, col, cfg.Duration, cfg.DepthTest)
		return cfg.Spacing - length
	}

	period := cfg.period()

	// t is where the next whole dash starts, measured along the edge.
	var t float32
	if carry > 0 {
		t = carry
	} else {
		t = float32(gomath.Mod(now*float64(cfg.TimeScale), float64(period)))
	}

	switch {
	case t < 0:
		// Backwards scroll put the offset before the edge. The dash that
		// began one period earlier may still reach past the start; draw
		// its clipped tail, then fold forward a single period. Mod keeps
		// the offset above -period, so one fold is enough here.
		if tail := t + cfg.SegmentLength; tail > 0 {
			d.lines.DrawLine(start, start.Add(dir.Scale(min(tail, length))), col, cfg.Duration, cfg.DepthTest)
		}
		t += period
	case t > 0:
		// A dash from before this edge is still in flight. Finish its
		// clipped tail; the cursor already points at the next dash.
		if tail := t - cfg.Spacing; tail > 0 {
			d.lines.DrawLine(start, start.Add(dir.Scale(min(tail, length))), col, cfg.Duration, cfg.DepthTest)
		}
	}

	for t < length {
		from := start.Add(dir.Scale(t))
		to := start.Add(dir.Scale(min(t+cfg.SegmentLength, length)))
		d.lines.DrawLine(from, to, col, cfg.Duration, cfg.DepthTest)
		t += period
	}

	return t - length
}
