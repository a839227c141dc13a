// Package stipple draws animated dashed lines and wireframe shapes for
// runtime debugging: segmented paths, rectangles, circles, spheres, and
// annotated raycasts. Every operation decomposes into single colored 3D
// segments issued through a LineDrawer, keeping the package independent
// of any particular rendering backend.
//
// All operations are total functions: degenerate inputs (non-positive
// lengths, transparent colors, zero segment counts) silently draw
// nothing instead of returning an error.
package stipple

import (
	"time"

	"github.com/stipple-dev/stipple/pkg/math"
)

// LineDrawer renders a single 3D line segment. duration is how long the
// segment stays visible in seconds, with zero meaning the current frame
// only; depthTest selects whether scene geometry occludes the segment.
// Implementations must accept zero-duration draws re-issued every frame.
type LineDrawer interface {
	DrawLine(start, end math.Vec3, color Color, duration float32, depthTest bool)
}

// LineStyle carries the appearance parameters shared by the wireframe
// operations.
type LineStyle struct {
	Color     Color
	Duration  float32
	DepthTest bool
}

// Drawer issues debug geometry to a LineDrawer. It keeps no geometry of
// its own: every call re-derives its segments from the arguments and the
// current clock reading. A Drawer is driven from a single rendering
// goroutine; its operations are not safe for concurrent use.
type Drawer struct {
	lines LineDrawer
	clock func() float64
}

// NewDrawer returns a Drawer issuing segments to lines. Animation time
// starts at zero and advances with the wall clock.
func NewDrawer(lines LineDrawer) *Drawer {
	start := time.Now()
	return &Drawer{
		lines: lines,
		clock: func() float64 { return time.Since(start).Seconds() },
	}
}

// SetClock replaces the animation time source with the host's own frame
// clock. Readings must be in seconds and monotonically non-decreasing.
// A nil clock is ignored.
func (d *Drawer) SetClock(clock func() float64) {
	if clock != nil {
		d.clock = clock
	}
}

// DrawLine draws a single straight segment.
func (d *Drawer) DrawLine(start, end math.Vec3, style LineStyle) {
	col, ok := style.Color.resolve(ColorWhite)
	if !ok {
		return
	}
	d.lines.DrawLine(start, end, col, style.Duration, style.DepthTest)
}
