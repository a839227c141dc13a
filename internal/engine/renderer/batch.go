package renderer

import (
	"github.com/stipple-dev/stipple"
	"github.com/stipple-dev/stipple/pkg/math"
)

// line is one queued segment. expiresAt is in seconds on the frame
// clock; frame-only lines never set it.
type line struct {
	from, to  math.Vec3
	color     stipple.Color
	expiresAt float64
	depthTest bool
}

// batch queues lines between frames. Frame-only lines (duration <= 0)
// live until the next begin; timed lines are kept and re-rendered until
// they expire.
type batch struct {
	now   float64
	frame []line
	timed []line
}

// begin starts a new frame at the given clock reading, dropping the
// previous frame's lines and any timed lines that have expired.
func (b *batch) begin(now float64) {
	b.now = now
	kept := b.timed[:0]
	for _, l := range b.timed {
		if l.expiresAt > now {
			kept = append(kept, l)
		}
	}
	b.timed = kept
	b.frame = b.frame[:0]
}

// add queues a line. A positive duration keeps it visible that many
// seconds from the current frame's clock reading.
func (b *batch) add(l line, duration float32) {
	if duration > 0 {
		l.expiresAt = b.now + float64(duration)
		b.timed = append(b.timed, l)
		return
	}
	b.frame = append(b.frame, l)
}

// count returns the number of lines queued for the current frame.
func (b *batch) count() int {
	return len(b.frame) + len(b.timed)
}

// floatsPerVertex is position (3) plus RGBA color (4).
const floatsPerVertex = 7

// appendVertices splits the queued lines into the depth-tested and
// overlay vertex streams, appending to the given slices.
func (b *batch) appendVertices(depth, overlay []float32) ([]float32, []float32) {
	for _, l := range b.timed {
		depth, overlay = appendLine(depth, overlay, l)
	}
	for _, l := range b.frame {
		depth, overlay = appendLine(depth, overlay, l)
	}
	return depth, overlay
}

func appendLine(depth, overlay []float32, l line) ([]float32, []float32) {
	dst := &overlay
	if l.depthTest {
		dst = &depth
	}
	*dst = append(*dst,
		l.from.X, l.from.Y, l.from.Z, l.color.R, l.color.G, l.color.B, l.color.A,
		l.to.X, l.to.Y, l.to.Z, l.color.R, l.color.G, l.color.B, l.color.A,
	)
	return depth, overlay
}
