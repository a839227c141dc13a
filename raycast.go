package stipple

import (
	gomath "math"

	"github.com/stipple-dev/stipple/pkg/math"
)

// Rays with no usable distance bound are drawn this long.
const unboundedRayLength = 1000

// RayHit describes where a ray met scene geometry. It is produced by the
// host's collision queries; this package only consumes it.
type RayHit struct {
	Point    math.Vec3
	Normal   math.Vec3
	Distance float32
}

// RaycastStyle configures DrawRaycast. Zero-valued colors resolve to red
// for NoHitColor, green for HitColor, and blue for CollisionColor.
type RaycastStyle struct {
	// SphereRadius sizes the wireframe marker at the hit point.
	SphereRadius float32

	// SphereSegments is the chord count of each marker circle.
	SphereSegments int

	// HitColor draws the leftover ray past the hit point, NoHitColor the
	// ray up to the hit (or the whole ray on a miss), CollisionColor the
	// hit marker.
	HitColor       Color
	NoHitColor     Color
	CollisionColor Color

	Duration  float32
	DepthTest bool
}

// DefaultRaycastStyle returns the stock raycast appearance.
func DefaultRaycastStyle() RaycastStyle {
	return RaycastStyle{
		SphereRadius:   0.25,
		SphereSegments: 4,
		DepthTest:      true,
	}
}

// DrawRaycast visualizes one collision query. A miss draws the full ray
// in NoHitColor. A hit draws origin to hit point in NoHitColor, a
// wireframe sphere oriented from the hit normal in CollisionColor, and
// the leftover ray length past the hit in HitColor. Negative maxDistance
// draws nothing; an unbounded one is clamped to a practical length.
func (d *Drawer) DrawRaycast(origin, direction math.Vec3, hit *RayHit, maxDistance float32, style RaycastStyle) {
	if maxDistance < 0 {
		return
	}
	dir := direction.Normalize()

	noHit, drawNoHit := style.NoHitColor.resolve(ColorRed)

	if hit == nil {
		reach := maxDistance
		if gomath.IsInf(float64(reach), 1) {
			reach = unboundedRayLength
		}
		if drawNoHit {
			d.lines.DrawLine(origin, origin.Add(dir.Scale(reach)), noHit, style.Duration, style.DepthTest)
		}
		return
	}

	if drawNoHit {
		d.lines.DrawLine(origin, hit.Point, noHit, style.Duration, style.DepthTest)
	}

	if collision, ok := style.CollisionColor.resolve(ColorBlue); ok {
		orient := math.QuatBetween(math.Vec3{Y: 1}, hit.Normal)
		r := style.SphereRadius
		d.DrawWireframeSphere(hit.Point, orient, math.Vec3{X: r, Y: r, Z: r}, style.SphereSegments, LineStyle{
			Color:     collision,
			Duration:  style.Duration,
			DepthTest: style.DepthTest,
		})
	}

	remaining := maxDistance - hit.Distance
	if gomath.IsInf(float64(remaining), 1) {
		remaining = unboundedRayLength
	}
	if remaining > 0 {
		if hitCol, ok := style.HitColor.resolve(ColorGreen); ok {
			d.lines.DrawLine(hit.Point, hit.Point.Add(dir.Scale(remaining)), hitCol, style.Duration, style.DepthTest)
		}
	}
}
