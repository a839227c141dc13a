package stipple

import (
	gomath "math"

	"github.com/stipple-dev/stipple/pkg/math"
)

// Quarter turns aligning a sphere's second and third circles to their
// planes before the caller's rotation applies.
var (
	sphereTiltX = math.QuatFromAxisAngle(math.Vec3{X: 1}, gomath.Pi/2)
	sphereTiltY = math.QuatFromAxisAngle(math.Vec3{Y: 1}, gomath.Pi/2)
)

// DrawSegmentedRectangle draws a dashed rectangle outline. The rectangle
// lies in its rotated XY plane: size.X spans the rotated X axis, size.Y
// the rotated Y axis, centered on center. The dash pattern runs around
// the perimeter as one closed loop.
func (d *Drawer) DrawSegmentedRectangle(center math.Vec3, rotation math.Quat, size math.Vec2, cfg DashConfig) {
	half := size.Scale(0.5)

	// Counter-clockwise from the (+x, -y) corner
	corners := []math.Vec3{
		center.Add(rotation.Rotate(math.Vec3{X: half.X, Y: -half.Y})),
		center.Add(rotation.Rotate(math.Vec3{X: half.X, Y: half.Y})),
		center.Add(rotation.Rotate(math.Vec3{X: -half.X, Y: half.Y})),
		center.Add(rotation.Rotate(math.Vec3{X: -half.X, Y: -half.Y})),
	}
	d.DrawSegmentedPath(corners, true, cfg)
}

// DrawWireframeCircle approximates a circle with segments straight
// chords. The circle starts on the unit XY circle, is scaled by scale in
// that plane, then rotated into world orientation. Draws nothing when
// the scale has zero magnitude, segments < 1, or the resolved color is
// fully transparent.
func (d *Drawer) DrawWireframeCircle(center math.Vec3, rotation math.Quat, scale math.Vec2, segments int, style LineStyle) {
	col, ok := style.Color.resolve(ColorWhite)
	if !ok || segments < 1 || scale.Length() == 0 {
		return
	}

	// One combined transform for the whole ring, applied per vertex
	m := rotation.ToMat4().Mul(math.Scale(scale.X, scale.Y, 1))

	step := 2 * gomath.Pi / float64(segments)
	prev := center.Add(m.TransformVec3(math.Vec3{X: 1}))
	for k := 1; k <= segments; k++ {
		angle := step * float64(k)
		p := center.Add(m.TransformVec3(math.Vec3{
			X: float32(gomath.Cos(angle)),
			Y: float32(gomath.Sin(angle)),
		}))
		d.lines.DrawLine(prev, p, col, style.Duration, style.DepthTest)
		prev = p
	}
}

// DrawWireframeSphere sketches a sphere as three orthogonal circles, one
// per local plane, each scaled by the matching pair of scale components.
func (d *Drawer) DrawWireframeSphere(center math.Vec3, rotation math.Quat, scale math.Vec3, segments int, style LineStyle) {
	d.DrawWireframeCircle(center, rotation, math.Vec2{X: scale.X, Y: scale.Y}, segments, style)
	d.DrawWireframeCircle(center, rotation.Mul(sphereTiltX), math.Vec2{X: scale.X, Y: scale.Z}, segments, style)
	d.DrawWireframeCircle(center, rotation.Mul(sphereTiltY), math.Vec2{X: scale.Z, Y: scale.Y}, segments, style)
}
