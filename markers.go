package stipple

import "github.com/stipple-dev/stipple/pkg/math"

// Box edges as corner-index pairs. Corner bit 0 flips X, bit 1 flips Y,
// bit 2 flips Z.
var boxEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7},
	{0, 2}, {1, 3}, {4, 6}, {5, 7},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// DrawWireframeBox draws the 12 edges of an oriented box. size is the
// full extent along each local axis.
func (d *Drawer) DrawWireframeBox(center math.Vec3, rotation math.Quat, size math.Vec3, style LineStyle) {
	col, ok := style.Color.resolve(ColorWhite)
	if !ok {
		return
	}

	half := size.Scale(0.5)
	var corners [8]math.Vec3
	for i := range corners {
		offset := half
		if i&1 != 0 {
			offset.X = -half.X
		}
		if i&2 != 0 {
			offset.Y = -half.Y
		}
		if i&4 != 0 {
			offset.Z = -half.Z
		}
		corners[i] = center.Add(rotation.Rotate(offset))
	}

	for _, e := range boxEdges {
		d.lines.DrawLine(corners[e[0]], corners[e[1]], col, style.Duration, style.DepthTest)
	}
}

// DrawAxes draws a right-handed axis marker at origin: X red, Y green,
// Z blue.
func (d *Drawer) DrawAxes(origin math.Vec3, rotation math.Quat, length float32, duration float32, depthTest bool) {
	if length <= 0 {
		return
	}
	d.lines.DrawLine(origin, origin.Add(rotation.Rotate(math.Vec3{X: length})), ColorRed, duration, depthTest)
	d.lines.DrawLine(origin, origin.Add(rotation.Rotate(math.Vec3{Y: length})), ColorGreen, duration, depthTest)
	d.lines.DrawLine(origin, origin.Add(rotation.Rotate(math.Vec3{Z: length})), ColorBlue, duration, depthTest)
}

// DrawCross marks a point with three axis-aligned ticks through it.
func (d *Drawer) DrawCross(center math.Vec3, size float32, style LineStyle) {
	col, ok := style.Color.resolve(ColorWhite)
	if !ok || size <= 0 {
		return
	}
	h := size / 2
	d.lines.DrawLine(center.Sub(math.Vec3{X: h}), center.Add(math.Vec3{X: h}), col, style.Duration, style.DepthTest)
	d.lines.DrawLine(center.Sub(math.Vec3{Y: h}), center.Add(math.Vec3{Y: h}), col, style.Duration, style.DepthTest)
	d.lines.DrawLine(center.Sub(math.Vec3{Z: h}), center.Add(math.Vec3{Z: h}), col, style.Duration, style.DepthTest)
}

// DrawGrid draws an XZ-plane reference grid centered on center, covering
// halfExtent out from it in both axes with the given line spacing.
func (d *Drawer) DrawGrid(center math.Vec3, halfExtent, step float32, style LineStyle) {
	col, ok := style.Color.resolve(ColorWhite)
	if !ok || halfExtent <= 0 || step <= 0 {
		return
	}

	n := int(halfExtent / step)
	for i := -n; i <= n; i++ {
		offset := float32(i) * step
		d.lines.DrawLine(
			center.Add(math.Vec3{X: offset, Z: -halfExtent}),
			center.Add(math.Vec3{X: offset, Z: halfExtent}),
			col, style.Duration, style.DepthTest)
		d.lines.DrawLine(
			center.Add(math.Vec3{X: -halfExtent, Z: offset}),
			center.Add(math.Vec3{X: halfExtent, Z: offset}),
			col, style.Duration, style.DepthTest)
	}
}
