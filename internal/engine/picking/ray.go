// Package picking provides ray casting and object picking utilities.
package picking

import (
	gomath "math"

	"github.com/stipple-dev/stipple/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// NewAABB creates an AABB from two corners, swapping axes as needed so
// Min is below Max on every axis.
func NewAABB(a, b math.Vec3) AABB {
	box := AABB{Min: a, Max: b}
	if box.Min.X > box.Max.X {
		box.Min.X, box.Max.X = box.Max.X, box.Min.X
	}
	if box.Min.Y > box.Max.Y {
		box.Min.Y, box.Max.Y = box.Max.Y, box.Min.Y
	}
	if box.Min.Z > box.Max.Z {
		box.Min.Z, box.Max.Z = box.Max.Z, box.Min.Z
	}
	return box
}

// Center returns the box midpoint.
func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box extent along each axis.
func (b AABB) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates, viewportW/H are viewport dimensions.
// invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	// Convert screen coords to normalized device coords (-1 to 1)
	ndcX := 2.0*screenX/viewportW - 1.0
	ndcY := 1.0 - 2.0*screenY/viewportH // Flip Y

	// Unproject near and far points
	nearWorld := invViewProj.MulVec4(math.Vec4{ndcX, ndcY, -1.0, 1.0})
	farWorld := invViewProj.MulVec4(math.Vec4{ndcX, ndcY, 1.0, 1.0})

	// Perspective divide
	if nearWorld[3] != 0 {
		nearWorld[0] /= nearWorld[3]
		nearWorld[1] /= nearWorld[3]
		nearWorld[2] /= nearWorld[3]
	}
	if farWorld[3] != 0 {
		farWorld[0] /= farWorld[3]
		farWorld[1] /= farWorld[3]
		farWorld[2] /= farWorld[3]
	}

	origin := math.Vec3{X: nearWorld[0], Y: nearWorld[1], Z: nearWorld[2]}
	far := math.Vec3{X: farWorld[0], Y: farWorld[1], Z: farWorld[2]}

	return Ray{Origin: origin, Direction: far.Sub(origin).Normalize()}
}

// IntersectPlaneY intersects the ray with a horizontal plane at the given
// Y level. Returns the intersection point and whether it is valid.
func (r Ray) IntersectPlaneY(planeY float32) (math.Vec3, bool) {
	// Solve Origin.Y + t * Direction.Y = planeY
	if gomath.Abs(float64(r.Direction.Y)) < 0.001 {
		return math.Vec3{}, false // Ray parallel to plane
	}

	t := (planeY - r.Origin.Y) / r.Direction.Y
	if t < 0 {
		return math.Vec3{}, false // Intersection behind ray origin
	}

	return r.Origin.Add(r.Direction.Scale(t)), true
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance along the ray, the outward face normal at the
// intersection, and whether an intersection occurred. If the ray starts
// inside the box, the exit face is reported.
func (r Ray) IntersectAABB(box AABB) (t float32, normal math.Vec3, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)
	var entryNormal, exitNormal math.Vec3

	// X slab
	if r.Direction.X != 0 {
		t1 := (box.Min.X - r.Origin.X) / r.Direction.X
		t2 := (box.Max.X - r.Origin.X) / r.Direction.X
		n := math.Vec3{X: -1}
		if t1 > t2 {
			t1, t2 = t2, t1
			n = math.Vec3{X: 1}
		}
		if t1 > tmin {
			tmin = t1
			entryNormal = n
		}
		if t2 < tmax {
			tmax = t2
			exitNormal = n.Scale(-1)
		}
	} else if r.Origin.X < box.Min.X || r.Origin.X > box.Max.X {
		return 0, math.Vec3{}, false
	}

	// Y slab
	if r.Direction.Y != 0 {
		t1 := (box.Min.Y - r.Origin.Y) / r.Direction.Y
		t2 := (box.Max.Y - r.Origin.Y) / r.Direction.Y
		n := math.Vec3{Y: -1}
		if t1 > t2 {
			t1, t2 = t2, t1
			n = math.Vec3{Y: 1}
		}
		if t1 > tmin {
			tmin = t1
			entryNormal = n
		}
		if t2 < tmax {
			tmax = t2
			exitNormal = n.Scale(-1)
		}
	} else if r.Origin.Y < box.Min.Y || r.Origin.Y > box.Max.Y {
		return 0, math.Vec3{}, false
	}

	// Z slab
	if r.Direction.Z != 0 {
		t1 := (box.Min.Z - r.Origin.Z) / r.Direction.Z
		t2 := (box.Max.Z - r.Origin.Z) / r.Direction.Z
		n := math.Vec3{Z: -1}
		if t1 > t2 {
			t1, t2 = t2, t1
			n = math.Vec3{Z: 1}
		}
		if t1 > tmin {
			tmin = t1
			entryNormal = n
		}
		if t2 < tmax {
			tmax = t2
			exitNormal = n.Scale(-1)
		}
	} else if r.Origin.Z < box.Min.Z || r.Origin.Z > box.Max.Z {
		return 0, math.Vec3{}, false
	}

	if tmax < tmin || tmax < 0 {
		return 0, math.Vec3{}, false
	}

	// Entry face, or exit face if starting inside
	if tmin < 0 {
		return tmax, exitNormal, true
	}
	return tmin, entryNormal, true
}
