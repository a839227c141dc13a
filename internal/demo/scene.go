// Package demo implements the interactive showcase scene for the viewer.
package demo

import (
	gomath "math"

	"github.com/stipple-dev/stipple"
	"github.com/stipple-dev/stipple/internal/config"
	"github.com/stipple-dev/stipple/internal/engine/picking"
	"github.com/stipple-dev/stipple/pkg/math"
)

// sweepRange is how far the radar-style sweep ray reaches.
const sweepRange = 8

// Scene is the showcase scene: a ground grid, box obstacles, one of
// every wireframe shape, and a sweeping raycast probing the obstacles.
type Scene struct {
	cfg       *config.Config
	dash      stipple.DashConfig
	obstacles []picking.AABB
}

func newScene(cfg *config.Config) *Scene {
	dash := stipple.DefaultDashConfig()
	dash.SegmentLength = cfg.Style.SegmentLength
	dash.Spacing = cfg.Style.Spacing
	dash.TimeScale = cfg.Style.TimeScale
	dash.DepthTest = cfg.Style.DepthTest

	return &Scene{
		cfg:  cfg,
		dash: dash,
		obstacles: []picking.AABB{
			picking.NewAABB(math.Vec3{X: 3.25, Y: 0, Z: -0.75}, math.Vec3{X: 4.75, Y: 1.5, Z: 0.75}),
			picking.NewAABB(math.Vec3{X: -4, Y: 0, Z: 2}, math.Vec3{X: -2, Y: 2, Z: 4}),
			picking.NewAABB(math.Vec3{X: -1.5, Y: 0, Z: -4.6}, math.Vec3{X: 1.5, Y: 1.2, Z: -3.4}),
		},
	}
}

// draw issues one frame of showcase geometry. now is the animation
// clock in seconds; it drives the shape motion while the drawer's own
// clock drives the dash phase.
func (s *Scene) draw(d *stipple.Drawer, now float64) {
	t := float32(now)

	if s.cfg.Scene.ShowGrid {
		d.DrawGrid(math.Vec3{}, s.cfg.Scene.GridExtent, s.cfg.Scene.GridStep, stipple.LineStyle{
			Color:     stipple.Color{R: 0.3, G: 0.3, B: 0.35, A: 1},
			DepthTest: true,
		})
	}
	if s.cfg.Scene.ShowAxes {
		d.DrawAxes(math.Vec3{}, math.QuatIdentity(), 1.5, 0, true)
	}

	for _, box := range s.obstacles {
		d.DrawWireframeBox(box.Center(), math.QuatIdentity(), box.Size(), stipple.LineStyle{
			Color:     stipple.ColorGray,
			DepthTest: true,
		})
	}

	// Marching dashes along a line whose far end bobs up and down
	line := s.dash
	line.Color = stipple.ColorCyan
	lineEnd := math.Vec3{X: 6, Y: 0.05, Z: -6}.Lerp(
		math.Vec3{X: 6, Y: 2.5, Z: -6}, 0.5+0.5*float32(gomath.Sin(float64(t*0.9))))
	d.DrawSegmentedLine(math.Vec3{X: -6, Y: 0.05, Z: -6}, lineEnd, line)

	// The dash phase flows across the joints of a zig-zag path
	path := s.dash
	path.Color = stipple.ColorYellow
	d.DrawSegmentedPath([]math.Vec3{
		{X: -6, Y: 0, Z: 6},
		{X: -4, Y: 1.2, Z: 6},
		{X: -2, Y: 0, Z: 6},
		{X: 0, Y: 1.2, Z: 6},
		{X: 2, Y: 0, Z: 6},
	}, false, path)

	// Rectangle rocking between two orientations over the first obstacle
	rect := s.dash
	rect.Color = stipple.ColorOrange
	rectA := math.QuatFromAxisAngle(math.Vec3{Y: 1}, -0.8)
	rectB := math.QuatFromAxisAngle(math.Vec3{Y: 1}, 0.8)
	blend := 0.5 + 0.5*float32(gomath.Sin(float64(t*0.7)))
	d.DrawSegmentedRectangle(math.Vec3{X: 4, Y: 2.5}, rectA.Slerp(rectB, blend),
		math.Vec2{X: 1.6, Y: 1}, rect)

	// Pulsing circle hanging over the second obstacle
	radius := 0.8 + 0.2*float32(gomath.Sin(float64(t)))
	circleRot := math.QuatFromAxisAngle(math.Vec3{X: 1}, gomath.Pi/2)
	d.DrawLine(math.Vec3{X: -3, Y: 2, Z: 3}, math.Vec3{X: -3, Y: 3.2, Z: 3}, stipple.LineStyle{
		Color:     stipple.ColorGray,
		DepthTest: true,
	})
	d.DrawWireframeCircle(math.Vec3{X: -3, Y: 3.2, Z: 3}, circleRot,
		math.Vec2{X: radius, Y: radius}, 24, stipple.LineStyle{
			Color:     stipple.ColorMagenta,
			DepthTest: true,
		})

	// Tumbling sphere over the third obstacle
	sphereAxis := math.Vec3{X: 0.6, Y: 0.8}.Normalize()
	sphereRot := math.QuatFromAxisAngle(sphereAxis, t*0.8)
	d.DrawWireframeSphere(math.Vec3{Y: 2.6, Z: -4}, sphereRot,
		math.Vec3{X: 0.9, Y: 0.9, Z: 0.9}, 24, stipple.LineStyle{
			Color:     stipple.ColorGreen,
			DepthTest: true,
		})

	// Sweep emitter marker
	d.DrawCross(math.Vec3{Y: 0.8}, 0.3, stipple.LineStyle{
		Color:     stipple.ColorWhite,
		DepthTest: true,
	})
	s.drawSweep(d, t)
}

// drawSweep casts a ray rotating about the scene center and visualizes
// the nearest obstacle hit.
func (s *Scene) drawSweep(d *stipple.Drawer, t float32) {
	angle := float64(t * 0.5)
	ray := picking.Ray{
		Origin:    math.Vec3{Y: 0.8},
		Direction: math.Vec3{X: float32(gomath.Cos(angle)), Z: float32(gomath.Sin(angle))},
	}

	hit := s.raycastObstacles(ray, sweepRange)
	d.DrawRaycast(ray.Origin, ray.Direction, hit, sweepRange, stipple.DefaultRaycastStyle())
}

// bounds returns the extent of the showcase geometry for camera framing.
func (s *Scene) bounds() (math.Vec3, math.Vec3) {
	e := s.cfg.Scene.GridExtent
	return math.Vec3{X: -e, Z: -e}, math.Vec3{X: e, Y: 4, Z: e}
}

// raycastObstacles returns the nearest obstacle hit within maxDistance,
// or nil when the ray misses everything.
func (s *Scene) raycastObstacles(r picking.Ray, maxDistance float32) *stipple.RayHit {
	var best *stipple.RayHit
	for _, box := range s.obstacles {
		dist, normal, ok := r.IntersectAABB(box)
		if !ok || dist > maxDistance {
			continue
		}
		if best != nil && dist >= best.Distance {
			continue
		}
		best = &stipple.RayHit{
			Point:    r.Origin.Add(r.Direction.Scale(dist)),
			Normal:   normal,
			Distance: dist,
		}
	}
	return best
}
