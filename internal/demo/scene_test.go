package demo

import (
	"testing"

	"github.com/stipple-dev/stipple"
	"github.com/stipple-dev/stipple/internal/config"
	"github.com/stipple-dev/stipple/internal/engine/picking"
	"github.com/stipple-dev/stipple/pkg/math"
)

type recordedLine struct {
	from, to  math.Vec3
	color     stipple.Color
	duration  float32
	depthTest bool
}

type lineRecorder struct {
	lines []recordedLine
}

func (r *lineRecorder) DrawLine(start, end math.Vec3, color stipple.Color, duration float32, depthTest bool) {
	r.lines = append(r.lines, recordedLine{start, end, color, duration, depthTest})
}

func drawFrame(cfg *config.Config) *lineRecorder {
	rec := &lineRecorder{}
	d := stipple.NewDrawer(rec)
	d.SetClock(func() float64 { return 0 })
	newScene(cfg).draw(d, 0)
	return rec
}

func TestSceneDrawEmitsGeometry(t *testing.T) {
	rec := drawFrame(config.Default())

	if len(rec.lines) == 0 {
		t.Fatal("scene frame emitted no lines")
	}
	for i, l := range rec.lines {
		if l.duration != 0 {
			t.Errorf("line %d: duration = %v, scene geometry must be per-frame", i, l.duration)
		}
	}
}

func TestSceneTogglesGridAndAxes(t *testing.T) {
	full := len(drawFrame(config.Default()).lines)

	cfg := config.Default()
	cfg.Scene.ShowGrid = false
	cfg.Scene.ShowAxes = false
	bare := len(drawFrame(cfg).lines)

	// Grid extent 10 at step 1 is 21 lines each way, plus 3 axis arms.
	if diff := full - bare; diff != 45 {
		t.Errorf("grid+axes line count = %d, want 45", diff)
	}
}

func TestSceneSweepHitsFirstObstacle(t *testing.T) {
	s := newScene(config.Default())

	// At t=0 the sweep points along +X straight into the first box.
	ray := picking.Ray{Origin: math.Vec3{Y: 0.8}, Direction: math.Vec3{X: 1}}
	hit := s.raycastObstacles(ray, sweepRange)
	if hit == nil {
		t.Fatal("sweep ray at t=0 missed, want hit on first obstacle")
	}
	if !approx(hit.Distance, 3.25) {
		t.Errorf("hit distance = %v, want 3.25", hit.Distance)
	}
	if !approx(hit.Normal.X, -1) || !approx(hit.Normal.Y, 0) || !approx(hit.Normal.Z, 0) {
		t.Errorf("hit normal = %+v, want (-1,0,0)", hit.Normal)
	}
	if !approx(hit.Point.X, 3.25) || !approx(hit.Point.Y, 0.8) {
		t.Errorf("hit point = %+v, want (3.25, 0.8, 0)", hit.Point)
	}
}

func TestRaycastObstaclesMiss(t *testing.T) {
	s := newScene(config.Default())

	up := picking.Ray{Origin: math.Vec3{Y: 0.8}, Direction: math.Vec3{Y: 1}}
	if hit := s.raycastObstacles(up, sweepRange); hit != nil {
		t.Errorf("upward ray hit %+v, want nil", hit)
	}
}

func TestRaycastObstaclesRange(t *testing.T) {
	s := newScene(config.Default())

	ray := picking.Ray{Origin: math.Vec3{Y: 0.8}, Direction: math.Vec3{X: 1}}
	if hit := s.raycastObstacles(ray, 2); hit != nil {
		t.Errorf("hit at distance %v beyond range 2, want nil", hit.Distance)
	}
}

func approx(got, want float32) bool {
	d := got - want
	return d > -1e-4 && d < 1e-4
}
