package camera

import (
	gomath "math"
	"testing"

	"github.com/stipple-dev/stipple/pkg/math"
)

func approx(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < 1e-4
}

func TestPositionStraightBack(t *testing.T) {
	c := NewOrbitCamera()
	c.Distance = 10
	c.RotationX = 0
	c.RotationY = 0

	pos := c.Position()
	if !approx(pos.X, 0) || !approx(pos.Y, 0) || !approx(pos.Z, 10) {
		t.Errorf("expected camera at (0,0,10), got %v", pos)
	}
}

func TestPositionYawQuarterTurn(t *testing.T) {
	c := NewOrbitCamera()
	c.Distance = 10
	c.RotationX = 0
	c.RotationY = float32(gomath.Pi / 2)

	pos := c.Position()
	if !approx(pos.X, 10) || !approx(pos.Y, 0) || !approx(pos.Z, 0) {
		t.Errorf("expected camera at (10,0,0), got %v", pos)
	}
}

func TestPositionFollowsCenter(t *testing.T) {
	c := NewOrbitCamera()
	c.Distance = 5
	c.RotationX = 0
	c.RotationY = 0
	c.SetCenter(math.Vec3{X: 1, Y: 2, Z: 3})

	pos := c.Position()
	if !approx(pos.X, 1) || !approx(pos.Y, 2) || !approx(pos.Z, 8) {
		t.Errorf("expected camera at (1,2,8), got %v", pos)
	}
}

func TestZoomClamped(t *testing.T) {
	c := NewOrbitCamera()

	for i := 0; i < 100; i++ {
		c.HandleZoom(1)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("expected distance clamped to %v, got %v", c.MinDistance, c.Distance)
	}

	for i := 0; i < 200; i++ {
		c.HandleZoom(-1)
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("expected distance clamped to %v, got %v", c.MaxDistance, c.Distance)
	}
}

func TestDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera()

	c.HandleDrag(0, 10000)
	if c.RotationX != c.MaxPitch {
		t.Errorf("expected pitch clamped to %v, got %v", c.MaxPitch, c.RotationX)
	}

	c.HandleDrag(0, -20000)
	if c.RotationX != c.MinPitch {
		t.Errorf("expected pitch clamped to %v, got %v", c.MinPitch, c.RotationX)
	}
}

func TestFitToBounds(t *testing.T) {
	c := NewOrbitCamera()
	c.FitToBounds(math.Vec3{X: -10, Y: 0, Z: -10}, math.Vec3{X: 10, Y: 5, Z: 10})

	if !approx(c.Center.X, 0) || !approx(c.Center.Y, 2.5) || !approx(c.Center.Z, 0) {
		t.Errorf("expected center (0, 2.5, 0), got %v", c.Center)
	}
	if !approx(c.Distance, 24) {
		t.Errorf("expected distance 24, got %v", c.Distance)
	}
}

func TestViewMatrixLooksAtCenter(t *testing.T) {
	c := NewOrbitCamera()
	c.Distance = 10
	c.RotationX = 0.3
	c.RotationY = 1.1
	c.SetCenter(math.Vec3{X: 2, Y: 1, Z: -3})

	view := c.ViewMatrix()

	// The center maps onto the view axis: x and y vanish, z is -distance
	p := view.TransformVec3(c.Center)
	if !approx(p.X, 0) || !approx(p.Y, 0) || !approx(p.Z, -10) {
		t.Errorf("center in view space = %v, want (0, 0, -10)", p)
	}
}
