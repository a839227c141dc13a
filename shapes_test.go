package stipple

import (
	gomath "math"
	"testing"

	"github.com/stipple-dev/stipple/pkg/math"
)

func TestRectangleCorners(t *testing.T) {
	d, rec := newTestDrawer()
	center := math.Vec3{X: 1, Y: 1, Z: 1}
	// Solid config: one draw per edge, endpoints are the corners
	d.DrawSegmentedRectangle(center, math.QuatIdentity(), math.Vec2{X: 4, Y: 2}, DashConfig{SegmentLength: 1})

	if len(rec.lines) != 4 {
		t.Fatalf("expected 4 edges, got %d", len(rec.lines))
	}
	want := []math.Vec3{
		{X: 3, Y: 0, Z: 1},
		{X: 3, Y: 2, Z: 1},
		{X: -1, Y: 2, Z: 1},
		{X: -1, Y: 0, Z: 1},
	}
	for i, l := range rec.lines {
		if !approxVec(l.start, want[i]) || !approxVec(l.end, want[(i+1)%4]) {
			t.Errorf("edge %d: got %v -> %v, want %v -> %v", i, l.start, l.end, want[i], want[(i+1)%4])
		}
	}
}

func TestRectangleRotated(t *testing.T) {
	d, rec := newTestDrawer()
	rot := math.QuatFromAxisAngle(math.Vec3{Z: 1}, gomath.Pi/2)
	d.DrawSegmentedRectangle(math.Vec3{}, rot, math.Vec2{X: 4, Y: 2}, DashConfig{SegmentLength: 1})

	if len(rec.lines) != 4 {
		t.Fatalf("expected 4 edges, got %d", len(rec.lines))
	}
	// A quarter turn about Z maps the (+2, -1) corner to (1, 2)
	if got := rec.lines[0].start; !approxVec(got, math.Vec3{X: 1, Y: 2}) {
		t.Errorf("first corner: got %v, want (1, 2, 0)", got)
	}
}

func TestRectangleDashPhaseWrapsPerimeter(t *testing.T) {
	d, rec := newTestDrawer()
	// Perimeter 8 with period 2: dashes flow around the whole outline
	d.DrawSegmentedRectangle(math.Vec3{}, math.QuatIdentity(), math.Vec2{X: 2, Y: 2}, DashConfig{SegmentLength: 1, Spacing: 1})

	total := float32(0)
	for _, l := range rec.lines {
		total += l.start.Distance(l.end)
	}
	// Half the perimeter is drawn, half is gaps
	if !approx(total, 4) {
		t.Errorf("drawn length %v, want 4", total)
	}
}

func TestCircleChords(t *testing.T) {
	d, rec := newTestDrawer()
	center := math.Vec3{X: 2, Y: -1, Z: 3}
	d.DrawWireframeCircle(center, math.QuatIdentity(), math.Vec2{X: 2, Y: 2}, 8, LineStyle{})

	if len(rec.lines) != 8 {
		t.Fatalf("expected 8 chords, got %d", len(rec.lines))
	}

	wantChord := rec.lines[0].start.Distance(rec.lines[0].end)
	for i, l := range rec.lines {
		if got := l.start.Distance(center); !approx(got, 2) {
			t.Errorf("chord %d start radius %v, want 2", i, got)
		}
		if got := l.end.Distance(center); !approx(got, 2) {
			t.Errorf("chord %d end radius %v, want 2", i, got)
		}
		if got := l.start.Distance(l.end); !approx(got, wantChord) {
			t.Errorf("chord %d length %v, want %v", i, got, wantChord)
		}
	}
}

func TestCircleChordsConnect(t *testing.T) {
	d, rec := newTestDrawer()
	d.DrawWireframeCircle(math.Vec3{}, math.QuatIdentity(), math.Vec2{X: 1, Y: 1}, 6, LineStyle{})

	for i := 1; i < len(rec.lines); i++ {
		if rec.lines[i].start != rec.lines[i-1].end {
			t.Errorf("chord %d does not reuse the previous endpoint", i)
		}
	}
	// The ring closes back at the first point
	if !approxVec(rec.lines[len(rec.lines)-1].end, rec.lines[0].start) {
		t.Errorf("ring should close: last end %v, first start %v",
			rec.lines[len(rec.lines)-1].end, rec.lines[0].start)
	}
}

func TestCircleNonUniformScale(t *testing.T) {
	d, rec := newTestDrawer()
	d.DrawWireframeCircle(math.Vec3{}, math.QuatIdentity(), math.Vec2{X: 2, Y: 1}, 4, LineStyle{})

	if len(rec.lines) != 4 {
		t.Fatalf("expected 4 chords, got %d", len(rec.lines))
	}
	// Quarter steps land on the scaled axes
	want := []math.Vec3{
		{X: 2},
		{Y: 1},
		{X: -2},
		{Y: -1},
	}
	for i, l := range rec.lines {
		if !approxVec(l.start, want[i]) {
			t.Errorf("vertex %d: got %v, want %v", i, l.start, want[i])
		}
	}
}

func TestCircleRotatedIntoPlane(t *testing.T) {
	d, rec := newTestDrawer()
	// A quarter turn about X lays the ring into the XZ plane
	rot := math.QuatFromAxisAngle(math.Vec3{X: 1}, gomath.Pi/2)
	d.DrawWireframeCircle(math.Vec3{}, rot, math.Vec2{X: 1, Y: 1}, 8, LineStyle{})

	for i, l := range rec.lines {
		if !approx(l.start.Y, 0) || !approx(l.end.Y, 0) {
			t.Errorf("chord %d left the XZ plane: %v -> %v", i, l.start, l.end)
		}
	}
}

func TestCircleSuppression(t *testing.T) {
	cases := []struct {
		name     string
		scale    math.Vec2
		segments int
		style    LineStyle
	}{
		{"zero segments", math.Vec2{X: 1, Y: 1}, 0, LineStyle{}},
		{"negative segments", math.Vec2{X: 1, Y: 1}, -4, LineStyle{}},
		{"zero scale", math.Vec2{}, 8, LineStyle{}},
		{"transparent", math.Vec2{X: 1, Y: 1}, 8, LineStyle{Color: Color{R: 1, A: 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, rec := newTestDrawer()
			d.DrawWireframeCircle(math.Vec3{}, math.QuatIdentity(), tc.scale, tc.segments, tc.style)
			if len(rec.lines) != 0 {
				t.Errorf("expected no draws, got %d", len(rec.lines))
			}
		})
	}
}

func TestSphereDrawCount(t *testing.T) {
	d, rec := newTestDrawer()
	d.DrawWireframeSphere(math.Vec3{}, math.QuatIdentity(), math.Vec3{X: 1, Y: 1, Z: 1}, 6, LineStyle{})

	if len(rec.lines) != 18 {
		t.Fatalf("expected 3 rings of 6 chords, got %d draws", len(rec.lines))
	}
}

func TestSphereRingPlanes(t *testing.T) {
	d, rec := newTestDrawer()
	d.DrawWireframeSphere(math.Vec3{}, math.QuatIdentity(), math.Vec3{X: 1, Y: 1, Z: 1}, 6, LineStyle{})

	// Ring order: XY plane, then XZ, then YZ
	for i, l := range rec.lines[:6] {
		if !approx(l.start.Z, 0) || !approx(l.end.Z, 0) {
			t.Errorf("XY ring chord %d has Z: %v -> %v", i, l.start, l.end)
		}
	}
	for i, l := range rec.lines[6:12] {
		if !approx(l.start.Y, 0) || !approx(l.end.Y, 0) {
			t.Errorf("XZ ring chord %d has Y: %v -> %v", i, l.start, l.end)
		}
	}
	for i, l := range rec.lines[12:18] {
		if !approx(l.start.X, 0) || !approx(l.end.X, 0) {
			t.Errorf("YZ ring chord %d has X: %v -> %v", i, l.start, l.end)
		}
	}

	// Uniform scale keeps every vertex on the unit sphere
	for i, l := range rec.lines {
		if !approx(l.start.Length(), 1) || !approx(l.end.Length(), 1) {
			t.Errorf("chord %d not on the sphere: %v -> %v", i, l.start, l.end)
		}
	}
}

func TestSphereScalePairs(t *testing.T) {
	d, rec := newTestDrawer()
	// Quarter steps make each ring start on its first scaled axis
	d.DrawWireframeSphere(math.Vec3{}, math.QuatIdentity(), math.Vec3{X: 2, Y: 3, Z: 4}, 4, LineStyle{})

	if len(rec.lines) != 12 {
		t.Fatalf("expected 12 draws, got %d", len(rec.lines))
	}
	// XY ring: spans 2 along X, 3 along Y
	if !approxVec(rec.lines[0].start, math.Vec3{X: 2}) || !approxVec(rec.lines[0].end, math.Vec3{Y: 3}) {
		t.Errorf("XY ring start: %v -> %v", rec.lines[0].start, rec.lines[0].end)
	}
	// XZ ring: spans 2 along X, 4 along Z
	if !approxVec(rec.lines[4].start, math.Vec3{X: 2}) || !approxVec(rec.lines[4].end, math.Vec3{Z: 4}) {
		t.Errorf("XZ ring start: %v -> %v", rec.lines[4].start, rec.lines[4].end)
	}
	// YZ ring: spans 4 along -Z first, 3 along Y
	if !approxVec(rec.lines[8].start, math.Vec3{Z: -4}) || !approxVec(rec.lines[8].end, math.Vec3{Y: 3}) {
		t.Errorf("YZ ring start: %v -> %v", rec.lines[8].start, rec.lines[8].end)
	}
}
