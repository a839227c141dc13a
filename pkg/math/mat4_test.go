package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Scale(2, 3, 4)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3, 4)

	if m[0] != 2 || m[5] != 3 || m[10] != 4 {
		t.Errorf("Scale diagonal: got (%f, %f, %f), want (2, 3, 4)", m[0], m[5], m[10])
	}
}

func TestTransformVec3Scale(t *testing.T) {
	m := Scale(2, 2, 2)
	result := m.TransformVec3(Vec3{1, 2, 3})

	expected := Vec3{2, 4, 6}
	if result != expected {
		t.Errorf("TransformVec3 with scale: got %v, want %v", result, expected)
	}
}

func TestPerspective(t *testing.T) {
	fov := float32(math.Pi / 4) // 45 degrees
	aspect := float32(1.0)
	near := float32(0.1)
	far := float32(100.0)

	m := Perspective(fov, aspect, near, far)

	// Should be a valid projection matrix (not identity)
	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	// Element [15] should be 0 for perspective projection
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	// Element [11] should be -1 for perspective projection
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 0, 5}
	center := Vec3{0, 0, 0}
	up := Vec3{0, 1, 0}

	m := LookAt(eye, center, up)

	if m[15] != 1 {
		t.Errorf("LookAt [15] should be 1, got %f", m[15])
	}
	// The eye should land on the view-space origin
	p := m.TransformVec3(eye)
	if abs(p.X) > 0.001 || abs(p.Y) > 0.001 || abs(p.Z) > 0.001 {
		t.Errorf("LookAt should map eye to origin, got %v", p)
	}
}

func TestMulVec4(t *testing.T) {
	m := Scale(2, 3, 4)
	v := m.MulVec4(Vec4{1, 1, 1, 1})

	expected := Vec4{2, 3, 4, 1}
	if v != expected {
		t.Errorf("MulVec4: got %v, want %v", v, expected)
	}
}

func TestInverse(t *testing.T) {
	view := LookAt(Vec3{3, 4, 5}, Vec3{0, 1, 0}, Vec3{0, 1, 0})
	proj := Perspective(float32(math.Pi/3), 16.0/9.0, 0.1, 100)
	m := proj.Mul(view)

	result := m.Mul(m.Inverse())
	id := Identity()
	for i := 0; i < 16; i++ {
		if abs(result[i]-id[i]) > 0.001 {
			t.Errorf("M * Inverse(M) element %d: got %f, want %f", i, result[i], id[i])
		}
	}
}

func TestInverseSingular(t *testing.T) {
	m := Scale(0, 0, 0)
	if m.Inverse() != Identity() {
		t.Error("singular matrix should invert to identity")
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
