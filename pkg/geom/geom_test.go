package geom

import (
	"math"
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 0}
	n := v.Normalize()
	if d := math.Abs(n.Length() - 1); d > 1e-12 {
		t.Errorf("Vec3.Normalize().Length() = %v, want 1", n.Length())
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("zero vector should normalize to zero")
	}
}

func TestYawApply(t *testing.T) {
	r := Yaw(math.Pi / 2)
	got := r.Apply(Vec3{1, 0, 0})
	want := Vec3{0, 1, 0}
	if got.Distance(want) > 1e-12 {
		t.Errorf("Yaw(pi/2).Apply(+x) = %v, want %v", got, want)
	}
}

func TestYawHalfTurn(t *testing.T) {
	r := Yaw(math.Pi)
	got := r.Apply(Vec3{2.5, -1, 0.3})
	want := Vec3{-2.5, 1, 0.3}
	if got.Distance(want) > 1e-12 {
		t.Errorf("Yaw(pi).Apply() = %v, want %v", got, want)
	}
}

func TestComposeParallelAxes(t *testing.T) {
	r := Yaw(math.Pi / 4).Compose(Yaw(math.Pi / 4))
	got := r.Apply(Vec3{1, 0, 0})
	want := Vec3{0, 1, 0}
	if got.Distance(want) > 1e-12 {
		t.Errorf("composed yaw = %v, want %v", got, want)
	}
}

func TestComposeSkewAxes(t *testing.T) {
	rx := AxisAngle{Axis: Vec3{X: 1}, Angle: math.Pi / 2}
	rz := Yaw(math.Pi / 2)
	// Apply rz first, then rx: +x -> +y -> +z.
	r := rz.Compose(rx)
	got := r.Apply(Vec3{1, 0, 0})
	want := Vec3{0, 0, 1}
	if got.Distance(want) > 1e-12 {
		t.Errorf("composed rotation = %v, want %v", got, want)
	}
}

func TestMat4MulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	got := m.Mul(Mat4Identity())
	if got != m {
		t.Errorf("M * I = %v, want %v", got, m)
	}
}

func TestMat4TransformPoint(t *testing.T) {
	m := Translate(1, 2, 3)
	got := m.TransformPoint([3]float32{1, 1, 1})
	want := [3]float32{2, 3, 4}
	if got != want {
		t.Errorf("Translate.TransformPoint() = %v, want %v", got, want)
	}
}

func TestRotateAxisAngleMatchesApply(t *testing.T) {
	r := AxisAngle{Axis: Vec3{X: 1, Y: 1, Z: 0}, Angle: 1.1}
	m := RotateAxisAngle(r)
	p := Vec3{0.3, -0.7, 1.2}
	want := r.Apply(p)
	got := m.TransformPoint([3]float32{float32(p.X), float32(p.Y), float32(p.Z)})
	const eps = 1e-5
	if math.Abs(float64(got[0])-want.X) > eps ||
		math.Abs(float64(got[1])-want.Y) > eps ||
		math.Abs(float64(got[2])-want.Z) > eps {
		t.Errorf("matrix transform = %v, want %v", got, want)
	}
}

func TestLookAtKeepsEyeForward(t *testing.T) {
	view := LookAt([3]float32{0, 0, 10}, [3]float32{0, 0, 0}, [3]float32{0, 1, 0})
	got := view.TransformPoint([3]float32{0, 0, 0})
	// Center should land on the -z axis at the eye distance.
	if math.Abs(float64(got[0])) > 1e-6 || math.Abs(float64(got[1])) > 1e-6 || math.Abs(float64(got[2])+10) > 1e-5 {
		t.Errorf("LookAt center = %v, want (0,0,-10)", got)
	}
}
