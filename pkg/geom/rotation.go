package geom

import "math"

// AxisAngle is a rotation of Angle radians about the (normalized) Axis.
// It matches the rotation convention of scene-graph hosts that take
// axis-angle node orientations.
type AxisAngle struct {
	Axis  Vec3
	Angle float64
}

// Identity returns the no-op rotation about +z.
func Identity() AxisAngle {
	return AxisAngle{Axis: Vec3{Z: 1}}
}

// Yaw returns a rotation of angle radians about the +z axis.
func Yaw(angle float64) AxisAngle {
	return AxisAngle{Axis: Vec3{Z: 1}, Angle: angle}
}

// Apply rotates p by the axis-angle rotation (Rodrigues' formula).
func (r AxisAngle) Apply(p Vec3) Vec3 {
	axis := r.Axis.Normalize()
	if axis == (Vec3{}) {
		return p
	}
	s, c := math.Sin(r.Angle), math.Cos(r.Angle)
	term1 := p.Scale(c)
	term2 := axis.Cross(p).Scale(s)
	term3 := axis.Scale(axis.Dot(p) * (1 - c))
	return term1.Add(term2).Add(term3)
}

// Compose returns the rotation "r then other". Both axes must be
// parallel for the closed-form shortcut; otherwise it falls back to
// quaternion composition.
func (r AxisAngle) Compose(other AxisAngle) AxisAngle {
	a1 := r.Axis.Normalize()
	a2 := other.Axis.Normalize()
	if a1.Cross(a2).Length() < 1e-12 {
		sign := 1.0
		if a1.Dot(a2) < 0 {
			sign = -1
		}
		return AxisAngle{Axis: a1, Angle: r.Angle + sign*other.Angle}
	}
	return quatCompose(r, other)
}

func quatCompose(a, b AxisAngle) AxisAngle {
	qa := quatFrom(a)
	qb := quatFrom(b)
	q := [4]float64{
		qb[3]*qa[0] + qb[0]*qa[3] + qb[1]*qa[2] - qb[2]*qa[1],
		qb[3]*qa[1] - qb[0]*qa[2] + qb[1]*qa[3] + qb[2]*qa[0],
		qb[3]*qa[2] + qb[0]*qa[1] - qb[1]*qa[0] + qb[2]*qa[3],
		qb[3]*qa[3] - qb[0]*qa[0] - qb[1]*qa[1] - qb[2]*qa[2],
	}
	sinHalf := math.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2])
	if sinHalf < 1e-15 {
		return Identity()
	}
	return AxisAngle{
		Axis:  Vec3{q[0] / sinHalf, q[1] / sinHalf, q[2] / sinHalf},
		Angle: 2 * math.Atan2(sinHalf, q[3]),
	}
}

func quatFrom(r AxisAngle) [4]float64 {
	axis := r.Axis.Normalize()
	s, c := math.Sin(r.Angle/2), math.Cos(r.Angle/2)
	return [4]float64{axis.X * s, axis.Y * s, axis.Z * s, c}
}
