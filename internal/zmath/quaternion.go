package zmath

// Quaternion represents a rotation.
type Quaternion struct {
	X, Y, Z, W float32
}

// QuatIdentity is the no-rotation quaternion.
var QuatIdentity = Quaternion{W: 1}

// FromAngleAxis returns a rotation of angle radians around axis.
func FromAngleAxis(angle float32, axis Vector3) Quaternion {
	half := angle * 0.5
	s := sin(half)
	return Quaternion{X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s, W: cos(half)}.Normalized()
}

// Length returns the quaternion norm.
func (q Quaternion) Length() float32 {
	return sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalized returns q scaled to unit length.
func (q Quaternion) Normalized() Quaternion {
	l := q.Length()
	if l == 0 {
		return QuatIdentity
	}
	return Quaternion{q.X / l, q.Y / l, q.Z / l, q.W / l}
}

// Mul composes rotations: the result applies o first, then q.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		X: q.X*o.W + q.W*o.X + q.Y*o.Z - q.Z*o.Y,
		Y: q.Y*o.W + q.W*o.Y + q.Z*o.X - q.X*o.Z,
		Z: q.Z*o.W + q.W*o.Z + q.X*o.Y - q.Y*o.X,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// RotateVector rotates v by q.
func (q Quaternion) RotateVector(v Vector3) Vector3 {
	u := Vector3{q.X, q.Y, q.Z}
	uv := Cross(u, v)
	uuv := Cross(u, uv)
	return v.Add(uv.Scale(q.W).Add(uuv).Scale(2))
}

// Matrix converts q to a rotation matrix.
func (q Quaternion) Matrix() Matrix4x4 {
	q = q.Normalized()
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xz, xy, yz := q.X*q.Z, q.X*q.Y, q.Y*q.Z
	wx, wy, wz := q.W*q.X, q.W*q.Y, q.W*q.Z

	return Matrix4x4{
		1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy), 0,
		2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx), 0,
		2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy), 0,
		0, 0, 0, 1,
	}
}
