package zmath

// Matrix4x4 is a column-major 4x4 matrix: element (row r, column c) lives at
// index c*4 + r, matching what GPU uniform uploads expect.
type Matrix4x4 [16]float32

// Identity is the identity matrix.
var Identity = Matrix4x4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// Mul returns m * b (b is applied first when transforming points).
func (m Matrix4x4) Mul(b Matrix4x4) Matrix4x4 {
	var out Matrix4x4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+r] * b[c*4+k]
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// Translation returns the translation column.
func (m Matrix4x4) Translation() Vector3 {
	return Vector3{m[12], m[13], m[14]}
}

// Inverse returns the inverse of m. ok is false when m is singular, in which
// case the identity is returned.
func (m Matrix4x4) Inverse() (Matrix4x4, bool) {
	a00, a01, a02, a03 := m[0], m[1], m[2], m[3]
	a10, a11, a12, a13 := m[4], m[5], m[6], m[7]
	a20, a21, a22, a23 := m[8], m[9], m[10], m[11]
	a30, a31, a32, a33 := m[12], m[13], m[14], m[15]

	b00 := a00*a11 - a01*a10
	b01 := a00*a12 - a02*a10
	b02 := a00*a13 - a03*a10
	b03 := a01*a12 - a02*a11
	b04 := a01*a13 - a03*a11
	b05 := a02*a13 - a03*a12
	b06 := a20*a31 - a21*a30
	b07 := a20*a32 - a22*a30
	b08 := a20*a33 - a23*a30
	b09 := a21*a32 - a22*a31
	b10 := a21*a33 - a23*a31
	b11 := a22*a33 - a23*a32

	det := b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
	if det == 0 {
		return Identity, false
	}
	inv := 1 / det

	return Matrix4x4{
		(a11*b11 - a12*b10 + a13*b09) * inv,
		(-a01*b11 + a02*b10 - a03*b09) * inv,
		(a31*b05 - a32*b04 + a33*b03) * inv,
		(-a21*b05 + a22*b04 - a23*b03) * inv,
		(-a10*b11 + a12*b08 - a13*b07) * inv,
		(a00*b11 - a02*b08 + a03*b07) * inv,
		(-a30*b05 + a32*b02 - a33*b01) * inv,
		(a20*b05 - a22*b02 + a23*b01) * inv,
		(a10*b10 - a11*b08 + a13*b06) * inv,
		(-a00*b10 + a01*b08 - a03*b06) * inv,
		(a30*b04 - a31*b02 + a33*b00) * inv,
		(-a20*b04 + a21*b02 - a23*b00) * inv,
		(-a10*b09 + a11*b07 - a12*b06) * inv,
		(a00*b09 - a01*b07 + a02*b06) * inv,
		(-a30*b03 + a31*b01 - a32*b00) * inv,
		(a20*b03 - a21*b01 + a22*b00) * inv,
	}, true
}

// TransformPoint applies m to p, including translation. The w row is
// ignored, which is exact for affine and orthographic matrices.
func (m Matrix4x4) TransformPoint(p Vector3) Vector3 {
	return Vector3{
		X: m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12],
		Y: m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13],
		Z: m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14],
	}
}

// TransformDirection applies m to d without translation.
func (m Matrix4x4) TransformDirection(d Vector3) Vector3 {
	return Vector3{
		X: m[0]*d.X + m[4]*d.Y + m[8]*d.Z,
		Y: m[1]*d.X + m[5]*d.Y + m[9]*d.Z,
		Z: m[2]*d.X + m[6]*d.Y + m[10]*d.Z,
	}
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) Matrix4x4 {
	m := Identity
	m[12], m[13], m[14] = x, y, z
	return m
}

// ScaleMatrix returns a non-uniform scale matrix.
func ScaleMatrix(x, y, z float32) Matrix4x4 {
	m := Identity
	m[0], m[5], m[10] = x, y, z
	return m
}

// Orthographic returns a right-handed, y-up orthographic projection.
func Orthographic(left, right, bottom, top, near, far float32) Matrix4x4 {
	rml, rpl := right-left, right+left
	tmb, tpb := top-bottom, top+bottom
	fmn, fpn := far-near, far+near
	return Matrix4x4{
		2 / rml, 0, 0, 0,
		0, 2 / tmb, 0, 0,
		0, 0, -2 / fmn, 0,
		-(rpl / rml), -(tpb / tmb), -(fpn / fmn), 1,
	}
}

// FromTRS builds translation * rotation * scale.
func FromTRS(t Vector3, r Quaternion, s Vector3) Matrix4x4 {
	return Translate(t.X, t.Y, t.Z).Mul(r.Matrix()).Mul(ScaleMatrix(s.X, s.Y, s.Z))
}
