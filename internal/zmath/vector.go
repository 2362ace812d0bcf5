// Package zmath provides the small float32 vector, matrix and quaternion
// toolkit used by the simulation and the renderers.
// It has no dependencies so every other package can use it freely.
package zmath

import "math"

// Pi as float32.
const Pi float32 = math.Pi

// Radians converts degrees to radians.
func Radians(degrees float32) float32 {
	return degrees * Pi / 180
}

// Vector2 is a 2D point or direction.
type Vector2 struct {
	X, Y float32
}

// V2 creates a Vector2.
func V2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v.X - o.X, v.Y - o.Y}
}

// Length returns the euclidean length.
func (v Vector2) Length() float32 {
	return sqrt(v.X*v.X + v.Y*v.Y)
}

// Vec3 lifts the point onto the z = 0 drawing plane.
func (v Vector2) Vec3() Vector3 {
	return Vector3{X: v.X, Y: v.Y}
}

// Vector3 is a 3D point or direction. All gameplay happens on z = 0.
type Vector3 struct {
	X, Y, Z float32
}

// Common directions.
var (
	Zero    = Vector3{}
	One     = Vector3{1, 1, 1}
	Up      = Vector3{0, 1, 0}
	Down    = Vector3{0, -1, 0}
	Right   = Vector3{1, 0, 0}
	Left    = Vector3{-1, 0, 0}
	Forward = Vector3{0, 0, 1}
	Back    = Vector3{0, 0, -1}
)

// V3 creates a Vector3.
func V3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Uniform returns a vector with all components set to s.
func Uniform(s float32) Vector3 {
	return Vector3{s, s, s}
}

// Add returns v + o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vector3) Scale(s float32) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Mul returns the component-wise product.
func (v Vector3) Mul(o Vector3) Vector3 {
	return Vector3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Neg returns -v.
func (v Vector3) Neg() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of a and b.
func Dot(a, b Vector3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a x b.
func Cross(a, b Vector3) Vector3 {
	return Vector3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Length returns the euclidean length.
func (v Vector3) Length() float32 {
	return sqrt(Dot(v, v))
}

// Normal returns v scaled to unit length.
// The zero vector is returned unchanged instead of producing NaN.
func (v Vector3) Normal() Vector3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// XY drops the z component.
func (v Vector3) XY() Vector2 {
	return Vector2{X: v.X, Y: v.Y}
}

// Distance returns |a - b|.
func Distance(a, b Vector3) float32 {
	return a.Sub(b).Length()
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi float32) float32 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

func sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

func cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}
