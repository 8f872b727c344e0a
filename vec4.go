package g3d

import (
	"math"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/g3d/internal/fmath"
)

// Vector4 is a 4-component vector, typically a homogeneous coordinate.
type Vector4 struct {
	X, Y, Z, W float64
}

// V4 is a convenience function to create a Vector4.
func V4(x, y, z, w float64) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Add returns the sum of two vectors.
func (v Vector4) Add(u Vector4) Vector4 {
	return Vector4{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z, W: v.W + u.W}
}

// Sub returns the difference of two vectors.
func (v Vector4) Sub(u Vector4) Vector4 {
	return Vector4{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z, W: v.W - u.W}
}

// Mul returns the vector scaled by a scalar.
func (v Vector4) Mul(s float64) Vector4 {
	return Vector4{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// Div returns the vector divided by a scalar.
func (v Vector4) Div(s float64) Vector4 {
	return Vector4{X: v.X / s, Y: v.Y / s, Z: v.Z / s, W: v.W / s}
}

// Neg returns the negation of the vector.
func (v Vector4) Neg() Vector4 {
	return Vector4{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

// Dot returns the dot product of two vectors.
func (v Vector4) Dot(u Vector4) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z + v.W*u.W
}

// Length returns the length (magnitude) of the vector.
func (v Vector4) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W)
}

// LengthSquared returns the squared length of the vector.
func (v Vector4) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Normalize returns a unit vector in the same direction.
// Returns the zero vector if the original vector has zero length.
func (v Vector4) Normalize() Vector4 {
	length := v.Length()
	if length == 0 {
		return Vector4{}
	}
	return Vector4{X: v.X / length, Y: v.Y / length, Z: v.Z / length, W: v.W / length}
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns u; t outside [0,1] extrapolates.
func (v Vector4) Lerp(u Vector4, t float64) Vector4 {
	return Vector4{
		X: fmath.Lerp(v.X, u.X, t),
		Y: fmath.Lerp(v.Y, u.Y, t),
		Z: fmath.Lerp(v.Z, u.Z, t),
		W: fmath.Lerp(v.W, u.W, t),
	}
}

// DistanceTo returns the length of v-u.
func (v Vector4) DistanceTo(u Vector4) float64 {
	return v.Sub(u).Length()
}

// IsZero returns true if the vector is the zero vector.
func (v Vector4) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0 && v.W == 0
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vector4) Approx(u Vector4, epsilon float64) bool {
	return fmath.Near(v.X, u.X, epsilon) &&
		fmath.Near(v.Y, u.Y, epsilon) &&
		fmath.Near(v.Z, u.Z, epsilon) &&
		fmath.Near(v.W, u.W, epsilon)
}

// Truncate drops the W component.
func (v Vector4) Truncate() Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

// ToNative converts the vector to the engine's single-precision form.
func (v Vector4) ToNative() f32.Vec4 {
	return f32.Vec4{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)}
}

// Vector4FromNative widens an engine vector to host precision.
func Vector4FromNative(n f32.Vec4) Vector4 {
	return Vector4{X: float64(n[0]), Y: float64(n[1]), Z: float64(n[2]), W: float64(n[3])}
}
