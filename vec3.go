package g3d

import (
	"math"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/g3d/internal/fmath"
)

// Vector3 represents a 3D direction or displacement (normals, axes, offsets).
type Vector3 struct {
	X, Y, Z float64
}

// V3 is a convenience function to create a Vector3.
func V3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors.
func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the difference of two vectors.
func (v Vector3) Sub(w Vector3) Vector3 {
	return Vector3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Mul returns the vector scaled by a scalar.
func (v Vector3) Mul(s float64) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div returns the vector divided by a scalar.
func (v Vector3) Div(s float64) Vector3 {
	return Vector3{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// Neg returns the negation of the vector.
func (v Vector3) Neg() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product of two vectors.
func (v Vector3) Dot(w Vector3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the right-handed cross product v × w.
func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the length (magnitude) of the vector.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared length of the vector.
func (v Vector3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector in the same direction.
// Returns the zero vector if the original vector has zero length.
func (v Vector3) Normalize() Vector3 {
	length := v.Length()
	if length == 0 {
		return Vector3{}
	}
	return Vector3{X: v.X / length, Y: v.Y / length, Z: v.Z / length}
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w; t outside [0,1] extrapolates.
func (v Vector3) Lerp(w Vector3, t float64) Vector3 {
	return Vector3{
		X: fmath.Lerp(v.X, w.X, t),
		Y: fmath.Lerp(v.Y, w.Y, t),
		Z: fmath.Lerp(v.Z, w.Z, t),
	}
}

// DistanceTo returns the length of v-w.
func (v Vector3) DistanceTo(w Vector3) float64 {
	return v.Sub(w).Length()
}

// IsZero returns true if the vector is the zero vector.
func (v Vector3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vector3) Approx(w Vector3, epsilon float64) bool {
	return fmath.Near(v.X, w.X, epsilon) &&
		fmath.Near(v.Y, w.Y, epsilon) &&
		fmath.Near(v.Z, w.Z, epsilon)
}

// ToPoint converts Vector3 to Point3.
func (v Vector3) ToPoint() Point3 {
	return Point3(v)
}

// Extend returns the homogeneous vector (x, y, z, w).
func (v Vector3) Extend(w float64) Vector4 {
	return Vector4{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// ToNative converts the vector to the engine's single-precision form.
func (v Vector3) ToNative() f32.Vec3 {
	return f32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// Vector3FromNative widens an engine vector to host precision.
func Vector3FromNative(n f32.Vec3) Vector3 {
	return Vector3{X: float64(n[0]), Y: float64(n[1]), Z: float64(n[2])}
}
