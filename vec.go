package g3d

import (
	"math"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/g3d/internal/fmath"
)

// Vector2 represents a 2D displacement vector.
// Unlike Point2 which represents a position, Vector2 has a direction and
// magnitude.
type Vector2 struct {
	X, Y float64
}

// V2 is a convenience function to create a Vector2.
func V2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vector2) Sub(w Vector2) Vector2 {
	return Vector2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vector2) Mul(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Div returns the vector divided by a scalar.
func (v Vector2) Div(s float64) Vector2 {
	return Vector2{X: v.X / s, Y: v.Y / s}
}

// Neg returns the negation of the vector.
func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vector2) Dot(w Vector2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Length returns the length (magnitude) of the vector.
func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns the squared length of the vector.
func (v Vector2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction.
// Returns the zero vector if the original vector has zero length.
func (v Vector2) Normalize() Vector2 {
	length := v.Length()
	if length == 0 {
		return Vector2{}
	}
	return Vector2{X: v.X / length, Y: v.Y / length}
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w; t outside [0,1] extrapolates.
func (v Vector2) Lerp(w Vector2, t float64) Vector2 {
	return Vector2{
		X: fmath.Lerp(v.X, w.X, t),
		Y: fmath.Lerp(v.Y, w.Y, t),
	}
}

// DistanceTo returns the length of v-w.
func (v Vector2) DistanceTo(w Vector2) float64 {
	return v.Sub(w).Length()
}

// Perp returns the perpendicular vector (rotated 90 degrees counter-clockwise).
func (v Vector2) Perp() Vector2 {
	return Vector2{X: -v.Y, Y: v.X}
}

// IsZero returns true if the vector is the zero vector.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vector2) Approx(w Vector2, epsilon float64) bool {
	return fmath.Near(v.X, w.X, epsilon) && fmath.Near(v.Y, w.Y, epsilon)
}

// ToPoint converts Vector2 to Point2.
func (v Vector2) ToPoint() Point2 {
	return Point2(v)
}

// ToNative converts the vector to the engine's single-precision form.
func (v Vector2) ToNative() f32.Vec2 {
	return f32.Vec2{float32(v.X), float32(v.Y)}
}

// Vector2FromNative widens an engine vector to host precision.
func Vector2FromNative(n f32.Vec2) Vector2 {
	return Vector2{X: float64(n[0]), Y: float64(n[1])}
}
