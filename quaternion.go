package g3d

import (
	"math"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/g3d/internal/fmath"
)

// Quaternion is a rotation in (w, x, y, z) form.
//
// Unit length is not enforced: constructors store the components as given
// and the caller decides when to call Normalize.
type Quaternion struct {
	W, X, Y, Z float64
}

// NewQuaternion assigns the components directly, in (x, y, z, w) argument
// order. No normalization is performed.
func NewQuaternion(x, y, z, w float64) Quaternion {
	return Quaternion{W: w, X: x, Y: y, Z: z}
}

// IdentityQuaternion returns the rotation that leaves vectors unchanged.
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// QuaternionFromAxisAngle returns the rotation of angle around axis.
// The axis is normalized first; a zero axis yields the identity.
func QuaternionFromAxisAngle(axis Vector3, angle Radians) Quaternion {
	n := axis.Normalize()
	if n.IsZero() {
		return IdentityQuaternion()
	}
	s, c := math.Sincos(float64(angle) / 2)
	return Quaternion{W: c, X: n.X * s, Y: n.Y * s, Z: n.Z * s}
}

// Length returns the quaternion norm.
func (q Quaternion) Length() float64 {
	return fmath.Hypot(q.W, q.X, q.Y, q.Z)
}

// Normalize returns q scaled to unit length, or the zero quaternion when
// q has zero length.
func (q Quaternion) Normalize() Quaternion {
	l := q.Length()
	if l == 0 {
		return Quaternion{}
	}
	return Quaternion{W: q.W / l, X: q.X / l, Y: q.Y / l, Z: q.Z / l}
}

// IsUnit reports whether q has unit length within epsilon.
func (q Quaternion) IsUnit(epsilon float64) bool {
	return fmath.Near(q.Length(), 1, epsilon)
}

// Conjugate returns (w, -x, -y, -z).
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Dot returns the four-component dot product.
func (q Quaternion) Dot(p Quaternion) float64 {
	return q.W*p.W + q.X*p.X + q.Y*p.Y + q.Z*p.Z
}

// Mul returns the Hamilton product q*p: rotating by the result applies p
// first, then q.
func (q Quaternion) Mul(p Quaternion) Quaternion {
	return Quaternion{
		W: q.W*p.W - q.X*p.X - q.Y*p.Y - q.Z*p.Z,
		X: q.W*p.X + q.X*p.W + q.Y*p.Z - q.Z*p.Y,
		Y: q.W*p.Y - q.X*p.Z + q.Y*p.W + q.Z*p.X,
		Z: q.W*p.Z + q.X*p.Y - q.Y*p.X + q.Z*p.W,
	}
}

// Rotate applies q to v. q should be a unit quaternion.
func (q Quaternion) Rotate(v Vector3) Vector3 {
	u := Vector3{X: q.X, Y: q.Y, Z: q.Z}
	t := u.Cross(v).Mul(2)
	return v.Add(t.Mul(q.W)).Add(u.Cross(t))
}

// Approx returns true if two quaternions are component-wise equal within
// epsilon.
func (q Quaternion) Approx(p Quaternion, epsilon float64) bool {
	return fmath.Near(q.W, p.W, epsilon) &&
		fmath.Near(q.X, p.X, epsilon) &&
		fmath.Near(q.Y, p.Y, epsilon) &&
		fmath.Near(q.Z, p.Z, epsilon)
}

// ToNative packs the quaternion as (x, y, z, w) in single precision, the
// layout shaders expect.
func (q Quaternion) ToNative() f32.Vec4 {
	return f32.Vec4{float32(q.X), float32(q.Y), float32(q.Z), float32(q.W)}
}

// QuaternionFromNative unpacks an (x, y, z, w) engine quaternion.
func QuaternionFromNative(n f32.Vec4) Quaternion {
	return NewQuaternion(float64(n[0]), float64(n[1]), float64(n[2]), float64(n[3]))
}
