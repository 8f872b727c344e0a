package g3d

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f32"
)

// Matrix2 is a 2x2 matrix stored in column-major order:
//
//	| m[0] m[2] |
//	| m[1] m[3] |
type Matrix2 [4]float64

// Matrix3 is a 3x3 matrix stored in column-major order.
// Element (row, col) lives at index col*3+row.
type Matrix3 [9]float64

// Matrix4 is a 4x4 matrix stored in column-major order.
// Element (row, col) lives at index col*4+row; the translation of an
// affine transform occupies m[12], m[13], m[14].
type Matrix4 [16]float64

// NativeMatrix2 is the engine form of Matrix2, column-major float32.
type NativeMatrix2 [4]float32

// NewMatrix2 builds a Matrix2 from exactly 4 column-major elements.
func NewMatrix2(elems []float64) (Matrix2, error) {
	var m Matrix2
	if len(elems) != len(m) {
		return m, fmt.Errorf("g3d: matrix2 from %d elements: %w", len(elems), ErrParameterLengthMismatch)
	}
	copy(m[:], elems)
	return m, nil
}

// NewMatrix3 builds a Matrix3 from exactly 9 column-major elements.
func NewMatrix3(elems []float64) (Matrix3, error) {
	var m Matrix3
	if len(elems) != len(m) {
		return m, fmt.Errorf("g3d: matrix3 from %d elements: %w", len(elems), ErrParameterLengthMismatch)
	}
	copy(m[:], elems)
	return m, nil
}

// NewMatrix4 builds a Matrix4 from exactly 16 column-major elements.
// Shorter or longer input is rejected, never padded or truncated.
func NewMatrix4(elems []float64) (Matrix4, error) {
	var m Matrix4
	if len(elems) != len(m) {
		return m, fmt.Errorf("g3d: matrix4 from %d elements: %w", len(elems), ErrParameterLengthMismatch)
	}
	copy(m[:], elems)
	return m, nil
}

// Identity2 returns the 2x2 identity matrix.
func Identity2() Matrix2 {
	return Matrix2{1, 0, 0, 1}
}

// Identity3 returns the 3x3 identity matrix.
func Identity3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Rotation2 returns the counter-clockwise rotation by angle.
func Rotation2(angle Radians) Matrix2 {
	s, c := math.Sincos(float64(angle))
	return Matrix2{c, s, -s, c}
}

// Data returns a copy of the column-major elements.
func (m Matrix2) Data() []float64 { return append([]float64(nil), m[:]...) }

// At returns the element at (row, col).
func (m Matrix2) At(row, col int) float64 { return m[col*2+row] }

// Column returns column i.
func (m Matrix2) Column(i int) Vector2 {
	return Vector2{X: m[i*2], Y: m[i*2+1]}
}

// Mul returns the matrix product m * n.
func (m Matrix2) Mul(n Matrix2) Matrix2 {
	var out Matrix2
	for c := 0; c < 2; c++ {
		for r := 0; r < 2; r++ {
			out[c*2+r] = m[r]*n[c*2] + m[2+r]*n[c*2+1]
		}
	}
	return out
}

// MulVector returns m * v.
func (m Matrix2) MulVector(v Vector2) Vector2 {
	return Vector2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// Transpose returns the transposed matrix.
func (m Matrix2) Transpose() Matrix2 {
	return Matrix2{m[0], m[2], m[1], m[3]}
}

// Determinant returns the determinant.
func (m Matrix2) Determinant() float64 {
	return m[0]*m[3] - m[2]*m[1]
}

// Float32s returns the elements converted to single precision, column-major.
func (m Matrix2) Float32s() []float32 { return toSingles(m[:]) }

// AppendBytes appends the single-precision elements to dst.
func (m Matrix2) AppendBytes(dst []byte) []byte { return appendFloat32s(dst, m.Float32s()) }

// ToNative converts the matrix to the engine's single-precision form.
func (m Matrix2) ToNative() NativeMatrix2 {
	return NativeMatrix2{float32(m[0]), float32(m[1]), float32(m[2]), float32(m[3])}
}

// Matrix2FromNative widens an engine matrix to host precision.
func Matrix2FromNative(n NativeMatrix2) Matrix2 {
	return Matrix2{float64(n[0]), float64(n[1]), float64(n[2]), float64(n[3])}
}

// Data returns a copy of the column-major elements.
func (m Matrix3) Data() []float64 { return append([]float64(nil), m[:]...) }

// At returns the element at (row, col).
func (m Matrix3) At(row, col int) float64 { return m[col*3+row] }

// Column returns column i.
func (m Matrix3) Column(i int) Vector3 {
	return Vector3{X: m[i*3], Y: m[i*3+1], Z: m[i*3+2]}
}

// Mul returns the matrix product m * n.
func (m Matrix3) Mul(n Matrix3) Matrix3 {
	var out Matrix3
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += m[k*3+r] * n[c*3+k]
			}
			out[c*3+r] = sum
		}
	}
	return out
}

// MulVector returns m * v.
func (m Matrix3) MulVector(v Vector3) Vector3 {
	return Vector3{
		X: m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		Y: m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		Z: m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// Transpose returns the transposed matrix.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Determinant returns the determinant.
func (m Matrix3) Determinant() float64 {
	return m[0]*(m[4]*m[8]-m[7]*m[5]) -
		m[3]*(m[1]*m[8]-m[7]*m[2]) +
		m[6]*(m[1]*m[5]-m[4]*m[2])
}

// Float32s returns the elements converted to single precision, column-major.
func (m Matrix3) Float32s() []float32 { return toSingles(m[:]) }

// AppendBytes appends the single-precision elements to dst.
func (m Matrix3) AppendBytes(dst []byte) []byte { return appendFloat32s(dst, m.Float32s()) }

// ToNative converts the matrix to f32.Mat3. f32 matrices are row-major, so
// the elements are transposed on the way.
func (m Matrix3) ToNative() f32.Mat3 {
	var n f32.Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			n[r*3+c] = float32(m[c*3+r])
		}
	}
	return n
}

// Matrix3FromNative widens a row-major f32.Mat3 to a column-major Matrix3.
func Matrix3FromNative(n f32.Mat3) Matrix3 {
	var m Matrix3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[c*3+r] = float64(n[r*3+c])
		}
	}
	return m
}

// Translation returns a matrix translating by v.
func Translation(v Vector3) Matrix4 {
	m := Identity4()
	m[12], m[13], m[14] = v.X, v.Y, v.Z
	return m
}

// Scaling returns a matrix scaling each axis by the matching component of v.
func Scaling(v Vector3) Matrix4 {
	return Matrix4{
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1,
	}
}

// RotationFromQuaternion returns the rotation matrix for q.
// q is expected to be a unit quaternion; it is not normalized here.
func RotationFromQuaternion(q Quaternion) Matrix4 {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z
	return Matrix4{
		1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy), 0,
		2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx), 0,
		2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy), 0,
		0, 0, 0, 1,
	}
}

// Perspective returns a right-handed perspective projection mapping depth
// into the [0, 1] clip range.
//
// fovY is the vertical field of view, aspect is width/height, and
// 0 < near < far.
func Perspective(fovY Radians, aspect, near, far float64) Matrix4 {
	f := 1 / math.Tan(float64(fovY)/2)
	m := Matrix4{}
	m[0] = f / aspect
	m[5] = f
	m[10] = far / (near - far)
	m[11] = -1
	m[14] = near * far / (near - far)
	return m
}

// LookAt returns a right-handed view matrix for a camera at eye looking at
// target with the given up direction.
func LookAt(eye, target Point3, up Vector3) Matrix4 {
	f := target.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)
	e := eye.ToVector()
	return Matrix4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-s.Dot(e), -u.Dot(e), f.Dot(e), 1,
	}
}

// Data returns a copy of the column-major elements.
func (m Matrix4) Data() []float64 { return append([]float64(nil), m[:]...) }

// At returns the element at (row, col).
func (m Matrix4) At(row, col int) float64 { return m[col*4+row] }

// Column returns column i.
func (m Matrix4) Column(i int) Vector4 {
	return Vector4{X: m[i*4], Y: m[i*4+1], Z: m[i*4+2], W: m[i*4+3]}
}

// Mul returns the matrix product m * n. Applied to a vector, n acts first.
func (m Matrix4) Mul(n Matrix4) Matrix4 {
	var out Matrix4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[k*4+r] * n[c*4+k]
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// MulVector returns m * v.
func (m Matrix4) MulVector(v Vector4) Vector4 {
	return Vector4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// TransformPoint applies m to p with w=1 and divides by the resulting w
// unless it is 0 or 1.
func (m Matrix4) TransformPoint(p Point3) Point3 {
	r := m.MulVector(p.ToVector().Extend(1))
	if r.W != 0 && r.W != 1 {
		r = r.Div(r.W)
	}
	return r.Truncate().ToPoint()
}

// Transpose returns the transposed matrix.
func (m Matrix4) Transpose() Matrix4 {
	var out Matrix4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[r*4+c] = m[c*4+r]
		}
	}
	return out
}

// cofactors returns the 2x2 sub-determinants of the upper and lower halves
// shared by Determinant and Invert.
func (m Matrix4) cofactors() (s, c [6]float64) {
	s[0] = m[0]*m[5] - m[4]*m[1]
	s[1] = m[0]*m[6] - m[4]*m[2]
	s[2] = m[0]*m[7] - m[4]*m[3]
	s[3] = m[1]*m[6] - m[5]*m[2]
	s[4] = m[1]*m[7] - m[5]*m[3]
	s[5] = m[2]*m[7] - m[6]*m[3]

	c[5] = m[10]*m[15] - m[14]*m[11]
	c[4] = m[9]*m[15] - m[13]*m[11]
	c[3] = m[9]*m[14] - m[13]*m[10]
	c[2] = m[8]*m[15] - m[12]*m[11]
	c[1] = m[8]*m[14] - m[12]*m[10]
	c[0] = m[8]*m[13] - m[12]*m[9]
	return s, c
}

// Determinant returns the determinant.
func (m Matrix4) Determinant() float64 {
	s, c := m.cofactors()
	return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
}

// Invert returns the inverse of m. ok is false, and the result is the zero
// matrix, when m is singular.
func (m Matrix4) Invert() (inv Matrix4, ok bool) {
	s, c := m.cofactors()
	det := s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
	if det == 0 {
		return Matrix4{}, false
	}
	d := 1 / det

	inv[0] = (m[5]*c[5] - m[6]*c[4] + m[7]*c[3]) * d
	inv[1] = (-m[1]*c[5] + m[2]*c[4] - m[3]*c[3]) * d
	inv[2] = (m[13]*s[5] - m[14]*s[4] + m[15]*s[3]) * d
	inv[3] = (-m[9]*s[5] + m[10]*s[4] - m[11]*s[3]) * d

	inv[4] = (-m[4]*c[5] + m[6]*c[2] - m[7]*c[1]) * d
	inv[5] = (m[0]*c[5] - m[2]*c[2] + m[3]*c[1]) * d
	inv[6] = (-m[12]*s[5] + m[14]*s[2] - m[15]*s[1]) * d
	inv[7] = (m[8]*s[5] - m[10]*s[2] + m[11]*s[1]) * d

	inv[8] = (m[4]*c[4] - m[5]*c[2] + m[7]*c[0]) * d
	inv[9] = (-m[0]*c[4] + m[1]*c[2] - m[3]*c[0]) * d
	inv[10] = (m[12]*s[4] - m[13]*s[2] + m[15]*s[0]) * d
	inv[11] = (-m[8]*s[4] + m[9]*s[2] - m[11]*s[0]) * d

	inv[12] = (-m[4]*c[3] + m[5]*c[1] - m[6]*c[0]) * d
	inv[13] = (m[0]*c[3] - m[1]*c[1] + m[2]*c[0]) * d
	inv[14] = (-m[12]*s[3] + m[13]*s[1] - m[14]*s[0]) * d
	inv[15] = (m[8]*s[3] - m[9]*s[1] + m[10]*s[0]) * d

	return inv, true
}

// Float32s returns the elements converted to single precision, column-major.
func (m Matrix4) Float32s() []float32 { return toSingles(m[:]) }

// AppendBytes appends the single-precision elements to dst, ready for a
// uniform buffer write.
func (m Matrix4) AppendBytes(dst []byte) []byte { return appendFloat32s(dst, m.Float32s()) }

// ToNative converts the matrix to f32.Mat4. f32 matrices are row-major, so
// the elements are transposed on the way.
func (m Matrix4) ToNative() f32.Mat4 {
	var n f32.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			n[r*4+c] = float32(m[c*4+r])
		}
	}
	return n
}

// Matrix4FromNative widens a row-major f32.Mat4 to a column-major Matrix4.
func Matrix4FromNative(n f32.Mat4) Matrix4 {
	var m Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[c*4+r] = float64(n[r*4+c])
		}
	}
	return m
}
