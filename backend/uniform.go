package backend

import (
	"honnef.co/go/safeish"

	"github.com/gogpu/g3d"
)

// Uniform is a named shader value in single precision. Matrices are stored
// in column-major order.
type Uniform struct {
	Name string
	Data []float32
}

// Matrix is implemented by g3d.Matrix2, g3d.Matrix3 and g3d.Matrix4.
type Matrix interface {
	Float32s() []float32
}

// MatrixUniform converts m to a uniform.
func MatrixUniform(name string, m Matrix) Uniform {
	return Uniform{Name: name, Data: m.Float32s()}
}

// Vector is the set of vector types accepted by VectorUniform.
type Vector interface {
	g3d.Vector2 | g3d.Vector3 | g3d.Vector4
}

// VectorUniform converts v to a uniform with one element per component.
func VectorUniform[V Vector](name string, v V) Uniform {
	var data []float32
	switch v := any(v).(type) {
	case g3d.Vector2:
		n := v.ToNative()
		data = n[:]
	case g3d.Vector3:
		n := v.ToNative()
		data = n[:]
	case g3d.Vector4:
		n := v.ToNative()
		data = n[:]
	}
	return Uniform{Name: name, Data: data}
}

// ColorUniform converts c to an RGBA uniform. The channels are passed
// through unchanged, without clamping or linearization.
func ColorUniform(name string, c g3d.Srgba) Uniform {
	n := c.ToNative()
	return Uniform{Name: name, Data: n[:]}
}

// QuaternionUniform converts q to a uniform in x, y, z, w order.
func QuaternionUniform(name string, q g3d.Quaternion) Uniform {
	n := q.ToNative()
	return Uniform{Name: name, Data: n[:]}
}

// Clone returns a copy of u that shares no memory with it.
func (u Uniform) Clone() Uniform {
	return Uniform{Name: u.Name, Data: append([]float32(nil), u.Data...)}
}

// Bytes returns the uniform data in host byte order, ready for upload.
func (u Uniform) Bytes() []byte {
	if len(u.Data) == 0 {
		return nil
	}
	return append([]byte(nil), safeish.SliceCast[[]byte](u.Data)...)
}
