package g3d

import (
	"errors"
	"math"
	"testing"
)

func matrix4Near(a, b Matrix4, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func TestIdentity(t *testing.T) {
	if got := Identity2().Data(); !equalFloats(got, []float64{1, 0, 0, 1}) {
		t.Errorf("Identity2 = %v", got)
	}
	if got := Identity3().Data(); !equalFloats(got, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}) {
		t.Errorf("Identity3 = %v", got)
	}
	want4 := []float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	if got := Identity4().Data(); !equalFloats(got, want4) {
		t.Errorf("Identity4 = %v", got)
	}
}

func equalFloats(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewMatrix_LengthMismatch(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		build   func([]float64) error
		wantErr bool
	}{
		{"matrix2 exact", 4, func(e []float64) error { _, err := NewMatrix2(e); return err }, false},
		{"matrix2 short", 3, func(e []float64) error { _, err := NewMatrix2(e); return err }, true},
		{"matrix2 long", 5, func(e []float64) error { _, err := NewMatrix2(e); return err }, true},
		{"matrix3 exact", 9, func(e []float64) error { _, err := NewMatrix3(e); return err }, false},
		{"matrix3 short", 8, func(e []float64) error { _, err := NewMatrix3(e); return err }, true},
		{"matrix4 exact", 16, func(e []float64) error { _, err := NewMatrix4(e); return err }, false},
		{"matrix4 fifteen", 15, func(e []float64) error { _, err := NewMatrix4(e); return err }, true},
		{"matrix4 seventeen", 17, func(e []float64) error { _, err := NewMatrix4(e); return err }, true},
		{"matrix4 empty", 0, func(e []float64) error { _, err := NewMatrix4(e); return err }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build(make([]float64, tt.n))
			if tt.wantErr {
				if !errors.Is(err, ErrParameterLengthMismatch) {
					t.Errorf("err = %v, want ErrParameterLengthMismatch", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewMatrix4_ColumnMajor(t *testing.T) {
	elems := make([]float64, 16)
	for i := range elems {
		elems[i] = float64(i)
	}
	m, err := NewMatrix4(elems)
	if err != nil {
		t.Fatal(err)
	}
	if m.At(1, 0) != 1 || m.At(0, 1) != 4 || m.At(3, 2) != 11 {
		t.Errorf("At does not follow column-major layout: %v", m)
	}
	if got := m.Column(3); got != V4(12, 13, 14, 15) {
		t.Errorf("Column(3) = %v", got)
	}

	// Data must be a copy.
	d := m.Data()
	d[0] = 99
	if m[0] != 0 {
		t.Errorf("Data aliases the matrix")
	}
}

func TestMatrix4_MulIdentity(t *testing.T) {
	m := Translation(V3(1, 2, 3)).Mul(Scaling(V3(2, 3, 4)))
	if got := m.Mul(Identity4()); got != m {
		t.Errorf("m*I = %v", got)
	}
	if got := Identity4().Mul(m); got != m {
		t.Errorf("I*m = %v", got)
	}
}

func TestMatrix4_TranslateScaleOrder(t *testing.T) {
	// T*S applies the scale first.
	m := Translation(V3(10, 0, 0)).Mul(Scaling(V3(2, 2, 2)))
	if got := m.TransformPoint(Pt3(1, 1, 1)); got != Pt3(12, 2, 2) {
		t.Errorf("T*S point = %v, want (12,2,2)", got)
	}
	// Directions ignore translation.
	if got := m.MulVector(V4(1, 0, 0, 0)); got != V4(2, 0, 0, 0) {
		t.Errorf("T*S direction = %v", got)
	}
}

func TestMatrix4_Invert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix4
	}{
		{"identity", Identity4()},
		{"translation", Translation(V3(3, -4, 5))},
		{"scale", Scaling(V3(2, 4, 0.5))},
		{"rotation", RotationFromQuaternion(QuaternionFromAxisAngle(V3(1, 1, 0), Degrees(30).ToRadians()))},
		{"composite", Translation(V3(1, 2, 3)).Mul(RotationFromQuaternion(QuaternionFromAxisAngle(V3(0, 0, 1), 1))).Mul(Scaling(V3(2, 2, 2)))},
		{"perspective", Perspective(Degrees(60).ToRadians(), 1.5, 0.1, 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := tt.m.Invert()
			if !ok {
				t.Fatal("Invert reported singular")
			}
			if got := tt.m.Mul(inv); !matrix4Near(got, Identity4(), 1e-9) {
				t.Errorf("m*inv = %v", got)
			}
		})
	}
}

func TestMatrix4_InvertSingular(t *testing.T) {
	inv, ok := Scaling(V3(1, 0, 1)).Invert()
	if ok {
		t.Error("singular matrix inverted")
	}
	if inv != (Matrix4{}) {
		t.Errorf("singular inverse = %v, want zero", inv)
	}
}

func TestMatrix_Determinant(t *testing.T) {
	if got := Identity2().Determinant(); got != 1 {
		t.Errorf("Identity2 det = %v", got)
	}
	if got := (Matrix2{1, 3, 2, 4}).Determinant(); got != -2 {
		t.Errorf("Matrix2 det = %v", got)
	}
	if got := (Matrix3{2, 0, 0, 0, 3, 0, 0, 0, 4}).Determinant(); got != 24 {
		t.Errorf("Matrix3 det = %v", got)
	}
	if got := Scaling(V3(2, 3, 4)).Determinant(); got != 24 {
		t.Errorf("Matrix4 det = %v", got)
	}
	if got := Translation(V3(5, 6, 7)).Determinant(); got != 1 {
		t.Errorf("translation det = %v", got)
	}
}

func TestMatrix_Transpose(t *testing.T) {
	m2 := Matrix2{1, 2, 3, 4}
	if got := m2.Transpose(); got != (Matrix2{1, 3, 2, 4}) {
		t.Errorf("Matrix2 transpose = %v", got)
	}
	m3 := Matrix3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if got := m3.Transpose().Transpose(); got != m3 {
		t.Errorf("Matrix3 double transpose = %v", got)
	}
	if m3.Transpose().At(0, 1) != m3.At(1, 0) {
		t.Error("Matrix3 transpose At mismatch")
	}
	m4 := Translation(V3(1, 2, 3))
	if got := m4.Transpose(); got.At(3, 0) != 1 || got.At(0, 3) != 0 {
		t.Errorf("Matrix4 transpose = %v", got)
	}
}

func TestMatrix2_Rotation(t *testing.T) {
	r := Rotation2(Degrees(90).ToRadians())
	if got := r.MulVector(V2(1, 0)); !got.Approx(V2(0, 1), 1e-12) {
		t.Errorf("rot90 * x = %v", got)
	}
	// Two quarter turns make a half turn.
	if got := r.Mul(r).MulVector(V2(1, 0)); !got.Approx(V2(-1, 0), 1e-12) {
		t.Errorf("rot90^2 * x = %v", got)
	}
}

func TestMatrix3_MulVector(t *testing.T) {
	m := Matrix3{1, 0, 0, 0, 1, 0, 5, 6, 1}
	if got := m.MulVector(V3(1, 1, 1)); got != V3(6, 7, 1) {
		t.Errorf("MulVector = %v", got)
	}
	if got := m.Mul(Identity3()); got != m {
		t.Errorf("m*I = %v", got)
	}
	if got := m.Column(2); got != V3(5, 6, 1) {
		t.Errorf("Column(2) = %v", got)
	}
}

func TestMatrix_NativeTransposes(t *testing.T) {
	m := Translation(V3(1, 2, 3))
	n := m.ToNative()
	// f32.Mat4 is row-major: translation lives in the last column of each row.
	if n[3] != 1 || n[7] != 2 || n[11] != 3 {
		t.Errorf("ToNative = %v", n)
	}
	if got := Matrix4FromNative(n); got != m {
		t.Errorf("Matrix4 round trip = %v", got)
	}

	m3 := Matrix3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	n3 := m3.ToNative()
	if n3[1] != 4 || n3[3] != 2 {
		t.Errorf("Matrix3 ToNative = %v", n3)
	}
	if got := Matrix3FromNative(n3); got != m3 {
		t.Errorf("Matrix3 round trip = %v", got)
	}

	m2 := Matrix2{1, 2, 3, 4}
	if got := Matrix2FromNative(m2.ToNative()); got != m2 {
		t.Errorf("Matrix2 round trip = %v", got)
	}
}

func TestMatrix_Float32sAndBytes(t *testing.T) {
	m := Identity4()
	f := m.Float32s()
	if len(f) != 16 || f[0] != 1 || f[1] != 0 || f[15] != 1 {
		t.Errorf("Float32s = %v", f)
	}
	if b := m.AppendBytes(nil); len(b) != 64 {
		t.Errorf("AppendBytes len = %d, want 64", len(b))
	}
	if b := Identity3().AppendBytes(make([]byte, 4)); len(b) != 4+36 {
		t.Errorf("Matrix3 AppendBytes len = %d", len(b))
	}
	if b := Identity2().AppendBytes(nil); len(b) != 16 {
		t.Errorf("Matrix2 AppendBytes len = %d", len(b))
	}
}

func TestPerspective(t *testing.T) {
	near, far := 0.5, 50.0
	p := Perspective(Degrees(90).ToRadians(), 2, near, far)

	// A point on the near plane maps to depth 0, the far plane to depth 1.
	n := p.MulVector(V4(0, 0, -near, 1))
	if d := n.Z / n.W; math.Abs(d) > 1e-12 {
		t.Errorf("near depth = %v, want 0", d)
	}
	f := p.MulVector(V4(0, 0, -far, 1))
	if d := f.Z / f.W; math.Abs(d-1) > 1e-12 {
		t.Errorf("far depth = %v, want 1", d)
	}
	if math.Abs(p[5]-1) > 1e-12 || math.Abs(p[0]-0.5) > 1e-12 {
		t.Errorf("focal terms = %v, %v", p[0], p[5])
	}
}

func TestLookAt(t *testing.T) {
	v := LookAt(Pt3(0, 0, 5), Pt3(0, 0, 0), V3(0, 1, 0))
	if got := v.TransformPoint(Pt3(0, 0, 0)); !got.ToVector().Approx(V3(0, 0, -5), 1e-12) {
		t.Errorf("target in view space = %v, want (0,0,-5)", got)
	}
	if got := v.TransformPoint(Pt3(0, 0, 5)); !got.ToVector().Approx(V3(0, 0, 0), 1e-12) {
		t.Errorf("eye in view space = %v", got)
	}
}
