package g3d

import (
	"math"
	"testing"
)

func TestVector2_Add(t *testing.T) {
	tests := []struct {
		name   string
		v, w   Vector2
		expect Vector2
	}{
		{"zero+zero", V2(0, 0), V2(0, 0), V2(0, 0)},
		{"positive", V2(1, 2), V2(3, 4), V2(4, 6)},
		{"negative", V2(-1, -2), V2(-3, -4), V2(-4, -6)},
		{"mixed", V2(1, -2), V2(-3, 4), V2(-2, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Add(tt.w)
			if result != tt.expect {
				t.Errorf("%v.Add(%v) = %v, want %v", tt.v, tt.w, result, tt.expect)
			}
		})
	}
}

func TestVector2_SubMulDiv(t *testing.T) {
	v := V2(6, -4)
	if got := v.Sub(V2(1, 1)); got != V2(5, -5) {
		t.Errorf("Sub = %v", got)
	}
	if got := v.Mul(0.5); got != V2(3, -2) {
		t.Errorf("Mul = %v", got)
	}
	if got := v.Div(2); got != V2(3, -2) {
		t.Errorf("Div = %v", got)
	}
	if got := v.Neg(); got != V2(-6, 4) {
		t.Errorf("Neg = %v", got)
	}
	if got := V2(1, 0).Perp(); got != V2(0, 1) {
		t.Errorf("Perp = %v", got)
	}
}

func TestVector2_Length(t *testing.T) {
	tests := []struct {
		name string
		v    Vector2
		want float64
	}{
		{"zero", V2(0, 0), 0},
		{"3-4-5", V2(3, 4), 5},
		{"negative", V2(-3, -4), 5},
		{"unit x", V2(1, 0), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Length(); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("%v.Length() = %v, want %v", tt.v, got, tt.want)
			}
			if got := tt.v.LengthSquared(); math.Abs(got-tt.want*tt.want) > 1e-12 {
				t.Errorf("%v.LengthSquared() = %v, want %v", tt.v, got, tt.want*tt.want)
			}
		})
	}
}

func TestVector_NormalizeUnitLength(t *testing.T) {
	const eps = 1e-12

	v2s := []Vector2{V2(3, 4), V2(-1e-8, 2e-8), V2(1e8, -1e8), V2(0, -7)}
	for _, v := range v2s {
		if l := v.Normalize().Length(); math.Abs(l-1) > eps {
			t.Errorf("%v.Normalize().Length() = %v", v, l)
		}
	}

	v3s := []Vector3{V3(1, 2, 3), V3(-5, 0, 0), V3(1e-9, 1e-9, 1e-9)}
	for _, v := range v3s {
		if l := v.Normalize().Length(); math.Abs(l-1) > eps {
			t.Errorf("%v.Normalize().Length() = %v", v, l)
		}
	}

	v4s := []Vector4{V4(1, 2, 3, 4), V4(0, 0, 0, -2)}
	for _, v := range v4s {
		if l := v.Normalize().Length(); math.Abs(l-1) > eps {
			t.Errorf("%v.Normalize().Length() = %v", v, l)
		}
	}
}

func TestVector_NormalizeZero(t *testing.T) {
	if got := (Vector2{}).Normalize(); got != (Vector2{}) {
		t.Errorf("Vector2 zero Normalize = %v", got)
	}
	if got := (Vector3{}).Normalize(); got != (Vector3{}) {
		t.Errorf("Vector3 zero Normalize = %v", got)
	}
	if got := (Vector4{}).Normalize(); got != (Vector4{}) {
		t.Errorf("Vector4 zero Normalize = %v", got)
	}
}

func TestVector_LerpEndpointsExact(t *testing.T) {
	// Components chosen so that a+(b-a)*t would not reproduce b exactly.
	a2, b2 := V2(0.1, -3.7), V2(1e16, 0.3)
	if got := a2.Lerp(b2, 0); got != a2 {
		t.Errorf("Vector2 Lerp(t=0) = %v, want %v", got, a2)
	}
	if got := a2.Lerp(b2, 1); got != b2 {
		t.Errorf("Vector2 Lerp(t=1) = %v, want %v", got, b2)
	}

	a3, b3 := V3(0.1, 0.2, 0.3), V3(-1e15, 7.77, 1)
	if got := a3.Lerp(b3, 0); got != a3 {
		t.Errorf("Vector3 Lerp(t=0) = %v", got)
	}
	if got := a3.Lerp(b3, 1); got != b3 {
		t.Errorf("Vector3 Lerp(t=1) = %v", got)
	}

	a4, b4 := V4(0.1, 0.2, 0.3, 0.4), V4(9, 8, 7, 6)
	if got := a4.Lerp(b4, 0); got != a4 {
		t.Errorf("Vector4 Lerp(t=0) = %v", got)
	}
	if got := a4.Lerp(b4, 1); got != b4 {
		t.Errorf("Vector4 Lerp(t=1) = %v", got)
	}
}

func TestVector_LerpMidAndExtrapolate(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want Vector3
	}{
		{"mid", 0.5, V3(5.5, 5.5, 5.5)},
		{"quarter", 0.25, V3(3.25, 3.25, 3.25)},
		{"beyond", 2, V3(19, 19, 19)},
		{"before", -1, V3(-8, -8, -8)},
	}
	a, b := V3(1, 1, 1), V3(10, 10, 10)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Lerp(b, tt.t); !got.Approx(tt.want, 1e-12) {
				t.Errorf("Lerp(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestVector3_Cross(t *testing.T) {
	tests := []struct {
		name string
		a, b Vector3
		want Vector3
	}{
		{"x cross y", V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)},
		{"y cross z", V3(0, 1, 0), V3(0, 0, 1), V3(1, 0, 0)},
		{"z cross x", V3(0, 0, 1), V3(1, 0, 0), V3(0, 1, 0)},
		{"y cross x", V3(0, 1, 0), V3(1, 0, 0), V3(0, 0, -1)},
		{"parallel", V3(2, 2, 2), V3(1, 1, 1), V3(0, 0, 0)},
		{"general", V3(1, 2, 3), V3(4, 5, 6), V3(-3, 6, -3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cross(tt.b); got != tt.want {
				t.Errorf("%v.Cross(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestVector_DotAndDistance(t *testing.T) {
	if got := V2(1, 2).Dot(V2(3, 4)); got != 11 {
		t.Errorf("Vector2 Dot = %v", got)
	}
	if got := V3(1, 2, 3).Dot(V3(4, 5, 6)); got != 32 {
		t.Errorf("Vector3 Dot = %v", got)
	}
	if got := V4(1, 2, 3, 4).Dot(V4(1, 1, 1, 1)); got != 10 {
		t.Errorf("Vector4 Dot = %v", got)
	}
	if got := V3(1, 1, 1).DistanceTo(V3(1, 4, 5)); got != 5 {
		t.Errorf("Vector3 DistanceTo = %v", got)
	}
}

func TestVector_IsZero(t *testing.T) {
	if !V2(0, 0).IsZero() || V2(0, 1e-300).IsZero() {
		t.Error("Vector2 IsZero")
	}
	if !V3(0, 0, 0).IsZero() || V3(1, 0, 0).IsZero() {
		t.Error("Vector3 IsZero")
	}
	if !V4(0, 0, 0, 0).IsZero() || V4(0, 0, 0, 1).IsZero() {
		t.Error("Vector4 IsZero")
	}
}

func TestVector_ExtendTruncate(t *testing.T) {
	v := V3(1, 2, 3)
	h := v.Extend(1)
	if h != V4(1, 2, 3, 1) {
		t.Errorf("Extend = %v", h)
	}
	if h.Truncate() != v {
		t.Errorf("Truncate = %v", h.Truncate())
	}
}

func TestVector_NativeRoundTrip(t *testing.T) {
	for _, x := range []float64{0, 1, 0.5, -2} {
		v2 := V2(x, -x)
		if got := Vector2FromNative(v2.ToNative()); got != v2 {
			t.Errorf("Vector2 round trip %v = %v", v2, got)
		}
		v3 := V3(x, x, -x)
		if got := Vector3FromNative(v3.ToNative()); got != v3 {
			t.Errorf("Vector3 round trip %v = %v", v3, got)
		}
		v4 := V4(x, x, x, -x)
		if got := Vector4FromNative(v4.ToNative()); got != v4 {
			t.Errorf("Vector4 round trip %v = %v", v4, got)
		}
	}

	v := V3(0.1, 0.1, 0.1)
	got := Vector3FromNative(v.ToNative())
	if !got.Approx(v, 0.1*float64(epsilon32)) {
		t.Errorf("Vector3 round trip %v = %v, outside float32 epsilon", v, got)
	}
	if got == v {
		t.Errorf("0.1 is not representable in float32; round trip should not be exact")
	}
}
