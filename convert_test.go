package g3d

import (
	"encoding/binary"
	"math"
	"testing"
)

// epsilon32 is the float32 machine epsilon.
const epsilon32 float32 = 1.0 / (1 << 23)

func TestToSingle_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		exact bool
	}{
		{"zero", 0, true},
		{"one", 1, true},
		{"half", 0.5, true},
		{"minus two", -2, true},
		{"large power of two", 1 << 40, true},
		{"tenth", 0.1, false},
		{"third", 1.0 / 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToDouble(ToSingle(tt.x))
			if tt.exact {
				if got != tt.x {
					t.Errorf("round trip %v = %v, want exact", tt.x, got)
				}
				return
			}
			if diff := math.Abs(got - tt.x); diff > float64(epsilon32)*math.Abs(tt.x) {
				t.Errorf("round trip %v = %v, diff %v exceeds float32 epsilon", tt.x, got, diff)
			}
		})
	}
}

func TestToSingle_Special(t *testing.T) {
	if got := ToSingle(math.Inf(1)); !math.IsInf(float64(got), 1) {
		t.Errorf("ToSingle(+Inf) = %v", got)
	}
	if got := ToSingle(1e300); !math.IsInf(float64(got), 1) {
		t.Errorf("ToSingle(1e300) = %v, want +Inf", got)
	}
	if got := ToSingle(math.NaN()); !math.IsNaN(float64(got)) {
		t.Errorf("ToSingle(NaN) = %v", got)
	}
}

func TestAppendFloat32s(t *testing.T) {
	dst := []byte{0xAA}
	out := appendFloat32s(dst, []float32{1, -2})
	if len(out) != 9 {
		t.Fatalf("len = %d, want 9", len(out))
	}
	if out[0] != 0xAA {
		t.Errorf("prefix clobbered")
	}
	if got := math.Float32frombits(binary.NativeEndian.Uint32(out[1:5])); got != 1 {
		t.Errorf("first = %v", got)
	}
	if got := math.Float32frombits(binary.NativeEndian.Uint32(out[5:9])); got != -2 {
		t.Errorf("second = %v", got)
	}

	if got := appendFloat32s(nil, nil); got != nil {
		t.Errorf("empty append = %v, want nil", got)
	}
}
