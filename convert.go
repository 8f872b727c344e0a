package g3d

import "honnef.co/go/safeish"

// ToSingle converts a host-side double to the engine's single precision.
// This is a plain IEEE conversion (round to nearest); values that are not
// exactly representable in float32 lose precision.
func ToSingle(x float64) float32 {
	return float32(x)
}

// ToDouble widens an engine-side single to a host-side double. It never
// fails and is exact.
func ToDouble(x float32) float64 {
	return float64(x)
}

// toSingles converts a slice of doubles component-wise.
func toSingles(src []float64) []float32 {
	out := make([]float32, len(src))
	for i, v := range src {
		out[i] = float32(v)
	}
	return out
}

// appendFloat32s appends the in-memory representation of vs to dst in host
// byte order, which is what GPU uploads expect.
func appendFloat32s(dst []byte, vs []float32) []byte {
	if len(vs) == 0 {
		return dst
	}
	return append(dst, safeish.SliceCast[[]byte](vs)...)
}
