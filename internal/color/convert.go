// Package color provides the sRGB transfer functions used when a host color
// is handed to the engine in linear space.
package color

import (
	"math"

	"golang.org/x/exp/constraints"
)

// SRGBToLinear converts an sRGB component to linear (EOTF).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
func SRGBToLinear[T constraints.Float](s T) T {
	if s <= 0.04045 {
		return s / 12.92
	}
	return T(math.Pow(float64((s+0.055)/1.055), 2.4))
}

// LinearToSRGB converts a linear component to sRGB (OETF).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
func LinearToSRGB[T constraints.Float](l T) T {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return T(1.055*math.Pow(float64(l), 1.0/2.4) - 0.055)
}

// SRGBToLinearRGBA converts r, g, b from sRGB to linear and returns them as
// float32 alongside the untouched alpha. Alpha is never gamma-encoded.
func SRGBToLinearRGBA(r, g, b, a float64) [4]float32 {
	return [4]float32{
		float32(SRGBToLinear(r)),
		float32(SRGBToLinear(g)),
		float32(SRGBToLinear(b)),
		float32(a),
	}
}
