package g3d

import "math"

// Half is an IEEE 754 binary16 value stored as its raw bits, used for
// compact vertex attributes and half-float textures.
type Half uint16

// HalfFromFloat32 converts v to binary16 with round-to-nearest-even.
// Values beyond the half range become ±Inf; NaN stays NaN.
func HalfFromFloat32(v float32) Half {
	const (
		inf32      uint32 = 255 << 23
		max16      uint32 = (127 + 16) << 23
		denormBias uint32 = ((127 - 15) + (23 - 10) + 1) << 23
		signMask   uint32 = 0x8000_0000
	)

	u := math.Float32bits(v)
	sign := u & signMask
	u ^= sign

	var out uint32
	switch {
	case u >= max16:
		// NaN -> qNaN, overflow and Inf -> Inf
		if u > inf32 {
			out = 0x7E00
		} else {
			out = 0x7C00
		}
	case u < 113<<23:
		// Result is subnormal or zero; let the FPU do the rounding.
		f := math.Float32frombits(u) + math.Float32frombits(denormBias)
		out = math.Float32bits(f) - denormBias
	default:
		odd := (u >> 13) & 1
		// Rebias the exponent and round the mantissa.
		u += 0xC800_0FFF
		u += odd
		out = u >> 13
	}
	return Half(out | sign>>16)
}

// HalfFromFloat64 converts v to binary16 by way of float32.
func HalfFromFloat64(v float64) Half {
	return HalfFromFloat32(float32(v))
}

// Float32 returns the exact single-precision value of h.
func (h Half) Float32() float32 {
	sign := uint32(h&0x8000) << 16
	exp := uint32(h>>10) & 0x1F
	mant := uint32(h) & 0x3FF

	switch exp {
	case 0:
		if mant == 0 {
			return math.Float32frombits(sign)
		}
		f := float32(mant) / (1 << 24)
		if sign != 0 {
			f = -f
		}
		return f
	case 0x1F:
		return math.Float32frombits(sign | 0x7F80_0000 | mant<<13)
	default:
		return math.Float32frombits(sign | (exp+112)<<23 | mant<<13)
	}
}

// Float64 returns the exact double-precision value of h.
func (h Half) Float64() float64 {
	return float64(h.Float32())
}

// IsNaN reports whether h is a NaN.
func (h Half) IsNaN() bool {
	return h&0x7C00 == 0x7C00 && h&0x03FF != 0
}

// IsInf reports whether h is an infinity.
func (h Half) IsInf() bool {
	return h&0x7FFF == 0x7C00
}
