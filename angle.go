package g3d

import "math"

// Degrees is an angle in degrees. It does not convert implicitly to
// Radians; use ToRadians.
type Degrees float64

// Radians is an angle in radians.
type Radians float64

// ToRadians converts d to radians: d × π/180.
func (d Degrees) ToRadians() Radians {
	return Radians(float64(d) * math.Pi / 180)
}

// ToDegrees converts r to degrees: r × 180/π.
func (r Radians) ToDegrees() Degrees {
	return Degrees(float64(r) * 180 / math.Pi)
}

// Sin returns the sine of r.
func (r Radians) Sin() float64 { return math.Sin(float64(r)) }

// Cos returns the cosine of r.
func (r Radians) Cos() float64 { return math.Cos(float64(r)) }

// Normalize wraps the angle into [0, 360).
func (d Degrees) Normalize() Degrees {
	v := math.Mod(float64(d), 360)
	if v < 0 {
		v += 360
		// A tiny negative angle rounds up to exactly 360.
		if v == 360 {
			v = 0
		}
	}
	return Degrees(v)
}

// ToNative narrows the angle to the engine's single precision.
func (d Degrees) ToNative() float32 { return float32(d) }

// ToNative narrows the angle to the engine's single precision.
func (r Radians) ToNative() float32 { return float32(r) }
