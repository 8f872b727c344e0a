package g3d

import (
	"fmt"
	"image/color"
	"math"

	"golang.org/x/image/math/f32"

	icolor "github.com/gogpu/g3d/internal/color"
	"github.com/gogpu/g3d/internal/fmath"
)

// Srgba is a color in sRGB space with straight (non-premultiplied) alpha.
// Components are nominally in [0, 1] but are not validated.
type Srgba struct {
	R, G, B, A float64
}

// NewSrgba creates a color from its four components.
func NewSrgba(r, g, b, a float64) Srgba {
	return Srgba{R: r, G: g, B: b, A: a}
}

// Rgb creates an opaque color.
func Rgb(r, g, b float64) Srgba {
	return Srgba{R: r, G: g, B: b, A: 1}
}

// SrgbaFromBytes creates a color from 8-bit channels.
func SrgbaFromBytes(b [4]uint8) Srgba {
	return Srgba{
		R: float64(b[0]) / 255,
		G: float64(b[1]) / 255,
		B: float64(b[2]) / 255,
		A: float64(b[3]) / 255,
	}
}

// Hex parses a color from "RGB", "RGBA", "RRGGBB" or "RRGGBBAA", with an
// optional leading '#'.
func Hex(hex string) (Srgba, error) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var ch [4]uint32
	ch[3] = 255

	switch len(hex) {
	case 3, 4:
		for i := range hex {
			v, ok := parseHex(hex[i : i+1])
			if !ok {
				return Srgba{}, fmt.Errorf("g3d: hex color %q: %w", hex, ErrInvalidHexColor)
			}
			ch[i] = v * 17
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			v, ok := parseHex(hex[i : i+2])
			if !ok {
				return Srgba{}, fmt.Errorf("g3d: hex color %q: %w", hex, ErrInvalidHexColor)
			}
			ch[i/2] = v
		}
	default:
		return Srgba{}, fmt.Errorf("g3d: hex color %q: %w", hex, ErrInvalidHexColor)
	}

	return SrgbaFromBytes([4]uint8{uint8(ch[0]), uint8(ch[1]), uint8(ch[2]), uint8(ch[3])}), nil
}

func parseHex(s string) (uint32, bool) {
	var val uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		val *= 16
		switch {
		case '0' <= c && c <= '9':
			val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			val += uint32(c - 'A' + 10)
		default:
			return 0, false
		}
	}
	return val, true
}

// Bytes converts the color to 8-bit channels as round(c*255) reduced
// modulo 256, rounding halves away from zero. Out-of-range components are
// not clamped: 1.5 becomes 127 and -0.5 becomes 128. NaN and infinities
// become 0. Call Clamped first for saturating behavior.
func (c Srgba) Bytes() [4]uint8 {
	return [4]uint8{channelByte(c.R), channelByte(c.G), channelByte(c.B), channelByte(c.A)}
}

func channelByte(v float64) uint8 {
	if !fmath.Finite(v) {
		return 0
	}
	m := math.Mod(math.Round(v*255), 256)
	if m < 0 {
		m += 256
	}
	return uint8(m)
}

// Clamped returns the color with every component limited to [0, 1].
// NaN components become 0.
func (c Srgba) Clamped() Srgba {
	clamp := func(v float64) float64 {
		if math.IsNaN(v) {
			return 0
		}
		return fmath.Clamp(v, 0, 1)
	}
	return Srgba{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}

// Premultiply returns a premultiplied color.
func (c Srgba) Premultiply() Srgba {
	return Srgba{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// Lerp performs linear interpolation between two colors in sRGB space.
func (c Srgba) Lerp(other Srgba, t float64) Srgba {
	return Srgba{
		R: fmath.Lerp(c.R, other.R, t),
		G: fmath.Lerp(c.G, other.G, t),
		B: fmath.Lerp(c.B, other.B, t),
		A: fmath.Lerp(c.A, other.A, t),
	}
}

// ToLinear returns the color in linear space as single-precision
// components, alpha unchanged.
func (c Srgba) ToLinear() f32.Vec4 {
	return f32.Vec4(icolor.SRGBToLinearRGBA(c.R, c.G, c.B, c.A))
}

// SrgbaFromLinear encodes a linear engine color, such as a value read back
// from a linear render target, as sRGB. Alpha is copied unchanged.
func SrgbaFromLinear(l f32.Vec4) Srgba {
	return Srgba{
		R: icolor.LinearToSRGB(float64(l[0])),
		G: icolor.LinearToSRGB(float64(l[1])),
		B: icolor.LinearToSRGB(float64(l[2])),
		A: float64(l[3]),
	}
}

// ToNative converts the color to single-precision sRGB components.
func (c Srgba) ToNative() f32.Vec4 {
	return f32.Vec4{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
}

// SrgbaFromNative widens an engine color to host precision.
func SrgbaFromNative(n f32.Vec4) Srgba {
	return Srgba{R: float64(n[0]), G: float64(n[1]), B: float64(n[2]), A: float64(n[3])}
}

// Color converts the color to the standard color.Color interface,
// clamping out-of-range components.
func (c Srgba) Color() color.Color {
	b := c.Clamped().Bytes()
	return color.NRGBA{R: b[0], G: b[1], B: b[2], A: b[3]}
}

// Common colors
var (
	Black       = Rgb(0, 0, 0)
	White       = Rgb(1, 1, 1)
	Red         = Rgb(1, 0, 0)
	Green       = Rgb(0, 1, 0)
	Blue        = Rgb(0, 0, 1)
	Transparent = NewSrgba(0, 0, 0, 0)
)
