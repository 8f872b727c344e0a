// Package fmath holds small generic float helpers shared by the float64 host
// types and the float32 engine representation.
package fmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Lerp interpolates between a and b. It is evaluated as a*(1-t) + b*t so
// that t=0 yields a and t=1 yields b exactly. t is not clamped.
func Lerp[T constraints.Float](a, b, t T) T {
	return a*(1-t) + b*t
}

// Near reports whether |a-b| < eps.
func Near[T constraints.Float](a, b, eps T) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < eps
}

// Clamp limits v to [lo, hi].
func Clamp[T constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Finite reports whether v is neither NaN nor infinite.
func Finite[T constraints.Float](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Hypot returns sqrt(Σ v²) computed in float64.
func Hypot[T constraints.Float](vs ...T) float64 {
	var sum float64
	for _, v := range vs {
		f := float64(v)
		sum += f * f
	}
	return math.Sqrt(sum)
}
