// Package math provides GLSL-style scalar helpers shared by the CPU mirrors of
// the shader code and the atmosphere engines.
package math

import "math"

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Saturate clamps x to [0, 1].
func Saturate(x float64) float64 {
	return Clamp(x, 0, 1)
}

// Mix linearly interpolates between a and b (GLSL mix).
func Mix(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Smoothstep performs Hermite interpolation between edge0 and edge1.
// Reversed edges (edge0 > edge1) produce a falling curve, as in GLSL.
func Smoothstep(edge0, edge1, x float64) float64 {
	if edge0 == edge1 {
		// GLSL leaves this undefined; step at the edge keeps it total.
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := Saturate((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

// Fract returns the fractional part of x, always in [0, 1).
func Fract(x float64) float64 {
	f := x - math.Floor(x)
	if f >= 1 {
		return 0
	}
	return f
}

// Dot2 returns the dot product of two 2D vectors given as components.
func Dot2(ax, ay, bx, by float64) float64 {
	return ax*bx + ay*by
}
