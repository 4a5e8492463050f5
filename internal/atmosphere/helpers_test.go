package atmosphere

import "math"

const epsilon = 1e-9

func nearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
