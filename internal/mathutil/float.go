package mathutil

import "math"

// Epsilon is the tolerance used by every approximate comparison in this package.
const Epsilon = 1e-5

// ApproxEqual reports whether |a-b| < Epsilon.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}
