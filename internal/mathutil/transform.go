package mathutil

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Translation moves points by (x, y, z). Vectors are unaffected because w=0.
func Translation(x, y, z float64) Matrix {
	return FromMat4(f64.Mat4{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	})
}

func Scaling(x, y, z float64) Matrix {
	return FromMat4(f64.Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	})
}

// RotationX returns a rotation around the X axis. Angle in radians.
func RotationX(a float64) Matrix {
	c, s := math.Cos(a), math.Sin(a)
	return FromMat4(f64.Mat4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	})
}

// RotationY returns a rotation around the Y axis.
func RotationY(a float64) Matrix {
	c, s := math.Cos(a), math.Sin(a)
	return FromMat4(f64.Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	})
}

// RotationZ returns a rotation around the Z axis.
func RotationZ(a float64) Matrix {
	c, s := math.Cos(a), math.Sin(a)
	return FromMat4(f64.Mat4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// Shearing moves each axis in proportion to the other two:
// xy is "x in proportion to y", and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return FromMat4(f64.Mat4{
		1, xy, xz, 0,
		yx, 1, yz, 0,
		zx, zy, 1, 0,
		0, 0, 0, 1,
	})
}

// Chain composes transforms listed in the order they are applied:
// Chain(A, B, C) == C × B × A. Chain() is the identity.
func Chain(ms ...Matrix) Matrix {
	out := Identity()
	for _, m := range ms {
		out = m.Mul(out)
	}
	return out
}
