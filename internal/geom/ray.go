package geom

import "raykernel/internal/mathutil"

// Ray is a half-line starting at Origin (a point) along Direction (a vector).
type Ray struct {
	Origin    mathutil.Tuple
	Direction mathutil.Tuple
}

func NewRay(origin, direction mathutil.Tuple) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns origin + direction·t.
func (r Ray) Position(t float64) mathutil.Tuple {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Transform applies m to both origin and direction. Translation leaves the
// direction untouched since its w is 0.
func (r Ray) Transform(m mathutil.Matrix) Ray {
	return Ray{
		Origin:    m.MulTuple(r.Origin),
		Direction: m.MulTuple(r.Direction),
	}
}
