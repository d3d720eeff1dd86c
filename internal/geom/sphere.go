package geom

import (
	"math"

	"raykernel/internal/mathutil"
)

// Shape is anything a ray can be intersected with. Intersect returns the
// ray distances of every crossing in ascending order.
type Shape interface {
	Intersect(r Ray) []float64
}

// Sphere is the unit sphere centered at the origin. Place it elsewhere by
// transforming the ray with the inverse of the sphere's transform.
type Sphere struct{}

func NewSphere() Sphere {
	return Sphere{}
}

// Intersect solves |O + tD|² = 1 for t. A miss (or a zero direction) returns
// nil; a tangent ray returns the same distance twice.
func (Sphere) Intersect(r Ray) []float64 {
	sphereToRay := r.Origin.Sub(mathutil.Point(0, 0, 0))

	a := r.Direction.Dot(r.Direction)
	if a == 0 {
		return nil
	}
	b := 2 * r.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}

	sqrtDisc := math.Sqrt(disc)
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)
	return []float64{t1, t2}
}
