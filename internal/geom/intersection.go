package geom

// ShapeID is a stable handle to a shape held by an Arena.
type ShapeID int

// Intersection records where along a ray a shape was crossed.
type Intersection struct {
	T      float64
	Object ShapeID
}

func NewIntersection(t float64, id ShapeID) Intersection {
	return Intersection{T: t, Object: id}
}

// Hit returns the intersection with the smallest positive T.
// ok is false when xs is empty or every T is <= 0.
// Among equal distances the first one in xs wins.
func Hit(xs []Intersection) (hit Intersection, ok bool) {
	for _, x := range xs {
		if x.T <= 0 {
			continue
		}
		if !ok || x.T < hit.T {
			hit, ok = x, true
		}
	}
	return hit, ok
}
