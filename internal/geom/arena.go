package geom

// Arena owns a set of shapes and hands out integer handles for them.
// Handles stay valid for the life of the arena.
type Arena struct {
	shapes []Shape
}

func NewArena() *Arena {
	return &Arena{}
}

// Add stores s and returns its handle.
func (a *Arena) Add(s Shape) ShapeID {
	a.shapes = append(a.shapes, s)
	return ShapeID(len(a.shapes) - 1)
}

// Shape returns the shape for id, or nil for an unknown handle.
func (a *Arena) Shape(id ShapeID) Shape {
	if id < 0 || int(id) >= len(a.shapes) {
		return nil
	}
	return a.shapes[id]
}

func (a *Arena) Len() int {
	return len(a.shapes)
}

// Intersect casts r against one shape and tags every distance with id.
func (a *Arena) Intersect(id ShapeID, r Ray) []Intersection {
	s := a.Shape(id)
	if s == nil {
		return nil
	}
	ts := s.Intersect(r)
	if len(ts) == 0 {
		return nil
	}
	xs := make([]Intersection, len(ts))
	for i, t := range ts {
		xs[i] = Intersection{T: t, Object: id}
	}
	return xs
}

// IntersectAll casts r against every shape, in handle order.
func (a *Arena) IntersectAll(r Ray) []Intersection {
	var xs []Intersection
	for i := range a.shapes {
		xs = append(xs, a.Intersect(ShapeID(i), r)...)
	}
	return xs
}
