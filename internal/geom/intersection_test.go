package geom

import (
	"testing"

	"raykernel/internal/mathutil"
)

func TestIntersectionFields(t *testing.T) {
	i := NewIntersection(3.5, 7)
	if i.T != 3.5 || i.Object != 7 {
		t.Fatalf("NewIntersection = %+v", i)
	}
}

func TestHit(t *testing.T) {
	tests := []struct {
		name  string
		ts    []float64
		want  float64
		found bool
	}{
		{"all positive", []float64{1, 2}, 1, true},
		{"some negative", []float64{-1, 1}, 1, true},
		{"all negative", []float64{-2, -1}, 0, false},
		{"lowest non-negative", []float64{5, 7, -3, 2}, 2, true},
		{"empty", nil, 0, false},
		{"zero is not a hit", []float64{0, -1}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := make([]Intersection, len(tt.ts))
			for i, v := range tt.ts {
				xs[i] = NewIntersection(v, 0)
			}
			hit, ok := Hit(xs)
			if ok != tt.found {
				t.Fatalf("ok = %v, want %v", ok, tt.found)
			}
			if ok && hit.T != tt.want {
				t.Errorf("hit.T = %v, want %v", hit.T, tt.want)
			}
		})
	}
}

func TestHitFromInsideSphere(t *testing.T) {
	arena := NewArena()
	id := arena.Add(NewSphere())
	xs := arena.Intersect(id, NewRay(mathutil.Point(0, 0, 0), mathutil.Vector(0, 0, 1)))
	hit, ok := Hit(xs)
	if !ok || hit.T != 1 || hit.Object != id {
		t.Fatalf("Hit = %+v, %v", hit, ok)
	}
}
