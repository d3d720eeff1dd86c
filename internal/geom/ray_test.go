package geom

import (
	"testing"

	"raykernel/internal/mathutil"
)

func TestNewRay(t *testing.T) {
	origin := mathutil.Point(1, 2, 3)
	direction := mathutil.Vector(4, 5, 6)
	r := NewRay(origin, direction)
	if !r.Origin.Equal(origin) || !r.Direction.Equal(direction) {
		t.Fatalf("NewRay = %+v", r)
	}
}

func TestRayPosition(t *testing.T) {
	r := NewRay(mathutil.Point(2, 3, 4), mathutil.Vector(1, 0, 0))

	tests := []struct {
		t        float64
		expected mathutil.Tuple
	}{
		{0, mathutil.Point(2, 3, 4)},
		{1, mathutil.Point(3, 3, 4)},
		{-1, mathutil.Point(1, 3, 4)},
		{2.5, mathutil.Point(4.5, 3, 4)},
	}

	for _, tt := range tests {
		if got := r.Position(tt.t); !got.Equal(tt.expected) {
			t.Errorf("Position(%v) = %v, want %v", tt.t, got, tt.expected)
		}
	}
}

func TestRayTransform(t *testing.T) {
	r := NewRay(mathutil.Point(1, 2, 3), mathutil.Vector(0, 1, 0))

	tests := []struct {
		name      string
		m         mathutil.Matrix
		origin    mathutil.Tuple
		direction mathutil.Tuple
	}{
		{"translate", mathutil.Translation(3, 4, 5), mathutil.Point(4, 6, 8), mathutil.Vector(0, 1, 0)},
		{"scale", mathutil.Scaling(2, 3, 4), mathutil.Point(2, 6, 12), mathutil.Vector(0, 3, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Transform(tt.m)
			if !got.Origin.Equal(tt.origin) {
				t.Errorf("origin = %v, want %v", got.Origin, tt.origin)
			}
			if !got.Direction.Equal(tt.direction) {
				t.Errorf("direction = %v, want %v", got.Direction, tt.direction)
			}
		})
	}

	// The input ray is a value and must not change.
	if !r.Origin.Equal(mathutil.Point(1, 2, 3)) {
		t.Errorf("original ray modified: %+v", r)
	}
}
