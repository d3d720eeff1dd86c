package mathutil

import (
	"errors"
	"math"

	"golang.org/x/image/math/f64"
)

// ErrZeroMagnitude is returned when normalizing a tuple of length zero.
var ErrZeroMagnitude = errors.New("mathutil: normalize zero-magnitude tuple")

// Tuple is a 4-component value (x, y, z, w) shared by points (w=1),
// vectors (w=0) and colors (r, g, b in x, y, z; w=0).
type Tuple f64.Vec4

func NewTuple(x, y, z, w float64) Tuple {
	return Tuple{x, y, z, w}
}

// Point returns a tuple with w=1.
func Point(x, y, z float64) Tuple {
	return Tuple{x, y, z, 1}
}

// Vector returns a tuple with w=0.
func Vector(x, y, z float64) Tuple {
	return Tuple{x, y, z, 0}
}

// Color stores r, g, b in x, y, z. Colors share the vector representation,
// so nothing stops a color being added to a point.
func Color(r, g, b float64) Tuple {
	return Tuple{r, g, b, 0}
}

func (a Tuple) X() float64 { return a[0] }
func (a Tuple) Y() float64 { return a[1] }
func (a Tuple) Z() float64 { return a[2] }
func (a Tuple) W() float64 { return a[3] }

func (a Tuple) Red() float64   { return a[0] }
func (a Tuple) Green() float64 { return a[1] }
func (a Tuple) Blue() float64  { return a[2] }

func (a Tuple) IsPoint() bool  { return a[3] == 1 }
func (a Tuple) IsVector() bool { return a[3] == 0 }

func (a Tuple) Add(b Tuple) Tuple {
	return Tuple{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (a Tuple) Sub(b Tuple) Tuple {
	return Tuple{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func (a Tuple) Negate() Tuple {
	return Tuple{-a[0], -a[1], -a[2], -a[3]}
}

func (a Tuple) Scale(s float64) Tuple {
	return Tuple{a[0] * s, a[1] * s, a[2] * s, a[3] * s}
}

func (a Tuple) Div(s float64) Tuple {
	return Tuple{a[0] / s, a[1] / s, a[2] / s, a[3] / s}
}

// Magnitude includes w, so a point's magnitude is not its distance from the origin.
func (a Tuple) Magnitude() float64 {
	return math.Sqrt(a[0]*a[0] + a[1]*a[1] + a[2]*a[2] + a[3]*a[3])
}

// Normalize returns a / |a|, or ErrZeroMagnitude when |a| is zero.
func (a Tuple) Normalize() (Tuple, error) {
	m := a.Magnitude()
	if m == 0 {
		return Tuple{}, ErrZeroMagnitude
	}
	return a.Div(m), nil
}

// Dot is the 4-component dot product.
func (a Tuple) Dot(b Tuple) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

// Cross is the 3-component cross product. The result is always a vector.
func (a Tuple) Cross(b Tuple) Tuple {
	return Vector(
		a[1]*b[2]-a[2]*b[1],
		a[2]*b[0]-a[0]*b[2],
		a[0]*b[1]-a[1]*b[0],
	)
}

// HadamardProduct blends two colors component-wise.
func (a Tuple) HadamardProduct(b Tuple) Tuple {
	return Color(a[0]*b[0], a[1]*b[1], a[2]*b[2])
}

// Equal reports whether every component differs by less than Epsilon.
func (a Tuple) Equal(b Tuple) bool {
	for i := range a {
		if !ApproxEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
