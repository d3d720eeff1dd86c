package mathutil

import (
	"errors"
	"fmt"

	"golang.org/x/image/math/f64"
)

// ErrNotInvertible is returned by Inverse when the determinant is exactly zero.
var ErrNotInvertible = errors.New("mathutil: matrix is not invertible")

// Matrix is a square matrix stored row-major: m[r*n+c].
// Transforms are always 4×4; smaller sizes come from Submatrix.
type Matrix struct {
	n int
	m []float64
}

// NewMatrix builds a matrix from rows. Every row must have len(rows) entries.
func NewMatrix(rows ...[]float64) Matrix {
	n := len(rows)
	m := make([]float64, 0, n*n)
	for r, row := range rows {
		if len(row) != n {
			panic(fmt.Sprintf("mathutil: row %d has %d entries, want %d", r, len(row), n))
		}
		m = append(m, row...)
	}
	return Matrix{n: n, m: m}
}

func newMatrix(n int) Matrix {
	return Matrix{n: n, m: make([]float64, n*n)}
}

// FromMat4 copies a row-major f64.Mat4.
func FromMat4(a f64.Mat4) Matrix {
	m := newMatrix(4)
	copy(m.m, a[:])
	return m
}

// Mat4 returns the matrix as an f64.Mat4. The receiver must be 4×4.
func (a Matrix) Mat4() f64.Mat4 {
	a.mustBe4x4()
	var out f64.Mat4
	copy(out[:], a.m)
	return out
}

// Identity returns the 4×4 identity.
func Identity() Matrix {
	return FromMat4(f64.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// Size returns the number of rows (and columns).
func (a Matrix) Size() int { return a.n }

func (a Matrix) At(r, c int) float64 {
	return a.m[r*a.n+c]
}

// Equal reports whether both matrices have the same size and every element
// differs by less than Epsilon.
func (a Matrix) Equal(b Matrix) bool {
	if a.n != b.n {
		return false
	}
	for i := range a.m {
		if !ApproxEqual(a.m[i], b.m[i]) {
			return false
		}
	}
	return true
}

// Mul returns a × b. Sizes must match.
func (a Matrix) Mul(b Matrix) Matrix {
	if a.n != b.n {
		panic(fmt.Sprintf("mathutil: multiply %dx%d by %dx%d", a.n, a.n, b.n, b.n))
	}
	n := a.n
	out := newMatrix(n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			var sum float64
			for k := 0; k < n; k++ {
				sum += a.m[r*n+k] * b.m[k*n+c]
			}
			out.m[r*n+c] = sum
		}
	}
	return out
}

// MulTuple returns a × t, treating t as a column vector. The receiver must be 4×4.
func (a Matrix) MulTuple(t Tuple) Tuple {
	a.mustBe4x4()
	m := a.m
	return Tuple{
		m[0]*t[0] + m[1]*t[1] + m[2]*t[2] + m[3]*t[3],
		m[4]*t[0] + m[5]*t[1] + m[6]*t[2] + m[7]*t[3],
		m[8]*t[0] + m[9]*t[1] + m[10]*t[2] + m[11]*t[3],
		m[12]*t[0] + m[13]*t[1] + m[14]*t[2] + m[15]*t[3],
	}
}

func (a Matrix) Transpose() Matrix {
	n := a.n
	out := newMatrix(n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			out.m[c*n+r] = a.m[r*n+c]
		}
	}
	return out
}

// Determinant uses cofactor expansion along row 0, bottoming out at 2×2.
func (a Matrix) Determinant() float64 {
	switch a.n {
	case 0:
		return 1
	case 1:
		return a.m[0]
	case 2:
		return a.m[0]*a.m[3] - a.m[1]*a.m[2]
	}
	var det float64
	for c := 0; c < a.n; c++ {
		det += a.m[c] * a.Cofactor(0, c)
	}
	return det
}

// Submatrix returns a copy with the given row and column removed.
func (a Matrix) Submatrix(row, col int) Matrix {
	n := a.n
	out := newMatrix(n - 1)
	i := 0
	for r := 0; r < n; r++ {
		if r == row {
			continue
		}
		for c := 0; c < n; c++ {
			if c == col {
				continue
			}
			out.m[i] = a.m[r*n+c]
			i++
		}
	}
	return out
}

func (a Matrix) Minor(row, col int) float64 {
	return a.Submatrix(row, col).Determinant()
}

// Cofactor is the minor, negated when row+col is odd.
func (a Matrix) Cofactor(row, col int) float64 {
	minor := a.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Invertible reports whether the determinant is non-zero. No tolerance is applied.
func (a Matrix) Invertible() bool {
	return a.Determinant() != 0
}

// Inverse returns the inverse built from the transposed cofactor matrix.
func (a Matrix) Inverse() (Matrix, error) {
	det := a.Determinant()
	if det == 0 {
		return Matrix{}, fmt.Errorf("mathutil: inverse of %dx%d: %w", a.n, a.n, ErrNotInvertible)
	}
	n := a.n
	out := newMatrix(n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			// transposed: cofactor(r, c) lands at (c, r)
			out.m[c*n+r] = a.Cofactor(r, c) / det
		}
	}
	return out, nil
}

func (a Matrix) mustBe4x4() {
	if a.n != 4 {
		panic(fmt.Sprintf("mathutil: want 4x4 matrix, got %dx%d", a.n, a.n))
	}
}
