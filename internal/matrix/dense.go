// Package matrix provides the small dense linear-system kernel shared by the
// least-squares fitters.
//
// Systems here are sized by fit-parameter count (typically well under 20
// unknowns), so a direct Gaussian elimination with partial pivoting is both
// the simplest and the fastest tool. The package is not a general linear
// algebra library and is deliberately internal.
package matrix

import (
	"fmt"
	"math"

	"github.com/arloliu/tabfit/errs"
)

// pivotTolerance is the magnitude below which a pivot is treated as zero.
// A pivot this small means the normal-equation matrix is rank-deficient.
const pivotTolerance = 1e-10

// Dense is a square matrix stored row-major in a flat slice.
type Dense struct {
	vals []float64
	n    int
}

// NewDense creates an n×n zero matrix.
func NewDense(n int) *Dense {
	if n <= 0 {
		panic("matrix: dimension must be positive")
	}

	return &Dense{vals: make([]float64, n*n), n: n}
}

// Size returns the matrix dimension n.
func (m *Dense) Size() int { return m.n }

// At returns the element at row i, column j.
func (m *Dense) At(i, j int) float64 { return m.vals[i*m.n+j] }

// Set assigns the element at row i, column j.
func (m *Dense) Set(i, j int, v float64) { m.vals[i*m.n+j] = v }

// Add accumulates v into the element at row i, column j.
func (m *Dense) Add(i, j int, v float64) { m.vals[i*m.n+j] += v }

// Solve solves m·x = b for x using Gaussian elimination with partial
// pivoting and back-substitution. m and b are left unmodified; elimination
// runs on an augmented working copy.
//
// Returns errs.ErrSingularMatrix when a pivot magnitude falls below the
// numerical tolerance, which signals that the system has no unique solution.
func (m *Dense) Solve(b []float64) ([]float64, error) {
	n := m.n
	if len(b) != n {
		return nil, fmt.Errorf("matrix: right-hand side has length %d, want %d: %w",
			len(b), n, errs.ErrDimensionMismatch)
	}

	// Augmented working copy [m | b], one row per slice for cheap swaps.
	aug := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, n+1)
		copy(row, m.vals[i*n:(i+1)*n])
		row[n] = b[i]
		aug[i] = row
	}

	// Forward elimination with partial pivoting.
	for col := 0; col < n; col++ {
		pivot := col
		maxAbs := math.Abs(aug[col][col])
		for r := col + 1; r < n; r++ {
			if abs := math.Abs(aug[r][col]); abs > maxAbs {
				maxAbs = abs
				pivot = r
			}
		}
		if maxAbs < pivotTolerance {
			return nil, errs.ErrSingularMatrix
		}
		if pivot != col {
			aug[col], aug[pivot] = aug[pivot], aug[col]
		}

		for r := col + 1; r < n; r++ {
			factor := aug[r][col] / aug[col][col]
			if factor == 0 {
				continue
			}
			for c := col; c <= n; c++ {
				aug[r][c] -= factor * aug[col][c]
			}
		}
	}

	// Back substitution.
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := aug[i][n]
		for j := i + 1; j < n; j++ {
			sum -= aug[i][j] * x[j]
		}
		x[i] = sum / aug[i][i]
	}

	return x, nil
}
