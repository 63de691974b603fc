package fit

import (
	"fmt"
	"strings"

	"github.com/arloliu/tabfit/errs"
	"github.com/arloliu/tabfit/internal/matrix"
)

// Polynomial holds coefficients in low-to-high degree order: index k is the
// coefficient of x^k. Treat it as immutable once produced by a fit.
type Polynomial []float64

// Eval evaluates the polynomial at x by Horner's scheme. An empty
// coefficient sequence evaluates to 0 everywhere.
func (p Polynomial) Eval(x float64) float64 {
	sum := 0.0
	for i := len(p) - 1; i >= 0; i-- {
		sum = sum*x + p[i]
	}

	return sum
}

// Degree returns the nominal degree, len(p)-1, or -1 for an empty
// polynomial. Trailing zero coefficients are not stripped.
func (p Polynomial) Degree() int {
	return len(p) - 1
}

// String renders the polynomial as a human-readable formula, lowest term
// first, e.g. "1.0000 + 2.0000*x + 3.0000*x^2".
func (p Polynomial) String() string {
	if len(p) == 0 {
		return "0"
	}

	var sb strings.Builder
	for k, c := range p {
		if k > 0 {
			sb.WriteString(" + ")
		}
		switch k {
		case 0:
			fmt.Fprintf(&sb, "%.4f", c)
		case 1:
			fmt.Fprintf(&sb, "%.4f*x", c)
		default:
			fmt.Fprintf(&sb, "%.4f*x^%d", c, k)
		}
	}

	return sb.String()
}

// FitPolynomial fits a polynomial of the given degree to (xs, ys) by least
// squares: it builds the Vandermonde design matrix, forms the normal
// equations AᵀA·coeffs = Aᵀy, and solves the small dense system.
//
// Requires degree >= 0 (errs.ErrInvalidDomain), equal input lengths
// (errs.ErrLengthMismatch), a non-empty input (errs.ErrEmptyInput) and at
// least degree+1 samples (errs.ErrInsufficientPoints). Duplicate or
// degenerate sample placement can make the normal equations rank-deficient,
// which surfaces as errs.ErrSingularMatrix.
func FitPolynomial(xs, ys []float64, degree int) (Polynomial, error) {
	if degree < 0 {
		return nil, fmt.Errorf("degree %d is negative: %w", degree, errs.ErrInvalidDomain)
	}
	if len(xs) != len(ys) {
		return nil, errs.ErrLengthMismatch
	}
	if len(xs) == 0 {
		return nil, errs.ErrEmptyInput
	}
	if len(xs) < degree+1 {
		return nil, fmt.Errorf("%d samples for degree %d: %w",
			len(xs), degree, errs.ErrInsufficientPoints)
	}

	terms := degree + 1

	// Vandermonde design matrix rows, one per sample.
	design := make([][]float64, len(xs))
	for i, x := range xs {
		row := make([]float64, terms)
		pow := 1.0
		for j := 0; j < terms; j++ {
			row[j] = pow
			pow *= x
		}
		design[i] = row
	}

	coeffs, err := solveNormalEquations(design, ys)
	if err != nil {
		return nil, err
	}

	return Polynomial(coeffs), nil
}

// solveNormalEquations forms AᵀA·θ = Aᵀy from the design matrix rows and
// solves for θ. Shared by the polynomial and rational fitters.
func solveNormalEquations(design [][]float64, ys []float64) ([]float64, error) {
	terms := len(design[0])
	normal := matrix.NewDense(terms)
	rhs := make([]float64, terms)

	for i, row := range design {
		for j := 0; j < terms; j++ {
			for k := 0; k < terms; k++ {
				normal.Add(j, k, row[j]*row[k])
			}
			rhs[j] += row[j] * ys[i]
		}
	}

	return normal.Solve(rhs)
}
