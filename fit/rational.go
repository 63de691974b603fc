package fit

import (
	"fmt"
	"math"

	"github.com/arloliu/tabfit/errs"
	"github.com/arloliu/tabfit/internal/options"
)

// denominatorFloor is the magnitude below which a denominator value is
// treated as zero. During fitting such values are clamped to the floor to
// keep the reweighting finite; during evaluation they are an error.
const denominatorFloor = 1e-10

// Rational is a fitted ratio of polynomials y ≈ Num(x)/Den(x).
//
// The denominator's constant term is fixed at 1 by construction. This pins
// the one redundant degree of freedom of the ratio (scaling both
// polynomials by a constant leaves it unchanged) and rules out the trivial
// all-zero solution.
type Rational struct {
	Num Polynomial
	Den Polynomial
}

// Eval evaluates the rational function at x.
//
// Returns errs.ErrNearSingularDenominator when x is numerically a root of
// the denominator.
func (r Rational) Eval(x float64) (float64, error) {
	q := r.Den.Eval(x)
	if math.Abs(q) < denominatorFloor {
		return 0, errs.ErrNearSingularDenominator
	}

	return r.Num.Eval(x) / q, nil
}

// String renders the fit as "(P) / (Q)" with both polynomials spelled out.
func (r Rational) String() string {
	return fmt.Sprintf("(%s) / (%s)", r.Num, r.Den)
}

// FitRational fits y ≈ P(x)/Q(x) with the given numerator and denominator
// degrees.
//
// The relationship is non-linear in the denominator coefficients, so the
// fit iterates reweighted least squares: each pass divides the design
// columns by the previous denominator estimate, solves the linearized
// normal equations, and stops once the sum-of-squared-error change falls
// below the configured tolerance or the iteration cap is reached.
//
// Requires non-negative degrees (errs.ErrInvalidDomain), equal input
// lengths (errs.ErrLengthMismatch), a non-empty input (errs.ErrEmptyInput)
// and at least numDegree+denDegree+1 samples (errs.ErrInsufficientPoints).
func FitRational(xs, ys []float64, numDegree, denDegree int, opts ...RationalOption) (Rational, error) {
	if numDegree < 0 || denDegree < 0 {
		return Rational{}, fmt.Errorf("degrees (%d, %d) must be non-negative: %w",
			numDegree, denDegree, errs.ErrInvalidDomain)
	}
	if len(xs) != len(ys) {
		return Rational{}, errs.ErrLengthMismatch
	}
	if len(xs) == 0 {
		return Rational{}, errs.ErrEmptyInput
	}
	if len(xs) < numDegree+denDegree+1 {
		return Rational{}, fmt.Errorf("%d samples for degrees (%d, %d): %w",
			len(xs), numDegree, denDegree, errs.ErrInsufficientPoints)
	}

	cfg := defaultRationalConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return Rational{}, err
	}

	numTerms := numDegree + 1
	// The denominator's constant term is pinned to 1, so only its higher
	// terms are free parameters.
	freeTerms := numTerms + denDegree

	num := make(Polynomial, numTerms)
	den := make(Polynomial, denDegree+1)
	den[0] = 1

	design := make([][]float64, len(xs))
	for i := range design {
		design[i] = make([]float64, freeTerms)
	}

	prevSSE := math.Inf(1)
	for iter := 0; iter < cfg.maxIterations; iter++ {
		// Linearize around the current denominator estimate.
		for i, x := range xs {
			q := den.Eval(x)
			if math.Abs(q) < denominatorFloor {
				q = denominatorFloor
			}

			row := design[i]
			pow := 1.0
			for j := 0; j < numTerms; j++ {
				row[j] = pow / q
				pow *= x
			}
			pow = x
			for j := 1; j <= denDegree; j++ {
				row[numTerms+j-1] = -ys[i] * pow / q
				pow *= x
			}
		}

		theta, err := solveNormalEquations(design, ys)
		if err != nil {
			return Rational{}, err
		}

		copy(num, theta[:numTerms])
		den[0] = 1
		copy(den[1:], theta[numTerms:])

		sse := clampedSSE(xs, ys, num, den)
		if math.Abs(prevSSE-sse) < cfg.tolerance {
			break
		}
		prevSSE = sse
	}

	return Rational{Num: num, Den: den}, nil
}

// clampedSSE computes the sum-of-squared-error of the current estimate,
// clamping near-zero denominator values the same way the iteration does so
// convergence bookkeeping never divides by zero.
func clampedSSE(xs, ys []float64, num, den Polynomial) float64 {
	sse := 0.0
	for i, x := range xs {
		q := den.Eval(x)
		if math.Abs(q) < denominatorFloor {
			q = denominatorFloor
		}
		e := ys[i] - num.Eval(x)/q
		sse += e * e
	}

	return sse
}
