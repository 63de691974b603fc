package interp

import (
	"math"

	"github.com/arloliu/tabfit/errs"
)

// validatePair checks the shared preconditions of the 1D interpolators.
func validatePair(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return errs.ErrLengthMismatch
	}
	if len(xs) == 0 {
		return errs.ErrEmptyInput
	}

	return nil
}

// Linear interpolates the table (xs, ys) at x using the two-point form on
// the bracketing pair. Queries at or beyond either end return the endpoint
// value. A single-sample table returns its only y unconditionally.
func Linear(xs, ys []float64, x float64) (float64, error) {
	if err := validatePair(xs, ys); err != nil {
		return 0, err
	}
	if len(xs) == 1 {
		return ys[0], nil
	}

	i := SearchAscending(xs, x)
	if i == 0 {
		return ys[0], nil
	}
	if i == len(xs) {
		return ys[len(ys)-1], nil
	}

	x0, x1 := xs[i-1], xs[i]
	y0, y1 := ys[i-1], ys[i]

	return y0 + (y1-y0)*(x-x0)/(x1-x0), nil
}

// LinearAll interpolates every query in qs independently, returning a
// same-length result slice. Each element is the plain Linear result; there
// is no cross-element dependency.
func LinearAll(xs, ys, qs []float64) ([]float64, error) {
	if err := validatePair(xs, ys); err != nil {
		return nil, err
	}

	out := make([]float64, len(qs))
	for i, q := range qs {
		v, err := Linear(xs, ys, q)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// LogLinear interpolates with the independent variable transformed to its
// base-10 logarithm, which linearizes log-frequency vs. decibel tables.
// The query must be strictly positive; errs.ErrInvalidDomain otherwise.
// The xs values are assumed positive as well, which holds for the frequency
// tables this is meant for.
func LogLinear(xs, ys []float64, x float64) (float64, error) {
	if err := validatePair(xs, ys); err != nil {
		return 0, err
	}
	if x <= 0 {
		return 0, errs.ErrInvalidDomain
	}

	logXs := make([]float64, len(xs))
	for i, v := range xs {
		logXs[i] = math.Log10(v)
	}

	return Linear(logXs, ys, math.Log10(x))
}

// Nearest returns the y of whichever bracketing sample is numerically
// closer to x. Ties favor the left neighbor. Queries at or beyond either
// end return the endpoint value.
func Nearest(xs, ys []float64, x float64) (float64, error) {
	if err := validatePair(xs, ys); err != nil {
		return 0, err
	}
	if len(xs) == 1 {
		return ys[0], nil
	}

	i := SearchAscending(xs, x)
	if i == 0 {
		return ys[0], nil
	}
	if i == len(xs) {
		return ys[len(ys)-1], nil
	}

	if x-xs[i-1] <= xs[i]-x {
		return ys[i-1], nil
	}

	return ys[i], nil
}
