// Package tabfit provides deterministic interpolation and curve fitting over
// tabulated measurement data.
//
// Tabfit turns calibration tables, sensor sweeps, and other sampled curves
// into queryable functions. Interpolation never extrapolates: queries outside
// the tabulated range clamp to the nearest endpoint, so a table is always a
// total function over the reals.
//
// # Core Features
//
//   - Clamped 1D interpolation: linear, log-linear, and nearest-neighbor
//   - Clamped 2D bilinear interpolation over rectangular grids
//   - Akima shape-preserving cubic splines with analytic derivatives
//   - Least-squares fitting: polynomial, rational, and vector-valued
//   - Fit quality metrics (R², RMSE, MAE, max and mean relative error)
//   - A compact binary table format with optional compression (Zstd, S2, LZ4)
//     and xxHash64 integrity checking
//
// # Basic Usage
//
// Interpolating a calibration table:
//
//	import "github.com/arloliu/tabfit"
//
//	tbl, _ := tabfit.NewTable(
//	    []float64{0, 10, 20, 30},   // x: temperature
//	    []float64{1.0, 1.2, 1.7, 2.9}, // y: correction factor
//	)
//	v, _ := tabfit.Interpolate(tbl, 15) // 1.45
//
// Fitting and assessing a polynomial:
//
//	p, _ := tabfit.FitPolynomial(tbl, 2)
//	m, _ := tabfit.Assess(tbl, p.Eval)
//	fmt.Println(p, m) // coefficients and R²/RMSE/...
//
// Persisting a table:
//
//	data, _ := tabfit.EncodeTable(tbl, table.WithCompression(format.CompressionZstd))
//	tbl2, _ := tabfit.DecodeTable(data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the table,
// interp, and fit packages, simplifying the most common use cases. For
// fine-grained control (raw x/y slices, bilinear grids, rational fit
// options), use those packages directly.
package tabfit

import (
	"github.com/arloliu/tabfit/errs"
	"github.com/arloliu/tabfit/fit"
	"github.com/arloliu/tabfit/interp"
	"github.com/arloliu/tabfit/table"
)

// NewTable creates a measurement table from an x column and one or more
// value columns. See table.New.
func NewTable(xs []float64, cols ...[]float64) (*table.Table, error) {
	return table.New(xs, cols...)
}

// EncodeTable serializes a table into the binary table format. See
// table.Encode for the available options.
func EncodeTable(t *table.Table, opts ...table.Option) ([]byte, error) {
	return table.Encode(t, opts...)
}

// DecodeTable parses a table previously produced by EncodeTable.
func DecodeTable(data []byte) (*table.Table, error) {
	return table.Decode(data)
}

// Interpolate evaluates the table's first value column at x using clamped
// linear interpolation. The x column must be sorted ascending.
func Interpolate(t *table.Table, x float64) (float64, error) {
	if !t.SortedByX() {
		return 0, errs.ErrInvalidDomain
	}
	xs, ys := t.XY()

	return interp.Linear(xs, ys, x)
}

// NewSpline builds an Akima shape-preserving cubic spline over the table's
// first value column. The x column must be sorted ascending and hold at
// least five samples.
func NewSpline(t *table.Table) (*interp.Akima, error) {
	if !t.SortedByX() {
		return nil, errs.ErrInvalidDomain
	}
	xs, ys := t.XY()

	return interp.NewAkima(xs, ys)
}

// FitPolynomial fits a least-squares polynomial of the given degree to the
// table's first value column.
func FitPolynomial(t *table.Table, degree int) (fit.Polynomial, error) {
	xs, ys := t.XY()

	return fit.FitPolynomial(xs, ys, degree)
}

// FitRational fits a rational function to the table's first value column.
// See fit.FitRational for the available options.
func FitRational(t *table.Table, numDegree, denDegree int, opts ...fit.RationalOption) (fit.Rational, error) {
	xs, ys := t.XY()

	return fit.FitRational(xs, ys, numDegree, denDegree, opts...)
}

// FitVector fits an independent polynomial of the given degree to every
// value column of the table.
func FitVector(t *table.Table, degree int) (fit.Vector, error) {
	return fit.FitVector(t.X(), t.Vectors(), degree)
}

// Assess computes fit quality metrics of predict against the table's first
// value column.
func Assess(t *table.Table, predict func(float64) float64) (fit.Metrics, error) {
	xs, ys := t.XY()

	return fit.ComputeMetrics(xs, ys, predict)
}

// AssessVector computes aggregate fit quality metrics of predict against
// every value column of the table.
func AssessVector(t *table.Table, predict func(float64) []float64) (fit.Metrics, error) {
	return fit.ComputeVectorMetrics(t.X(), t.Vectors(), predict)
}
