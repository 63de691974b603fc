// Package interp provides interpolation over tabulated measurement data.
//
// All interpolators share the same boundary policy: queries at or beyond
// either end of the table return the endpoint value, never an extrapolation.
// Measurement tables are only trustworthy inside their measured range, so
// the library clamps instead of guessing.
//
// # Piecewise Interpolation
//
// Linear, LogLinear, Nearest and Bilinear are stateless free functions over
// caller-owned slices. The x sequence must be sorted ascending; the
// functions do not validate sortedness.
//
//	y, err := interp.Linear(xs, ys, 2.5)
//	y, err := interp.LogLinear(freqs, gains, 2.4e9) // log-frequency tables
//	y, err := interp.Bilinear(xGrid, yGrid, table, 3.1, 0.7)
//
// # Akima Splines
//
// Akima is a shape-preserving cubic spline that suppresses the overshoot of
// classic cubic splines near abrupt slope changes, which matters for
// calibration curves with sudden-but-real transitions. Construction is O(n)
// and the resulting value is immutable:
//
//	sp, err := interp.NewAkima(xs, ys)
//	y := sp.Eval(2.5)
//
// # Concurrency
//
// Everything in this package is a pure computation over its inputs. The
// free functions and a constructed *Akima are safe for concurrent use.
package interp
