// Package fit provides least-squares curve fitting over tabulated
// measurement data, with quantified goodness of fit.
//
// Three model families are supported:
//
//   - Polynomial: direct least squares via the normal equations
//   - Rational: a ratio of polynomials, fitted by iterative reweighted
//     least squares
//   - Vector: an independent polynomial per component of vector-valued
//     samples
//
// Every fit is a single batch computation producing an immutable result
// value that the caller evaluates and scores:
//
//	poly, err := fit.FitPolynomial(xs, ys, 2)
//	if err != nil {
//	    return err
//	}
//	m, _ := fit.ComputeMetrics(xs, ys, poly.Eval)
//	fmt.Printf("R²=%.4f RMSE=%.4f\n", m.RSquared, m.RMSE)
//
// Rational fits accept functional options for their iteration control:
//
//	r, err := fit.FitRational(xs, ys, 2, 1,
//	    fit.WithMaxIterations(200),
//	    fit.WithTolerance(1e-9),
//	)
//
// Unlike the interpolation routines, fitting does not require sorted x
// values. All functions are pure and safe for concurrent use on
// caller-owned inputs.
package fit
