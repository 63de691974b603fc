package interp

import (
	"math"

	"github.com/arloliu/tabfit/errs"
)

const (
	// weightAbsent marks a weight whose neighbor segment does not exist (or
	// whose slope configuration is degenerate). The value is large enough to
	// dominate any real weight, biasing the derivative average toward the
	// segment that does exist.
	weightAbsent = 1e6

	// weightAbsentThreshold classifies a weight as absent; real weights stay
	// far below it.
	weightAbsentThreshold = 1e5

	// weightEpsilon guards the 0/0 case when both weights are numerically
	// equal.
	weightEpsilon = 1e-10
)

// Akima is a shape-preserving cubic interpolator.
//
// Unlike a classic cubic spline it estimates each knot derivative from a
// weighted average of the adjacent segment slopes, which suppresses the
// overshoot a global spline produces near abrupt slope changes. Calibration
// tables with sudden-but-real transitions keep their shape.
//
// An Akima owns copies of its input table and three derived per-segment
// coefficient arrays; it never mutates after construction and is safe for
// concurrent use.
type Akima struct {
	xs, ys  []float64
	b, c, d []float64
}

// NewAkima constructs a spline over the ascending table (xs, ys).
//
// Requires at least 5 points (errs.ErrInsufficientPoints) and equal lengths
// (errs.ErrLengthMismatch). Construction is O(n); the inputs are copied and
// may be reused by the caller afterwards.
func NewAkima(xs, ys []float64) (*Akima, error) {
	if len(xs) != len(ys) {
		return nil, errs.ErrLengthMismatch
	}
	n := len(xs)
	if n < 5 {
		return nil, errs.ErrInsufficientPoints
	}

	sp := &Akima{
		xs: make([]float64, n),
		ys: make([]float64, n),
		b:  make([]float64, n-1),
		c:  make([]float64, n-1),
		d:  make([]float64, n-1),
	}
	copy(sp.xs, xs)
	copy(sp.ys, ys)

	slopes := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		slopes[i] = (ys[i+1] - ys[i]) / (xs[i+1] - xs[i])
	}

	// slopeAt clamps out-of-range lookups to the nearest real segment.
	slopeAt := func(i int) float64 {
		if i < 0 {
			i = 0
		}
		if i > n-2 {
			i = n - 2
		}

		return slopes[i]
	}

	// Weight cell j corresponds to point j-2; the two cells at each end
	// stand for segments beyond the table and stay absent.
	weight := make([]float64, n+4)
	weight[0], weight[1] = weightAbsent, weightAbsent
	weight[n+2], weight[n+3] = weightAbsent, weightAbsent
	for i := 0; i < n; i++ {
		s0 := math.Abs(slopeAt(i - 2))
		s1 := math.Abs(slopeAt(i - 1))
		s2 := math.Abs(slopeAt(i))
		s3 := math.Abs(slopeAt(i + 1))

		if s1 == s0 || s2 == s3 {
			weight[i+2] = weightAbsent
		} else {
			weight[i+2] = (s0 + s1) / (s1 + s2)
		}
	}

	// Knot derivatives: weighted average of the two adjacent slopes. When
	// the weights cancel, fall back to the raw slope on the side whose
	// weight is not the absent marker.
	deriv := make([]float64, n)
	for i := 0; i < n; i++ {
		w1 := weight[i+2]
		w2 := weight[i+3]

		if math.Abs(w2-w1) < weightEpsilon {
			if w1 >= weightAbsentThreshold {
				deriv[i] = slopeAt(i)
			} else {
				deriv[i] = slopeAt(i - 1)
			}
			continue
		}

		deriv[i] = (w1*slopeAt(i-1) + w2*slopeAt(i)) / (w1 + w2)
	}

	// Hermite-style cubic coefficients per segment.
	for i := 0; i < n-1; i++ {
		h := xs[i+1] - xs[i]
		s := slopes[i]
		p, q := deriv[i], deriv[i+1]

		sp.b[i] = p
		sp.c[i] = (3*s - 2*p - q) / h
		sp.d[i] = (p + q - 2*s) / (h * h)
	}

	return sp, nil
}

// Eval returns the spline value at x. Queries at or beyond either end
// return the corresponding endpoint y; the spline never extrapolates.
func (sp *Akima) Eval(x float64) float64 {
	n := len(sp.xs)
	i := SearchAscending(sp.xs, x)
	if i == 0 {
		return sp.ys[0]
	}
	if i == n {
		return sp.ys[n-1]
	}

	seg := i - 1
	dx := x - sp.xs[seg]

	return sp.ys[seg] + sp.b[seg]*dx + sp.c[seg]*dx*dx + sp.d[seg]*dx*dx*dx
}

// EvalAll evaluates the spline at every query in qs. If an output slice is
// supplied the results are written there (and returned as a convenience);
// only the first output slice is used.
func (sp *Akima) EvalAll(qs []float64, out ...[]float64) []float64 {
	var res []float64
	if len(out) > 0 {
		res = out[0]
	} else {
		res = make([]float64, len(qs))
	}
	for i, q := range qs {
		res[i] = sp.Eval(q)
	}

	return res
}

// Diff returns the derivative of the spline at x to the given order.
// Order 0 is Eval; orders above 3 are identically zero. Outside the table
// the clamped value is constant, so every derivative there is zero.
func (sp *Akima) Diff(x float64, order int) float64 {
	n := len(sp.xs)
	i := SearchAscending(sp.xs, x)
	if i == 0 || i == n {
		if order == 0 {
			return sp.Eval(x)
		}

		return 0
	}

	seg := i - 1
	dx := x - sp.xs[seg]
	b, c, d := sp.b[seg], sp.c[seg], sp.d[seg]

	switch order {
	case 0:
		return sp.ys[seg] + b*dx + c*dx*dx + d*dx*dx*dx
	case 1:
		return b + 2*c*dx + 3*d*dx*dx
	case 2:
		return 2*c + 6*d*dx
	case 3:
		return 6 * d
	default:
		return 0
	}
}

// Min returns the lower bound of the spline's domain.
func (sp *Akima) Min() float64 { return sp.xs[0] }

// Max returns the upper bound of the spline's domain.
func (sp *Akima) Max() float64 { return sp.xs[len(sp.xs)-1] }
