package interp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tabfit/errs"
)

func TestNewAkimaValidation(t *testing.T) {
	_, err := NewAkima([]float64{0, 1, 2, 3}, []float64{0, 1, 2, 3})
	require.ErrorIs(t, err, errs.ErrInsufficientPoints)

	_, err = NewAkima([]float64{0, 1, 2, 3, 4}, []float64{0, 1, 2})
	require.ErrorIs(t, err, errs.ErrLengthMismatch)
}

func TestAkimaExactAtKnots(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4, 5}
	ys := []float64{1, 3, 7, 13, 21, 31}

	sp, err := NewAkima(xs, ys)
	require.NoError(t, err)

	for i := range xs {
		require.InDelta(t, ys[i], sp.Eval(xs[i]), 1e-9, "knot %d", i)
	}
}

func TestAkimaClampsAtBoundaries(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{5, 6, 7, 8, 9}

	sp, err := NewAkima(xs, ys)
	require.NoError(t, err)

	require.Equal(t, 5.0, sp.Eval(-10))
	require.Equal(t, 5.0, sp.Eval(0))
	require.Equal(t, 9.0, sp.Eval(4))
	require.Equal(t, 9.0, sp.Eval(100))
	require.Equal(t, 0.0, sp.Min())
	require.Equal(t, 4.0, sp.Max())
}

func TestAkimaMonotonicRunStaysInWindow(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4, 5}
	ys := []float64{1, 3, 7, 13, 21, 31}

	sp, err := NewAkima(xs, ys)
	require.NoError(t, err)

	// For every three consecutive increasing points, values strictly between
	// the outer pair must stay within their y window.
	for i := 0; i+2 < len(xs); i++ {
		lo, hi := ys[i], ys[i+2]
		for x := xs[i] + 0.05; x < xs[i+2]; x += 0.05 {
			v := sp.Eval(x)
			require.GreaterOrEqual(t, v, lo, "window %d at x=%g", i, x)
			require.LessOrEqual(t, v, hi, "window %d at x=%g", i, x)
		}
	}
}

func TestAkimaFlatRunStaysFlat(t *testing.T) {
	// A flat run followed by a ramp is the shape classic cubic splines
	// overshoot on; the Akima weights keep the flat region identically flat.
	xs := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	ys := []float64{0, 0, 0, 0, 0, 1, 2, 3, 4, 5}

	sp, err := NewAkima(xs, ys)
	require.NoError(t, err)

	for x := 0.0; x <= 3.0; x += 0.1 {
		require.InDelta(t, 0.0, sp.Eval(x), 1e-12, "x=%g", x)
	}
}

func TestAkimaDoesNotMutateInputs(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{0, 1, 4, 9, 16}

	sp, err := NewAkima(xs, ys)
	require.NoError(t, err)

	xs[2] = 999
	ys[2] = -999
	require.InDelta(t, 4.0, sp.Eval(2), 1e-9, "spline must own copies of its table")
}

func TestAkimaEvalAll(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{0, 2, 4, 6, 8}

	sp, err := NewAkima(xs, ys)
	require.NoError(t, err)

	qs := []float64{0, 0.5, 1, 3.5, 4}
	got := sp.EvalAll(qs)
	require.Len(t, got, len(qs))
	for i, q := range qs {
		require.Equal(t, sp.Eval(q), got[i])
	}

	// Caller-supplied output buffer is used and returned.
	buf := make([]float64, len(qs))
	got = sp.EvalAll(qs, buf)
	require.Equal(t, &buf[0], &got[0])
}

func TestAkimaDiff(t *testing.T) {
	// On perfectly linear data every derivative estimate is the line slope.
	xs := []float64{0, 1, 2, 3, 4, 5}
	ys := []float64{0, 2, 4, 6, 8, 10}

	sp, err := NewAkima(xs, ys)
	require.NoError(t, err)

	require.InDelta(t, 2.0, sp.Diff(2.5, 1), 1e-9)
	require.InDelta(t, 0.0, sp.Diff(2.5, 2), 1e-9)
	require.InDelta(t, sp.Eval(2.5), sp.Diff(2.5, 0), 1e-12)
	require.Equal(t, 0.0, sp.Diff(2.5, 4))

	// Outside the domain the clamped value is constant.
	require.Equal(t, 0.0, sp.Diff(-1, 1))
	require.Equal(t, 10.0, sp.Diff(99, 0))
}

func TestAkimaContinuityAcrossSegments(t *testing.T) {
	xs := []float64{0, 0.5, 1.5, 2, 3.5, 4, 5}
	ys := []float64{2, 1, 1, 0, 2, 3, 1}

	sp, err := NewAkima(xs, ys)
	require.NoError(t, err)

	// Approaching each interior knot from both sides converges to the knot
	// value.
	for i := 1; i < len(xs)-1; i++ {
		left := sp.Eval(xs[i] - 1e-9)
		right := sp.Eval(xs[i] + 1e-9)
		require.InDelta(t, ys[i], left, 1e-6, "left of knot %d", i)
		require.InDelta(t, ys[i], right, 1e-6, "right of knot %d", i)
	}
}

func BenchmarkAkimaEval(b *testing.B) {
	n := 1024
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
		ys[i] = math.Sin(float64(i) / 10)
	}
	sp, err := NewAkima(xs, ys)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sp.Eval(float64(i%n) + 0.5)
	}
}
