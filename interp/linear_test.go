package interp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tabfit/errs"
)

func TestLinearExactAtKnots(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4, 5}
	ys := []float64{1, 3, 7, 13, 21, 31}

	for i := range xs {
		v, err := Linear(xs, ys, xs[i])
		require.NoError(t, err)
		require.Equal(t, ys[i], v, "knot %d", i)
	}
}

func TestLinearMidpoints(t *testing.T) {
	xs := []float64{0, 2, 4}
	ys := []float64{0, 10, 30}

	v, err := Linear(xs, ys, 1)
	require.NoError(t, err)
	require.InDelta(t, 5.0, v, 1e-12)

	v, err = Linear(xs, ys, 3)
	require.NoError(t, err)
	require.InDelta(t, 20.0, v, 1e-12)
}

func TestLinearClampsAtBoundaries(t *testing.T) {
	xs := []float64{1, 2, 3}
	ys := []float64{10, 20, 30}

	v, err := Linear(xs, ys, -100)
	require.NoError(t, err)
	require.Equal(t, 10.0, v)

	v, err = Linear(xs, ys, 100)
	require.NoError(t, err)
	require.Equal(t, 30.0, v)
}

func TestLinearSingleSample(t *testing.T) {
	v, err := Linear([]float64{2}, []float64{7}, 99)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)
}

func TestLinearErrors(t *testing.T) {
	_, err := Linear([]float64{1, 2}, []float64{1}, 1.5)
	require.ErrorIs(t, err, errs.ErrLengthMismatch)

	_, err = Linear(nil, nil, 1.5)
	require.ErrorIs(t, err, errs.ErrEmptyInput)
}

func TestLinearAll(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{0, 10, 20}

	out, err := LinearAll(xs, ys, []float64{-1, 0.5, 1.5, 3})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 5, 15, 20}, out)
}

func TestLinearAllEmptyQueries(t *testing.T) {
	out, err := LinearAll([]float64{0, 1}, []float64{0, 1}, nil)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestLogLinear(t *testing.T) {
	// Linear in log10(x): y = 10*log10(x).
	xs := []float64{1, 10, 100, 1000}
	ys := []float64{0, 10, 20, 30}

	v, err := LogLinear(xs, ys, math.Sqrt(10)) // log10 = 0.5
	require.NoError(t, err)
	require.InDelta(t, 5.0, v, 1e-9)

	v, err = LogLinear(xs, ys, 100)
	require.NoError(t, err)
	require.InDelta(t, 20.0, v, 1e-9)
}

func TestLogLinearInvalidDomain(t *testing.T) {
	xs := []float64{1, 10}
	ys := []float64{0, 10}

	_, err := LogLinear(xs, ys, 0)
	require.ErrorIs(t, err, errs.ErrInvalidDomain)

	_, err = LogLinear(xs, ys, -5)
	require.ErrorIs(t, err, errs.ErrInvalidDomain)
}

func TestLogLinearClamps(t *testing.T) {
	xs := []float64{10, 100}
	ys := []float64{1, 2}

	v, err := LogLinear(xs, ys, 1) // below range but still positive
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

func TestNearest(t *testing.T) {
	// x = 0, 0.5, 1.0, ..., 6.0; y = 10*x so values are distinguishable.
	var xs, ys []float64
	for x := 0.0; x <= 6.0; x += 0.5 {
		xs = append(xs, x)
		ys = append(ys, 10*x)
	}

	// 4.3 is closer to 4.5 than to 4.0.
	v, err := Nearest(xs, ys, 4.3)
	require.NoError(t, err)
	require.Equal(t, 45.0, v)

	// 4.2 is closer to 4.0.
	v, err = Nearest(xs, ys, 4.2)
	require.NoError(t, err)
	require.Equal(t, 40.0, v)
}

func TestNearestTieFavorsLeft(t *testing.T) {
	xs := []float64{0, 1}
	ys := []float64{100, 200}

	v, err := Nearest(xs, ys, 0.5)
	require.NoError(t, err)
	require.Equal(t, 100.0, v)
}

func TestNearestClamps(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{5, 6, 7}

	v, err := Nearest(xs, ys, -3)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)

	v, err = Nearest(xs, ys, 9)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)
}
