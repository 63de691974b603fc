package tabfit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tabfit/errs"
	"github.com/arloliu/tabfit/format"
	"github.com/arloliu/tabfit/table"
)

func TestInterpolateRoundTrip(t *testing.T) {
	tbl, err := NewTable(
		[]float64{0, 10, 20, 30},
		[]float64{1.0, 1.2, 1.7, 2.9},
	)
	require.NoError(t, err)

	v, err := Interpolate(tbl, 15)
	require.NoError(t, err)
	require.InDelta(t, 1.45, v, 1e-12)

	// Clamped outside the range.
	v, err = Interpolate(tbl, -5)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	v, err = Interpolate(tbl, 100)
	require.NoError(t, err)
	require.Equal(t, 2.9, v)
}

func TestInterpolateRequiresSortedX(t *testing.T) {
	tbl, err := NewTable([]float64{3, 1, 2}, []float64{0, 0, 0})
	require.NoError(t, err)

	_, err = Interpolate(tbl, 2)
	require.ErrorIs(t, err, errs.ErrInvalidDomain)

	_, err = NewSpline(tbl)
	require.ErrorIs(t, err, errs.ErrInvalidDomain)
}

func TestNewSpline(t *testing.T) {
	tbl, err := NewTable(
		[]float64{0, 1, 2, 3, 4, 5},
		[]float64{0, 1, 4, 9, 16, 25},
	)
	require.NoError(t, err)

	sp, err := NewSpline(tbl)
	require.NoError(t, err)

	// Knots are reproduced exactly.
	for i, x := range tbl.X() {
		require.InDelta(t, tbl.Column(0)[i], sp.Eval(x), 1e-12)
	}
}

func TestFitAndAssess(t *testing.T) {
	tbl, err := NewTable(
		[]float64{0, 1, 2, 3, 4},
		[]float64{1, 5, 13, 25, 41}, // y = 1 + 2x + 2x²
	)
	require.NoError(t, err)

	p, err := FitPolynomial(tbl, 2)
	require.NoError(t, err)
	require.InDelta(t, 1.0, p[0], 1e-8)
	require.InDelta(t, 2.0, p[1], 1e-8)
	require.InDelta(t, 2.0, p[2], 1e-8)

	m, err := Assess(tbl, p.Eval)
	require.NoError(t, err)
	require.InDelta(t, 1.0, m.RSquared, 1e-9)
}

func TestFitVectorAndAssessVector(t *testing.T) {
	tbl, err := NewTable(
		[]float64{0, 1, 2, 3},
		[]float64{0, 1, 4, 9},  // x²
		[]float64{3, 2, 1, 0},  // 3 - x
	)
	require.NoError(t, err)

	v, err := FitVector(tbl, 2)
	require.NoError(t, err)
	require.Equal(t, 2, v.Dim())

	m, err := AssessVector(tbl, v.Eval)
	require.NoError(t, err)
	require.InDelta(t, 1.0, m.RSquared, 1e-9)
}

func TestFitRationalWrapper(t *testing.T) {
	xs := []float64{0, 0.5, 1, 2, 3, 4}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = (2 + x) / (1 + 0.25*x)
	}
	tbl, err := NewTable(xs, ys)
	require.NoError(t, err)

	r, err := FitRational(tbl, 1, 1)
	require.NoError(t, err)
	require.InDelta(t, 2.0, r.Num[0], 1e-5)
	require.InDelta(t, 1.0, r.Num[1], 1e-5)
	require.InDelta(t, 0.25, r.Den[1], 1e-5)
}

func TestEncodeDecodeTableWrappers(t *testing.T) {
	tbl, err := NewTable(
		[]float64{0, 1, 2, 3},
		[]float64{1, 5, 13, 25},
	)
	require.NoError(t, err)

	data, err := EncodeTable(tbl, table.WithCompression(format.CompressionLZ4))
	require.NoError(t, err)

	got, err := DecodeTable(data)
	require.NoError(t, err)
	require.Equal(t, tbl.X(), got.X())
	require.Equal(t, tbl.Column(0), got.Column(0))
}
