package fit

import (
	"fmt"
	"math"

	"github.com/arloliu/tabfit/errs"
)

// relativeErrorFloor is the |y| magnitude below which a sample is excluded
// from the mean relative error, where the ratio would be meaningless.
const relativeErrorFloor = 1e-10

// Metrics quantifies goodness of fit against a fixed reference sample set.
// All fields are computed once; the value is immutable.
type Metrics struct {
	// RSquared is the coefficient of determination (1 is a perfect fit).
	RSquared float64
	// RMSE is the root mean square error.
	RMSE float64
	// MAE is the mean absolute error.
	MAE float64
	// MaxError is the largest absolute residual.
	MaxError float64
	// MeanRelErr is the mean relative error in percent, averaged over
	// samples with |y| above the relative-error floor.
	MeanRelErr float64
	// SSE is the sum of squared errors.
	SSE float64
}

// String returns a compact single-line rendering of the metrics.
func (m Metrics) String() string {
	return fmt.Sprintf("Metrics{R²: %.4f, RMSE: %.4g, MAE: %.4g, MaxError: %.4g, MeanRelErr: %.2f%%, SSE: %.4g}",
		m.RSquared, m.RMSE, m.MAE, m.MaxError, m.MeanRelErr, m.SSE)
}

// ComputeMetrics scores a prediction function against the reference samples
// (xs, ys). predict is evaluated once per sample; any fitted model's Eval
// works directly.
//
// R² is defined as 1 when the total sum of squares is numerically zero
// (constant reference data is matched by definition). The mean relative
// error is 0 when no sample has |y| above the floor.
func ComputeMetrics(xs, ys []float64, predict func(float64) float64) (Metrics, error) {
	if len(xs) != len(ys) {
		return Metrics{}, errs.ErrLengthMismatch
	}
	if len(xs) == 0 {
		return Metrics{}, errs.ErrEmptyInput
	}

	n := float64(len(xs))

	mean := 0.0
	for _, y := range ys {
		mean += y
	}
	mean /= n

	var m Metrics
	ssTotal := 0.0
	relSum := 0.0
	relCount := 0
	for i, x := range xs {
		e := ys[i] - predict(x)
		abs := math.Abs(e)

		m.SSE += e * e
		m.MAE += abs
		if abs > m.MaxError {
			m.MaxError = abs
		}
		if math.Abs(ys[i]) > relativeErrorFloor {
			relSum += abs / math.Abs(ys[i])
			relCount++
		}

		d := ys[i] - mean
		ssTotal += d * d
	}

	m.RMSE = math.Sqrt(m.SSE / n)
	m.MAE /= n
	if relCount > 0 {
		m.MeanRelErr = relSum / float64(relCount) * 100
	}
	if ssTotal == 0 {
		m.RSquared = 1
	} else {
		m.RSquared = 1 - m.SSE/ssTotal
	}

	return m, nil
}

// ComputeVectorMetrics scores a vector-valued prediction function against
// vector samples, aggregating squared and absolute error across all
// components and samples before taking the same ratios as ComputeMetrics.
//
// The mean relative error is not defined for vector fits and is always 0.
func ComputeVectorMetrics(xs []float64, samples [][]float64, predict func(float64) []float64) (Metrics, error) {
	if len(samples) == 0 {
		return Metrics{}, errs.ErrEmptyInput
	}
	if len(xs) != len(samples) {
		return Metrics{}, errs.ErrLengthMismatch
	}

	dim := len(samples[0])
	for i, s := range samples {
		if len(s) != dim {
			return Metrics{}, fmt.Errorf("sample %d has dimension %d, want %d: %w",
				i, len(s), dim, errs.ErrDimensionMismatch)
		}
	}
	if dim == 0 {
		return Metrics{}, errs.ErrEmptyInput
	}

	total := float64(len(xs) * dim)

	mean := 0.0
	for _, s := range samples {
		for _, y := range s {
			mean += y
		}
	}
	mean /= total

	var m Metrics
	ssTotal := 0.0
	for i, x := range xs {
		pred := predict(x)
		if len(pred) != dim {
			return Metrics{}, fmt.Errorf("prediction has dimension %d, want %d: %w",
				len(pred), dim, errs.ErrDimensionMismatch)
		}

		for d := 0; d < dim; d++ {
			e := samples[i][d] - pred[d]
			abs := math.Abs(e)

			m.SSE += e * e
			m.MAE += abs
			if abs > m.MaxError {
				m.MaxError = abs
			}

			dv := samples[i][d] - mean
			ssTotal += dv * dv
		}
	}

	m.RMSE = math.Sqrt(m.SSE / total)
	m.MAE /= total
	if ssTotal == 0 {
		m.RSquared = 1
	} else {
		m.RSquared = 1 - m.SSE/ssTotal
	}

	return m, nil
}
