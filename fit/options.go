package fit

import (
	"fmt"

	"github.com/arloliu/tabfit/internal/options"
)

// rationalConfig holds the iteration controls of FitRational.
type rationalConfig struct {
	maxIterations int
	tolerance     float64
}

// defaultRationalConfig returns the default iteration controls: up to 100
// refinement passes, stopping early once the sum-of-squared-error change
// drops below 1e-6.
func defaultRationalConfig() rationalConfig {
	return rationalConfig{
		maxIterations: 100,
		tolerance:     1e-6,
	}
}

// RationalOption is a functional option for FitRational.
type RationalOption = options.Option[*rationalConfig]

// WithMaxIterations sets the refinement iteration cap. n must be positive.
func WithMaxIterations(n int) RationalOption {
	return options.New(func(cfg *rationalConfig) error {
		if n <= 0 {
			return fmt.Errorf("max iterations must be positive, got %d", n)
		}
		cfg.maxIterations = n

		return nil
	})
}

// WithTolerance sets the early-stop threshold on the change in
// sum-of-squared-error between iterations. tol must be positive.
func WithTolerance(tol float64) RationalOption {
	return options.New(func(cfg *rationalConfig) error {
		if tol <= 0 {
			return fmt.Errorf("tolerance must be positive, got %g", tol)
		}
		cfg.tolerance = tol

		return nil
	})
}
