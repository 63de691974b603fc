package fit

import (
	"fmt"
	"strings"

	"github.com/arloliu/tabfit/errs"
)

// Vector is a fitted multi-component model: one polynomial per component
// dimension, all sharing the same degree.
type Vector struct {
	// Components holds one coefficient sequence per dimension.
	Components []Polynomial
	// Degree is the shared fit degree.
	Degree int
}

// Dim returns the component dimension of the fit.
func (v Vector) Dim() int {
	return len(v.Components)
}

// Eval evaluates every component polynomial at x, returning a freshly
// allocated vector.
func (v Vector) Eval(x float64) []float64 {
	out := make([]float64, len(v.Components))
	for i, p := range v.Components {
		out[i] = p.Eval(x)
	}

	return out
}

// String renders the fit as one formula per component.
func (v Vector) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Vector{dim: %d, degree: %d", v.Dim(), v.Degree)
	for i, p := range v.Components {
		fmt.Fprintf(&sb, ", [%d]: %s", i, p)
	}
	sb.WriteString("}")

	return sb.String()
}

// FitVector performs an independent polynomial fit per component of the
// vector-valued samples. Sample i is the vector observed at xs[i]; all
// samples must share the same dimension.
//
// Requires at least one sample (errs.ErrEmptyInput), equal xs/samples
// lengths (errs.ErrLengthMismatch), uniform sample dimension
// (errs.ErrDimensionMismatch) and enough samples for the degree, which the
// per-component FitPolynomial enforces.
func FitVector(xs []float64, samples [][]float64, degree int) (Vector, error) {
	if len(samples) == 0 {
		return Vector{}, errs.ErrEmptyInput
	}
	if len(xs) != len(samples) {
		return Vector{}, errs.ErrLengthMismatch
	}

	dim := len(samples[0])
	for i, s := range samples {
		if len(s) != dim {
			return Vector{}, fmt.Errorf("sample %d has dimension %d, want %d: %w",
				i, len(s), dim, errs.ErrDimensionMismatch)
		}
	}
	if dim == 0 {
		return Vector{}, errs.ErrEmptyInput
	}

	components := make([]Polynomial, dim)
	column := make([]float64, len(samples))
	for d := 0; d < dim; d++ {
		for i, s := range samples {
			column[i] = s[d]
		}

		p, err := FitPolynomial(xs, column, degree)
		if err != nil {
			return Vector{}, fmt.Errorf("component %d: %w", d, err)
		}
		components[d] = p
	}

	return Vector{Components: components, Degree: degree}, nil
}
