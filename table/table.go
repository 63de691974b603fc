package table

import (
	"github.com/arloliu/tabfit/errs"
)

// Table is an immutable measurement table: an x column paired with one or
// more value columns of the same length.
type Table struct {
	xs   []float64
	cols [][]float64
}

// New creates a table from an x column and one or more value columns.
// All inputs are copied; the caller may reuse its slices afterwards.
//
// Requires a non-empty x column and at least one value column
// (errs.ErrEmptyInput) and equal column lengths (errs.ErrLengthMismatch).
// Sortedness of x is not required here; interpolation callers can check
// with SortedByX.
func New(xs []float64, cols ...[]float64) (*Table, error) {
	if len(xs) == 0 || len(cols) == 0 {
		return nil, errs.ErrEmptyInput
	}
	for _, col := range cols {
		if len(col) != len(xs) {
			return nil, errs.ErrLengthMismatch
		}
	}

	t := &Table{
		xs:   make([]float64, len(xs)),
		cols: make([][]float64, len(cols)),
	}
	copy(t.xs, xs)
	for i, col := range cols {
		t.cols[i] = make([]float64, len(col))
		copy(t.cols[i], col)
	}

	return t, nil
}

// Rows returns the number of samples.
func (t *Table) Rows() int { return len(t.xs) }

// Dim returns the number of value columns.
func (t *Table) Dim() int { return len(t.cols) }

// X returns the x column. The returned slice is the table's own storage and
// must not be modified.
func (t *Table) X() []float64 { return t.xs }

// Column returns value column i. The returned slice is the table's own
// storage and must not be modified.
func (t *Table) Column(i int) []float64 { return t.cols[i] }

// XY returns the x column and the first value column, the shape the scalar
// interpolation and fitting entry points take.
func (t *Table) XY() ([]float64, []float64) {
	return t.xs, t.cols[0]
}

// Vectors returns the samples in row-major form, one vector per row, the
// shape fit.FitVector takes. The rows are freshly allocated.
func (t *Table) Vectors() [][]float64 {
	rows := make([][]float64, len(t.xs))
	for i := range rows {
		row := make([]float64, len(t.cols))
		for d, col := range t.cols {
			row[d] = col[i]
		}
		rows[i] = row
	}

	return rows
}

// SortedByX reports whether the x column is non-decreasing, the
// precondition of the interpolation routines.
func (t *Table) SortedByX() bool {
	for i := 1; i < len(t.xs); i++ {
		if t.xs[i] < t.xs[i-1] {
			return false
		}
	}

	return true
}
