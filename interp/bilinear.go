package interp

import (
	"github.com/arloliu/tabfit/errs"
)

// Bilinear interpolates the 2D table at (x, y). xGrid and yGrid are
// ascending coordinate sequences; table is indexed [i][j] with
// len(table) == len(xGrid) and every row length == len(yGrid).
//
// A query outside the grid on one axis degrades to a 1D Linear
// interpolation along the other axis using the nearest edge row or column;
// there is no 2D extrapolation. Inside the grid the four corner values of
// the bracketing cell are blended: first along x at both y levels, then
// along y.
func Bilinear(xGrid, yGrid []float64, table [][]float64, x, y float64) (float64, error) {
	if len(xGrid) == 0 || len(yGrid) == 0 || len(table) == 0 {
		return 0, errs.ErrEmptyInput
	}
	if len(table) != len(xGrid) {
		return 0, errs.ErrDimensionMismatch
	}
	for _, row := range table {
		if len(row) != len(yGrid) {
			return 0, errs.ErrDimensionMismatch
		}
	}

	nx, ny := len(xGrid), len(yGrid)

	// Off-grid on the x axis: 1D interpolation along y on the edge row.
	ix := SearchAscending(xGrid, x)
	if ix == 0 || ix == nx || nx == 1 {
		row := table[0]
		if ix == nx {
			row = table[nx-1]
		}

		return Linear(yGrid, row, y)
	}

	// Off-grid on the y axis: 1D interpolation along x on the edge column.
	iy := SearchAscending(yGrid, y)
	if iy == 0 || iy == ny || ny == 1 {
		col := iy
		if col > 0 {
			col = ny - 1
		}
		edge := make([]float64, nx)
		for i := range table {
			edge[i] = table[i][col]
		}

		return Linear(xGrid, edge, x)
	}

	// Bracketing cell (ix-1, ix) × (iy-1, iy).
	x0, x1 := xGrid[ix-1], xGrid[ix]
	y0, y1 := yGrid[iy-1], yGrid[iy]
	tx := (x - x0) / (x1 - x0)
	ty := (y - y0) / (y1 - y0)

	v00, v01 := table[ix-1][iy-1], table[ix-1][iy]
	v10, v11 := table[ix][iy-1], table[ix][iy]

	// Interpolate along x at both y levels, then blend along y.
	low := v00 + (v10-v00)*tx
	high := v01 + (v11-v01)*tx

	return low + (high-low)*ty, nil
}
