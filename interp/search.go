package interp

import "sort"

// SearchAscending returns the insertion index for v in the ascending
// sequence xs: every element before the index is < v and every element from
// the index onward is >= v, except at the ends where the index is clamped so
// callers can branch on the two boundary cases directly:
//
//   - empty xs or v <= xs[0] returns 0
//   - v >= xs[len(xs)-1] returns len(xs)
//
// On duplicate values the earliest valid slot wins (sort.SearchFloat64s
// convention). Sortedness is the caller's responsibility and is not checked.
func SearchAscending(xs []float64, v float64) int {
	n := len(xs)
	if n == 0 || v <= xs[0] {
		return 0
	}
	if v >= xs[n-1] {
		return n
	}

	return sort.SearchFloat64s(xs, v)
}
