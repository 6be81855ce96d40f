package numeric

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

var ErrNoMatch = errors.New("no matching row")

// QuantizedDurations are the note durations, in quarters, that performed
// durations snap to.
var QuantizedDurations = []float64{0.25, 0.5, 0.75, 1, 2}

// dist is |a-b| without going through negative values, so unsigned types work.
func dist[T Number](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

// FindNearest returns the index of the element of sorted closest to value.
// On a tie the lower index wins. sorted must be ascending and non-empty.
func FindNearest[T Number](sorted []T, value T) int {
	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i] >= value
	})
	if idx > len(sorted)-1 {
		idx = len(sorted) - 1
	}
	if idx > 0 && dist(value, sorted[idx-1]) <= dist(value, sorted[idx]) {
		idx--
	}
	return idx
}

func FindNearestAll[T Number](sorted []T, values []T) []int {
	res := make([]int, len(values))
	for i, v := range values {
		res[i] = FindNearest(sorted, v)
	}
	return res
}

// Quantize snaps value to the closest element of sorted.
func Quantize[T Number](sorted []T, value T) T {
	return sorted[FindNearest(sorted, value)]
}

// CartesianProduct lists every combination of one value per axis. The last
// axis varies fastest.
func CartesianProduct[T any](axes ...[]T) [][]T {
	if len(axes) == 0 {
		return nil
	}
	res := [][]T{{}}
	for _, axis := range axes {
		next := make([][]T, 0, len(res)*len(axis))
		for _, prefix := range res {
			for _, v := range axis {
				row := make([]T, len(prefix), len(prefix)+1)
				copy(row, prefix)
				next = append(next, append(row, v))
			}
		}
		res = next
	}
	return res
}

func rowsEqual[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// IndicesCartesianProduct finds, for each tuple in elems, the index of the
// grid row equal to it in every field. The result follows the order of elems.
func IndicesCartesianProduct[T comparable](elems [][]T, grid [][]T) ([]int32, error) {
	res := make([]int32, 0, len(elems))
	for i, elem := range elems {
		found := false
		for j, row := range grid {
			if rowsEqual(elem, row) {
				res = append(res, int32(j))
				found = true
				break
			}
		}
		if !found {
			return res, fmt.Errorf("tuple %d %v: %w", i, elem, ErrNoMatch)
		}
	}
	return res, nil
}
