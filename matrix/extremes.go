// SPDX-License-Identifier: MIT

package matrix

import (
	"cmp"
	"slices"
)

// Min returns the smallest element of m with a single row-major scan.
// Empty rows are skipped. Returns ErrEmptyMatrix if m holds no element.
// Complexity: O(r·c).
func Min[T cmp.Ordered](m [][]T) (T, error) {
	return extreme(m, func(a, b T) bool { return a < b })
}

// Max returns the largest element of m with a single row-major scan.
// Empty rows are skipped. Returns ErrEmptyMatrix if m holds no element.
// Complexity: O(r·c).
func Max[T cmp.Ordered](m [][]T) (T, error) {
	return extreme(m, func(a, b T) bool { return a > b })
}

// extreme returns the element that beats every other under better.
func extreme[T cmp.Ordered](m [][]T, better func(a, b T) bool) (T, error) {
	var zero T
	if err := Validate(m); err != nil {
		return zero, err
	}

	found := false
	best := zero
	for _, row := range m {
		for _, v := range row {
			if !found || better(v, best) {
				best, found = v, true
			}
		}
	}

	return best, nil
}

// MinBySorting finds the minimum by sorting a copy of every row and keeping
// its first element, then comparing those per-row minima.
// Same result as Min; m is not modified.
// Complexity: O(r·c²) with the exchange sort used per row.
func MinBySorting[T cmp.Ordered](m [][]T) (T, error) {
	return byRowSort(m, true)
}

// MaxBySorting is MinBySorting for the maximum (last element of each sorted row).
func MaxBySorting[T cmp.Ordered](m [][]T) (T, error) {
	return byRowSort(m, false)
}

func byRowSort[T cmp.Ordered](m [][]T, wantMin bool) (T, error) {
	var zero T
	if err := Validate(m); err != nil {
		return zero, err
	}

	found := false
	best := zero
	for _, row := range m {
		if len(row) == 0 {
			continue
		}
		v := sortedPick(row, wantMin)
		if !found || (wantMin && v < best) || (!wantMin && v > best) {
			best, found = v, true
		}
	}

	return best, nil
}

// sortedPick exchange-sorts a clone of row and returns its first or last element.
func sortedPick[T cmp.Ordered](row []T, first bool) T {
	s := slices.Clone(row)
	for i := 0; i < len(s); i++ {
		for j := i + 1; j < len(s); j++ {
			if s[i] > s[j] {
				s[i], s[j] = s[j], s[i]
			}
		}
	}
	if first {
		return s[0]
	}

	return s[len(s)-1]
}

// MaxInMinColumn locates the global minimum of m (first occurrence in
// row-major order) and returns the largest value in that minimum's column.
//
// Errors: ErrEmptyMatrix, ErrNonRectangular.
// Complexity: O(r·c).
func MaxInMinColumn[T cmp.Ordered](m [][]T) (T, error) {
	var zero T
	if err := ValidateRectangular(m); err != nil {
		return zero, err
	}

	minVal, minCol := m[0][0], 0
	for _, row := range m {
		for j, v := range row {
			if v < minVal {
				minVal, minCol = v, j
			}
		}
	}

	maxVal := m[0][minCol]
	for i := 1; i < len(m); i++ {
		if m[i][minCol] > maxVal {
			maxVal = m[i][minCol]
		}
	}

	return maxVal, nil
}
