// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for shape checks shared by the kernels.
//  - Return sentinel errors wrapped with the validator tag so call sites
//    stay uniform.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing beyond the error value.

package matrix

import "fmt"

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Validate ensures m holds at least one element. Ragged rows are accepted.
//
// Returns ErrEmptyMatrix if m has no rows or every row is empty.
// Complexity: O(r).
func Validate[T any](m [][]T) error {
	for _, row := range m {
		if len(row) > 0 {
			return nil
		}
	}

	return validatorErrorf("Validate", ErrEmptyMatrix)
}

// ValidateRectangular ensures m is non-empty and every row has the length of the first.
//
// Errors: ErrEmptyMatrix if there are no rows or the first row is empty,
// ErrNonRectangular on the first row of different length.
// Complexity: O(r).
func ValidateRectangular[T any](m [][]T) error {
	if len(m) == 0 || len(m[0]) == 0 {
		return validatorErrorf("ValidateRectangular", ErrEmptyMatrix)
	}
	cols := len(m[0])
	for i := 1; i < len(m); i++ {
		if len(m[i]) != cols {
			return validatorErrorf(fmt.Sprintf("ValidateRectangular: row %d", i), ErrNonRectangular)
		}
	}

	return nil
}
