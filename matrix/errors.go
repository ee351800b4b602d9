// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ". Validators wrap these with the
// validator name; callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrEmptyMatrix indicates a matrix with no rows or with only empty rows.
	ErrEmptyMatrix = errors.New("matrix: matrix must contain at least one element")

	// ErrNonRectangular indicates rows of differing lengths where a rectangle is required.
	ErrNonRectangular = errors.New("matrix: all rows must have the same length")

	// ErrBadShape indicates requested dimensions are not positive.
	ErrBadShape = errors.New("matrix: rows and cols must be > 0")
)
