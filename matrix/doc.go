// SPDX-License-Identifier: MIT

// Package matrix answers questions about two-dimensional slices of ordered
// values: extremes, column lookups, transposition and symmetry.
//
// What:
//
//   - Min / Max                 — one direct O(r·c) scan.
//   - MinBySorting / MaxBySorting — sort a clone of each row, keep its first
//     (or last) element, then compare rows. O(r·c²); kept to contrast with
//     the direct scan. The input is never modified.
//   - MaxInMinColumn            — locate the global minimum, return the
//     maximum of the column it lives in.
//   - Transpose, IsSymmetric    — classic square/rectangular checks.
//   - Fill                      — row-major counting initialization.
//   - Format                    — plain-text rendering, one row per line.
//
// Shapes:
//
//	Min, Max and the sorting variants accept ragged matrices and skip empty
//	rows. MaxInMinColumn and Transpose require a rectangular matrix.
//	IsSymmetric never errors: any non-square input is simply not symmetric.
//
// Errors:
//
//   - ErrEmptyMatrix:    no rows, or every row empty.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrBadShape:       non-positive dimensions requested from Fill.
//
// Example:
//
//	m := [][]int{
//	  {5, 0, 7},
//	  {67, 3, 23},
//	  {96, 75, 1},
//	}
//	lo, _ := matrix.Min(m)            // 0
//	hi, _ := matrix.Max(m)            // 96
//	v, _ := matrix.MaxInMinColumn(m)  // 75 (column 1 holds the minimum 0)
package matrix
