// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"
	"strings"
)

// Transpose returns a new cols×rows matrix t with t[j][i] == m[i][j].
// Errors: ErrEmptyMatrix, ErrNonRectangular.
// Complexity: O(r·c) time and memory.
func Transpose[T any](m [][]T) ([][]T, error) {
	if err := ValidateRectangular(m); err != nil {
		return nil, err
	}

	rows, cols := len(m), len(m[0])
	t := make([][]T, cols)
	for j := range t {
		t[j] = make([]T, rows)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			t[j][i] = m[i][j]
		}
	}

	return t, nil
}

// IsSymmetric reports whether m is square and equal to its transpose.
// Empty, ragged and non-square inputs are not symmetric.
// Only the upper triangle is compared: O(n²/2).
func IsSymmetric[T comparable](m [][]T) bool {
	n := len(m)
	if n == 0 {
		return false
	}
	for _, row := range m {
		if len(row) != n {
			return false
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m[i][j] != m[j][i] {
				return false
			}
		}
	}

	return true
}

// Fill returns a rows×cols matrix filled row-major with start, start+1, ...
// Returns ErrBadShape if rows or cols is not positive.
func Fill(rows, cols, start int) ([][]int, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("Fill(%d, %d): %w", rows, cols, ErrBadShape)
	}

	m := make([][]int, rows)
	v := start
	for i := range m {
		m[i] = make([]int, cols)
		for j := range m[i] {
			m[i][j] = v
			v++
		}
	}

	return m, nil
}

// Format writes m one row per line, each value followed by a single space.
// A matrix without rows is written as "Empty matrix".
func Format[T any](w io.Writer, m [][]T) error {
	if len(m) == 0 {
		_, err := io.WriteString(w, "Empty matrix\n")
		return err
	}

	var sb strings.Builder
	for _, row := range m {
		for _, v := range row {
			fmt.Fprintf(&sb, "%v ", v)
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())

	return err
}
