// SPDX-License-Identifier: MIT

package demo

import (
	"io"
	"strings"
)

const patternRows = 4

func runLoops(w io.Writer, _ Input) error {
	p := newPrinter(w)

	p.section("Inverted Pyramid Pattern")
	p.printf("%s\n", invertedPyramid(patternRows))
	p.section("Increasing Pyramid Pattern")
	p.printf("%s\n", increasingPyramid(patternRows))
	p.section("Row Number Pyramid Pattern")
	p.printf("%s\n", rowNumberPyramid(patternRows))
	p.section("Diamond Pattern")
	p.printf("%s\n", diamond(patternRows))
	p.section("Number Triangle Pattern")
	p.printf("%s\n", numberTriangle(patternRows))

	p.section("Matrix Traversal Demo")
	grid := [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	p.println("Matrix elements:")
	for i := 0; i < len(grid); i++ {
		for j := 0; j < len(grid[i]); j++ {
			p.printf("%d ", grid[i][j])
		}
		p.println()
	}
	p.println("\nMatrix elements (reverse order):")
	for i := len(grid) - 1; i >= 0; i-- {
		for j := len(grid[i]) - 1; j >= 0; j-- {
			p.printf("%d ", grid[i][j])
		}
		p.println()
	}
	p.println()

	p.section("Loop Complexity Demo")
	const n = 5
	ops := 0
	p.println("Single loop (O(n)):")
	for i := 0; i < n; i++ {
		ops++
		p.printf("%d ", i)
	}
	p.printf("\nOperations: %d\n", ops)
	ops = 0
	p.println("\nNested loop (O(n²)):")
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			ops++
			p.printf("(%d,%d) ", i, j)
		}
		p.println()
	}
	p.printf("Operations: %d\n", ops)

	return p.err
}

// invertedPyramid counts upward over rows that shrink by one, indented by row.
func invertedPyramid(rows int) string {
	var sb strings.Builder
	n := 1
	for i := 1; i <= rows; i++ {
		sb.WriteString(strings.Repeat("  ", i-1))
		for j := i; j <= rows; j++ {
			sb.WriteString(itoa(n) + " ")
			n++
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func increasingPyramid(rows int) string {
	var sb strings.Builder
	n := 1
	for i := 1; i <= rows; i++ {
		sb.WriteString(strings.Repeat("  ", rows-i))
		for j := 1; j <= i; j++ {
			sb.WriteString(itoa(n) + " ")
			n++
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func rowNumberPyramid(rows int) string {
	var sb strings.Builder
	for i := 1; i <= rows; i++ {
		sb.WriteString(strings.Repeat("  ", rows-i))
		for j := 1; j <= i; j++ {
			sb.WriteString(itoa(j) + " ")
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func diamond(half int) string {
	var sb strings.Builder
	line := func(i int) {
		sb.WriteString(strings.Repeat(" ", half-i))
		sb.WriteString(strings.Repeat("*", 2*i-1))
		sb.WriteByte('\n')
	}
	for i := 1; i <= half; i++ {
		line(i)
	}
	for i := half - 1; i >= 1; i-- {
		line(i)
	}

	return sb.String()
}

func numberTriangle(rows int) string {
	var sb strings.Builder
	n := 1
	for i := 1; i <= rows; i++ {
		for j := 1; j <= i; j++ {
			sb.WriteString(itoa(n) + " ")
			n++
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
