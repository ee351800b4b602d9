// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"
	"strings"
	"time"
)

// Algorithm identifies one of the sorting routines in this package.
type Algorithm int

const (
	// BubbleSort selects Bubble.
	BubbleSort Algorithm = iota
	// SelectionSort selects Selection.
	SelectionSort
	// InsertionSort selects Insertion.
	InsertionSort
	// QuickSort selects Quick.
	QuickSort
	// MergeSort selects Merge.
	MergeSort
	// BuiltinSort selects Builtin.
	BuiltinSort

	algorithmCount
)

var algorithmNames = [algorithmCount]string{
	BubbleSort:    "bubble",
	SelectionSort: "selection",
	InsertionSort: "insertion",
	QuickSort:     "quick",
	MergeSort:     "merge",
	BuiltinSort:   "builtin",
}

// String returns the lower-case short name ("bubble", "quick", ...).
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// Valid reports whether a names a known algorithm.
func (a Algorithm) Valid() bool {
	return a >= 0 && a < algorithmCount
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
// Both "quick" and "quicksort" style names are accepted.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), "sort")
	for i, n := range algorithmNames {
		if n == key {
			return Algorithm(i), nil
		}
	}

	return 0, fmt.Errorf("ParseAlgorithm(%q): %w", name, ErrUnknownAlgorithm)
}

// Algorithms returns every known algorithm in declaration order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, 0, algorithmCount)
	for a := Algorithm(0); a < algorithmCount; a++ {
		out = append(out, a)
	}

	return out
}

// Stats counts the elementary operations performed by an instrumented sort.
//
//   - Comparisons — element comparisons performed by the inner loop.
//   - Swaps       — pairwise exchanges that moved data.
//   - Shifts      — single-slot moves (insertion sort only).
type Stats struct {
	Comparisons int
	Swaps       int
	Shifts      int
}

// Timing is one row of a Compare report.
type Timing struct {
	Algorithm Algorithm
	Elapsed   time.Duration
	Sorted    bool // output verified non-decreasing
}

// CompareOptions configures Compare.
//
// Fields:
//   - Algorithms — subset to run, in the given order. Empty means all.
//   - Now        — clock used for measurement. nil means time.Now.
type CompareOptions struct {
	Algorithms []Algorithm
	Now        func() time.Time
}

// DefaultCompareOptions returns options that run every algorithm against the wall clock.
func DefaultCompareOptions() CompareOptions {
	return CompareOptions{
		Algorithms: Algorithms(),
		Now:        time.Now,
	}
}
