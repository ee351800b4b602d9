// SPDX-License-Identifier: MIT

package sorting

import (
	"cmp"
	"fmt"
	"slices"
	"time"
)

// SortWith sorts s in place using the algorithm a.
// Returns ErrUnknownAlgorithm if a is out of range; s is then left untouched.
func SortWith[T cmp.Ordered](a Algorithm, s []T) error {
	switch a {
	case BubbleSort:
		Bubble(s)
	case SelectionSort:
		Selection(s)
	case InsertionSort:
		Insertion(s)
	case QuickSort:
		Quick(s)
	case MergeSort:
		Merge(s)
	case BuiltinSort:
		Builtin(s)
	default:
		return fmt.Errorf("SortWith(%d): %w", int(a), ErrUnknownAlgorithm)
	}

	return nil
}

// Compare runs every algorithm from opts on its own clone of input and
// measures how long each took. input itself is never modified.
//
// Steps:
//  1. Validate the algorithm list (all entries must be known).
//  2. For each algorithm: clone input, read the clock, sort, read the clock.
//  3. Verify the clone is sorted and record a Timing.
//
// Timings are returned in the order the algorithms were requested.
// Elapsed values from the wall clock are noisy for small inputs; treat
// them as illustrative.
func Compare[T cmp.Ordered](input []T, opts CompareOptions) ([]Timing, error) {
	algs := opts.Algorithms
	if len(algs) == 0 {
		algs = Algorithms()
	}
	for _, a := range algs {
		if !a.Valid() {
			return nil, fmt.Errorf("Compare: algorithm %d: %w", int(a), ErrUnknownAlgorithm)
		}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	out := make([]Timing, 0, len(algs))
	for _, a := range algs {
		work := slices.Clone(input)
		start := now()
		// a was validated above, SortWith cannot fail here.
		_ = SortWith(a, work)
		elapsed := now().Sub(start)
		out = append(out, Timing{
			Algorithm: a,
			Elapsed:   elapsed,
			Sorted:    IsSorted(work),
		})
	}

	return out, nil
}
