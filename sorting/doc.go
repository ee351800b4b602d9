// SPDX-License-Identifier: MIT

// Package sorting implements the classic comparison sorts on slices of
// ordered values, plus instrumented variants and a timing comparison.
//
// 🚀 What is in here?
//
//	Quadratic sorts (good for learning, small inputs, nearly sorted data):
//	  • Bubble    — exchange sort, swaps s[i] and s[j] whenever s[i] > s[j]
//	  • Selection — picks the minimum of the unsorted suffix, fewest writes
//	  • Insertion — shifts larger elements right, O(n) on sorted input
//	Divide and conquer:
//	  • Quick     — Lomuto partition, last element as pivot
//	  • Merge     — top-down, stable, O(n) auxiliary buffer
//	Reference:
//	  • Builtin   — slices.Sort (pattern-defeating quicksort)
//
// ✨ Key features:
//   - generic over cmp.Ordered; MergeFunc sorts any type stably with a comparator
//   - BubbleStats / SelectionStats / InsertionStats report comparisons, swaps and shifts
//   - Compare runs each algorithm on its own clone and reports elapsed time
//
// ⚙️ Usage:
//
//	s := []int{5, 7, 33, 6, 8, 1, -7}
//	sorting.Merge(s)                 // s == [-7 1 5 6 7 8 33]
//
//	alg, err := sorting.ParseAlgorithm("quick")
//	if err != nil {
//	  // errors.Is(err, sorting.ErrUnknownAlgorithm)
//	}
//	sorting.SortWith(alg, s)
//
// Complexity:
//
//	| Algorithm | Best       | Average    | Worst      | Memory   | Stable |
//	|-----------|------------|------------|------------|----------|--------|
//	| Bubble    | O(n²)      | O(n²)      | O(n²)      | O(1)     | no     |
//	| Selection | O(n²)      | O(n²)      | O(n²)      | O(1)     | no     |
//	| Insertion | O(n)       | O(n²)      | O(n²)      | O(1)     | yes    |
//	| Quick     | O(n log n) | O(n log n) | O(n²)      | O(log n) | no     |
//	| Merge     | O(n log n) | O(n log n) | O(n log n) | O(n)     | yes    |
//
// All functions sort in place. nil and single-element slices are no-ops.
package sorting
