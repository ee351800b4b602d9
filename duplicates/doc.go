// SPDX-License-Identifier: MIT

// Package duplicates finds repeated and non-repeated values in a slice.
//
// Each question has two answers: a hash-based one that runs in O(n) time
// and O(n) memory, and a nested-loop one that runs in O(n²) time with no
// auxiliary map. Both return the same values; they differ only in order:
//
//   - Find             — order of each value's SECOND occurrence
//   - FindBruteForce   — order of each value's FIRST occurrence
//   - Unique, UniqueBruteForce — order of first occurrence
//
// Results are never nil: a slice without duplicates yields an empty slice.
//
//	dups := duplicates.Find([]int{1, 2, 3, 2, 1, 4, 5, 4}) // [2 1 4]
//	uniq := duplicates.Unique([]int{4, 5, 5, 5, 4, 6, 6, 9, 4}) // [9]
package duplicates
