// SPDX-License-Identifier: MIT

package sorting

import "cmp"

// Bubble sorts s in place by exchange: for every i it compares s[i] against
// each later element and swaps whenever s[i] is greater.
//
// Complexity: O(n²) time, O(1) memory. Not stable.
func Bubble[T cmp.Ordered](s []T) {
	_ = BubbleStats(s)
}

// BubbleStats is Bubble that also reports how many comparisons and swaps it made.
// Every inner-loop comparison is counted: n·(n-1)/2 regardless of input order.
func BubbleStats[T cmp.Ordered](s []T) Stats {
	var st Stats
	for i := 0; i < len(s); i++ {
		for j := i + 1; j < len(s); j++ {
			st.Comparisons++
			if s[i] > s[j] {
				s[i], s[j] = s[j], s[i]
				st.Swaps++
			}
		}
	}

	return st
}

// Selection sorts s in place by repeatedly moving the minimum of the unsorted
// suffix to its front. It writes at most n-1 times.
//
// Complexity: O(n²) time, O(1) memory. Not stable.
func Selection[T cmp.Ordered](s []T) {
	_ = SelectionStats(s)
}

// SelectionStats is Selection that also reports comparisons and swaps.
// A swap is only counted when the minimum was not already in place.
func SelectionStats[T cmp.Ordered](s []T) Stats {
	var st Stats
	for i := 0; i < len(s)-1; i++ {
		minIdx := i
		for j := i + 1; j < len(s); j++ {
			st.Comparisons++
			if s[j] < s[minIdx] {
				minIdx = j
			}
		}
		if minIdx != i {
			s[i], s[minIdx] = s[minIdx], s[i]
			st.Swaps++
		}
	}

	return st
}

// Insertion sorts s in place: each element is lifted out and the larger
// elements before it are shifted one slot right until its place is found.
//
// Complexity: O(n²) time worst case, O(n) on sorted input, O(1) memory. Stable.
func Insertion[T cmp.Ordered](s []T) {
	_ = InsertionStats(s)
}

// InsertionStats is Insertion that also reports comparisons and shifts.
// Only comparisons that cause a shift are counted, so sorted input reports zero.
func InsertionStats[T cmp.Ordered](s []T) Stats {
	var st Stats
	for i := 1; i < len(s); i++ {
		key := s[i]
		j := i - 1
		for j >= 0 && s[j] > key {
			st.Comparisons++
			s[j+1] = s[j]
			j--
			st.Shifts++
		}
		s[j+1] = key
	}

	return st
}
