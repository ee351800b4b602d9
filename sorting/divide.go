// SPDX-License-Identifier: MIT

package sorting

import (
	"cmp"
	"slices"
)

// Quick sorts s in place with recursive quicksort using the Lomuto scheme:
// the last element of each range is the pivot.
//
// Complexity: O(n log n) average, O(n²) on already sorted input. Recursion
// always descends into the smaller partition, so the stack stays O(log n).
// Not stable.
func Quick[T cmp.Ordered](s []T) {
	quick(s, 0, len(s)-1)
}

func quick[T cmp.Ordered](s []T, low, high int) {
	for low < high {
		p := partition(s, low, high)
		// Recurse into the smaller side, loop on the larger one.
		if p-low < high-p {
			quick(s, low, p-1)
			low = p + 1
		} else {
			quick(s, p+1, high)
			high = p - 1
		}
	}
}

// partition places s[high] at its final index and returns that index.
// Elements <= pivot end up left of it.
func partition[T cmp.Ordered](s []T, low, high int) int {
	pivot := s[high]
	i := low - 1
	for j := low; j < high; j++ {
		if s[j] <= pivot {
			i++
			s[i], s[j] = s[j], s[i]
		}
	}
	s[i+1], s[high] = s[high], s[i+1]

	return i + 1
}

// Merge sorts s in place with top-down merge sort. Equal elements keep
// their relative order.
//
// Complexity: O(n log n) time in every case, O(n) auxiliary memory. Stable.
func Merge[T cmp.Ordered](s []T) {
	MergeFunc(s, cmp.Compare[T])
}

// MergeFunc is Merge for any element type, ordered by the three-way
// comparator c (negative when a < b, zero when equal, positive when a > b).
func MergeFunc[T any](s []T, c func(a, b T) int) {
	if len(s) < 2 {
		return
	}
	buf := make([]T, len(s))
	mergeSort(s, buf, 0, len(s)-1, c)
}

func mergeSort[T any](s, buf []T, left, right int, c func(a, b T) int) {
	if left >= right {
		return
	}
	mid := left + (right-left)/2
	mergeSort(s, buf, left, mid, c)
	mergeSort(s, buf, mid+1, right, c)
	merge(s, buf, left, mid, right, c)
}

// merge combines the sorted runs s[left..mid] and s[mid+1..right].
// Ties take from the left run, which is what makes the sort stable.
func merge[T any](s, buf []T, left, mid, right int, c func(a, b T) int) {
	copy(buf[left:right+1], s[left:right+1])
	i, j, k := left, mid+1, left
	for i <= mid && j <= right {
		if c(buf[i], buf[j]) <= 0 {
			s[k] = buf[i]
			i++
		} else {
			s[k] = buf[j]
			j++
		}
		k++
	}
	k += copy(s[k:], buf[i:mid+1])
	copy(s[k:], buf[j:right+1])
}

// Builtin sorts s with the standard library's slices.Sort.
func Builtin[T cmp.Ordered](s []T) {
	slices.Sort(s)
}

// IsSorted reports whether s is in non-decreasing order.
func IsSorted[T cmp.Ordered](s []T) bool {
	return slices.IsSorted(s)
}
