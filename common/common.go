// SPDX-License-Identifier: MIT

package common

// Elements returns the multiset intersection of a and b.
//
// The shorter slice is counted into a map; the longer slice is walked once
// and every value with a positive remaining count is emitted and consumed.
// Output order is the order of the longer slice (b on ties).
//
// Time: O(n+m). Memory: O(min(n, m)).
func Elements[T comparable](a, b []T) []T {
	short, long := a, b
	if len(a) > len(b) {
		short, long = b, a
	}

	remaining := make(map[T]int, len(short))
	for _, v := range short {
		remaining[v]++
	}

	out := make([]T, 0, len(short))
	for _, v := range long {
		if remaining[v] > 0 {
			remaining[v]--
			out = append(out, v)
		}
	}

	return out
}

// ElementsBruteForce returns the same multiset as Elements by comparing every
// element of a with every unused element of b. Each element of b matches at
// most once. Output order is the order of a.
//
// Time: O(n·m). Memory: O(m).
func ElementsBruteForce[T comparable](a, b []T) []T {
	used := make([]bool, len(b))
	out := make([]T, 0)
	for i := range a {
		for j := range b {
			if !used[j] && a[i] == b[j] {
				used[j] = true
				out = append(out, a[i])
				break
			}
		}
	}

	return out
}

// Set returns each distinct value present in both a and b once, in order of
// first appearance in a.
//
// Time: O(n+m). Memory: O(m).
func Set[T comparable](a, b []T) []T {
	inB := make(map[T]struct{}, len(b))
	for _, v := range b {
		inB[v] = struct{}{}
	}

	out := make([]T, 0)
	for _, v := range a {
		if _, ok := inB[v]; ok {
			out = append(out, v)
			delete(inB, v)
		}
	}

	return out
}
