// SPDX-License-Identifier: MIT

package duplicates

import "slices"

// Counts returns how many times each value occurs in s.
// Time: O(n). Memory: O(distinct).
func Counts[T comparable](s []T) map[T]int {
	counts := make(map[T]int, len(s))
	for _, v := range s {
		counts[v]++
	}

	return counts
}

// Find returns every value that occurs more than once in s, each reported
// once, in the order its second occurrence appears.
// Time: O(n). Memory: O(n).
func Find[T comparable](s []T) []T {
	seen := make(map[T]int, len(s))
	dups := make([]T, 0)
	for _, v := range s {
		seen[v]++
		if seen[v] == 2 {
			dups = append(dups, v)
		}
	}

	return dups
}

// FindBruteForce answers the same question as Find without a map: for each
// position it scans the rest of s for an equal value.
// Values come out in order of first occurrence.
// Time: O(n²). Memory: O(k), k = number of duplicated values.
func FindBruteForce[T comparable](s []T) []T {
	dups := make([]T, 0)
	for i := 0; i < len(s); i++ {
		for j := i + 1; j < len(s); j++ {
			if s[i] == s[j] {
				if !slices.Contains(dups, s[i]) {
					dups = append(dups, s[i])
				}
				break
			}
		}
	}

	return dups
}

// Unique returns the values that occur exactly once in s, in input order.
// Time: O(n). Memory: O(n).
func Unique[T comparable](s []T) []T {
	counts := Counts(s)
	out := make([]T, 0)
	for _, v := range s {
		if counts[v] == 1 {
			out = append(out, v)
		}
	}

	return out
}

// UniqueBruteForce is Unique without a map. Each distinct value is counted
// by scanning forward from its first occurrence.
// Time: O(n²). Memory: O(distinct).
func UniqueBruteForce[T comparable](s []T) []T {
	visited := make([]T, 0)
	out := make([]T, 0)
	for i := 0; i < len(s); i++ {
		if slices.Contains(visited, s[i]) {
			continue
		}
		visited = append(visited, s[i])
		count := 1
		for j := i + 1; j < len(s); j++ {
			if s[i] == s[j] {
				count++
			}
		}
		if count == 1 {
			out = append(out, s[i])
		}
	}

	return out
}
