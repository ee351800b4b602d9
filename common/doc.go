// SPDX-License-Identifier: MIT

// Package common intersects two slices.
//
// What:
//
//   - Elements: multiset intersection in O(n+m) using a count map over the
//     shorter input. A value shared k times by both sides appears k times.
//   - ElementsBruteForce: the same multiset via a nested loop, O(n·m).
//   - Set: distinct values present in both inputs.
//
// Ordering:
//
//   - Elements follows the longer input (b when lengths are equal).
//   - ElementsBruteForce and Set follow a.
//
// Memory:
//
//   - Elements: O(min(n, m)) for the count map.
//   - ElementsBruteForce: O(m) for the used-marker over b.
//
// Empty input on either side yields an empty, non-nil slice.
package common
