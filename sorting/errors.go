// SPDX-License-Identifier: MIT

package sorting

import "errors"

var (
	// ErrUnknownAlgorithm is returned when an algorithm name or value is not recognized.
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")
)
