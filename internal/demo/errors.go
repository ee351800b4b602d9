// SPDX-License-Identifier: MIT

package demo

import "errors"

var (
	// ErrUnknownDemo is returned when a demo name is not registered.
	ErrUnknownDemo = errors.New("demo: unknown demo")

	// ErrDuplicateDemo is returned when a name is registered twice.
	ErrDuplicateDemo = errors.New("demo: demo already registered")

	// ErrInvalidDemo is returned for a demo without a name or Run function.
	ErrInvalidDemo = errors.New("demo: demo needs a name and a Run function")
)
