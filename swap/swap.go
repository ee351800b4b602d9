// SPDX-License-Identifier: MIT

// Package swap collects the textbook ways of exchanging two values.
//
//   - Temp / Generic — through a temporary; works for any type.
//   - Arithmetic     — a=a+b, b=a-b, a=a-b; fine on Go ints, which wrap.
//   - XOR            — a^=b, b^=a, a^=b; integers only.
//
// The *Steps variants return every intermediate state so callers can print
// how the trick works.
package swap

import "math"

// Step is the state of both variables after one assignment.
type Step struct {
	Op   string // the assignment performed, e.g. "a = a + b"
	A, B int
}

// Temp swaps two ints through a temporary variable.
func Temp(a, b int) (int, int) {
	tmp := a
	a = b
	b = tmp

	return a, b
}

// Generic swaps two values of any type through a temporary variable.
func Generic[T any](a, b T) (T, T) {
	tmp := a
	a = b
	b = tmp

	return a, b
}

// Arithmetic swaps without a temporary using addition and subtraction.
// Overflow in a+b is harmless: Go int arithmetic wraps, and the
// subtractions undo it exactly.
func Arithmetic(a, b int) (int, int) {
	steps := ArithmeticSteps(a, b)
	last := steps[len(steps)-1]

	return last.A, last.B
}

// ArithmeticSteps is Arithmetic, returning the state after each of its three assignments.
func ArithmeticSteps(a, b int) []Step {
	steps := make([]Step, 0, 3)
	a = a + b
	steps = append(steps, Step{Op: "a = a + b", A: a, B: b})
	b = a - b
	steps = append(steps, Step{Op: "b = a - b", A: a, B: b})
	a = a - b
	steps = append(steps, Step{Op: "a = a - b", A: a, B: b})

	return steps
}

// XOR swaps without a temporary using exclusive or.
func XOR(a, b int) (int, int) {
	steps := XORSteps(a, b)
	last := steps[len(steps)-1]

	return last.A, last.B
}

// XORSteps is XOR, returning the state after each of its three assignments.
func XORSteps(a, b int) []Step {
	steps := make([]Step, 0, 3)
	a ^= b
	steps = append(steps, Step{Op: "a = a ^ b", A: a, B: b})
	b ^= a
	steps = append(steps, Step{Op: "b = a ^ b", A: a, B: b})
	a ^= b
	steps = append(steps, Step{Op: "a = a ^ b", A: a, B: b})

	return steps
}

// AddOverflows returns the wrapped 32-bit sum of a and b and whether the
// true sum falls outside the int32 range.
func AddOverflows(a, b int32) (int32, bool) {
	wide := int64(a) + int64(b)

	return a + b, wide > math.MaxInt32 || wide < math.MinInt32
}
