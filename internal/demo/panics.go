// SPDX-License-Identifier: MIT

package demo

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/katalvlaran/drills/matrix"
)

// recoverRuntime converts a runtime panic into an error wrapped with tag.
// Any other panic value is re-raised.
func recoverRuntime(tag string, err *error) {
	r := recover()
	if r == nil {
		return
	}
	re, ok := r.(runtime.Error)
	if !ok {
		panic(r)
	}
	*err = fmt.Errorf("%s: %w", tag, re)
}

func elementAt(s []int, i int) (v int, err error) {
	defer recoverRuntime("out of bound", &err)

	return s[i], nil
}

func divide(a, b int) (q int, err error) {
	defer recoverRuntime("arithmetic", &err)

	return a / b, nil
}

func runErrors(w io.Writer, _ Input) (err error) {
	p := newPrinter(w)
	defer func() {
		// Deferred calls run however the function exits.
		p.println("Finally Block")
		if err == nil {
			err = p.err
		}
	}()

	p.section("Runtime Panics")
	a := []int{1, 2, 3, 4}
	idx, zero := 6, 0
	if _, e := elementAt(a, idx); e != nil {
		p.printf("%v\n", e)
		var re runtime.Error
		p.printf("is runtime.Error: %t\n", errors.As(e, &re))
	}
	if _, e := divide(4, zero); e != nil {
		p.printf("%v\n", e)
	}
	if v, e := elementAt(a, 2); e == nil {
		p.printf("a[2] = %d, no panic\n", v)
	}

	p.section("Error Values")
	_, e := matrix.Min([][]int{})
	p.printf("matrix.Min(empty): %v\n", e)
	p.printf("errors.Is(err, matrix.ErrEmptyMatrix): %t\n", errors.Is(e, matrix.ErrEmptyMatrix))
	wrapped := fmt.Errorf("loading report: %w", e)
	p.printf("wrapped: %v\n", wrapped)
	p.printf("still matches after wrapping: %t\n", errors.Is(wrapped, matrix.ErrEmptyMatrix))

	return nil
}
