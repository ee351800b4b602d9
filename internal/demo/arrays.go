// SPDX-License-Identifier: MIT

package demo

import (
	"io"
	"slices"
	"strings"

	"github.com/katalvlaran/drills/common"
	"github.com/katalvlaran/drills/duplicates"
	"github.com/katalvlaran/drills/matrix"
	"github.com/katalvlaran/drills/sorting"
	"github.com/katalvlaran/drills/swap"
)

// counted is an instrumented sort shown with its operation counters.
type counted struct {
	title string
	fn    func([]int) sorting.Stats
	moves string // label of the movement counter
	pick  func(sorting.Stats) int
}

var countedSorts = []counted{
	{"Bubble Sort", sorting.BubbleStats[int], "Swaps", func(s sorting.Stats) int { return s.Swaps }},
	{"Selection Sort", sorting.SelectionStats[int], "Swaps", func(s sorting.Stats) int { return s.Swaps }},
	{"Insertion Sort", sorting.InsertionStats[int], "Shifts", func(s sorting.Stats) int { return s.Shifts }},
}

func runSorting(w io.Writer, in Input) error {
	p := newPrinter(w)
	p.printf("Testing with array: %v\n\n", in.Sort)

	for _, c := range countedSorts {
		s := slices.Clone(in.Sort)
		p.section(c.title + " Implementation")
		p.printf("Original array: %v\n", s)
		st := c.fn(s)
		p.printf("Sorted array: %v\n", s)
		p.printf("Comparisons: %d\n", st.Comparisons)
		p.printf("%s: %d\n\n", c.moves, c.pick(st))
	}

	for _, a := range []sorting.Algorithm{sorting.QuickSort, sorting.MergeSort, sorting.BuiltinSort} {
		s := slices.Clone(in.Sort)
		p.section(titleCase(a.String()) + " Sort Implementation")
		p.printf("Original array: %v\n", s)
		// a is a known algorithm.
		_ = sorting.SortWith(a, s)
		p.printf("Sorted array: %v\n\n", s)
	}

	opts := sorting.DefaultCompareOptions()
	opts.Now = in.clock()
	timings, err := sorting.Compare(in.Sort, opts)
	if err != nil {
		return err
	}
	p.section("Performance Comparison")
	p.println("Performance Results (nanoseconds):")
	for _, t := range timings {
		p.printf("%s Sort: %d (sorted=%t)\n", titleCase(t.Algorithm.String()), t.Elapsed.Nanoseconds(), t.Sorted)
	}
	p.println()

	p.section("Algorithm Summary")
	p.println("1. Bubble Sort: O(n²) - Simple but inefficient")
	p.println("2. Selection Sort: O(n²) - Fewer swaps than bubble")
	p.println("3. Insertion Sort: O(n²) - Good for small/nearly sorted arrays")
	p.println("4. Quick Sort: O(n log n) average - Good general-purpose sort")
	p.println("5. Merge Sort: O(n log n) guaranteed - Stable sort")
	p.println("6. Builtin Sort: slices.Sort, pattern-defeating quicksort")

	return p.err
}

func runDuplicates(w io.Writer, in Input) error {
	p := newPrinter(w)
	p.printf("Input: %v\n", in.Duplicates)
	p.printf("Using a set, O(n): %v\n", duplicates.Find(in.Duplicates))
	p.printf("Brute force, O(n²): %v\n", duplicates.FindBruteForce(in.Duplicates))

	return p.err
}

func runUnique(w io.Writer, in Input) error {
	p := newPrinter(w)
	p.printf("Input: %v\n", in.Unique)
	for _, v := range duplicates.UniqueBruteForce(in.Unique) {
		p.printf("Unique: %d\n", v)
	}
	counts := duplicates.Counts(in.Unique)
	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		p.printf("%d occurs %d time(s)\n", k, counts[k])
	}

	return p.err
}

func runCommon(w io.Writer, in Input) error {
	p := newPrinter(w)
	p.printf("Array 1: %v\n", in.CommonA)
	p.printf("Array 2: %v\n", in.CommonB)
	p.printf("Nested loops, O(n·m): %v\n", common.ElementsBruteForce(in.CommonA, in.CommonB))
	p.printf("Hash map, O(n+m): %v\n", common.Elements(in.CommonA, in.CommonB))
	p.printf("Distinct common values: %v\n", common.Set(in.CommonA, in.CommonB))

	return p.err
}

func runMatrix(w io.Writer, in Input) error {
	p := newPrinter(w)

	p.section("Loop Initialization")
	filled, err := matrix.Fill(3, 3, 1)
	if err != nil {
		return err
	}
	if err := matrix.Format(w, filled); err != nil {
		return err
	}
	p.println()

	p.section("Matrix Analysis")
	p.println("Input Matrix:")
	if err := matrix.Format(w, in.Matrix); err != nil {
		return err
	}

	type finder struct {
		label string
		fn    func([][]int) (int, error)
	}
	groups := []struct {
		title   string
		finders []finder
	}{
		{"Finding Minimum Values", []finder{{"Method 1 (Sorting)", matrix.MinBySorting[int]}, {"Method 2 (Direct)", matrix.Min[int]}}},
		{"Finding Maximum Values", []finder{{"Method 1 (Sorting)", matrix.MaxBySorting[int]}, {"Method 2 (Direct)", matrix.Max[int]}}},
	}
	for _, g := range groups {
		p.printf("\n--- %s ---\n", g.title)
		for _, f := range g.finders {
			v, err := f.fn(in.Matrix)
			if err != nil {
				return err
			}
			p.printf("%s: %d\n", f.label, v)
		}
	}

	p.println("\n--- Special Algorithm ---")
	if v, err := matrix.MaxInMinColumn(in.Matrix); err != nil {
		p.printf("Max in min column: %v\n", err)
	} else {
		p.printf("Max in min column: %d\n", v)
	}

	p.println("\n--- Matrix Operations ---")
	if t, err := matrix.Transpose(in.Matrix); err != nil {
		p.printf("Transpose: %v\n", err)
	} else {
		p.println("Transposed Matrix:")
		if err := matrix.Format(w, t); err != nil {
			return err
		}
	}
	p.printf("\nIs Original Matrix Symmetric? %t\n", matrix.IsSymmetric(in.Matrix))
	sym := [][]int{{1, 2, 3}, {2, 4, 5}, {3, 5, 6}}
	p.println("\nSymmetric Test Matrix:")
	if err := matrix.Format(w, sym); err != nil {
		return err
	}
	p.printf("Is Symmetric? %t\n", matrix.IsSymmetric(sym))

	return p.err
}

func runSwap(w io.Writer, in Input) error {
	p := newPrinter(w)
	a, b := in.SwapA, in.SwapB

	p.section("Swap Using Temporary Variable")
	x, y := swap.Temp(a, b)
	p.printf("Before swap: a = %d, b = %d\n", a, b)
	p.printf("After swap: a = %d, b = %d\n\n", x, y)

	for _, v := range []struct {
		title string
		steps []swap.Step
	}{
		{"Swap Using Arithmetic Operations", swap.ArithmeticSteps(a, b)},
		{"Swap Using XOR Operation", swap.XORSteps(a, b)},
	} {
		p.section(v.title)
		p.printf("Before swap: a = %d, b = %d\n", a, b)
		for i, st := range v.steps {
			p.printf("Step %d: %s -> a = %d, b = %d\n", i+1, st.Op, st.A, st.B)
		}
		last := v.steps[len(v.steps)-1]
		p.printf("After swap: a = %d, b = %d\n\n", last.A, last.B)
	}

	p.section("Swap Multiple Assignment")
	x, y = b, a
	p.printf("a, b = b, a -> a = %d, b = %d\n\n", x, y)

	p.section("Generic Swap")
	s1, s2 := swap.Generic("Hello", "World")
	p.printf("After swap: str1 = %q, str2 = %q\n\n", s1, s2)

	p.section("Overflow Demonstration")
	const big int32 = 1<<31 - 1 - 100
	sum, over := swap.AddOverflows(big, 200)
	p.printf("int32: %d + 200 = %d (overflow: %t)\n", big, sum, over)

	return p.err
}

// titleCase upper-cases the first letter of an ASCII word.
func titleCase(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
