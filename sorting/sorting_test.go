package sorting_test

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/drills/sorting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sorters lists every in-place int sorter under a stable test name.
var sorters = []struct {
	name string
	fn   func([]int)
}{
	{"Bubble", sorting.Bubble[int]},
	{"Selection", sorting.Selection[int]},
	{"Insertion", sorting.Insertion[int]},
	{"Quick", sorting.Quick[int]},
	{"Merge", sorting.Merge[int]},
	{"Builtin", sorting.Builtin[int]},
}

//----------------------------------------------------------------------------//
// Correctness
//----------------------------------------------------------------------------//

// TestSorters_Fixtures checks each algorithm against hand-picked inputs,
// including the edge cases nil, empty, single, duplicates and negatives.
func TestSorters_Fixtures(t *testing.T) {
	cases := []struct {
		name string
		in   []int
		want []int
	}{
		{"Nil", nil, nil},
		{"Empty", []int{}, []int{}},
		{"Single", []int{42}, []int{42}},
		{"Pair", []int{2, 1}, []int{1, 2}},
		{"Demo", []int{5, 7, 33, 6, 8, 1, -7}, []int{-7, 1, 5, 6, 7, 8, 33}},
		{"Sorted", []int{1, 2, 3, 4, 5}, []int{1, 2, 3, 4, 5}},
		{"Reversed", []int{5, 4, 3, 2, 1}, []int{1, 2, 3, 4, 5}},
		{"Duplicates", []int{3, 1, 3, 1, 2, 2}, []int{1, 1, 2, 2, 3, 3}},
		{"AllEqual", []int{7, 7, 7}, []int{7, 7, 7}},
	}
	for _, s := range sorters {
		for _, tc := range cases {
			t.Run(s.name+"/"+tc.name, func(t *testing.T) {
				got := slices.Clone(tc.in)
				s.fn(got)
				assert.Equal(t, tc.want, got)
			})
		}
	}
}

// TestSorters_RandomPermutation verifies on seeded random inputs that every
// algorithm produces a non-decreasing permutation of its input.
func TestSorters_RandomPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for round := 0; round < 50; round++ {
		n := rng.Intn(200)
		in := make([]int, n)
		for i := range in {
			in[i] = rng.Intn(41) - 20 // narrow range forces duplicates
		}
		want := slices.Clone(in)
		slices.Sort(want)

		for _, s := range sorters {
			got := slices.Clone(in)
			s.fn(got)
			require.True(t, sorting.IsSorted(got), "%s: round %d not sorted", s.name, round)
			require.Equal(t, want, got, "%s: round %d not a permutation", s.name, round)
		}
	}
}

// TestSorters_Strings makes sure the generic constraint works beyond ints.
func TestSorters_Strings(t *testing.T) {
	in := []string{"pear", "apple", "fig", "banana"}
	want := []string{"apple", "banana", "fig", "pear"}

	got := slices.Clone(in)
	sorting.Quick(got)
	assert.Equal(t, want, got)

	got = slices.Clone(in)
	sorting.Insertion(got)
	assert.Equal(t, want, got)
}

// TestMergeFunc_Stable ensures records with equal keys keep their input order.
func TestMergeFunc_Stable(t *testing.T) {
	type rec struct {
		key int
		tag string
	}
	in := []rec{{2, "a"}, {1, "b"}, {2, "c"}, {1, "d"}, {0, "e"}, {2, "f"}}
	sorting.MergeFunc(in, func(a, b rec) int { return cmp.Compare(a.key, b.key) })

	want := []rec{{0, "e"}, {1, "b"}, {1, "d"}, {2, "a"}, {2, "c"}, {2, "f"}}
	assert.Equal(t, want, in)
}

//----------------------------------------------------------------------------//
// Instrumented variants
//----------------------------------------------------------------------------//

// TestStats_Demo pins the counters reported on the demo array.
func TestStats_Demo(t *testing.T) {
	demo := []int{5, 7, 33, 6, 8, 1, -7}

	s := slices.Clone(demo)
	assert.Equal(t, sorting.Stats{Comparisons: 21, Swaps: 14}, sorting.BubbleStats(s))

	s = slices.Clone(demo)
	assert.Equal(t, sorting.Stats{Comparisons: 21, Swaps: 4}, sorting.SelectionStats(s))

	s = slices.Clone(demo)
	assert.Equal(t, sorting.Stats{Comparisons: 14, Shifts: 14}, sorting.InsertionStats(s))
	assert.Equal(t, []int{-7, 1, 5, 6, 7, 8, 33}, s)
}

// TestStats_SortedInput shows insertion sort doing no work on sorted data
// while bubble sort still compares every pair.
func TestStats_SortedInput(t *testing.T) {
	s := []int{1, 2, 3, 4}
	assert.Equal(t, sorting.Stats{}, sorting.InsertionStats(s))
	assert.Equal(t, sorting.Stats{Comparisons: 6}, sorting.BubbleStats(s))
	assert.Equal(t, sorting.Stats{Comparisons: 6}, sorting.SelectionStats(s))
}

//----------------------------------------------------------------------------//
// Algorithm enum
//----------------------------------------------------------------------------//

// TestParseAlgorithm covers accepted spellings and the unknown-name error.
func TestParseAlgorithm(t *testing.T) {
	cases := []struct {
		in   string
		want sorting.Algorithm
	}{
		{"bubble", sorting.BubbleSort},
		{"BubbleSort", sorting.BubbleSort},
		{" selection ", sorting.SelectionSort},
		{"insertion", sorting.InsertionSort},
		{"QUICK", sorting.QuickSort},
		{"mergesort", sorting.MergeSort},
		{"builtin", sorting.BuiltinSort},
	}
	for _, tc := range cases {
		got, err := sorting.ParseAlgorithm(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := sorting.ParseAlgorithm("bogo")
	assert.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)
}

// TestAlgorithm_String round-trips every algorithm through its name.
func TestAlgorithm_String(t *testing.T) {
	for _, a := range sorting.Algorithms() {
		back, err := sorting.ParseAlgorithm(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, back)
	}
	assert.Equal(t, "Algorithm(99)", sorting.Algorithm(99).String())
	assert.False(t, sorting.Algorithm(-1).Valid())
}

// TestSortWith_Unknown leaves the input untouched on error.
func TestSortWith_Unknown(t *testing.T) {
	s := []int{3, 1, 2}
	err := sorting.SortWith(sorting.Algorithm(42), s)
	assert.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)
	assert.Equal(t, []int{3, 1, 2}, s)

	require.NoError(t, sorting.SortWith(sorting.MergeSort, s))
	assert.Equal(t, []int{1, 2, 3}, s)
}
