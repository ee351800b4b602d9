package sorting_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/drills/sorting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances by step on every call, so each sort measures exactly one step.
func fakeClock(step time.Duration) func() time.Time {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0

	return func() time.Time {
		calls++
		return t0.Add(time.Duration(calls) * step)
	}
}

// TestCompare_AllAlgorithms runs the full comparison with a deterministic clock.
func TestCompare_AllAlgorithms(t *testing.T) {
	in := []int{5, 7, 33, 6, 8, 1, -7}
	opts := sorting.DefaultCompareOptions()
	opts.Now = fakeClock(time.Microsecond)

	got, err := sorting.Compare(in, opts)
	require.NoError(t, err)
	require.Len(t, got, len(sorting.Algorithms()))

	for i, tm := range got {
		assert.Equal(t, sorting.Algorithms()[i], tm.Algorithm)
		assert.Equal(t, time.Microsecond, tm.Elapsed)
		assert.True(t, tm.Sorted, tm.Algorithm.String())
	}
	assert.Equal(t, []int{5, 7, 33, 6, 8, 1, -7}, in, "input must not be modified")
}

// TestCompare_Subset preserves the requested order and defaults the clock.
func TestCompare_Subset(t *testing.T) {
	opts := sorting.CompareOptions{Algorithms: []sorting.Algorithm{sorting.MergeSort, sorting.BubbleSort}}

	got, err := sorting.Compare([]float64{2.5, -1, 0}, opts)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, sorting.MergeSort, got[0].Algorithm)
	assert.Equal(t, sorting.BubbleSort, got[1].Algorithm)
	assert.GreaterOrEqual(t, got[0].Elapsed, time.Duration(0))
}

// TestCompare_UnknownAlgorithm fails before running anything.
func TestCompare_UnknownAlgorithm(t *testing.T) {
	opts := sorting.CompareOptions{Algorithms: []sorting.Algorithm{sorting.QuickSort, sorting.Algorithm(17)}}
	got, err := sorting.Compare([]int{1}, opts)
	assert.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)
	assert.Nil(t, got)
}

// TestCompare_EmptyInput reports every algorithm as sorted.
func TestCompare_EmptyInput(t *testing.T) {
	got, err := sorting.Compare([]int(nil), sorting.CompareOptions{})
	require.NoError(t, err)
	for _, tm := range got {
		assert.True(t, tm.Sorted)
	}
}
