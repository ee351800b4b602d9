package sorting_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/drills/sorting"
)

// benchmarkSort runs fn on fresh copies of a seeded random slice of length n.
// Copying is excluded from the timer.
func benchmarkSort(b *testing.B, n int, fn func([]int)) {
	rng := rand.New(rand.NewSource(7))
	base := make([]int, n)
	for i := range base {
		base[i] = rng.Int()
	}
	work := make([]int, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		copy(work, base)
		b.StartTimer()
		fn(work)
	}
}

// BenchmarkBubble_1K benchmarks the exchange sort on 1 000 elements.
func BenchmarkBubble_1K(b *testing.B) { benchmarkSort(b, 1_000, sorting.Bubble[int]) }

// BenchmarkSelection_1K benchmarks selection sort on 1 000 elements.
func BenchmarkSelection_1K(b *testing.B) { benchmarkSort(b, 1_000, sorting.Selection[int]) }

// BenchmarkInsertion_1K benchmarks insertion sort on 1 000 elements.
func BenchmarkInsertion_1K(b *testing.B) { benchmarkSort(b, 1_000, sorting.Insertion[int]) }

// BenchmarkQuick_100K benchmarks quicksort on 100 000 elements.
func BenchmarkQuick_100K(b *testing.B) { benchmarkSort(b, 100_000, sorting.Quick[int]) }

// BenchmarkMerge_100K benchmarks merge sort on 100 000 elements.
func BenchmarkMerge_100K(b *testing.B) { benchmarkSort(b, 100_000, sorting.Merge[int]) }

// BenchmarkBuiltin_100K benchmarks the standard library sort as the reference.
func BenchmarkBuiltin_100K(b *testing.B) { benchmarkSort(b, 100_000, sorting.Builtin[int]) }
