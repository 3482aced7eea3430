package benchmarks

import (
	"testing"

	"github.com/ahmetb/go-linq/v3"
	"github.com/destel/rill"
	"github.com/samber/lo"

	"github.com/reid23/chemical/chem"
)

// =============================================================================
// Map Benchmarks
// =============================================================================

func BenchmarkMap_Chem(b *testing.B) {
	bySize(b, func(b *testing.B, data []int) {
		for i := 0; i < b.N; i++ {
			_, _ = chem.Map(chem.From(data), square).Collect()
		}
	})
}

func BenchmarkMap_Rill(b *testing.B) {
	bySize(b, func(b *testing.B, data []int) {
		for i := 0; i < b.N; i++ {
			stream := rill.FromSlice(data, nil)
			mapped := rill.Map(stream, 1, func(x int) (int, error) {
				return square(x), nil
			})
			_, _ = rill.ToSlice(mapped)
		}
	})
}

func BenchmarkMap_Lo(b *testing.B) {
	bySize(b, func(b *testing.B, data []int) {
		for i := 0; i < b.N; i++ {
			_ = lo.Map(data, func(x int, _ int) int {
				return square(x)
			})
		}
	})
}

func BenchmarkMap_GoLinq(b *testing.B) {
	bySize(b, func(b *testing.B, data []int) {
		for i := 0; i < b.N; i++ {
			var result []int
			linq.From(data).SelectT(func(x int) int {
				return square(x)
			}).ToSlice(&result)
		}
	})
}

// Baseline: raw for loop
func BenchmarkMap_RawLoop(b *testing.B) {
	bySize(b, func(b *testing.B, data []int) {
		for i := 0; i < b.N; i++ {
			result := make([]int, len(data))
			for j, x := range data {
				result[j] = square(x)
			}
			_ = result
		}
	})
}

// =============================================================================
// Filter Benchmarks
// =============================================================================

func BenchmarkFilter_Chem(b *testing.B) {
	bySize(b, func(b *testing.B, data []int) {
		for i := 0; i < b.N; i++ {
			_, _ = chem.From(data).Filter(isEven).Collect()
		}
	})
}

func BenchmarkFilter_Rill(b *testing.B) {
	bySize(b, func(b *testing.B, data []int) {
		for i := 0; i < b.N; i++ {
			stream := rill.FromSlice(data, nil)
			filtered := rill.Filter(stream, 1, func(x int) (bool, error) {
				return isEven(x), nil
			})
			_, _ = rill.ToSlice(filtered)
		}
	})
}

func BenchmarkFilter_Lo(b *testing.B) {
	bySize(b, func(b *testing.B, data []int) {
		for i := 0; i < b.N; i++ {
			_ = lo.Filter(data, func(x int, _ int) bool {
				return isEven(x)
			})
		}
	})
}

func BenchmarkFilter_GoLinq(b *testing.B) {
	bySize(b, func(b *testing.B, data []int) {
		for i := 0; i < b.N; i++ {
			var result []int
			linq.From(data).WhereT(func(x int) bool {
				return isEven(x)
			}).ToSlice(&result)
		}
	})
}
