package benchmarks

import (
	"testing"

	"github.com/ahmetb/go-linq/v3"
	"github.com/samber/lo"

	"github.com/reid23/chemical/chem"
)

// =============================================================================
// Skip / Step / Take / Reverse pipeline
// =============================================================================

// Every third element after the first ten, last to first, at most 50 of them.

func BenchmarkPipeline_Chem(b *testing.B) {
	bySize(b, func(b *testing.B, data []int) {
		for i := 0; i < b.N; i++ {
			_, _ = chem.From(data).Skip(10).StepBy(3).Rev().Take(50).Collect()
		}
	})
}

func BenchmarkPipeline_Lo(b *testing.B) {
	bySize(b, func(b *testing.B, data []int) {
		for i := 0; i < b.N; i++ {
			stepped := lo.Filter(lo.Drop(data, 10), func(_ int, j int) bool { return j%3 == 0 })
			_ = lo.Subset(lo.Reverse(stepped), 0, 50)
		}
	})
}

func BenchmarkPipeline_GoLinq(b *testing.B) {
	bySize(b, func(b *testing.B, data []int) {
		for i := 0; i < b.N; i++ {
			var result []int
			linq.From(data).Skip(10).WhereIndexedT(func(j int, _ int) bool {
				return j%3 == 0
			}).Reverse().Take(50).ToSlice(&result)
		}
	})
}

func BenchmarkPipeline_RawLoop(b *testing.B) {
	bySize(b, func(b *testing.B, data []int) {
		for i := 0; i < b.N; i++ {
			var stepped []int
			for j := 10; j < len(data); j += 3 {
				stepped = append(stepped, data[j])
			}
			result := make([]int, 0, 50)
			for j := len(stepped) - 1; j >= 0 && len(result) < 50; j-- {
				result = append(result, stepped[j])
			}
			_ = result
		}
	})
}
