// Package benchmarks provides comparative benchmarks of chemical against
// popular Go collection and stream processing libraries.
package benchmarks

import (
	"context"
	"fmt"
	"testing"
)

// Test data sizes
const (
	SmallSize  = 100
	MediumSize = 1_000
	LargeSize  = 10_000
)

var sizes = []int{SmallSize, MediumSize, LargeSize}

// generateInts creates a slice of integers for benchmarking.
func generateInts(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = i
	}
	return data
}

// square returns the square of an integer.
func square(x int) int {
	return x * x
}

// isEven returns true if the number is even.
func isEven(x int) bool {
	return x%2 == 0
}

// add returns the sum of two integers.
func add(a, b int) int {
	return a + b
}

// bySize runs fn as one sub-benchmark per data size.
func bySize(b *testing.B, fn func(b *testing.B, data []int)) {
	for _, n := range sizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			data := generateInts(n)
			b.ReportAllocs()
			b.ResetTimer()
			fn(b, data)
		})
	}
}

// Background context for benchmarks
var ctx = context.Background()
