// Package matrix_test provides benchmarks for Dense operations,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/gauss/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{16, 64, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense[float64]
	sinkF float64
)

func BenchmarkClone(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustNew[float64](b, n, n+1)
			fillRand(m, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = m.Clone()
			}
		})
	}
}

func BenchmarkCalculateRight(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustNew[float64](b, n, n+1)
			x := mustNew[float64](b, n, 1)
			fillRand(m, 11)
			fillRand(x, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = m.CalculateRight(x)
			}
		})
	}
}

func BenchmarkMaxAbs(b *testing.B) {
	m := mustNew[float64](b, 256, 257)
	fillRand(m, 5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkF = m.MaxAbs()
	}
}
