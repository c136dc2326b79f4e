package percolation_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolation/percolation"
	"github.com/katalvlaran/percolation/unionfind"
)

// benchmarkTrial runs one full trial (open random sites until percolation)
// on an n×n grid per iteration.
func benchmarkTrial(b *testing.B, n int, v unionfind.Variant) {
	rng := rand.New(rand.NewSource(42))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, err := percolation.New(n, percolation.WithVariant(v))
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		for !g.Percolates() {
			_ = g.Open(rng.Intn(n)+1, rng.Intn(n)+1)
		}
	}
}

func BenchmarkTrial_QuickFind_50(b *testing.B)          { benchmarkTrial(b, 50, unionfind.QuickFind) }
func BenchmarkTrial_QuickUnion_50(b *testing.B)         { benchmarkTrial(b, 50, unionfind.QuickUnion) }
func BenchmarkTrial_WeightedQuickUnion_50(b *testing.B) { benchmarkTrial(b, 50, unionfind.WeightedQuickUnion) }
func BenchmarkTrial_WeightedQuickUnion_200(b *testing.B) {
	benchmarkTrial(b, 200, unionfind.WeightedQuickUnion)
}
