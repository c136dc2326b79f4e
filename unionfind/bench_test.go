package unionfind_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolation/unionfind"
)

// benchmarkUnionFind performs n random unions followed by n random
// Connected queries on a fresh set of n elements per iteration.
func benchmarkUnionFind(b *testing.B, v unionfind.Variant, n int) {
	rng := rand.New(rand.NewSource(42))
	pairs := make([][2]int, n)
	for i := range pairs {
		pairs[i] = [2]int{rng.Intn(n), rng.Intn(n)}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ds, err := unionfind.New(v, n)
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		for _, pq := range pairs {
			_ = ds.Union(pq[0], pq[1])
		}
		for _, pq := range pairs {
			_, _ = ds.Connected(pq[1], pq[0])
		}
	}
}

func BenchmarkQuickFind_1K(b *testing.B)          { benchmarkUnionFind(b, unionfind.QuickFind, 1_000) }
func BenchmarkQuickUnion_1K(b *testing.B)         { benchmarkUnionFind(b, unionfind.QuickUnion, 1_000) }
func BenchmarkWeightedQuickUnion_1K(b *testing.B) { benchmarkUnionFind(b, unionfind.WeightedQuickUnion, 1_000) }
func BenchmarkWeightedQuickUnion_100K(b *testing.B) {
	benchmarkUnionFind(b, unionfind.WeightedQuickUnion, 100_000)
}
