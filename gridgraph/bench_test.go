package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolation/gridgraph"
)

// randomMask returns an n×n mask with each site open with probability p.
func randomMask(n int, p float64) []bool {
	rng := rand.New(rand.NewSource(42))
	mask := make([]bool, n*n)
	for i := range mask {
		mask[i] = rng.Float64() < p
	}
	return mask
}

// BenchmarkConnectedComponents measures cluster labelling on a 1000×1000
// grid near the percolation threshold.
func BenchmarkConnectedComponents(b *testing.B) {
	gg, err := gridgraph.FromMask(1000, randomMask(1000, 0.59))
	if err != nil {
		b.Fatalf("setup FromMask failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}

// BenchmarkMinOpenToPercolate measures the 0-1 BFS on a 1000×1000 grid.
func BenchmarkMinOpenToPercolate(b *testing.B) {
	gg, err := gridgraph.FromMask(1000, randomMask(1000, 0.4))
	if err != nil {
		b.Fatalf("setup FromMask failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gg.MinOpenToPercolate()
	}
}
