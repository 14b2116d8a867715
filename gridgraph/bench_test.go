package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/Roguelazer/advent-of-code-2025/densegrid"
	"github.com/Roguelazer/advent-of-code-2025/gridgraph"
)

func randomLand(n int, seed int64) *densegrid.Grid[rune] {
	rng := rand.New(rand.NewSource(seed))
	g := densegrid.New(pt{}, pt{X: n - 1, Y: n - 1}, '0')
	for p := range g.All() {
		if rng.Intn(5) >= 2 {
			g.Put(p, '1')
		}
	}
	return g
}

// BenchmarkConnectedComponents measures ConnectedComponents on a random
// 1000×1000 grid with 60% land.
// Complexity: O(W×H×d)
func BenchmarkConnectedComponents(b *testing.B) {
	g := randomLand(1000, 42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gridgraph.ConnectedComponents(g, land, gridgraph.Conn4)
	}
}

// BenchmarkExpandIsland measures joining the first and last islands of a
// random 300×300 grid.
func BenchmarkExpandIsland(b *testing.B) {
	g := randomLand(300, 7)
	last := len(gridgraph.ConnectedComponents(g, land, gridgraph.Conn4)) - 1

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := gridgraph.ExpandIsland(g, land, gridgraph.Conn4, 0, last); err != nil {
			b.Fatal(err)
		}
	}
}
