package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ndlabel/gridgraph"
)

// randomGrid returns an n×n grid with values in [0,4].
func randomGrid(n int, seed int64) [][]int {
	rng := rand.New(rand.NewSource(seed))
	grid := make([][]int, n)
	for y := range grid {
		row := make([]int, n)
		for x := range row {
			row[x] = rng.Intn(5)
		}
		grid[y] = row
	}
	return grid
}

// BenchmarkNewGridGraph measures construction (including labeling)
// on a 1000×1000 random grid.
func BenchmarkNewGridGraph(b *testing.B) {
	grid := randomGrid(1000, 42)
	opts := gridgraph.DefaultGridOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gridgraph.NewGridGraph(grid, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkExpandIsland measures ExpandIsland on a 1000×1000 grid with two
// 1-cell islands at opposite corners.
func BenchmarkExpandIsland(b *testing.B) {
	const n = 1000
	grid := make([][]int, n)
	for y := range grid {
		grid[y] = make([]int, n)
	}
	grid[0][0] = 1
	grid[n-1][n-1] = 2

	gg, err := gridgraph.From2D(grid, gridgraph.Conn8)
	if err != nil {
		b.Fatalf("setup From2D failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := gg.ExpandIsland(0, 1); err != nil {
			b.Fatal(err)
		}
	}
}
