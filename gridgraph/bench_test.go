package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/katalvlaran/lvlgrid/gridgraph"
)

// BenchmarkRegions measures Regions on a random 300×300 grid with values in [0,4].
func BenchmarkRegions(b *testing.B) {
	const n = 300
	rng := rand.New(rand.NewSource(42))
	g := grid.Empty[int]()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			g.Insert(grid.NewXy(x, y), rng.Intn(5))
		}
	}
	gg, err := gridgraph.New(g, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, r := range gg.Regions() {
			_ = r.Sides()
		}
	}
}

// BenchmarkExpandIsland measures ExpandIsland on a 300×300 box with two
// 1-cell islands at opposite corners.
func BenchmarkExpandIsland(b *testing.B) {
	const n = 300
	g := grid.Empty[int]()
	g.Insert(grid.NewXy(0, 0), 1)
	g.Insert(grid.NewXy(n-1, n-1), 1)
	gg, err := gridgraph.New(g, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = gg.ExpandIsland(0, 1)
	}
}
