package dfs_test

import (
	"testing"

	"github.com/katalvlaran/lvlgrid/dfs"
	"github.com/katalvlaran/lvlgrid/grid"
)

// BenchmarkTrails_LargeMap measures enumeration from every trailhead of the
// 8×8 topographic map.
func BenchmarkTrails_LargeMap(b *testing.B) {
	g := heights(b, largeMap)
	step := dfs.WithFilterStep(dfs.Ascending(g))
	goal := summit(g)
	var heads []grid.Xy
	for xy, v := range g.Occupied() {
		if v == 0 {
			heads = append(heads, xy)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, h := range heads {
			_, _ = dfs.Trails(g, h, goal, step)
		}
	}
}
