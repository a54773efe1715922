package gridgraph

import (
	"container/list"
	"slices"

	"github.com/katalvlaran/lvlgrid/grid"
)

// ExpandIsland finds a minimum-conversion path connecting any cell of region
// srcComp to any cell of region dstComp, as indexed by Regions(). Entering a
// cell that holds the source region's value, or that belongs to the
// destination region, is free; entering any other cell, unset or not,
// costs 1.
// Returns the path from a source cell to a destination cell (inclusive) and
// the total conversion cost.
//
// Behavior:
//  1. Validate region indices.
//  2. Multi-source 0-1 BFS from all srcComp cells over the bounding box.
//  3. Stop when any dstComp cell is popped.
//  4. Reconstruct path via predecessors.
//
// Complexity: O(W·H·d), Memory: O(W·H) for distance and prev arrays.
func (gg *GridGraph[T]) ExpandIsland(srcComp, dstComp int) (path []grid.Xy, cost int, err error) {
	regions := gg.Regions()
	if srcComp < 0 || srcComp >= len(regions) || dstComp < 0 || dstComp >= len(regions) {
		return nil, 0, ErrComponentIndex
	}
	src, dst := regions[srcComp], regions[dstComp]

	const inf = int(^uint(0) >> 1)
	dist := make([]int, gg.cells)
	prev := make([]int, gg.cells)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for _, xy := range src.Cells {
		i := gg.index(xy)
		dist[i] = 0
		dq.PushBack(i)
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		uxy := gg.Coordinate(u)
		if dst.Contains(uxy) {
			target = u
			break
		}
		for _, vxy := range gg.Neighbors(uxy) {
			v := gg.index(vxy)
			step := 1
			if val, ok := gg.g.Get(vxy); (ok && val == src.Value) || dst.Contains(vxy) {
				step = 0
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	// Reconstruct path
	for at := target; at >= 0; at = prev[at] {
		path = append(path, gg.Coordinate(at))
	}
	slices.Reverse(path)
	return path, dist[target], nil
}
