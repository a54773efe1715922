package gridgraph

import "github.com/katalvlaran/lvlgrid/grid"

// Regions finds all connected regions of present cells that hold equal
// values, according to gg's connectivity. Unset cells never belong to a
// region.
//
// Regions are returned in grid Keys order (x outer, y inner) of their first
// cell; within a
// region, cells are in BFS order from that first cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph[T]) Regions() []Region[T] {
	seen := make([]bool, gg.cells)
	var regions []Region[T]

	for xy, v := range gg.g.Occupied() {
		if !gg.InBounds(xy) || seen[gg.index(xy)] {
			continue
		}
		// BFS to collect the region
		queue := []grid.Xy{xy}
		seen[gg.index(xy)] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, n := range gg.Neighbors(queue[qi]) {
				if seen[gg.index(n)] {
					continue
				}
				if nv, ok := gg.g.Get(n); ok && nv == v {
					seen[gg.index(n)] = true
					queue = append(queue, n)
				}
			}
		}
		regions = append(regions, newRegion(v, queue))
	}
	return regions
}

func newRegion[T comparable](v T, cells []grid.Xy) Region[T] {
	members := make(map[grid.Xy]struct{}, len(cells))
	for _, xy := range cells {
		members[xy] = struct{}{}
	}
	return Region[T]{Value: v, Cells: cells, members: members}
}

// Contains reports whether xy is a cell of r.
func (r Region[T]) Contains(xy grid.Xy) bool {
	_, ok := r.members[xy]
	return ok
}

// Area returns the number of cells in r.
func (r Region[T]) Area() int {
	return len(r.Cells)
}

// Perimeter returns the number of unit cell edges between a cell of r and a
// 4-neighbour outside r.
func (r Region[T]) Perimeter() int {
	p := 0
	for _, xy := range r.Cells {
		for _, d := range grid.AllDirection4() {
			if !r.Contains(xy.Step(d)) {
				p++
			}
		}
	}
	return p
}

// Sides returns the number of straight fence runs around r, counting the
// boundaries of any holes. A polygon has as many sides as corners, so each
// cell contributes its convex and concave corners.
func (r Region[T]) Sides() int {
	corners := 0
	for _, xy := range r.Cells {
		for _, d := range grid.AllDirection4() {
			c := d.Clockwise()
			a, b := r.Contains(xy.Step(d)), r.Contains(xy.Step(c))
			switch {
			case !a && !b:
				corners++
			case a && b && !r.Contains(xy.Step(d).Step(c)):
				corners++
			}
		}
	}
	return corners
}

// Price returns Area × Perimeter.
func (r Region[T]) Price() int {
	return r.Area() * r.Perimeter()
}

// DiscountPrice returns Area × Sides.
func (r Region[T]) DiscountPrice() int {
	return r.Area() * r.Sides()
}
