// Package gridgraph provides utilities to treat a grid.Grid as a graph.
// It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Identification of connected same-valued regions
//   - Area, perimeter and side counts of each region
//   - Shortest-path expansions between regions
package gridgraph

import "github.com/katalvlaran/lvlgrid/grid"

// New wraps g for region analysis.
// Returns ErrGridNil if g is nil.
// Algorithmic complexity: O(1).
func New[T comparable](g *grid.Grid[T], opts GridOptions) (*GridGraph[T], error) {
	if g == nil {
		return nil, ErrGridNil
	}
	gg := &GridGraph[T]{
		g:      g,
		conn:   opts.Conn,
		start:  g.Start(),
		width:  g.Width(),
		height: g.Height(),
		cells:  g.Width() * g.Height(),
	}

	return gg, nil
}

// Grid returns the wrapped grid.
func (gg *GridGraph[T]) Grid() *grid.Grid[T] {
	return gg.g
}

// InBounds reports whether xy lies within the bounding box captured by New.
// Complexity: O(1).
func (gg *GridGraph[T]) InBounds(xy grid.Xy) bool {
	x, y := xy.X-gg.start.X, xy.Y-gg.start.Y
	return x >= 0 && x < gg.width && y >= 0 && y < gg.height
}

// Neighbors returns the in-bounds neighbours of xy under gg's connectivity,
// in compass order starting from north.
func (gg *GridGraph[T]) Neighbors(xy grid.Xy) []grid.Xy {
	all := grid.Neighbors(xy, gg.conn == Conn8)
	out := all[:0]
	for _, n := range all {
		if gg.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// index maps xy to a row-major offset into the bounding box.
// Complexity: O(1).
func (gg *GridGraph[T]) index(xy grid.Xy) int {
	return (xy.Y-gg.start.Y)*gg.width + (xy.X - gg.start.X)
}

// Coordinate converts a row-major offset back to a coordinate.
// Complexity: O(1).
func (gg *GridGraph[T]) Coordinate(idx int) grid.Xy {
	return grid.NewXy(gg.start.X+idx%gg.width, gg.start.Y+idx/gg.width)
}
