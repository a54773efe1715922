package grid

import "iter"

// Cell pairs a coordinate with its contents. Present is false for cells that
// were never set or have been removed; Value is then the zero value of T.
type Cell[T any] struct {
	Xy      Xy
	Value   T
	Present bool
}

// slot is one stored cell of the dense backing array.
type slot[T any] struct {
	v  T
	ok bool
}

// Grid is a sparse rectangular window keyed by Xy.
//
// The bounding box [start, end] (inclusive on both axes) starts as the single
// cell (0,0) and grows on Insert to cover every coordinate ever inserted.
// Cells inside the box that were never set read as absent. The box never
// shrinks, not even on Remove.
//
// Storage is a dense row-major array; rows[y-start.Y][x-start.X] holds the
// cell at (x,y). Growing left or up shifts the array and start, so stored
// values keep their absolute coordinates.
type Grid[T any] struct {
	rows  [][]slot[T]
	start Xy
	end   Xy
	count int
}

// Empty returns a grid whose bounding box is the single unset cell (0,0).
func Empty[T any]() *Grid[T] {
	return &Grid[T]{rows: [][]slot[T]{make([]slot[T], 1)}}
}

// Start returns the top-left corner of the bounding box.
func (g *Grid[T]) Start() Xy { return g.start }

// End returns the bottom-right corner of the bounding box.
func (g *Grid[T]) End() Xy { return g.end }

// Width returns the inclusive horizontal span of the bounding box.
func (g *Grid[T]) Width() int { return g.end.X - g.start.X + 1 }

// Height returns the inclusive vertical span of the bounding box.
func (g *Grid[T]) Height() int { return g.end.Y - g.start.Y + 1 }

// Len returns the number of present cells.
func (g *Grid[T]) Len() int { return g.count }

// IsEmpty reports whether the grid is still in its initial state:
// a 1×1 box whose only cell is unset.
func (g *Grid[T]) IsEmpty() bool {
	return g.Width() == 1 && g.Height() == 1 && !g.rows[0][0].ok
}

// Contains reports whether xy lies inside the bounding box.
// It says nothing about whether the cell holds a value; use Get for that.
func (g *Grid[T]) Contains(xy Xy) bool {
	return xy.X >= g.start.X && xy.X <= g.end.X && xy.Y >= g.start.Y && xy.Y <= g.end.Y
}

// Get returns the value stored at xy. The boolean is false when xy is
// outside the bounding box or the cell is unset.
func (g *Grid[T]) Get(xy Xy) (T, bool) {
	if !g.Contains(xy) {
		var zero T
		return zero, false
	}
	s := g.rows[xy.Y-g.start.Y][xy.X-g.start.X]
	return s.v, s.ok
}

// Insert stores v at xy, overwriting any previous value. If xy lies outside
// the bounding box, the box is extended on the offending axis (or axes)
// only, and newly exposed cells are unset.
func (g *Grid[T]) Insert(xy Xy, v T) {
	g.Grow(xy)
	s := &g.rows[xy.Y-g.start.Y][xy.X-g.start.X]
	if !s.ok {
		g.count++
	}
	s.v, s.ok = v, true
}

// Grow extends the bounding box to cover xy without setting a value.
func (g *Grid[T]) Grow(xy Xy) {
	if xy.Y < g.start.Y || xy.Y > g.end.Y {
		g.extendY(xy.Y)
	}
	if xy.X < g.start.X || xy.X > g.end.X {
		g.extendX(xy.X)
	}
}

// Remove clears the cell at xy and returns its prior value.
// The bounding box is left unchanged.
func (g *Grid[T]) Remove(xy Xy) (T, bool) {
	var zero T
	if !g.Contains(xy) {
		return zero, false
	}
	s := &g.rows[xy.Y-g.start.Y][xy.X-g.start.X]
	if !s.ok {
		return zero, false
	}
	v := s.v
	s.v, s.ok = zero, false
	g.count--
	return v, true
}

// extendX widens every row so that x falls inside the box.
func (g *Grid[T]) extendX(x int) {
	if x > g.end.X {
		grow := x - g.end.X
		for i := range g.rows {
			g.rows[i] = append(g.rows[i], make([]slot[T], grow)...)
		}
		g.end.X = x
	}
	if x < g.start.X {
		shift := g.start.X - x
		for i, row := range g.rows {
			padded := make([]slot[T], shift+len(row))
			copy(padded[shift:], row)
			g.rows[i] = padded
		}
		g.start.X = x
	}
}

// extendY adds whole empty rows so that y falls inside the box.
func (g *Grid[T]) extendY(y int) {
	w := g.Width()
	if y > g.end.Y {
		for n := y - g.end.Y; n > 0; n-- {
			g.rows = append(g.rows, make([]slot[T], w))
		}
		g.end.Y = y
	}
	if y < g.start.Y {
		shift := g.start.Y - y
		rows := make([][]slot[T], 0, shift+len(g.rows))
		for ; shift > 0; shift-- {
			rows = append(rows, make([]slot[T], w))
		}
		g.rows = append(rows, g.rows...)
		g.start.Y = y
	}
}

// Keys yields every coordinate of the bounding box, column by column: x is
// the outer loop and y the inner one. The sequence is restartable and does not observe later growth of the box
// once started.
func (g *Grid[T]) Keys() iter.Seq[Xy] {
	return func(yield func(Xy) bool) {
		start, end := g.start, g.end
		for x := start.X; x <= end.X; x++ {
			for y := start.Y; y <= end.Y; y++ {
				if !yield(Xy{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// All yields every cell of the bounding box in Keys order, present or not.
func (g *Grid[T]) All() iter.Seq[Cell[T]] {
	return func(yield func(Cell[T]) bool) {
		for xy := range g.Keys() {
			v, ok := g.Get(xy)
			if !yield(Cell[T]{Xy: xy, Value: v, Present: ok}) {
				return
			}
		}
	}
}

// Occupied yields only the present cells, in Keys order.
func (g *Grid[T]) Occupied() iter.Seq2[Xy, T] {
	return func(yield func(Xy, T) bool) {
		for c := range g.All() {
			if c.Present && !yield(c.Xy, c.Value) {
				return
			}
		}
	}
}

// Find returns the first present cell, in Keys order, whose value satisfies
// match. The boolean is false if there is none.
func (g *Grid[T]) Find(match func(T) bool) (Xy, bool) {
	for xy, v := range g.Occupied() {
		if match(v) {
			return xy, true
		}
	}
	return Xy{}, false
}

// Clone returns a deep copy of the grid structure. Values are copied with
// assignment, so pointer-like T still share their referents.
func (g *Grid[T]) Clone() *Grid[T] {
	rows := make([][]slot[T], len(g.rows))
	for i, row := range g.rows {
		rows[i] = make([]slot[T], len(row))
		copy(rows[i], row)
	}
	return &Grid[T]{rows: rows, start: g.start, end: g.end, count: g.count}
}
