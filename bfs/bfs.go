// Package bfs provides breadth-first search over a grid.Grid,
// returning unweighted shortest-path distances, paths, and visit order.
//
// BFS explores cells in increasing distance from a start coordinate,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvlgrid/grid"
)

// walker encapsulates mutable BFS state.
type walker[T any] struct {
	grid    *grid.Grid[T]
	opts    BFSOptions
	ctx     context.Context
	queue   []*grid.Path[grid.Xy]
	visited map[grid.Xy]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGridNil or ErrStartOutOfBounds for invalid input,
// ErrOptionViolation for bad options, a context error on cancellation,
// or any user-supplied hook error.
func BFS[T any](g *grid.Grid[T], start grid.Xy, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartOutOfBounds, start)
	}

	n := g.Width() * g.Height()
	w := &walker[T]{
		grid:    g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]*grid.Path[grid.Xy], 0, n),
		visited: make(map[grid.Xy]bool, n),
		res: &BFSResult{
			Order: make([]grid.Xy, 0, n),
			Depth: make(map[grid.Xy]int, n),
			Paths: make(map[grid.Xy]*grid.Path[grid.Xy], n),
		},
	}

	// Seed queue with the single-cell path
	w.enqueue(grid.NewPath(start))

	return w.res, w.loop()
}

// ShortestPath returns the fewest-step path from start to goal, head = goal.
// The path's Len()-1 is the number of steps. ErrNoPath is returned if goal
// is unreachable under the given options.
func ShortestPath[T any](g *grid.Grid[T], start, goal grid.Xy, opts ...Option) (*grid.Path[grid.Xy], error) {
	res, err := BFS(g, start, append(opts[:len(opts):len(opts)], WithGoal(goal))...)
	if err != nil {
		return nil, err
	}
	p, ok := res.Paths[goal]
	if !ok {
		return nil, fmt.Errorf("%w from %s to %s", ErrNoPath, start, goal)
	}
	return p, nil
}

// Passable returns a neighbour filter that rejects moves into cells holding
// any of the wall values. Unset cells are passable.
func Passable[T comparable](g *grid.Grid[T], walls ...T) func(curr, neighbor grid.Xy) bool {
	return func(_, nbr grid.Xy) bool {
		v, ok := g.Get(nbr)
		if !ok {
			return true
		}
		for _, w := range walls {
			if v == w {
				return false
			}
		}
		return true
	}
}

// enqueue marks the path head visited, records depth and path,
// calls OnEnqueue and adds it to the queue.
func (w *walker[T]) enqueue(p *grid.Path[grid.Xy]) {
	xy, d := p.Head(), p.Len()-1
	w.visited[xy] = true
	w.res.Depth[xy] = d
	w.res.Paths[xy] = p
	w.opts.OnEnqueue(xy, d)
	w.queue = append(w.queue, p)
}

// loop processes the queue until empty, goal, error, or cancellation.
func (w *walker[T]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		p := w.dequeue()
		if err := w.visit(p); err != nil {
			return err
		}
		if w.opts.hasGoal && p.Head() == w.opts.goal {
			return nil
		}
		w.enqueueNeighbors(p)
	}
	return nil
}

// dequeue pops the first path, invokes OnDequeue, and returns it.
func (w *walker[T]) dequeue() *grid.Path[grid.Xy] {
	p := w.queue[0]
	w.queue[0] = nil
	w.queue = w.queue[1:]
	w.opts.OnDequeue(p.Head(), p.Len()-1)
	return p
}

// visit records the cell in Order and calls OnVisit.
func (w *walker[T]) visit(p *grid.Path[grid.Xy]) error {
	xy := p.Head()
	w.res.Order = append(w.res.Order, xy)
	if err := w.opts.OnVisit(xy, p.Len()-1); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %s: %w", xy, err)
	}
	return nil
}

// enqueueNeighbors applies bounds, filtering and MaxDepth,
// and extends the path into each unseen neighbour.
func (w *walker[T]) enqueueNeighbors(p *grid.Path[grid.Xy]) {
	curr := p.Head()
	nextDepth := p.Len()
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range grid.Neighbors(curr, w.opts.Diagonals) {
		if !w.grid.Contains(nbr) || w.visited[nbr] {
			continue
		}
		if !w.opts.FilterNeighbor(curr, nbr) {
			continue
		}
		w.enqueue(p.Extend(nbr))
	}
}
