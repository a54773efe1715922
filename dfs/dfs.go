// Package dfs implements depth-first trail enumeration on grid.Grid.
// It supports 4- and 8-connectivity, cancellation, pre-order hooks,
// depth limits, step filtering and diagnostics.
package dfs

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlgrid/grid"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker[T any] struct {
	grid   *grid.Grid[T]
	opts   DFSOptions
	isGoal func(grid.Xy) bool
	res    *DFSResult
}

// Trails lists every simple path from start to a cell for which isGoal
// returns true. A trail ends at its first goal cell; the search does not
// continue past it. If start itself is a goal, the single-cell path is the
// only trail.
func Trails[T any](g *grid.Grid[T], start grid.Xy, isGoal func(grid.Xy) bool, opts ...Option) (*DFSResult, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGridNil
	}
	if isGoal == nil {
		return nil, ErrGoalNil
	}
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartOutOfBounds, start)
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Traverse from the single-cell path
	res := &DFSResult{Visited: make(map[grid.Xy]bool)}
	walker := &dfsWalker[T]{grid: g, opts: dopts, isGoal: isGoal, res: res}
	if err := walker.traverse(grid.NewPath(start)); err != nil {
		return res, err
	}

	return res, nil
}

// traverse explores every extension of p, recording p if its head is a goal.
func (w *dfsWalker[T]) traverse(p *grid.Path[grid.Xy]) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	id, depth := p.Head(), p.Len()-1
	w.res.Visited[id] = true

	// 2. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %s: %w", id, err)
		}
	}

	// 3. Goal reached: record and stop this branch
	if w.isGoal(id) {
		w.res.Trails = append(w.res.Trails, p)
		return nil
	}

	// 4. Depth limit
	if w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth {
		return nil
	}

	// 5. Explore each neighbour not already on this branch
	for _, nid := range grid.Neighbors(id, w.opts.Diagonals) {
		if !w.grid.Contains(nid) || grid.PathContains(p, nid) {
			continue
		}
		if w.opts.FilterStep != nil && !w.opts.FilterStep(id, nid) {
			w.res.SkippedSteps++
			continue
		}
		if err := w.traverse(p.Extend(nid)); err != nil {
			return err
		}
	}

	return nil
}

// Ascending returns a step filter that only allows moving onto a present
// cell whose value is exactly one more than the current cell's.
func Ascending[T constraints.Integer](g *grid.Grid[T]) func(from, to grid.Xy) bool {
	return func(from, to grid.Xy) bool {
		a, ok := g.Get(from)
		if !ok {
			return false
		}
		b, ok := g.Get(to)
		return ok && b == a+1
	}
}
