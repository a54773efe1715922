// Package dijkstra implements the min-cost grid walk with headings.
//
// The state space is every (cell, heading) pair inside the grid's bounding
// box. It processes states in order of increasing distance using a min-heap
// priority queue, relaxing the three moves out of each state.
//
// Complexity:
//
//   - Time:  O(S log S), S = 4·W·H states, each with at most 3 moves.
//   - Space: O(S) for distance, path and predecessor maps plus heap entries
//     under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Equal-cost predecessors are all kept so Result.Tiles can recover every optimal path.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvlgrid/grid"
)

// Dijkstra computes minimum costs from (start, heading) to every reachable
// State of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGridNil).
//  2. Options must be valid (ErrNegativeCost, ErrBadMaxDistance).
//  3. start must lie inside the bounding box (ErrStartOutOfBounds).
//
// The start cell itself is never checked against FilterStep.
func Dijkstra[T any](g *grid.Grid[T], start grid.Xy, heading grid.Direction4, opts ...Option) (*Result, error) {
	// 1) Validate grid is non-nil
	if g == nil {
		return nil, ErrGridNil
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Validate start
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartOutOfBounds, start)
	}

	// 4) Prepare runner; capacity is one entry per state of the box.
	n := 4 * g.Width() * g.Height()
	r := &runner[T]{
		g:       g,
		options: cfg,
		res: &Result{
			Dist:  make(map[State]int64, n),
			Paths: make(map[State]*grid.Path[State], n),
			preds: make(map[State][]State, n),
		},
		visited: make(map[State]bool, n),
		pq:      make(nodePQ, 0, n),
	}

	// 5) Run
	r.init(State{Xy: start, Heading: heading})
	if err := r.process(); err != nil {
		return r.res, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[T any] struct {
	g       *grid.Grid[T]
	options Options
	res     *Result
	visited map[State]bool // finalized states
	pq      nodePQ
}

// init seeds the source state at distance zero.
func (r *runner[T]) init(src State) {
	r.res.Dist[src] = 0
	r.res.Paths[src] = grid.NewPath(src)
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: src, dist: 0})
}

// process is the core loop. It repeatedly extracts the state with the
// minimum distance and relaxes its moves.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable states processed).
//   - The minimum distance in the heap exceeds MaxDistance.
//   - The context is done.
func (r *runner[T]) process() error {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// 1) Pop the smallest-distance item; skip stale entries.
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}

		// 2) Everything left is farther than the cap.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 3) Finalize and relax.
		r.visited[item.id] = true
		r.relax(item.id, item.dist)
	}

	return nil
}

// relax tries the forward step and both quarter turns out of u.
func (r *runner[T]) relax(u State, d int64) {
	// Forward step, if the target is inside the box and passes the filter.
	next := u.Xy.Step(u.Heading)
	if r.g.Contains(next) && (r.options.FilterStep == nil || r.options.FilterStep(u.Xy, next)) {
		r.update(u, State{Xy: next, Heading: u.Heading}, d+r.options.StepCost)
	}

	// Turns in place.
	r.update(u, State{Xy: u.Xy, Heading: u.Heading.Clockwise()}, d+r.options.TurnCost)
	r.update(u, State{Xy: u.Xy, Heading: u.Heading.Anticlockwise()}, d+r.options.TurnCost)
}

// update records u as a predecessor of v at newDist if that is no worse than
// what is known, pushing v when strictly better.
func (r *runner[T]) update(u, v State, newDist int64) {
	if newDist > r.options.MaxDistance || r.visited[v] {
		return
	}

	old, seen := r.res.Dist[v]
	switch {
	case !seen || newDist < old:
		r.res.Dist[v] = newDist
		r.res.Paths[v] = r.res.Paths[u].Extend(v)
		r.res.preds[v] = append(r.res.preds[v][:0], u)
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	case newDist == old:
		r.res.preds[v] = append(r.res.preds[v], u)
	}
}

// nodeItem represents a state and its current distance from the source.
type nodeItem struct {
	id   State
	dist int64
}

// nodePQ is a min-heap of *nodeItem, ordered by dist ascending.
// Outdated entries remain in the heap and are skipped when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element of the backing slice.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
