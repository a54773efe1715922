// Package bfs provides tunable options and error definitions
// for breadth-first search over a grid.Grid.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlgrid/grid"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrStartOutOfBounds is returned when the start lies outside the grid's box.
	ErrStartOutOfBounds = errors.New("bfs: start outside grid bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned when a destination was not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell is enqueued, before visiting.
	// Receives the cell and its depth from the start.
	OnEnqueue func(xy grid.Xy, depth int)

	// OnDequeue is called immediately before visiting a cell.
	OnDequeue func(xy grid.Xy, depth int)

	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(xy grid.Xy, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip moves by returning false.
	// Called for each move curr→neighbor that stays inside the box.
	FilterNeighbor func(curr, neighbor grid.Xy) bool

	// Diagonals enables 8-connectivity.
	Diagonals bool

	goal    grid.Xy
	hasGoal bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all in-box neighbours allowed)
//   - 4-connectivity, no goal
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(grid.Xy, int) {},
		OnDequeue:      func(grid.Xy, int) {},
		OnVisit:        func(grid.Xy, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ grid.Xy) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(xy grid.Xy, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(xy grid.Xy, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(xy grid.Xy, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips moves when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor grid.Xy) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithDiagonals lets the search move diagonally as well.
func WithDiagonals() Option {
	return func(o *BFSOptions) {
		o.Diagonals = true
	}
}

// WithGoal stops the search right after xy is visited.
func WithGoal(xy grid.Xy) Option {
	return func(o *BFSOptions) {
		o.goal, o.hasGoal = xy, true
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: cells visited, in visit sequence.
//   - Depth: map from cell to its distance (in steps) from the start.
//   - Paths: map from cell to the path that first reached it (head = cell).
type BFSResult struct {
	Order []grid.Xy
	Depth map[grid.Xy]int
	Paths map[grid.Xy]*grid.Path[grid.Xy]
}

// PathTo reconstructs the route from the start to dest, start first.
// Returns ErrNoPath if dest was not reached.
func (r *BFSResult) PathTo(dest grid.Xy) ([]grid.Xy, error) {
	p, ok := r.Paths[dest]
	if !ok {
		return nil, fmt.Errorf("%w to %s", ErrNoPath, dest)
	}
	return p.Reversed(), nil
}
