// Package dfs defines types and options for depth-first trail enumeration,
// including cancellation, pre-order hooks, depth limiting, step filtering
// and basic diagnostics.
package dfs

import (
	"context"
	"errors"
	"slices"

	"github.com/katalvlaran/lvlgrid/grid"
)

var (
	// ErrGridNil is returned when a nil *grid.Grid is passed to Trails.
	ErrGridNil = errors.New("dfs: grid is nil")

	// ErrStartOutOfBounds indicates that the start coordinate lies outside
	// the grid's bounding box.
	ErrStartOutOfBounds = errors.New("dfs: start outside grid bounds")

	// ErrGoalNil indicates that no goal predicate was supplied.
	ErrGoalNil = errors.New("dfs: goal predicate is nil")
)

// Option configures optional behavior of the traversal.
// Use with Trails(g, start, isGoal, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked each time a cell is stepped onto
	// (pre-order), with the step count so far.
	// Returning an error aborts traversal with that error.
	OnVisit func(xy grid.Xy, depth int) error

	// MaxDepth, if non-negative, limits trails to at most MaxDepth steps.
	// Default is -1 (no limit).
	MaxDepth int

	// FilterStep, if non-nil, is called for each in-bounds move.
	// Return true to take the step, false to skip it.
	FilterStep func(from, to grid.Xy) bool

	// Diagonals enables 8-connectivity.
	Diagonals bool
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-order hook
//   - No depth limit (MaxDepth = -1)
//   - No step filtering, 4-connectivity
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:        context.Background(),
		OnVisit:    nil,
		MaxDepth:   -1,
		FilterStep: nil,
	}
}

// WithContext returns an Option that sets the Context for traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(xy grid.Xy, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits trail length to limit steps.
// A limit of 0 means only the start cell is considered.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterStep returns an Option that filters moves.
// If fn(from, to) == false, the step is skipped and counted in SkippedSteps.
func WithFilterStep(fn func(from, to grid.Xy) bool) Option {
	return func(o *DFSOptions) {
		o.FilterStep = fn
	}
}

// WithDiagonals returns an Option that enables diagonal steps.
func WithDiagonals() Option {
	return func(o *DFSOptions) {
		o.Diagonals = true
	}
}

// DFSResult captures the outcome of a trail enumeration.
type DFSResult struct {
	// Trails lists every start→goal simple path, in discovery order.
	// Each head is a goal cell; each root is the start.
	Trails []*grid.Path[grid.Xy]

	// Visited flags which cells were stepped on by any explored branch.
	Visited map[grid.Xy]bool

	// SkippedSteps reports how many moves were rejected by FilterStep.
	SkippedSteps int
}

// Count returns the number of distinct trails.
func (r *DFSResult) Count() int {
	return len(r.Trails)
}

// Ends returns the distinct goal cells reached, sorted by Xy.Compare.
func (r *DFSResult) Ends() []grid.Xy {
	seen := make(map[grid.Xy]bool, len(r.Trails))
	var ends []grid.Xy
	for _, t := range r.Trails {
		if h := t.Head(); !seen[h] {
			seen[h] = true
			ends = append(ends, h)
		}
	}
	slices.SortFunc(ends, grid.Xy.Compare)
	return ends
}
