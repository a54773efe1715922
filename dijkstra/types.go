// Package dijkstra defines core types and configuration options
// for the min-cost grid walk with headings.
//
// A walker stands on a cell facing one of the four cardinal directions.
// It may step forward one cell, or turn a quarter in place; each move has a
// non-negative cost. Dijkstra computes the minimum cost from the start state
// to every reachable State.
//
// Options:
//
//	– StepCost:    cost of one forward step (default 1).
//	– TurnCost:    cost of one quarter turn in place (default 1000).
//	– MaxDistance: optional cap on distances to explore; states beyond this are skipped.
//	– FilterStep:  predicate that rejects forward steps (walls).
//
// Errors (sentinel):
//
//	– ErrGridNil          if the provided grid pointer is nil.
//	– ErrStartOutOfBounds if start lies outside the bounding box.
//	– ErrNegativeCost     if StepCost or TurnCost < 0.
//	– ErrBadMaxDistance   if MaxDistance < 0.
package dijkstra

import (
	"context"
	"errors"
	"math"
	"slices"

	"github.com/katalvlaran/lvlgrid/grid"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrGridNil indicates that a nil *grid.Grid was passed to Dijkstra.
	ErrGridNil = errors.New("dijkstra: grid is nil")

	// ErrStartOutOfBounds indicates that the start coordinate lies outside
	// the grid's bounding box.
	ErrStartOutOfBounds = errors.New("dijkstra: start outside grid bounds")

	// ErrNegativeCost indicates that a step or turn cost was negative.
	ErrNegativeCost = errors.New("dijkstra: move cost must be non-negative")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// State is a position together with the direction the walker faces.
type State struct {
	Xy      grid.Xy
	Heading grid.Direction4
}

// String renders the state as "(x,y)E".
func (s State) String() string {
	return s.Xy.String() + s.Heading.String()
}

// Options configures the behavior of the Dijkstra algorithm.
//
// StepCost    – cost of moving one cell forward. Must be ≥ 0. Default 1.
// TurnCost    – cost of a quarter turn. Must be ≥ 0. Default 1000.
// MaxDistance – states whose distance would exceed this are not explored.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// FilterStep  – if non-nil, a forward step from→to is taken only when it returns true.
type Options struct {
	Ctx         context.Context
	StepCost    int64
	TurnCost    int64
	MaxDistance int64
	FilterStep  func(from, to grid.Xy) bool

	err error // first invalid option, reported by Dijkstra
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithContext sets the context checked between heap extractions.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStepCost sets the cost of a forward step.
// Negative values cause ErrNegativeCost.
func WithStepCost(cost int64) Option {
	return func(o *Options) {
		if cost < 0 {
			o.err = ErrNegativeCost
			return
		}
		o.StepCost = cost
	}
}

// WithTurnCost sets the cost of a quarter turn in place.
// Negative values cause ErrNegativeCost.
func WithTurnCost(cost int64) Option {
	return func(o *Options) {
		if cost < 0 {
			o.err = ErrNegativeCost
			return
		}
		o.TurnCost = cost
	}
}

// WithMaxDistance sets a maximum distance threshold.
// States whose shortest distance would exceed this value are not explored.
// Negative values cause ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = ErrBadMaxDistance
			return
		}
		o.MaxDistance = max
	}
}

// WithFilterStep installs a predicate on forward steps.
func WithFilterStep(fn func(from, to grid.Xy) bool) Option {
	return func(o *Options) {
		o.FilterStep = fn
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - Ctx:         context.Background().
//   - StepCost:    1.
//   - TurnCost:    1000.
//   - MaxDistance: math.MaxInt64 (no distance limit; explore all reachable).
//   - FilterStep:  nil (every in-bounds step allowed).
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		StepCost:    1,
		TurnCost:    1000,
		MaxDistance: math.MaxInt64,
	}
}

// Result holds the distances and shortest paths found by Dijkstra.
type Result struct {
	// Dist maps every reached State to its minimum cost from the start.
	Dist map[State]int64

	// Paths maps every reached State to one minimum-cost path ending at it.
	// Paths share their common prefixes.
	Paths map[State]*grid.Path[State]

	// preds lists every predecessor achieving Dist, for Tiles.
	preds map[State][]State
}

// Best returns the cheapest way to reach goal with any heading.
// Ties are broken in grid.AllDirection4 order. ok is false if goal was
// never reached.
func (r *Result) Best(goal grid.Xy) (dist int64, path *grid.Path[State], ok bool) {
	dist = math.MaxInt64
	for _, h := range grid.AllDirection4() {
		s := State{Xy: goal, Heading: h}
		if d, seen := r.Dist[s]; seen && d < dist {
			dist, path, ok = d, r.Paths[s], true
		}
	}
	if !ok {
		return 0, nil, false
	}
	return dist, path, true
}

// Tiles returns every cell lying on at least one minimum-cost path to goal,
// sorted by grid.Xy.Compare. It returns nil if goal was never reached.
func (r *Result) Tiles(goal grid.Xy) []grid.Xy {
	best, _, ok := r.Best(goal)
	if !ok {
		return nil
	}

	var queue []State
	seen := make(map[State]bool)
	for _, h := range grid.AllDirection4() {
		s := State{Xy: goal, Heading: h}
		if d, reached := r.Dist[s]; reached && d == best {
			queue = append(queue, s)
			seen[s] = true
		}
	}

	cells := make(map[grid.Xy]bool)
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		cells[s.Xy] = true
		for _, p := range r.preds[s] {
			if !seen[p] {
				seen[p] = true
				queue = append(queue, p)
			}
		}
	}

	out := make([]grid.Xy, 0, len(cells))
	for xy := range cells {
		out = append(out, xy)
	}
	slices.SortFunc(out, grid.Xy.Compare)
	return out
}
