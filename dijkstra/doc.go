// Package dijkstra computes minimum-cost walks over a grid.Grid where the
// walker carries a heading and pays separately for stepping and turning.
//
// Dijkstra explores the State space {cell, heading}. From any state the
// walker may step forward into the next cell (StepCost) or turn a quarter
// clockwise or anticlockwise in place (TurnCost). Forward steps must stay
// inside the bounding box and pass the optional FilterStep predicate; the
// usual filter rejects wall cells.
//
// Result holds Dist and Paths for every reached State. Paths are
// *grid.Path[State] values built by Extend, so all of them share the prefix
// back to the start. Result.Best folds the four headings of a goal cell into
// a single answer; Result.Tiles lists every cell on any optimal route.
//
// Example usage:
//
//	res, err := dijkstra.Dijkstra(g, start, grid.E4,
//	    dijkstra.WithFilterStep(func(_, to grid.Xy) bool { v, _ := g.Get(to); return v != '#' }),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cost, path, ok := res.Best(end)
//
// Errors:
//
//   - ErrGridNil, ErrStartOutOfBounds for bad inputs.
//   - ErrNegativeCost, ErrBadMaxDistance for bad options.
//   - ctx.Err() if the context is done mid-search.
package dijkstra
