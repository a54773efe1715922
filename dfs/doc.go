// Package dfs enumerates trails on a grid.Grid by depth-first search.
//
// A trail is a simple path (no cell repeated) from a start coordinate to any
// cell accepted by a goal predicate, where every step moves to an in-bounds
// neighbour allowed by the step filter. Trails returns all of them, each as a
// *grid.Path with the goal at its head; sibling trails share their common
// prefix.
//
// Key features:
//   - Trails(g, start, isGoal, opts...): all simple start→goal paths
//   - Ascending(g): step filter for "height rises by exactly one" maps
//   - Hooks: OnVisit (pre-order) with error abort
//   - Limits: MaxDepth, FilterStep, SkippedSteps diagnostic count
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   exponential in the worst case (every simple path is listed);
//     linear per trail in its length for the cycle check.
//   - Memory: O(depth) recursion plus one Path node per explored step.
//
// Options:
//
//   - WithContext(ctx)        allows cancellation via context.Context.
//   - WithOnVisit(fn)         pre-order hook on each step; error aborts traversal.
//   - WithMaxDepth(limit)     stops recursion beyond given depth (>=0).
//   - WithFilterStep(fn)      filters moves; return false to skip.
//   - WithDiagonals()         explore all 8 neighbours.
//
// Errors:
//
//   - ErrGridNil              if g is nil.
//   - ErrStartOutOfBounds     if start lies outside the bounding box.
//   - ErrGoalNil              if isGoal is nil.
//   - context.Canceled        if ctx is done.
//   - any error returned by OnVisit.
package dfs
