// Package bfs provides breadth-first search over a grid.Grid, returning
// unweighted shortest-path distances, visit order and the path to every
// reached cell.
//
// What
//
//   - Explore cells in non-decreasing step count from a start coordinate.
//   - Moves go to the 4 orthogonal neighbours (or all 8 with WithDiagonals)
//     that lie inside the grid's bounding box.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from cell → distance (steps) from start
//   - Paths: map from cell → *grid.Path of the route that reached it
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a cell is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows pruning of individual moves via WithFilterNeighbor, typically
//     built with Passable to treat wall values as impassable.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - Stops early once a WithGoal target is visited.
//
// Why
//
//   - Fewest-step routes through mazes and obstacle maps in O(W×H) time.
//   - Reachability and flood-fill distance layering.
//
// Paths
//
//	The frontier is a queue of *grid.Path values. Every enqueued neighbour
//	extends its parent's path in O(1), and all branches share their common
//	prefix, so keeping the full route of every reached cell costs one node
//	per cell rather than one slice per cell.
//
// Determinism
//
//	Neighbours are enqueued in grid.AllDirection4 (or AllDirection8) order,
//	so the visit sequence and the chosen path among equal-length routes are
//	fully reproducible.
//
// Complexity (C = cells in the bounding box, d = 4 or 8)
//
//   - Time:   O(C × d)
//   - Memory: O(C)     (queue, Depth map, Paths map, visited set)
//
// Usage
//
//	walls := bfs.Passable(g, '#')
//	p, err := bfs.ShortestPath(g, start, end, bfs.WithFilterNeighbor(walls))
//	if err != nil {
//	    // handle ErrGridNil, ErrStartOutOfBounds, ErrNoPath, ...
//	}
//	fmt.Println(p.Len() - 1) // steps
//
// Errors
//
//   - ErrGridNil            if the grid pointer is nil.
//   - ErrStartOutOfBounds   if the start lies outside the bounding box.
//   - ErrOptionViolation    if an invalid Option is supplied (e.g. negative MaxDepth).
//   - ErrNoPath             if a requested destination was not reached.
//   - Wrapped user-supplied hook errors from OnVisit, and context errors.
package bfs
