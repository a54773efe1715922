// Package grid provides the coordinate model, compass directions, a sparse
// self-growing Grid and a persistent Path used by the search packages of
// github.com/katalvlaran/lvlgrid.
//
// What:
//
//   - Xy: integer 2D coordinate with arithmetic, ordering and Manhattan distance.
//   - Direction4 / Direction8: closed compass enumerations with fixed unit deltas,
//     clockwise/anticlockwise rotation and a stable "all variants" order.
//   - Grid[T]: rectangular window over optional cells. The bounding box grows in
//     any direction (including left of and above the origin) on Insert and never
//     shrinks.
//   - Path[T]: immutable cons-list with shared tails. Extend is O(1) and never
//     copies history, so a search frontier can hold many overlapping branches.
//
// Why:
//
//   - Puzzle maps, mazes and game boards are naturally sparse and are often
//     discovered incrementally (points dropping onto a plane, robots wandering
//     off the known map).
//   - Breadth-first searches need per-branch history without O(n²) copying.
//
// Determinism:
//
//	AllDirection4 is N,E,S,W; AllDirection8 is N,NE,E,SE,S,SW,W,NW.
//	Grid.All and Grid.Keys walk the bounding box column by column (x outer, y inner).
//	Callers rely on both orders for reproducible tie-breaks.
//
// Complexity:
//
//   - Get, Contains, Remove: O(1).
//   - Insert: O(1) inside the box; O(W×H) when the box grows.
//   - Path.Extend, Path.Len, Path.Head: O(1). Path.Slice: O(n).
//
// Errors:
//
//   - Grid and Path operations are total: absence is reported with a boolean.
//   - ErrEmptyInput, ErrInvalidDigit, ErrMalformedPoint and *ParseError are
//     returned by the text parsers only.
//
// Concurrency:
//
//	No type in this package is safe for concurrent mutation. Build a Grid on one
//	goroutine, then share it read-only. Paths are immutable once constructed.
package grid
