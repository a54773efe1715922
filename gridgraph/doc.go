// Package gridgraph treats a grid.Grid as a graph, enabling region analysis
// and minimal-cost “island” expansions.
//
// What:
//
//   - GridGraph wraps a *grid.Grid[T] of comparable values.
//   - Identifies connected regions of present cells holding equal values.
//   - Measures each region: Area, Perimeter, Sides (straight fence runs).
//   - Computes minimal conversions (0-1 BFS) to connect two regions.
//
// Why:
//
//   - Garden plots: fence cost by perimeter or by number of sides.
//   - Game maps: contiguous land detection, optimal bridging.
//   - Topology analysis: count lakes, islands, and heterogeneous regions.
//
// Complexity:
//
//   - Regions:      O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - Perimeter:    O(A), Sides: O(A) for a region of area A.
//   - ExpandIsland: O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//     Perimeter and Sides always measure 4-neighbour edges.
//
// Errors:
//
//   - ErrGridNil: nil grid passed to New.
//   - ErrComponentIndex: requested region index out of range.
//   - ErrNoPath: no conversion path exists between specified regions.
package gridgraph
