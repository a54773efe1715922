// Package lvlgrid is an in-memory toolkit for character-map grids: sparse
// bounded storage, compass directions, persistent paths and the searches
// that run over them.
//
// 🚀 What is lvlgrid?
//
//	A small, generic library that brings together:
//		• Grid primitives: Xy coordinates, 4- and 8-way directions, a sparse
//		  grid whose bounding box grows in any direction
//		• Paths: immutable linked paths whose branches share their history
//		• Traversals: BFS (shortest steps), DFS (all simple trails)
//		• Weighted walks: Dijkstra over (cell, heading) with turn costs
//		• Regions: connected areas, perimeter, sides and island bridging
//
// ✨ Why choose lvlgrid?
//
//   - Generic – any cell type, no interface{} boxing
//   - Deterministic – column-major iteration, fixed compass neighbour order
//   - Hookable – OnVisit, OnEnqueue… and context cancellation on every search
//   - Cheap branching – Path.Extend is O(1) and never copies
//
// Under the hood, everything is organized into subpackages:
//
//	grid/       Xy, Direction4, Direction8, Grid, Path and text parsing
//	bfs/        breadth-first search and shortest paths
//	dfs/        depth-first trail enumeration
//	dijkstra/   min-cost walks with headings
//	gridgraph/  regions, fences and 0-1 BFS island expansion
//
// The gridwalk command (cmd/gridwalk) exposes all of them over map files.
//
// Quick ASCII example:
//
//	S.#
//	#.E
//
// parses to a 3×2 grid whose shortest S→E path is (0,0) → (1,0) → (1,1) → (2,1).
//
//	go get github.com/katalvlaran/lvlgrid
package lvlgrid
