// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/lvlgrid.
package gridgraph

import (
	"errors"

	"github.com/katalvlaran/lvlgrid/grid"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrGridNil indicates a nil *grid.Grid was passed to New.
	ErrGridNil = errors.New("gridgraph: grid is nil")
	// ErrComponentIndex indicates a requested region index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no conversion path exists between two regions.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// GridGraph treats a grid.Grid as a graph whose vertices are the cells of
// its bounding box. It holds a reference to the grid; mutating the grid
// afterwards changes what later calls observe, but the box captured at
// construction is used for indexing.
type GridGraph[T comparable] struct {
	g      *grid.Grid[T]
	conn   Connectivity
	start  grid.Xy
	width  int
	height int
	cells  int
}

// Region is a maximal set of connected present cells sharing one value.
type Region[T comparable] struct {
	// Value is the value every cell of the region holds.
	Value T
	// Cells lists the region's cells in flood-fill order; Cells[0] is the
	// first cell met in grid Keys order.
	Cells []grid.Xy

	members map[grid.Xy]struct{}
}
