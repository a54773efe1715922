package dijkstra_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgrid/dijkstra"
	"github.com/katalvlaran/lvlgrid/grid"
)

const (
	smallMaze = `###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############`

	largeMaze = `#################
#...#...#...#..E#
#.#.#.#.#.#.#.#.#
#.#.#.#...#...#.#
#.#.#.#.###.#.#.#
#...#.#.#.....#.#
#.#.#.#.#.#####.#
#.#...#.#.#.....#
#.#.#####.#.###.#
#.#.#.......#...#
#.#.###.#####.###
#.#.#...#.....#.#
#.#.#.#####.###.#
#.#.#.........#.#
#.#.#.#########.#
#S#.............#
#################`
)

// maze parses s and returns the grid with its S and E cells.
func maze(t testing.TB, s string) (*grid.Grid[rune], grid.Xy, grid.Xy) {
	t.Helper()
	g, err := grid.ParseString(s, grid.Runes())
	require.NoError(t, err)
	start, ok := g.Find(func(r rune) bool { return r == 'S' })
	require.True(t, ok)
	end, ok := g.Find(func(r rune) bool { return r == 'E' })
	require.True(t, ok)
	return g, start, end
}

// open rejects steps onto '#'.
func open(g *grid.Grid[rune]) dijkstra.Option {
	return dijkstra.WithFilterStep(func(_, to grid.Xy) bool {
		r, _ := g.Get(to)
		return r != '#'
	})
}

// TestDijkstra_Errors verifies input and option validation.
func TestDijkstra_Errors(t *testing.T) {
	_, err := dijkstra.Dijkstra[rune](nil, grid.NewXy(0, 0), grid.E4)
	assert.ErrorIs(t, err, dijkstra.ErrGridNil)

	g, _, _ := maze(t, "S.E")
	_, err = dijkstra.Dijkstra(g, grid.NewXy(0, 1), grid.E4)
	assert.ErrorIs(t, err, dijkstra.ErrStartOutOfBounds)

	_, err = dijkstra.Dijkstra(g, grid.NewXy(0, 0), grid.E4, dijkstra.WithStepCost(-1))
	assert.ErrorIs(t, err, dijkstra.ErrNegativeCost)

	_, err = dijkstra.Dijkstra(g, grid.NewXy(0, 0), grid.E4, dijkstra.WithTurnCost(-5))
	assert.ErrorIs(t, err, dijkstra.ErrNegativeCost)

	_, err = dijkstra.Dijkstra(g, grid.NewXy(0, 0), grid.E4, dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)
}

// TestDijkstra_Mazes checks the best score and the number of cells on any
// best path for two reference mazes.
func TestDijkstra_Mazes(t *testing.T) {
	cases := []struct {
		name  string
		input string
		cost  int64
		tiles int
	}{
		{"small", smallMaze, 7036, 45},
		{"large", largeMaze, 11048, 64},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, start, end := maze(t, tc.input)
			res, err := dijkstra.Dijkstra(g, start, grid.E4, open(g))
			require.NoError(t, err)

			cost, path, ok := res.Best(end)
			require.True(t, ok)
			assert.Equal(t, tc.cost, cost)
			assert.Equal(t, grid.N4, path.Head().Heading)

			tiles := res.Tiles(end)
			assert.Len(t, tiles, tc.tiles)
			assert.Contains(t, tiles, start)
			assert.Contains(t, tiles, end)
			for _, xy := range tiles {
				r, _ := g.Get(xy)
				assert.NotEqual(t, '#', r)
			}
		})
	}
}

// TestDijkstra_PathCost verifies that a returned path re-prices to its Dist.
func TestDijkstra_PathCost(t *testing.T) {
	g, start, end := maze(t, smallMaze)
	res, err := dijkstra.Dijkstra(g, start, grid.E4, open(g))
	require.NoError(t, err)

	cost, path, ok := res.Best(end)
	require.True(t, ok)
	states := path.Reversed()
	require.Equal(t, dijkstra.State{Xy: start, Heading: grid.E4}, states[0])

	var total int64
	for i := 1; i < len(states); i++ {
		prev, cur := states[i-1], states[i]
		if prev.Xy == cur.Xy {
			assert.NotEqual(t, prev.Heading, cur.Heading)
			total += 1000
			continue
		}
		assert.Equal(t, prev.Xy.Step(prev.Heading), cur.Xy)
		total += 1
	}
	assert.Equal(t, cost, total)
}

// TestDijkstra_Costs verifies custom step and turn costs.
func TestDijkstra_Costs(t *testing.T) {
	g, start, end := maze(t, "S.E")
	res, err := dijkstra.Dijkstra(g, start, grid.E4, dijkstra.WithStepCost(3))
	require.NoError(t, err)
	cost, _, ok := res.Best(end)
	require.True(t, ok)
	assert.EqualValues(t, 6, cost)
	assert.EqualValues(t, 1000, res.Dist[dijkstra.State{Xy: start, Heading: grid.N4}])
	assert.EqualValues(t, 2000, res.Dist[dijkstra.State{Xy: start, Heading: grid.W4}])

	// Facing away, the walker must turn twice first.
	res, err = dijkstra.Dijkstra(g, start, grid.W4, dijkstra.WithTurnCost(1))
	require.NoError(t, err)
	cost, _, _ = res.Best(end)
	assert.EqualValues(t, 4, cost)
}

// TestDijkstra_Unreachable verifies Best and Tiles for a walled-off goal.
func TestDijkstra_Unreachable(t *testing.T) {
	g, start, end := maze(t, "S#E")
	res, err := dijkstra.Dijkstra(g, start, grid.E4, open(g))
	require.NoError(t, err)

	_, _, ok := res.Best(end)
	assert.False(t, ok)
	assert.Nil(t, res.Tiles(end))
}

// TestDijkstra_MaxDistance verifies that states past the cap are not reached.
func TestDijkstra_MaxDistance(t *testing.T) {
	g, start, end := maze(t, "S...E")
	res, err := dijkstra.Dijkstra(g, start, grid.E4, dijkstra.WithMaxDistance(3))
	require.NoError(t, err)
	_, _, ok := res.Best(end)
	assert.False(t, ok)
	assert.EqualValues(t, 3, res.Dist[dijkstra.State{Xy: grid.NewXy(3, 0), Heading: grid.E4}])
}

// TestDijkstra_ContextCancelled verifies cancellation.
func TestDijkstra_ContextCancelled(t *testing.T) {
	g, start, _ := maze(t, smallMaze)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dijkstra.Dijkstra(g, start, grid.E4, dijkstra.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestState_String covers the compact state rendering.
func TestState_String(t *testing.T) {
	s := dijkstra.State{Xy: grid.NewXy(1, -2), Heading: grid.S4}
	assert.Equal(t, "(1,-2)S", s.String())
}
