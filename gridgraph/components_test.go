package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/katalvlaran/lvlgrid/gridgraph"
)

const garden = "" +
	"RRRRIICCFF\n" +
	"RRRRIICCCF\n" +
	"VVRRRCCFFF\n" +
	"VVRCCCJFFF\n" +
	"VVVVCJJCFE\n" +
	"VVIVCCJJEE\n" +
	"VVIIICJJEE\n" +
	"MIIIIIJJEE\n" +
	"MIIISIJEEE\n" +
	"MMMISSJEEE\n"

// prices sums both fence prices over every region.
func prices(regions []gridgraph.Region[rune]) (perimeter, sides int) {
	for _, r := range regions {
		perimeter += r.Price()
		sides += r.DiscountPrice()
	}
	return perimeter, sides
}

// TestRegions_Prices checks region counts and fence prices on reference maps.
func TestRegions_Prices(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		regions int
		price   int
		sides   int
	}{
		{"small", "AAAA\nBBCD\nBBCC\nEEEC", 5, 140, 80},
		{"holes", "OOOOO\nOXOXO\nOOOOO\nOXOXO\nOOOOO", 5, 772, 436},
		{"e-shape", "EEEEE\nEXXXX\nEEEEE\nEXXXX\nEEEEE", 3, 692, 236},
		{"inner", "AAAAAA\nAAABBA\nAAABBA\nABBAAA\nABBAAA\nAAAAAA", 3, 1184, 368},
		{"garden", garden, 11, 1930, 1206},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			regions := build(t, tc.input, gridgraph.Conn4).Regions()
			require.Len(t, regions, tc.regions)
			price, sides := prices(regions)
			assert.Equal(t, tc.price, price)
			assert.Equal(t, tc.sides, sides)
		})
	}
}

// TestRegions_Measures checks one region in detail.
func TestRegions_Measures(t *testing.T) {
	regions := build(t, "AAAA\nBBCD\nBBCC\nEEEC", gridgraph.Conn4).Regions()

	a := regions[0]
	assert.Equal(t, 'A', a.Value)
	assert.Equal(t, 4, a.Area())
	assert.Equal(t, 10, a.Perimeter())
	assert.Equal(t, 4, a.Sides())
	assert.Equal(t, grid.NewXy(0, 0), a.Cells[0])
	assert.True(t, a.Contains(grid.NewXy(3, 0)))
	assert.False(t, a.Contains(grid.NewXy(0, 1)))

	// Column order: A at (0,0), B at (0,1), E at (0,3), C at (2,1), D at (3,1).
	values := make([]rune, len(regions))
	for i, r := range regions {
		values[i] = r.Value
	}
	assert.Equal(t, []rune{'A', 'B', 'E', 'C', 'D'}, values)

	c := regions[3]
	assert.Equal(t, 'C', c.Value)
	assert.Equal(t, []grid.Xy{
		grid.NewXy(2, 1), grid.NewXy(2, 2), grid.NewXy(3, 2), grid.NewXy(3, 3),
	}, c.Cells)
	assert.Equal(t, 10, c.Perimeter())
	assert.Equal(t, 8, c.Sides())
}

// TestRegions_SkipsUnset verifies that unset cells split regions and never
// form one.
func TestRegions_SkipsUnset(t *testing.T) {
	regions := build(t, "A.A\n...", gridgraph.Conn4).Regions()
	require.Len(t, regions, 2)
	for _, r := range regions {
		assert.Equal(t, 1, r.Area())
		assert.Equal(t, 4, r.Perimeter())
	}
}

// TestRegions_Conn8 verifies that diagonal contact joins regions only under Conn8.
func TestRegions_Conn8(t *testing.T) {
	assert.Len(t, build(t, "A.\n.A", gridgraph.Conn4).Regions(), 2)

	regions := build(t, "A.\n.A", gridgraph.Conn8).Regions()
	require.Len(t, regions, 1)
	r := regions[0]
	assert.Equal(t, 2, r.Area())
	assert.Equal(t, 8, r.Perimeter())
	assert.Equal(t, 8, r.Sides())
}
