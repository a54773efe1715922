package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlgrid/grid"
)

func TestDirection4_Rotation(t *testing.T) {
	assert.Equal(t, grid.E4, grid.N4.Clockwise())
	assert.Equal(t, grid.N4, grid.W4.Clockwise())
	assert.Equal(t, grid.W4, grid.N4.Anticlockwise())
	assert.Equal(t, grid.S4, grid.N4.Reverse())

	for _, d := range grid.AllDirection4() {
		assert.Equal(t, d, d.Clockwise().Anticlockwise(), "cw then acw must be identity for %s", d)
		assert.Equal(t, d, d.Anticlockwise().Clockwise(), "acw then cw must be identity for %s", d)
		r := d
		for i := 0; i < 4; i++ {
			r = r.Clockwise()
		}
		assert.Equal(t, d, r, "four clockwise turns must return to %s", d)
		assert.Equal(t, grid.Xy{}, d.Delta().Add(d.Reverse().Delta()))
	}
}

func TestDirection4_DeltasAndOrder(t *testing.T) {
	assert.Equal(t, []grid.Direction4{grid.N4, grid.E4, grid.S4, grid.W4}, grid.AllDirection4())
	assert.Equal(t, grid.NewXy(0, -1), grid.N4.Delta())
	assert.Equal(t, grid.NewXy(0, 1), grid.S4.Delta())
	assert.Equal(t, grid.NewXy(1, 0), grid.E4.Delta())
	assert.Equal(t, grid.NewXy(-1, 0), grid.W4.Delta())
	assert.Equal(t, "W", grid.W4.String())

	// The returned slice is a copy.
	all := grid.AllDirection4()
	all[0] = grid.S4
	assert.Equal(t, grid.N4, grid.AllDirection4()[0])
}

func TestDirection8_Rotation(t *testing.T) {
	assert.Equal(t, grid.E8, grid.SE8.Anticlockwise())
	assert.Equal(t, grid.N8, grid.NW8.Clockwise())
	assert.Len(t, grid.AllDirection8(), 8)
	assert.Len(t, grid.Cardinal(), 4)
	assert.Len(t, grid.Diagonal(), 4)

	var rotated []grid.Direction8
	for _, d := range grid.Cardinal() {
		rotated = append(rotated, d.Clockwise())
	}
	assert.Equal(t, grid.Diagonal(), rotated)

	for _, d := range grid.AllDirection8() {
		assert.Equal(t, d, d.Clockwise().Anticlockwise())
		r := d
		for i := 0; i < 8; i++ {
			r = r.Clockwise()
		}
		assert.Equal(t, d, r)
		assert.Equal(t, grid.Xy{}, d.Delta().Add(d.Reverse().Delta()))
	}
}

func TestDirection8_Deltas(t *testing.T) {
	assert.Equal(t, grid.NewXy(1, -1), grid.NE8.Delta())
	assert.Equal(t, grid.NewXy(-1, 1), grid.SW8.Delta())
	assert.True(t, grid.NW8.IsDiagonal())
	assert.False(t, grid.W8.IsDiagonal())
	assert.Equal(t, "SE", grid.SE8.String())

	for _, d := range grid.AllDirection4() {
		assert.Equal(t, d.Delta(), d.Eight().Delta(), "lifted %s keeps its delta", d)
	}
}

func TestNeighbors(t *testing.T) {
	origin := grid.NewXy(0, 0)
	assert.Equal(t, []grid.Xy{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}, grid.Neighbors(origin, false))
	n8 := grid.Neighbors(origin, true)
	assert.Len(t, n8, 8)
	assert.Equal(t, grid.NewXy(1, -1), n8[1])
}
