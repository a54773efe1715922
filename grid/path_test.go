package grid_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlgrid/grid"
)

func TestPath_ExtendAndSlice(t *testing.T) {
	path := grid.NewPath(2)
	assert.Equal(t, 1, path.Len())
	assert.Equal(t, 2, path.Head())
	_, ok := path.Tail()
	assert.False(t, ok)

	path = path.Extend(3)
	assert.Equal(t, []int{3, 2}, path.Slice())
	assert.Equal(t, 2, path.Len())
	assert.Equal(t, "3 -> 2", path.String())

	path2 := path.Extend(8)
	assert.Equal(t, 3, path2.Len())
	assert.Equal(t, 2, path.Len(), "extending must not modify the original")
	assert.Equal(t, []int{3, 2}, path.Slice())
	assert.Equal(t, "8 -> 3 -> 2", path2.String())

	tail, ok := path2.Tail()
	assert.True(t, ok)
	assert.Same(t, path, tail, "tails are shared, not copied")
}

func TestPath_SequenceOrder(t *testing.T) {
	p := grid.NewPath("a").Extend("b").Extend("c")
	assert.Equal(t, []string{"c", "b", "a"}, p.Slice())
	assert.Equal(t, []string{"a", "b", "c"}, p.Reversed())

	// Fresh slice per call.
	s := p.Slice()
	s[0] = "z"
	assert.Equal(t, "c", p.Slice()[0])
}

func TestPath_Branching(t *testing.T) {
	root := grid.NewPath(grid.NewXy(0, 0))
	trunk := root.Extend(grid.NewXy(1, 0))

	var branches []*grid.Path[grid.Xy]
	for _, d := range grid.AllDirection4() {
		branches = append(branches, trunk.Extend(trunk.Head().Step(d)))
	}
	for i, b := range branches {
		assert.Equal(t, 3, b.Len(), "branch %d", i)
		tail, _ := b.Tail()
		assert.Same(t, trunk, tail)
	}
	assert.Equal(t, 2, trunk.Len())
	assert.True(t, grid.PathContains(branches[0], grid.NewXy(0, 0)))
	assert.False(t, grid.PathContains(branches[0], grid.NewXy(5, 5)))
}

func TestPath_LenInvariant(t *testing.T) {
	p := grid.NewPath(0)
	for i := 1; i <= 100; i++ {
		before := p.Slice()
		next := p.Extend(i)
		assert.Equal(t, p.Len()+1, next.Len())
		assert.Equal(t, before, p.Slice())
		p = next
	}
	assert.Equal(t, 101, len(p.Slice()))
}

func TestPath_StringOfStrings(t *testing.T) {
	p := grid.NewPath("one").Extend("two")
	assert.Equal(t, "two -> one", p.String())
	assert.Equal(t, "(1,0) -> (0,0)", fmt.Sprint(grid.NewPath(grid.NewXy(0, 0)).Extend(grid.NewXy(1, 0))))
}
