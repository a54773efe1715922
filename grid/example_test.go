package grid_test

import (
	"fmt"

	"github.com/katalvlaran/lvlgrid/grid"
)

// ExampleGrid_Insert shows the bounding box growing in both directions while
// stored values keep their coordinates.
func ExampleGrid_Insert() {
	g := grid.Empty[string]()
	g.Insert(grid.NewXy(3, 4), "X")
	fmt.Println(g.Width(), g.Height())

	g.Insert(grid.NewXy(-3, -3), "Y")
	v, ok := g.Get(grid.NewXy(3, 4))
	fmt.Println(g.Start(), g.End(), v, ok)

	_, ok = g.Get(grid.NewXy(0, 0))
	fmt.Println(ok)

	// Output:
	// 4 5
	// (-3,-3) (3,4) X true
	// false
}

// ExamplePath_Extend shows two branches sharing one history.
func ExamplePath_Extend() {
	root := grid.NewPath(grid.NewXy(0, 0))
	east := root.Extend(root.Head().Step(grid.E4))
	south := root.Extend(root.Head().Step(grid.S4))

	fmt.Println(east)
	fmt.Println(south)
	fmt.Println(root.Len(), east.Len())

	// Output:
	// (1,0) -> (0,0)
	// (0,1) -> (0,0)
	// 1 2
}

// ExampleParseString builds a Grid from a character map.
func ExampleParseString() {
	g, err := grid.ParseString("#..\n.#.\n", grid.RunesExcept('.'))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(g.Render(func(r rune) rune { return r }, '.'))
	fmt.Println(g.Len())

	// Output:
	// #..
	// .#.
	// 2
}
