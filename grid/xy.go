package grid

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Xy is a signed 2D coordinate. X grows to the east, Y grows to the south.
type Xy struct {
	X, Y int
}

// NewXy returns the coordinate (x, y).
func NewXy(x, y int) Xy {
	return Xy{X: x, Y: y}
}

// XyOf converts any pair of integers (typically loop indices) to an Xy.
func XyOf[T constraints.Integer](x, y T) Xy {
	return Xy{X: int(x), Y: int(y)}
}

// Add returns the componentwise sum a+b.
func (a Xy) Add(b Xy) Xy {
	return Xy{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns the componentwise difference a-b.
func (a Xy) Sub(b Xy) Xy {
	return Xy{X: a.X - b.X, Y: a.Y - b.Y}
}

// Step moves a one unit in direction d.
func (a Xy) Step(d Direction) Xy {
	return a.Add(d.Delta())
}

// Back moves a one unit against direction d.
func (a Xy) Back(d Direction) Xy {
	return a.Sub(d.Delta())
}

// Compare orders coordinates lexicographically on X, then Y.
// It returns -1, 0 or +1 and is suitable for slices.SortFunc.
func (a Xy) Compare(b Xy) int {
	switch {
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	}
	return 0
}

// Less reports whether a sorts before b.
func (a Xy) Less(b Xy) bool {
	return a.Compare(b) < 0
}

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|.
func (a Xy) Manhattan(b Xy) int {
	return absDiff(a.X, b.X) + absDiff(a.Y, b.Y)
}

// String formats the coordinate as "(x,y)".
func (a Xy) String() string {
	return fmt.Sprintf("(%d,%d)", a.X, a.Y)
}

func absDiff[T constraints.Signed](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}
