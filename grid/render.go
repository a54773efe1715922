package grid

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Render draws the bounding box one row per line. Present cells are drawn
// with fn; unset cells with blank.
func (g *Grid[T]) Render(fn func(T) rune, blank rune) string {
	var sb strings.Builder
	sb.Grow(g.Height() * (g.Width() + 1))
	for y := g.start.Y; y <= g.end.Y; y++ {
		for x := g.start.X; x <= g.end.X; x++ {
			if v, ok := g.Get(Xy{X: x, Y: y}); ok {
				sb.WriteRune(fn(v))
			} else {
				sb.WriteRune(blank)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String prints the box corners and row/column counts, then one line per
// row with each cell followed by a space. A cell is the first rune of its
// value's default format; unset cells are '.'.
func (g *Grid[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "start=%s, end=%s, rowcount=%d, columncount=%d\n",
		g.start, g.end, g.Height(), g.Width())
	for y := g.start.Y; y <= g.end.Y; y++ {
		for x := g.start.X; x <= g.end.X; x++ {
			r := '.'
			if v, ok := g.Get(Xy{X: x, Y: y}); ok {
				r = firstRune(v)
			}
			sb.WriteRune(r)
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func firstRune[T any](v T) rune {
	if r, ok := any(v).(rune); ok {
		return r
	}
	s := fmt.Sprint(v)
	if s == "" {
		return '.'
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
