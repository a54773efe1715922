// Package view paints a rune grid and a route onto a tcell screen.
package view

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/lvlgrid/grid"
)

// PathRune marks route cells between the two endpoints.
const PathRune = 'O'

// Styles selects how each kind of cell is drawn.
type Styles struct {
	Wall  tcell.Style
	Floor tcell.Style
	Path  tcell.Style
	Ends  tcell.Style
}

// DefaultStyles returns gray walls, default floor, a yellow route and
// green endpoints.
func DefaultStyles() Styles {
	return Styles{
		Wall:  tcell.StyleDefault.Foreground(tcell.ColorGray),
		Floor: tcell.StyleDefault,
		Path:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		Ends:  tcell.StyleDefault.Foreground(tcell.ColorGreen).Reverse(true),
	}
}

// Map is what Draw paints: a grid, the rune that marks walls and an
// optional route from its first to its last cell.
type Map struct {
	Grid  *grid.Grid[rune]
	Wall  rune
	Route []grid.Xy
}

// Draw clears s and paints m with the grid's Start at the top-left corner.
// Unset cells are drawn as blanks.
func Draw(s tcell.Screen, m Map, st Styles) {
	s.Clear()
	origin := m.Grid.Start()
	for c := range m.Grid.All() {
		x, y := c.Xy.X-origin.X, c.Xy.Y-origin.Y
		switch {
		case !c.Present:
			s.SetContent(x, y, ' ', nil, st.Floor)
		case c.Value == m.Wall:
			s.SetContent(x, y, c.Value, nil, st.Wall)
		default:
			s.SetContent(x, y, c.Value, nil, st.Floor)
		}
	}
	for i, xy := range m.Route {
		x, y := xy.X-origin.X, xy.Y-origin.Y
		if i == 0 || i == len(m.Route)-1 {
			r, _ := m.Grid.Get(xy)
			s.SetContent(x, y, r, nil, st.Ends)
			continue
		}
		s.SetContent(x, y, PathRune, nil, st.Path)
	}
}

// Run draws m, then redraws on resize until Esc, Ctrl-C or 'q' is pressed.
// The caller owns s and must have called Init.
func Run(s tcell.Screen, m Map, st Styles) {
	Draw(s, m, st)
	s.Show()
	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			s.Sync()
			Draw(s, m, st)
			s.Show()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return
			}
		}
	}
}
