package view_test

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/katalvlaran/lvlgrid/internal/view"
)

func testMap(t *testing.T) view.Map {
	t.Helper()
	g, err := grid.ParseString("S.#\n#.E\n", grid.Runes())
	require.NoError(t, err)
	return view.Map{
		Grid:  g,
		Wall:  '#',
		Route: []grid.Xy{grid.NewXy(0, 0), grid.NewXy(1, 0), grid.NewXy(1, 1), grid.NewXy(2, 1)},
	}
}

func TestDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(20, 5)

	st := view.DefaultStyles()
	view.Draw(screen, testMap(t), st)

	cases := []struct {
		x, y  int
		want  rune
		style tcell.Style
	}{
		{0, 0, 'S', st.Ends},
		{1, 0, view.PathRune, st.Path},
		{2, 0, '#', st.Wall},
		{0, 1, '#', st.Wall},
		{1, 1, view.PathRune, st.Path},
		{2, 1, 'E', st.Ends},
	}
	for _, tc := range cases {
		r, _, style, _ := screen.GetContent(tc.x, tc.y)
		assert.Equal(t, tc.want, r, "rune at %d,%d", tc.x, tc.y)
		assert.Equal(t, tc.style, style, "style at %d,%d", tc.x, tc.y)
	}
}

func TestDraw_NegativeOrigin(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(10, 5)

	g := grid.Empty[rune]()
	g.Insert(grid.NewXy(-2, -1), '#')
	view.Draw(screen, view.Map{Grid: g, Wall: '#'}, view.DefaultStyles())

	r, _, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, '#', r)
	r, _, _, _ = screen.GetContent(2, 1)
	assert.Equal(t, ' ', r, "unset origin cell")
}

func TestRun_Quit(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(20, 5)

	m := testMap(t)
	done := make(chan struct{})
	go func() {
		view.Run(screen, m, view.DefaultStyles())
		close(done)
	}()
	require.NoError(t, screen.PostEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return on Esc")
	}
}
