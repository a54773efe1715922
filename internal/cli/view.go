package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlgrid/bfs"
	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/katalvlaran/lvlgrid/internal/view"
)

func (a *app) newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view FILE",
		Short: "Show the map and its shortest path in the terminal (q or Esc to quit)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGrid(args[0], grid.Runes())
			if err != nil {
				return err
			}
			m := view.Map{Grid: g, Wall: a.cfg.WallRune()}
			if start, end, err := a.markers(g); err == nil {
				p, err := a.shortest(g, start, end)
				switch {
				case errors.Is(err, bfs.ErrNoPath):
					a.lggr.Warnw("no path to show", "from", start.String(), "to", end.String())
				case err != nil:
					return err
				default:
					m.Route = p.Reversed()
				}
			}

			screen, err := a.newScreen()
			if err != nil {
				return err
			}
			if err := screen.Init(); err != nil {
				return err
			}
			defer screen.Fini()

			view.Run(screen, m, view.DefaultStyles())
			return nil
		},
	}
}
