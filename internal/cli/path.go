package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlgrid/bfs"
	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/katalvlaran/lvlgrid/internal/output"
)

// shortest runs BFS on a rune map between its start and end markers.
func (a *app) shortest(g *grid.Grid[rune], start, end grid.Xy) (*grid.Path[grid.Xy], error) {
	lggr := a.lggr.Named("bfs")
	opts := []bfs.Option{
		bfs.WithFilterNeighbor(bfs.Passable(g, a.cfg.WallRune())),
		bfs.WithOnVisit(func(xy grid.Xy, depth int) error {
			lggr.Debugw("visit", "xy", xy.String(), "depth", depth)
			return nil
		}),
	}
	if a.cfg.Diagonals {
		opts = append(opts, bfs.WithDiagonals())
	}
	if a.cfg.MaxDepth > 0 {
		opts = append(opts, bfs.WithMaxDepth(a.cfg.MaxDepth))
	}
	return bfs.ShortestPath(g, start, end, opts...)
}

func (a *app) newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path FILE",
		Short: "Fewest steps from the start marker to the end marker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGrid(args[0], grid.Runes())
			if err != nil {
				return err
			}
			start, end, err := a.markers(g)
			if err != nil {
				return err
			}
			p, err := a.shortest(g, start, end)
			if err != nil {
				return err
			}
			a.lggr.Infow("path found", "from", start.String(), "to", end.String(), "steps", p.Len()-1)

			r := output.Report{Command: "path", Input: args[0], Path: route(p.Reversed())}
			r.Add("steps", int64(p.Len()-1))
			return a.write(cmd, r)
		},
	}
}

func (a *app) newPointsCmd() *cobra.Command {
	var size, limit int
	cmd := &cobra.Command{
		Use:   "points FILE",
		Short: "Shortest walk across a square after some points are blocked, and the first point that cuts it off",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			wall := a.cfg.WallRune()
			g, rest, err := grid.ParsePoints(f, limit, func(grid.Xy) rune { return wall })
			if err != nil {
				return err
			}
			start, end := grid.NewXy(0, 0), grid.NewXy(size, size)
			if lo, hi := g.Start(), g.End(); !inSquare(lo, end) || !inSquare(hi, end) {
				return fmt.Errorf("%w: box %s..%s, size %d", ErrPointOutOfRange, lo, hi, size)
			}
			for _, xy := range rest {
				if !inSquare(xy, end) {
					return fmt.Errorf("%w: %s, size %d", ErrPointOutOfRange, xy, size)
				}
			}
			g.Grow(end)

			r := output.Report{Command: "points", Input: args[0]}
			p, err := a.shortest(g, start, end)
			switch {
			case errors.Is(err, bfs.ErrNoPath):
				a.lggr.Warnw("no path after initial points", "limit", limit)
				r.Add("steps", -1)
				return a.write(cmd, r)
			case err != nil:
				return err
			}
			r.Add("steps", int64(p.Len()-1))
			r.Path = route(p.Reversed())

			blocker, ok, err := a.firstBlocker(g, p, rest, start, end)
			if err != nil {
				return err
			}
			if ok {
				r.Add("blocker_x", int64(blocker.X))
				r.Add("blocker_y", int64(blocker.Y))
			}
			return a.write(cmd, r)
		},
	}
	cmd.Flags().IntVar(&size, "size", 70, "Largest coordinate on each axis")
	cmd.Flags().IntVar(&limit, "limit", 1024, "Points dropped before the first walk, 0 for all")

	return cmd
}

// inSquare reports whether xy lies in the square spanned by (0,0) and end.
func inSquare(xy, end grid.Xy) bool {
	return xy.X >= 0 && xy.Y >= 0 && xy.X <= end.X && xy.Y <= end.Y
}

// firstBlocker drops the remaining points one by one and returns the first
// that leaves no path. The walk is only recomputed when a point lands on
// the current path.
func (a *app) firstBlocker(g *grid.Grid[rune], p *grid.Path[grid.Xy], rest []grid.Xy, start, end grid.Xy) (grid.Xy, bool, error) {
	wall := a.cfg.WallRune()
	for _, xy := range rest {
		g.Insert(xy, wall)
		if !grid.PathContains(p, xy) {
			continue
		}
		next, err := a.shortest(g, start, end)
		if errors.Is(err, bfs.ErrNoPath) {
			return xy, true, nil
		}
		if err != nil {
			return grid.Xy{}, false, err
		}
		p = next
	}
	return grid.Xy{}, false, nil
}
