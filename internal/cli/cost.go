package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlgrid/dijkstra"
	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/katalvlaran/lvlgrid/internal/output"
)

func (a *app) newCostCmd() *cobra.Command {
	var heading string
	cmd := &cobra.Command{
		Use:   "cost FILE",
		Short: "Cheapest walk from start to end when turning costs extra",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := parseHeading(heading)
			if err != nil {
				return err
			}
			g, err := readGrid(args[0], grid.Runes())
			if err != nil {
				return err
			}
			start, end, err := a.markers(g)
			if err != nil {
				return err
			}

			wall := a.cfg.WallRune()
			res, err := dijkstra.Dijkstra(g, start, h,
				dijkstra.WithContext(cmd.Context()),
				dijkstra.WithStepCost(a.cfg.StepCost),
				dijkstra.WithTurnCost(a.cfg.TurnCost),
				dijkstra.WithFilterStep(func(_, to grid.Xy) bool {
					r, ok := g.Get(to)
					return !ok || r != wall
				}),
			)
			if err != nil {
				return err
			}
			cost, path, ok := res.Best(end)
			if !ok {
				return fmt.Errorf("cost: %s unreachable from %s", end, start)
			}
			tiles := res.Tiles(end)
			a.lggr.Infow("cheapest walk", "cost", cost, "tiles", len(tiles))

			r := output.Report{Command: "cost", Input: args[0], Path: route(cells(path.Reversed()))}
			r.Add("cost", cost)
			r.Add("tiles", int64(len(tiles)))
			return a.write(cmd, r)
		},
	}
	cmd.Flags().StringVar(&heading, "heading", "E", "Initial heading: N, E, S or W")

	return cmd
}

// parseHeading maps a compass letter to a direction.
func parseHeading(s string) (grid.Direction4, error) {
	for _, d := range grid.AllDirection4() {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("cost: unknown heading %q", s)
}

// cells drops turn-in-place states, keeping each visited cell once.
func cells(states []dijkstra.State) []grid.Xy {
	var out []grid.Xy
	for _, s := range states {
		if n := len(out); n == 0 || out[n-1] != s.Xy {
			out = append(out, s.Xy)
		}
	}
	return out
}
