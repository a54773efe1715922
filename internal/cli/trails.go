package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlgrid/dfs"
	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/katalvlaran/lvlgrid/internal/output"
)

func (a *app) newTrailsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trails FILE",
		Short: "Score and rating of every trailhead on a digit height map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGrid(args[0], grid.Digits())
			if err != nil {
				return err
			}
			summit := func(xy grid.Xy) bool {
				v, ok := g.Get(xy)
				return ok && v == 9
			}
			opts := []dfs.Option{
				dfs.WithContext(cmd.Context()),
				dfs.WithFilterStep(dfs.Ascending(g)),
			}
			if a.cfg.Diagonals {
				opts = append(opts, dfs.WithDiagonals())
			}
			if a.cfg.MaxDepth > 0 {
				opts = append(opts, dfs.WithMaxDepth(a.cfg.MaxDepth))
			}

			lggr := a.lggr.Named("dfs")
			var heads, score, rating int
			for xy, v := range g.Occupied() {
				if v != 0 {
					continue
				}
				res, err := dfs.Trails(g, xy, summit, opts...)
				if err != nil {
					return err
				}
				heads++
				score += len(res.Ends())
				rating += res.Count()
				lggr.Debugw("trailhead", "xy", xy.String(), "score", len(res.Ends()), "rating", res.Count())
			}
			a.lggr.Infow("trails done", "trailheads", heads)

			r := output.Report{Command: "trails", Input: args[0]}
			r.Add("trailheads", int64(heads))
			r.Add("score", int64(score))
			r.Add("rating", int64(rating))
			return a.write(cmd, r)
		},
	}
}
