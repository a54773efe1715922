package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/katalvlaran/lvlgrid/gridgraph"
	"github.com/katalvlaran/lvlgrid/internal/output"
)

func (a *app) newRegionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions FILE",
		Short: "Fence prices of every same-letter region",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGrid(args[0], grid.Runes())
			if err != nil {
				return err
			}
			opts := gridgraph.DefaultGridOptions()
			if a.cfg.Diagonals {
				opts.Conn = gridgraph.Conn8
			}
			gg, err := gridgraph.New(g, opts)
			if err != nil {
				return err
			}

			lggr := a.lggr.Named("regions")
			var price, discount int
			regions := gg.Regions()
			for _, reg := range regions {
				price += reg.Price()
				discount += reg.DiscountPrice()
				lggr.Debugw("region", "value", string(reg.Value), "area", reg.Area(),
					"perimeter", reg.Perimeter(), "sides", reg.Sides())
			}

			r := output.Report{Command: "regions", Input: args[0]}
			r.Add("regions", int64(len(regions)))
			r.Add("price", int64(price))
			r.Add("discount", int64(discount))
			return a.write(cmd, r)
		},
	}
}
