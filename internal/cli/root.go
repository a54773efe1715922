// Package cli wires the grid packages into the gridwalk command.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/katalvlaran/lvlgrid/internal/config"
	"github.com/katalvlaran/lvlgrid/internal/logger"
	"github.com/katalvlaran/lvlgrid/internal/output"
)

var (
	// ErrMarkerNotFound is returned when a map has no start or end marker.
	ErrMarkerNotFound = errors.New("cli: marker not found in map")

	// ErrPointOutOfRange is returned when a dropped point lies outside the
	// 0..size square.
	ErrPointOutOfRange = errors.New("cli: point outside square")
)

// app is the state shared by every subcommand once the root has run its
// PersistentPreRunE.
type app struct {
	cfg  *config.Config
	lggr logger.Logger

	// newLogger and newScreen are replaced in tests.
	newLogger func(cfg *config.Config) (logger.Logger, error)
	newScreen func() (tcell.Screen, error)
}

// NewRootCmd returns the gridwalk command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{
		newLogger: func(cfg *config.Config) (logger.Logger, error) {
			return logger.New(cfg.Level())
		},
		newScreen: tcell.NewScreen,
	})
}

func newRootCmd(a *app) *cobra.Command {
	var cfgFile string
	root := &cobra.Command{
		Use:           "gridwalk",
		Short:         "Search and measure character-map grids",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			lggr, err := a.newLogger(cfg)
			if err != nil {
				return err
			}
			a.cfg, a.lggr = cfg, lggr
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.lggr != nil {
				_ = a.lggr.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "YAML or TOML config file")
	pf.String(config.FlagName("log_level"), "info", "Log level: debug, info, warn, error")
	pf.StringP(config.FlagName("output"), "o", "text", "Output format: text, json, yaml, toml")
	pf.String(config.FlagName("wall"), "#", "Wall marker rune")
	pf.String(config.FlagName("start"), "S", "Start marker rune")
	pf.String(config.FlagName("end"), "E", "End marker rune")
	pf.Bool(config.FlagName("diagonals"), false, "Allow diagonal moves")
	pf.Int64(config.FlagName("turn_cost"), 1000, "Cost of a quarter turn (cost)")
	pf.Int64(config.FlagName("step_cost"), 1, "Cost of a forward step (cost)")
	pf.Int(config.FlagName("max_depth"), 0, "Search depth limit, 0 for none")

	root.AddCommand(
		a.newPathCmd(),
		a.newPointsCmd(),
		a.newTrailsCmd(),
		a.newCostCmd(),
		a.newRegionsCmd(),
		a.newViewCmd(),
	)

	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gridwalk:", err)
		return 1
	}
	return 0
}

// readGrid parses the map file at path with fn.
func readGrid[T any](path string, fn grid.CellFunc[T]) (*grid.Grid[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := grid.Parse(f, fn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// markers locates the configured start and end runes.
func (a *app) markers(g *grid.Grid[rune]) (start, end grid.Xy, err error) {
	s, e := a.cfg.StartRune(), a.cfg.EndRune()
	start, ok := g.Find(func(r rune) bool { return r == s })
	if !ok {
		return start, end, fmt.Errorf("%w: start %q", ErrMarkerNotFound, s)
	}
	end, ok = g.Find(func(r rune) bool { return r == e })
	if !ok {
		return start, end, fmt.Errorf("%w: end %q", ErrMarkerNotFound, e)
	}
	return start, end, nil
}

// write prints r in the configured format.
func (a *app) write(cmd *cobra.Command, r output.Report) error {
	return output.Write(cmd.OutOrStdout(), a.cfg.Format(), r)
}

// route renders path cells for a report.
func route(cells []grid.Xy) []string {
	out := make([]string, len(cells))
	for i, xy := range cells {
		out[i] = xy.String()
	}
	return out
}
