// Command gridwalk answers path, trail, cost and region questions about
// character-map grids.
package main

import (
	"os"

	"github.com/katalvlaran/lvlgrid/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
