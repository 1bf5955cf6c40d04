package main

import (
	"github.com/StochasticCactus/CactusPlot/internal/commands"
	"github.com/alecthomas/kong"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("cactus"),
		kong.Description("Terminal-native XMGrace-style plotter for 2D data files and typed functions."),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
