package commands

import (
	"fmt"

	"github.com/StochasticCactus/CactusPlot/internal/charts"
)

// PlotCmd renders one chart of all given files to stdout and exits.
type PlotCmd struct {
	Files []string `arg:"" name:"files" help:"Data files to plot." type:"existingfile"`
	Width int      `name:"width" short:"w" help:"Chart width in cells (default: terminal width)."`
}

func (p *PlotCmd) Run() error {
	reg, err := loadFiles(p.Files)
	if err != nil {
		return err
	}

	ext, ok := reg.BoundingExtent(false)
	if !ok {
		fmt.Println("No Data")
		return nil
	}

	chart, legend := charts.Lines(datasets(reg), ext.Pad(0.1), chartWidth(p.Width), -1)
	fmt.Println(chart)
	fmt.Println(charts.Legend(legend))
	return nil
}
