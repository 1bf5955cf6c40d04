package commands

import (
	"fmt"

	"github.com/StochasticCactus/CactusPlot/internal/charts"
)

// InfoCmd prints a per-file point-count summary and the overall extent.
type InfoCmd struct {
	Files []string `arg:"" name:"files" help:"Data files to summarize." type:"existingfile"`
	Width int      `name:"width" short:"w" help:"Chart width in cells (default: terminal width)."`
}

func (i *InfoCmd) Run() error {
	reg, err := loadFiles(i.Files)
	if err != nil {
		return err
	}

	fmt.Println(charts.PointCounts(reg.List(), chartWidth(i.Width)))

	if ext, ok := reg.BoundingExtent(true); ok {
		fmt.Printf("extent: x [%g, %g], y [%g, %g]\n", ext.XMin, ext.XMax, ext.YMin, ext.YMax)
	}
	return nil
}
