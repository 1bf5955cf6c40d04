package commands

import (
	"fmt"

	"github.com/StochasticCactus/CactusPlot/internal/export"
)

// ExportCmd renders data files to an image file.
type ExportCmd struct {
	Files  []string `arg:"" name:"files" help:"Data files to render." type:"existingfile"`
	Out    string   `name:"out" short:"O" required:"" help:"Output image path; format from the extension (.png, .svg, .pdf)."`
	Title  string   `name:"title" help:"Figure title."`
	XLabel string   `name:"x-label" default:"X" help:"X axis label."`
	YLabel string   `name:"y-label" default:"Y" help:"Y axis label."`
}

func (e *ExportCmd) Run() error {
	reg, err := loadFiles(e.Files)
	if err != nil {
		return err
	}

	opts := export.Options{
		Title:  e.Title,
		XLabel: e.XLabel,
		YLabel: e.YLabel,
	}
	if err := export.Image(e.Out, datasets(reg), opts); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", e.Out)
	return nil
}
