// Package export renders data sets to image files via gonum/plot.
package export

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/StochasticCactus/CactusPlot/internal/charts"
)

// Options control figure annotations and canvas size. Zero-value sizes
// fall back to 8x6 inches.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	Width  vg.Length
	Height vg.Length
}

// Image writes the datasets as a line plot to path. The image format
// follows the file extension (.png, .svg, .pdf and the other formats
// gonum/plot saves). Line colors match the terminal palette by series id.
func Image(path string, sets []charts.Dataset, opts Options) error {
	if len(sets) == 0 {
		return fmt.Errorf("nothing to export")
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	for _, set := range sets {
		xys := make(plotter.XYs, len(set.X))
		for i := range set.X {
			xys[i].X = set.X[i]
			xys[i].Y = set.Y[i]
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("plotting %s: %w", set.Label, err)
		}
		line.Color = charts.SeriesRGBA(set.ID)
		p.Add(line)
		p.Legend.Add(set.Label, line)
	}

	width := opts.Width
	if width == 0 {
		width = 8 * vg.Inch
	}
	height := opts.Height
	if height == 0 {
		height = 6 * vg.Inch
	}

	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
