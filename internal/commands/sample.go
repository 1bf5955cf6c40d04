package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/StochasticCactus/CactusPlot/internal/charts"
	"github.com/StochasticCactus/CactusPlot/internal/registry"
	"github.com/StochasticCactus/CactusPlot/internal/sampler"
	"github.com/StochasticCactus/CactusPlot/internal/xvg"
)

// SampleCmd evaluates an expression over a range and prints the points.
type SampleCmd struct {
	Expr   string  `arg:"" name:"expr" help:"Expression in x, e.g. 'sin(x) + cos(2*x)'."`
	XMin   float64 `name:"x-min" default:"-10" help:"Inclusive start of the sample range."`
	XMax   float64 `name:"x-max" default:"10" help:"Inclusive end of the sample range."`
	Points int     `name:"points" short:"n" default:"100" help:"Number of sample points."`
	Width  int     `name:"width" short:"w" help:"Chart width in cells for graph output."`
	Output string  `name:"output" short:"o" help:"Output format." default:"graph" enum:"graph,tsv,json,yaml"`
}

func (s *SampleCmd) Run() error {
	xs, ys, err := sampler.Sample(s.Expr, s.XMin, s.XMax, s.Points)
	if err != nil {
		return err
	}

	switch s.Output {
	case "graph":
		reg := registry.New()
		reg.Add(xs, ys, "f(x) = "+s.Expr)
		ext, _ := reg.BoundingExtent(false)
		chart, legend := charts.Lines(datasets(reg), ext.Pad(0.1), chartWidth(s.Width), -1)
		fmt.Println(chart)
		fmt.Println(charts.Legend(legend))
	case "tsv":
		return xvg.Write(os.Stdout, xs, ys)
	case "json":
		jsonBytes, err := json.MarshalIndent(massagePoints(xs, ys), "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling points to JSON: %w", err)
		}
		fmt.Println(string(jsonBytes))
	case "yaml":
		yamlBytes, err := yaml.Marshal(massagePoints(xs, ys))
		if err != nil {
			return fmt.Errorf("marshalling points to YAML: %w", err)
		}
		fmt.Println(string(yamlBytes))
	}
	return nil
}

func massagePoints(xs, ys []float64) []map[string]float64 {
	points := make([]map[string]float64, 0, len(xs))
	for i := range xs {
		points = append(points, map[string]float64{
			"x": xs[i],
			"y": ys[i],
		})
	}
	return points
}
