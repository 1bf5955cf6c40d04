package charts

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"

	"github.com/StochasticCactus/CactusPlot/internal/registry"
)

// PointCounts renders a horizontal bar per series showing its point
// count, colored by series id.
func PointCounts(infos []registry.Info, width int) string {
	if len(infos) == 0 {
		return ""
	}

	barData := make([]barchart.BarData, 0, len(infos))
	for _, info := range infos {
		barData = append(barData, barchart.BarData{
			Label: fmt.Sprintf("%s (%d)", info.Label, info.Points),
			Values: []barchart.BarValue{
				{Name: info.Label, Value: float64(info.Points), Style: SeriesStyle(info.ID)},
			},
		})
	}

	bc := barchart.New(width, len(barData)*2, barchart.WithDataSet(barData), barchart.WithHorizontalBars())
	bc.Draw()

	return bc.View()
}
