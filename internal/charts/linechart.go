package charts

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/StochasticCactus/CactusPlot/internal/registry"
)

var axisStyle = lipgloss.NewStyle().Foreground(AxisColor)

var labelStyle = lipgloss.NewStyle().Foreground(LabelColor)

var dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // grey

// Dataset is one renderable series, keyed by its current registry id. The
// id drives the palette color.
type Dataset struct {
	ID    int
	Label string
	X, Y  []float64
}

// LegendEntry pairs a dataset label with the palette index it was drawn
// with.
type LegendEntry struct {
	Label      string
	ColorIndex int
}

// Lines renders the datasets as a braille line chart over the given view
// window and returns it with one legend entry per dataset, in input order.
// A selected id >= 0 keeps that dataset in its series color and dims the
// rest. Consecutive points are joined; a one-point dataset draws a single
// dot; an empty dataset draws nothing but still gets a legend entry.
func Lines(sets []Dataset, view registry.Extent, width int, selected int) (chart string, legend []LegendEntry) {
	height := width / ChartHeightRatio
	if height < MinChartHeight {
		height = MinChartHeight
	}

	lc := linechart.New(width, height, view.XMin, view.XMax, view.YMin, view.YMax)
	lc.AxisStyle = axisStyle
	lc.LabelStyle = labelStyle
	lc.DrawXYAxisAndLabel()

	legend = make([]LegendEntry, 0, len(sets))
	for _, set := range sets {
		style := SeriesStyle(set.ID)
		if selected >= 0 && set.ID != selected {
			style = dimStyle
		}

		for i := 1; i < len(set.X); i++ {
			lc.DrawBrailleLineWithStyle(
				canvas.Float64Point{X: set.X[i-1], Y: set.Y[i-1]},
				canvas.Float64Point{X: set.X[i], Y: set.Y[i]},
				style,
			)
		}
		if len(set.X) == 1 {
			p := canvas.Float64Point{X: set.X[0], Y: set.Y[0]}
			lc.DrawBrailleLineWithStyle(p, p, style)
		}

		legend = append(legend, LegendEntry{Label: set.Label, ColorIndex: set.ID})
	}

	return lc.View(), legend
}

// Legend renders one swatch-and-label line per entry.
func Legend(entries []LegendEntry) string {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, SeriesStyle(entry.ColorIndex).Render(fmt.Sprintf("%c %s", runes.FullBlock, entry.Label)))
	}
	return strings.Join(lines, "\n")
}
