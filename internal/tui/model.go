// Package tui is the interactive plot viewer. The registry is the only
// state; the chart and series table are projections torn down and rebuilt
// from it after every mutation.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	teatable "github.com/evertras/bubble-table/table"

	"github.com/StochasticCactus/CactusPlot/internal/charts"
	"github.com/StochasticCactus/CactusPlot/internal/registry"
)

// Prompt identifies which input prompt, if any, is open.
type Prompt int

const (
	PromptNone Prompt = iota
	PromptLoad
	PromptSave
	PromptFunction
	PromptAverage
)

// Function prompt field indices, in tab order.
const (
	fieldExpr = iota
	fieldXMin
	fieldXMax
	fieldPoints
	functionFieldCount
)

// loadResultMsg carries the outcome of reading a data file.
type loadResultMsg struct {
	path string
	x, y []float64
	err  error
}

// saveResultMsg carries the outcome of writing the selected series.
type saveResultMsg struct {
	path string
	n    int
	err  error
}

// Model is the Bubble Tea model for the interactive plotter.
type Model struct {
	reg *registry.Registry

	// Current view window, changed only by autoscale.
	view registry.Extent

	// Prompt state
	prompt      Prompt
	pathInput   textinput.Model
	exprInput   textinput.Model
	xMinInput   textinput.Model
	xMaxInput   textinput.Model
	nInput      textinput.Model
	windowInput textinput.Model
	focusField  int

	// Rendered projections, rebuilt from the registry on every mutation
	chartContent  string
	legendEntries []charts.LegendEntry
	seriesTable   teatable.Model
	selected      int  // current series id, -1 means no selection
	highlight     bool // dim all but the selected series in the chart

	status string

	width  int
	height int
}

// NewModel creates the viewer over an existing registry. Preloaded series
// are fitted into view; otherwise a default window is shown.
func NewModel(reg *registry.Registry) Model {
	pathInput := textinput.New()
	pathInput.Placeholder = "path/to/data.dat"
	pathInput.Width = 60

	exprInput := textinput.New()
	exprInput.Placeholder = "sin(x) + cos(2*x)"
	exprInput.SetValue("sin(x)")
	exprInput.Width = 40

	xMinInput := textinput.New()
	xMinInput.SetValue("-10")
	xMinInput.Width = 10

	xMaxInput := textinput.New()
	xMaxInput.SetValue("10")
	xMaxInput.Width = 10

	nInput := textinput.New()
	nInput.SetValue("100")
	nInput.Width = 10

	windowInput := textinput.New()
	windowInput.SetValue("5")
	windowInput.Width = 10

	m := Model{
		reg:         reg,
		view:        registry.Extent{XMin: -10, XMax: 10, YMin: -1, YMax: 1},
		pathInput:   pathInput,
		exprInput:   exprInput,
		xMinInput:   xMinInput,
		xMaxInput:   xMaxInput,
		nInput:      nInput,
		windowInput: windowInput,
		selected:    -1,
		status:      "Ready",
	}

	if ext, ok := reg.BoundingExtent(false); ok {
		m.view = ext.Pad(AutoscaleMargin)
	}
	if reg.Len() > 0 {
		m.selected = 0
	}

	return m.refresh()
}
