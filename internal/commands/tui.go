package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/StochasticCactus/CactusPlot/internal/registry"
	"github.com/StochasticCactus/CactusPlot/internal/sampler"
	"github.com/StochasticCactus/CactusPlot/internal/tui"
)

// TUICmd starts the interactive plot viewer.
type TUICmd struct {
	Files  []string `arg:"" optional:"" name:"files" help:"Data files to preload (.dat, .txt, .csv, .xvg or anything else; parsing is format-agnostic)." type:"existingfile"`
	Sample bool     `name:"sample" help:"Seed the plot with sin(x) and cos(x) demo sets."`
}

func (t *TUICmd) Run() error {
	reg, err := loadFiles(t.Files)
	if err != nil {
		return err
	}

	if t.Sample {
		if err := seedSampleData(reg); err != nil {
			return err
		}
	}

	p := tea.NewProgram(tui.NewModel(reg), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func seedSampleData(reg *registry.Registry) error {
	for _, expr := range []string{"sin(x)", "cos(x)"} {
		xs, ys, err := sampler.Sample(expr, 0, 10, 50)
		if err != nil {
			return err
		}
		reg.Add(xs, ys, expr)
	}
	return nil
}
