package commands

import (
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/StochasticCactus/CactusPlot/internal/charts"
	"github.com/StochasticCactus/CactusPlot/internal/registry"
	"github.com/StochasticCactus/CactusPlot/internal/xvg"
)

// DefaultTerminalWidth is the fallback width when detection fails.
const DefaultTerminalWidth = 80

// loadFiles reads each path into a fresh registry, labelled by base name.
// Any unreadable or empty file fails the whole command.
func loadFiles(paths []string) (*registry.Registry, error) {
	reg := registry.New()
	for _, path := range paths {
		x, y, err := xvg.ReadFile(path)
		if err != nil {
			return nil, err
		}
		reg.Add(x, y, filepath.Base(path))
	}
	return reg, nil
}

// datasets projects every series in the registry for rendering.
func datasets(reg *registry.Registry) []charts.Dataset {
	sets := make([]charts.Dataset, 0, reg.Len())
	for _, info := range reg.List() {
		s, ok := reg.Series(info.ID)
		if !ok {
			continue
		}
		sets = append(sets, charts.Dataset{ID: info.ID, Label: s.Label, X: s.X, Y: s.Y})
	}
	return sets
}

// chartWidth returns the requested width, or the terminal width when the
// request is unset.
func chartWidth(requested int) int {
	if requested > 0 {
		return requested
	}
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err == nil && termWidth > 0 {
		return termWidth - 2
	}
	return DefaultTerminalWidth
}
