package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/StochasticCactus/CactusPlot/internal/charts"
)

func testSets() []charts.Dataset {
	return []charts.Dataset{
		{ID: 0, Label: "a", X: []float64{0, 1, 2}, Y: []float64{0, 1, 0}},
		{ID: 1, Label: "b", X: []float64{0, 1, 2}, Y: []float64{1, 0, 1}},
	}
}

func TestImageWritesFile(t *testing.T) {
	for _, ext := range []string{"png", "svg"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out."+ext)

			err := Image(path, testSets(), Options{Title: "test", XLabel: "X", YLabel: "Y"})
			if err != nil {
				t.Fatalf("Image() error = %v", err)
			}

			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("output not written: %v", err)
			}
			if info.Size() == 0 {
				t.Error("output file is empty")
			}
		})
	}
}

func TestImageNoDatasets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := Image(path, nil, Options{}); err == nil {
		t.Error("Image() with no datasets returned nil error")
	}
}

func TestImageUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.nope")
	if err := Image(path, testSets(), Options{}); err == nil {
		t.Error("Image() with unsupported extension returned nil error")
	}
}
