package charts

import (
	"strings"
	"testing"

	"github.com/StochasticCactus/CactusPlot/internal/registry"
)

var testView = registry.Extent{XMin: 0, XMax: 10, YMin: -2, YMax: 2}

func TestLines(t *testing.T) {
	t.Run("no datasets returns empty legend", func(t *testing.T) {
		chart, legend := Lines(nil, testView, 80, -1)

		if len(legend) != 0 {
			t.Errorf("len(legend) = %d, want 0", len(legend))
		}
		// Axes are still drawn.
		if len(chart) == 0 {
			t.Error("chart output is empty, want axes")
		}
	})

	t.Run("single dataset returns 1 legend entry", func(t *testing.T) {
		sets := []Dataset{
			{ID: 0, Label: "sin(x)", X: []float64{0, 1, 2}, Y: []float64{0, 1, 0}},
		}

		chart, legend := Lines(sets, testView, 80, -1)

		if len(legend) != 1 {
			t.Fatalf("len(legend) = %d, want 1", len(legend))
		}
		if legend[0].ColorIndex != 0 {
			t.Errorf("legend[0].ColorIndex = %d, want 0", legend[0].ColorIndex)
		}
		if legend[0].Label != "sin(x)" {
			t.Errorf("legend[0].Label = %q, want %q", legend[0].Label, "sin(x)")
		}
		if len(chart) == 0 {
			t.Error("chart output is empty, want non-empty")
		}
	})

	t.Run("legend entries follow dataset ids in order", func(t *testing.T) {
		sets := []Dataset{
			{ID: 0, Label: "a", X: []float64{0}, Y: []float64{0}},
			{ID: 1, Label: "b", X: []float64{1}, Y: []float64{1}},
			{ID: 2, Label: "c", X: []float64{2}, Y: []float64{-1}},
		}

		_, legend := Lines(sets, testView, 80, -1)

		if len(legend) != 3 {
			t.Fatalf("len(legend) = %d, want 3", len(legend))
		}
		for i, entry := range legend {
			if entry.ColorIndex != i {
				t.Errorf("legend[%d].ColorIndex = %d, want %d", i, entry.ColorIndex, i)
			}
		}
	})

	t.Run("hidden sets omitted by caller keep ids on survivors", func(t *testing.T) {
		// The caller passes only visible sets; ids may be non-contiguous.
		sets := []Dataset{
			{ID: 2, Label: "only visible", X: []float64{0, 1}, Y: []float64{0, 1}},
		}

		_, legend := Lines(sets, testView, 80, -1)

		if len(legend) != 1 {
			t.Fatalf("len(legend) = %d, want 1", len(legend))
		}
		if legend[0].ColorIndex != 2 {
			t.Errorf("legend[0].ColorIndex = %d, want 2", legend[0].ColorIndex)
		}
	})

	t.Run("empty dataset renders nothing but keeps legend entry", func(t *testing.T) {
		sets := []Dataset{
			{ID: 0, Label: "empty", X: nil, Y: nil},
		}

		chart, legend := Lines(sets, testView, 80, -1)

		if len(legend) != 1 {
			t.Errorf("len(legend) = %d, want 1", len(legend))
		}
		if len(chart) == 0 {
			t.Error("chart output is empty, want axes")
		}
	})

	t.Run("selection does not change legend", func(t *testing.T) {
		sets := []Dataset{
			{ID: 0, Label: "a", X: []float64{0, 1}, Y: []float64{0, 1}},
			{ID: 1, Label: "b", X: []float64{0, 1}, Y: []float64{1, 0}},
		}

		chart, legend := Lines(sets, testView, 80, 1)

		if len(legend) != 2 {
			t.Errorf("len(legend) = %d, want 2", len(legend))
		}
		if len(chart) == 0 {
			t.Error("chart output is empty, want non-empty")
		}
	})

	t.Run("out of range selection is handled", func(t *testing.T) {
		sets := []Dataset{
			{ID: 0, Label: "a", X: []float64{0, 1}, Y: []float64{0, 1}},
		}

		_, legend := Lines(sets, testView, 80, 99)

		if len(legend) != 1 {
			t.Errorf("len(legend) = %d, want 1", len(legend))
		}
	})
}

func TestLegend(t *testing.T) {
	entries := []LegendEntry{
		{Label: "first", ColorIndex: 0},
		{Label: "second", ColorIndex: 1},
	}

	legend := Legend(entries)

	if !strings.Contains(legend, "first") {
		t.Errorf("legend %q missing %q", legend, "first")
	}
	if !strings.Contains(legend, "second") {
		t.Errorf("legend %q missing %q", legend, "second")
	}
}

func TestLegendEmpty(t *testing.T) {
	if got := Legend(nil); got != "" {
		t.Errorf("Legend(nil) = %q, want empty", got)
	}
}
