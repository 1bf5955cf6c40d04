package tui

import (
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	teatable "github.com/evertras/bubble-table/table"
	"golang.org/x/term"

	"github.com/StochasticCactus/CactusPlot/internal/charts"
	"github.com/StochasticCactus/CactusPlot/internal/registry"
)

// refresh rebuilds every visual projection from the registry. Projections
// are never patched in place: after a delete renumbers ids there is no
// stale element left to mismatch.
func (m Model) refresh() Model {
	m = m.renderChart()
	m = m.renderSeriesTable()
	return m
}

func (m Model) renderChart() Model {
	width := m.getChartWidth()
	selected := -1
	if m.highlight {
		selected = m.selected
	}
	m.chartContent, m.legendEntries = charts.Lines(visibleDatasets(m.reg), m.view, width, selected)
	return m
}

// visibleDatasets projects the registry's visible series for rendering,
// keyed by their current ids.
func visibleDatasets(reg *registry.Registry) []charts.Dataset {
	sets := make([]charts.Dataset, 0, reg.Len())
	for _, info := range reg.List() {
		if !info.Visible {
			continue
		}
		s, ok := reg.Series(info.ID)
		if !ok {
			continue
		}
		sets = append(sets, charts.Dataset{ID: info.ID, Label: s.Label, X: s.X, Y: s.Y})
	}
	return sets
}

func (m Model) renderSeriesTable() Model {
	infos := m.reg.List()

	rows := make([]teatable.Row, 0, len(infos))
	longestLabel := 0
	for _, info := range infos {
		if len(info.Label) > longestLabel {
			longestLabel = len(info.Label)
		}

		marker := "✓"
		if !info.Visible {
			marker = "✗"
		}
		swatch := charts.SeriesStyle(info.ID).Render("█")

		rows = append(rows, teatable.NewRow(teatable.RowData{
			"id":      info.ID,
			"color":   swatch,
			"visible": marker,
			"label":   info.Label,
			"points":  strconv.Itoa(info.Points),
		}))
	}

	columns := []teatable.Column{
		teatable.NewColumn("color", "", 3),
		teatable.NewColumn("visible", "", 3),
		teatable.NewColumn("label", "Set", max(longestLabel, 20)),
		teatable.NewColumn("points", "Points", 8),
	}

	table := teatable.
		New(columns).
		WithRows(rows).
		WithPageSize(ListMaxRows).
		Focused(true).
		WithBaseStyle(lipgloss.NewStyle())

	if m.selected >= 0 {
		table = table.WithHighlightedRow(m.selected)
	}

	m.seriesTable = table
	return m
}

func (m Model) updateSelectedFromTable() Model {
	row := m.seriesTable.HighlightedRow()
	if row.Data == nil {
		m.selected = -1
		return m
	}

	id, ok := row.Data["id"].(int)
	if !ok {
		m.selected = -1
		return m
	}

	m.selected = id
	return m
}

func (m Model) getChartWidth() int {
	width := m.width - ChartWidthPadding
	if width <= 0 {
		termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err == nil && termWidth > 0 {
			width = termWidth - ChartWidthPadding
		} else {
			width = DefaultTerminalWidth - ChartWidthPadding
		}
	}
	return width
}
