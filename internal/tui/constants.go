package tui

const (
	// DefaultTerminalWidth is the fallback terminal width when detection fails.
	DefaultTerminalWidth = 80

	// ChartWidthPadding is the horizontal padding subtracted from terminal
	// width for chart rendering.
	ChartWidthPadding = 6

	// ListMaxRows is the maximum number of visible rows in the series table.
	ListMaxRows = 8

	// AutoscaleMargin is the fraction of the bounding extent added on each
	// side when fitting the view.
	AutoscaleMargin = 0.1

	// fitLinePoints is how many points a fitted line is sampled at.
	fitLinePoints = 100
)
