package charts

import (
	"image/color"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// SeriesPalette holds 30 contrasting colors for plotting, excluding very
// light ones. Series colors are derived from the current series id, so a
// delete that renumbers ids also recolors later series.
var SeriesPalette = []string{
	"#FF0000", // red
	"#0000FF", // blue
	"#008000", // green
	"#FFA500", // orange
	"#800080", // purple
	"#A52A2A", // brown
	"#FFC0CB", // pink
	"#808000", // olive
	"#00FFFF", // cyan
	"#FF00FF", // magenta
	"#00FF00", // lime
	"#4B0082", // indigo
	"#008080", // teal
	"#800000", // maroon
	"#000080", // navy
	"#006400", // darkgreen
	"#FF8C00", // darkorange
	"#8B0000", // darkred
	"#00008B", // darkblue
	"#8B008B", // darkmagenta
	"#228B22", // forestgreen
	"#B22222", // firebrick
	"#4169E1", // royalblue
	"#2E8B57", // seagreen
	"#D2691E", // chocolate
	"#DC143C", // crimson
	"#4682B4", // steelblue
	"#DAA520", // goldenrod
	"#0000CD", // mediumblue
	"#FF4500", // orangered
}

// AxisColor is the color used for chart axes.
var AxisColor = lipgloss.Color("#CCBB44")

// LabelColor is the color used for chart labels.
var LabelColor = lipgloss.Color("#66CCEE")

// SeriesColor returns the color for a given series index, cycling through
// the palette.
func SeriesColor(index int) lipgloss.Color {
	return lipgloss.Color(SeriesPalette[index%len(SeriesPalette)])
}

// SeriesStyle returns a lipgloss style with the foreground color for the
// given series index.
func SeriesStyle(index int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(SeriesColor(index))
}

// SeriesRGBA returns the palette color for the given series index as an
// image/color value, for image export.
func SeriesRGBA(index int) color.RGBA {
	hex := SeriesPalette[index%len(SeriesPalette)]
	r, _ := strconv.ParseUint(hex[1:3], 16, 8)
	g, _ := strconv.ParseUint(hex[3:5], 16, 8)
	b, _ := strconv.ParseUint(hex[5:7], 16, 8)
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}
