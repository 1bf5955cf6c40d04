// Package commands defines the cactus command-line interface.
package commands

// CLI is the top-level kong command tree.
type CLI struct {
	Tui    TUICmd    `cmd:"" default:"withargs" help:"Interactive plot viewer."`
	Plot   PlotCmd   `cmd:"" help:"Render data files as a chart on stdout."`
	Sample SampleCmd `cmd:"" help:"Generate points from a math expression."`
	Export ExportCmd `cmd:"" help:"Render data files to an image file."`
	Info   InfoCmd   `cmd:"" help:"Summarize data files."`
}
