// Package gonumplot draws brace annotations on gonum.org/v1/plot plots.
//
// Brace implements plot.Plotter, so a brace is added to a plot like any
// other plotter:
//
//	p := plot.New()
//	b := gonumplot.NewBrace(plotter.XY{X: 2, Y: 4}, plotter.XY{X: 8, Y: 4})
//	b.Label = "stable region"
//	p.Add(b)
//
// The plotter reads the axis limits and scale from the plot itself, so
// braces follow log axes automatically. Because plot.Plotter has no way
// to report failures, a brace that cannot be drawn, for example one
// with a non-positive coordinate on a log axis, logs a warning through
// the ggbrace logger and leaves the plot untouched.
package gonumplot
