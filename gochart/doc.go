// Package gochart draws brace annotations on go-chart charts.
//
// BraceSeries implements chart.Series, so a brace is listed alongside
// the data series it annotates:
//
//	graph := chart.Chart{
//		Series: []chart.Series{
//			chart.ContinuousSeries{XValues: xs, YValues: ys},
//			gochart.BraceSeries{
//				P1:    ggbrace.Pt(2, 4),
//				P2:    ggbrace.Pt(8, 4),
//				Label: "stable region",
//			},
//		},
//	}
//	err := graph.Render(chart.PNG, &buf)
//
// The series reads the axis ranges the chart hands it, so braces follow
// logarithmic ranges automatically. Because chart.Series has no way to
// report failures, a brace that cannot be drawn logs a warning through
// the ggbrace logger and leaves the chart untouched.
//
// Surface is the underlying adapter; use it directly to draw braces
// onto a chart.Renderer outside the series machinery.
package gochart
