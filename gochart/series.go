package gochart

import (
	"github.com/gogpu/ggbrace"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// BraceSeries draws a curly brace annotation between two data points
// of a chart. It carries no values of its own, so at least one other
// series must establish the axis ranges.
//
// Zero fields take the package defaults, following the chart series
// convention.
type BraceSeries struct {
	// Name is the series name.
	Name string

	// Style holds stroke and font styling. Zero fields inherit the
	// chart defaults.
	Style chart.Style

	// YAxis picks the y range the endpoints are measured against.
	YAxis chart.YAxisType

	// P1 and P2 are the endpoints in data coordinates. The brace
	// bulges to the left of the walk from P1 to P2.
	P1, P2 ggbrace.Point

	// Curvature scales the arc radius relative to the span. Zero means
	// the default 0.1.
	Curvature float64

	// FixedScale disables the screen-space compensation for unequal
	// axis scales.
	FixedScale bool

	// Label is drawn at the summit. Empty means no label.
	Label string

	// LabelLines pads the label away from the summit in whole line
	// heights. Zero means the default of two lines; negative places
	// the label directly on the summit.
	LabelLines int

	// Resolution is the number of samples per arc. Zero means the
	// package default.
	Resolution int
}

var _ chart.Series = BraceSeries{}

// GetName implements chart.Series.
func (bs BraceSeries) GetName() string {
	return bs.Name
}

// GetYAxis implements chart.Series.
func (bs BraceSeries) GetYAxis() chart.YAxisType {
	return bs.YAxis
}

// GetStyle implements chart.Series.
func (bs BraceSeries) GetStyle() chart.Style {
	return bs.Style
}

// Validate implements chart.Series. Any pair of endpoints draws
// something, so there is nothing to reject up front; domain problems
// are reported when the series renders.
func (bs BraceSeries) Validate() error {
	return nil
}

// Render implements chart.Series. Failures do not abort the chart;
// they are reported through the ggbrace logger at warn level.
func (bs BraceSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, style chart.Style) {
	curvature := bs.Curvature
	if curvature == 0 {
		curvature = 0.1
	}
	resolution := bs.Resolution
	if resolution == 0 {
		resolution = ggbrace.DefaultResolution
	}

	line := ggbrace.DefaultLineStyle().
		WithColor(style.GetStrokeColor(drawing.ColorBlack)).
		WithWidth(style.GetStrokeWidth(1)).
		WithDashes(style.GetStrokeDashArray()...)
	text := ggbrace.DefaultTextStyle().
		WithColor(style.GetFontColor(drawing.ColorBlack)).
		WithSize(style.GetFontSize(12))

	s := New(r, canvasBox, xrange, yrange, WithFont(style.GetFont()))
	_, err := ggbrace.Draw(s, bs.P1, bs.P2,
		ggbrace.WithCurvature(curvature),
		ggbrace.WithAutoScale(!bs.FixedScale),
		ggbrace.WithLabel(bs.Label),
		ggbrace.WithLabelOffset(labelLines(bs.LabelLines)),
		ggbrace.WithResolution(resolution),
		ggbrace.WithLineStyle(line),
		ggbrace.WithTextStyle(text),
	)
	if err != nil {
		ggbrace.Logger().Warn("brace series not drawn", "series", bs.Name, "err", err)
	}
}

// labelLines resolves the LabelLines convention: zero means the
// default, negative means none.
func labelLines(n int) int {
	switch {
	case n == 0:
		return 2
	case n < 0:
		return 0
	default:
		return n
	}
}
