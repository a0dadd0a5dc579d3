package gonumplot

import (
	"math"

	"github.com/gogpu/ggbrace"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

// DefaultDPI is the resolution the canvas pixel extent is reported at
// when a Brace does not set one.
const DefaultDPI = 96

// Brace is a plot.Plotter that draws a curly brace between two data
// points, with an optional label at the summit.
//
// Create one with NewBrace; the zero value draws a degenerate brace.
type Brace struct {
	// P1 and P2 are the brace endpoints in data coordinates. The brace
	// bulges to the left of the walk from P1 to P2.
	P1, P2 plotter.XY

	// Curvature scales the arc radius relative to the span.
	Curvature float64

	// AutoScale computes the geometry in screen space so unequal axis
	// scales do not distort the brace.
	AutoScale bool

	// Label is drawn at the summit. Empty means no label.
	Label string

	// LabelLines moves the label away from the summit by whole line
	// heights.
	LabelLines int

	// Resolution is the number of samples per arc.
	Resolution int

	// Style strokes the brace path. Width and dash lengths are printer
	// points.
	Style ggbrace.LineStyle

	// Text styles the label. Size is printer points.
	Text ggbrace.TextStyle

	// DPI converts the canvas size to the pixel extent used by the
	// screen-space geometry. Zero or negative falls back to DefaultDPI.
	DPI float64
}

var (
	_ plot.Plotter    = (*Brace)(nil)
	_ plot.DataRanger = (*Brace)(nil)
)

// NewBrace returns a brace from p1 to p2 with the package defaults:
// curvature 0.1, screen-space geometry, two padding lines for labels
// and a one point black stroke.
func NewBrace(p1, p2 plotter.XY) *Brace {
	return &Brace{
		P1:         p1,
		P2:         p2,
		Curvature:  0.1,
		AutoScale:  true,
		LabelLines: 2,
		Resolution: ggbrace.DefaultResolution,
		Style:      ggbrace.DefaultLineStyle(),
		Text:       ggbrace.DefaultTextStyle(),
		DPI:        DefaultDPI,
	}
}

// Plot implements plot.Plotter. Geometry or domain failures do not
// abort the surrounding plot; they are reported through the ggbrace
// logger at warn level.
func (b *Brace) Plot(c draw.Canvas, plt *plot.Plot) {
	dpi := b.DPI
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	trX, trY := plt.Transforms(&c)
	s := &surface{c: c, plt: plt, trX: trX, trY: trY, dpi: dpi}

	_, err := ggbrace.Draw(s, ggbrace.Pt(b.P1.X, b.P1.Y), ggbrace.Pt(b.P2.X, b.P2.Y),
		ggbrace.WithCurvature(b.Curvature),
		ggbrace.WithAutoScale(b.AutoScale),
		ggbrace.WithLabel(b.Label),
		ggbrace.WithLabelOffset(b.LabelLines),
		ggbrace.WithResolution(b.Resolution),
		ggbrace.WithLineStyle(b.Style),
		ggbrace.WithTextStyle(b.Text),
	)
	if err != nil {
		ggbrace.Logger().Warn("brace not drawn", "err", err)
	}
}

// DataRange implements plot.DataRanger so adding a brace widens the
// axes to cover its endpoints.
func (b *Brace) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin = math.Min(b.P1.X, b.P2.X)
	xmax = math.Max(b.P1.X, b.P2.X)
	ymin = math.Min(b.P1.Y, b.P2.Y)
	ymax = math.Max(b.P1.Y, b.P2.Y)
	return xmin, xmax, ymin, ymax
}
