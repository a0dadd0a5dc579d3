package gonumplot

import (
	"image/color"
	"math"

	"github.com/gogpu/ggbrace"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// surface adapts a plot's data canvas to ggbrace.Surface. The vg
// coordinate system already grows upward, so no vertical flip is
// needed; data coordinates map through the plot transforms.
type surface struct {
	c        draw.Canvas
	plt      *plot.Plot
	trX, trY func(float64) vg.Length
	dpi      float64
}

var _ ggbrace.Surface = (*surface)(nil)

// PixelExtent reports the data area size in pixels at the configured
// resolution. vg lengths are printer points, 72 per inch.
func (s *surface) PixelExtent() (width, height float64) {
	sz := s.c.Rectangle.Size()
	return float64(sz.X) * s.dpi / 72, float64(sz.Y) * s.dpi / 72
}

func (s *surface) XAxis() ggbrace.Axis {
	return axisFrom(s.plt.X.Min, s.plt.X.Max, s.plt.X.Scale)
}

func (s *surface) YAxis() ggbrace.Axis {
	return axisFrom(s.plt.Y.Min, s.plt.Y.Max, s.plt.Y.Scale)
}

// axisFrom converts plot axis limits and their normalizer into a brace
// axis. Anything that is not a log scale maps as linear.
func axisFrom(min, max float64, scale plot.Normalizer) ggbrace.Axis {
	if _, ok := scale.(plot.LogScale); ok {
		return ggbrace.Log(min, max)
	}
	return ggbrace.Linear(min, max)
}

// DrawPolyline strokes the points clipped to the data area.
func (s *surface) DrawPolyline(points []ggbrace.Point, style ggbrace.LineStyle) error {
	if len(points) < 2 {
		return nil
	}
	line := make([]vg.Point, len(points))
	for i, p := range points {
		line[i] = vg.Point{X: s.trX(p.X), Y: s.trY(p.Y)}
	}
	s.c.StrokeLines(lineStyle(style), s.c.ClipLinesXY(line)...)
	return nil
}

// DrawText fills the text centered on the anchor, rotated counter-
// clockwise. Multi-line text is handled by the plot's text handler.
func (s *surface) DrawText(at ggbrace.Point, txt string, rotation float64, style ggbrace.TextStyle) error {
	col := style.Color
	if col == nil {
		col = color.Black
	}
	fnt := font.From(plot.DefaultFont, vg.Points(style.Size))
	if style.Weight == ggbrace.WeightBold {
		fnt.Weight = xfont.WeightBold
	}
	sty := text.Style{
		Color:    col,
		Font:     fnt,
		Rotation: rotation * math.Pi / 180,
		XAlign:   text.XCenter,
		YAlign:   text.YCenter,
		Handler:  s.plt.TextHandler,
	}
	s.c.FillText(sty, vg.Point{X: s.trX(at.X), Y: s.trY(at.Y)}, txt)
	return nil
}

// lineStyle maps a brace stroke style onto the vg drawing model. Width
// and dash lengths are interpreted as printer points.
func lineStyle(style ggbrace.LineStyle) draw.LineStyle {
	col := style.Color
	if col == nil {
		col = color.Black
	}
	ls := draw.LineStyle{
		Color:    col,
		Width:    vg.Points(style.Width),
		DashOffs: vg.Points(style.DashOffset),
	}
	if style.IsDashed() {
		ls.Dashes = make([]vg.Length, len(style.Dashes))
		for i, d := range style.Dashes {
			ls.Dashes[i] = vg.Points(d)
		}
	}
	return ls
}
