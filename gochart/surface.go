package gochart

import (
	"image/color"
	"math"
	"strings"

	"github.com/gogpu/ggbrace"
	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// lineSpacing is the gap in pixels between stacked label lines.
const lineSpacing = 5

// Option configures a Surface.
type Option func(*Surface)

// WithFont sets the font used for labels. When nil, the go-chart
// default font is loaded on first use.
func WithFont(f *truetype.Font) Option {
	return func(s *Surface) { s.font = f }
}

// Surface adapts a go-chart renderer and canvas box to ggbrace.Surface.
// The ranges must have their domains set to the box dimensions, which
// is already the case for the arguments a chart passes to its series.
type Surface struct {
	r      chart.Renderer
	box    chart.Box
	xrange chart.Range
	yrange chart.Range
	font   *truetype.Font
}

var _ ggbrace.Surface = (*Surface)(nil)

// New wraps a renderer so braces can be drawn onto the canvas box with
// the given data ranges.
func New(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, opts ...Option) *Surface {
	s := &Surface{r: r, box: canvasBox, xrange: xrange, yrange: yrange}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PixelExtent returns the canvas box size. go-chart boxes are already
// device pixels.
func (s *Surface) PixelExtent() (width, height float64) {
	return float64(s.box.Width()), float64(s.box.Height())
}

func (s *Surface) XAxis() ggbrace.Axis {
	return axisFrom(s.xrange)
}

func (s *Surface) YAxis() ggbrace.Axis {
	return axisFrom(s.yrange)
}

// axisFrom converts a chart range into a brace axis. Logarithmic
// ranges keep their scale; every other range maps as linear.
func axisFrom(rng chart.Range) ggbrace.Axis {
	if _, ok := rng.(*chart.LogarithmicRange); ok {
		return ggbrace.Log(rng.GetMin(), rng.GetMax())
	}
	return ggbrace.Linear(rng.GetMin(), rng.GetMax())
}

// toDevice maps a data point into canvas pixels the way chart series
// do: x from the box left edge, y from the bottom edge upward.
func (s *Surface) toDevice(p ggbrace.Point) (x, y int) {
	return s.box.Left + s.xrange.Translate(p.X), s.box.Bottom - s.yrange.Translate(p.Y)
}

// DrawPolyline strokes the points as one connected open path. Fewer
// than two points stroke nothing. The dash offset is dropped; the
// renderer API has no equivalent.
func (s *Surface) DrawPolyline(points []ggbrace.Point, style ggbrace.LineStyle) error {
	if len(points) < 2 {
		return nil
	}
	s.r.SetStrokeColor(toDrawingColor(style.Color))
	s.r.SetStrokeWidth(style.Width)
	s.r.SetStrokeDashArray(style.Dashes)

	x, y := s.toDevice(points[0])
	s.r.MoveTo(x, y)
	for _, p := range points[1:] {
		x, y = s.toDevice(p)
		s.r.LineTo(x, y)
	}
	s.r.Stroke()
	return nil
}

// DrawText draws text centered on the anchor, rotated by the given
// angle in degrees counter-clockwise. The renderer draws single lines
// from their baseline left corner, so each line's corner is placed by
// rotating its offset within the label block around the anchor.
func (s *Surface) DrawText(at ggbrace.Point, txt string, rotation float64, style ggbrace.TextStyle) error {
	f := s.font
	if f == nil {
		var err error
		f, err = chart.GetDefaultFont()
		if err != nil {
			return err
		}
	}
	s.r.SetFont(f)
	s.r.SetFontSize(style.Size)
	s.r.SetFontColor(toDrawingColor(style.Color))

	ax, ay := s.toDevice(at)
	// The renderer y axis grows downward, so a counter-clockwise data
	// rotation is a negative renderer rotation.
	rad := -rotation * math.Pi / 180
	sin, cos := math.Sincos(rad)

	lines := strings.Split(txt, "\n")
	capH := float64(s.r.MeasureText("M").Height())
	lh := capH + lineSpacing
	for i, line := range lines {
		w := float64(s.r.MeasureText(line).Width())
		// Baseline left corner of this line relative to the anchor, in
		// the label frame: x along the text, y down across lines.
		dx := -w / 2
		dy := (float64(i)-float64(len(lines)-1)/2)*lh + capH/2
		sx := dx*cos - dy*sin
		sy := dx*sin + dy*cos

		if rad != 0 {
			s.r.SetTextRotation(rad)
		}
		s.r.Text(line, ax+int(math.Round(sx)), ay+int(math.Round(sy)))
		if rad != 0 {
			s.r.ClearTextRotation()
		}
	}
	return nil
}

// toDrawingColor converts to the go-chart color model. Nil means black.
func toDrawingColor(c color.Color) drawing.Color {
	if c == nil {
		return drawing.ColorBlack
	}
	r, g, b, a := c.RGBA()
	return drawing.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
