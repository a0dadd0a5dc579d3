package ggcanvas

import (
	"errors"
	"image/color"
	"math"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/ggbrace"
)

// Common errors returned by Region operations.
var (
	// ErrNilContext is returned when a Region created without a drawing
	// context is drawn to.
	ErrNilContext = errors.New("ggcanvas: nil drawing context")

	// ErrNoFont is returned when a label is drawn on a Region that has no
	// font source configured.
	ErrNoFont = errors.New("ggcanvas: no font source configured")
)

// Option configures a Region.
type Option func(*Region)

// WithXAxis sets the horizontal data axis. The default spans 0 to 1,
// linear.
func WithXAxis(a ggbrace.Axis) Option {
	return func(r *Region) { r.xaxis = a }
}

// WithYAxis sets the vertical data axis. The default spans 0 to 1,
// linear.
func WithYAxis(a ggbrace.Axis) Option {
	return func(r *Region) { r.yaxis = a }
}

// WithScale multiplies the region size reported as the pixel extent.
// Use it when the drawing context is rendered at a density other than
// one device pixel per unit, so aspect-dependent geometry still matches
// what ends up on screen. The default is 1.
func WithScale(factor float64) Option {
	return func(r *Region) { r.scale = factor }
}

// WithFont sets the font source used for labels. A Region without a
// font source rejects labels with ErrNoFont.
func WithFont(source *text.FontSource) Option {
	return func(r *Region) { r.font = source }
}

// Region couples a rectangle on a gg drawing context with data-space
// axes. Geometry drawn through the Region is positioned in data
// coordinates and mapped into the rectangle, flipping the vertical axis
// to match gg's y-down device space.
//
// Region implements ggbrace.Surface. It is not safe for concurrent use;
// the underlying context is not either.
type Region struct {
	dc     *gg.Context
	ox, oy float64
	width  float64
	height float64
	scale  float64
	xaxis  ggbrace.Axis
	yaxis  ggbrace.Axis
	font   *text.FontSource
}

// NewRegion creates a Region covering the rectangle with top-left corner
// (x, y) and the given size, in device coordinates of dc.
func NewRegion(dc *gg.Context, x, y, width, height float64, opts ...Option) *Region {
	r := &Region{
		dc:     dc,
		ox:     x,
		oy:     y,
		width:  width,
		height: height,
		scale:  1,
		xaxis:  ggbrace.Linear(0, 1),
		yaxis:  ggbrace.Linear(0, 1),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// PixelExtent returns the region size scaled by the configured factor.
func (r *Region) PixelExtent() (width, height float64) {
	return r.width * r.scale, r.height * r.scale
}

// XAxis returns the horizontal data axis.
func (r *Region) XAxis() ggbrace.Axis { return r.xaxis }

// YAxis returns the vertical data axis.
func (r *Region) YAxis() ggbrace.Axis { return r.yaxis }

// toDevice maps a data point onto the underlying context. Data space
// grows upward, device space downward, so the vertical fraction flips.
func (r *Region) toDevice(p ggbrace.Point) (x, y float64) {
	fx := r.xaxis.Norm(p.X)
	fy := r.yaxis.Norm(p.Y)
	return r.ox + fx*r.width, r.oy + (1-fy)*r.height
}

// DrawPolyline strokes the points as one connected open path. Fewer than
// two points stroke nothing.
func (r *Region) DrawPolyline(points []ggbrace.Point, style ggbrace.LineStyle) error {
	if r.dc == nil {
		return ErrNilContext
	}
	if len(points) < 2 {
		return nil
	}

	col := style.Color
	if col == nil {
		col = color.Black
	}
	r.dc.SetColor(col)
	r.dc.SetLineWidth(style.Width)
	if style.IsDashed() {
		r.dc.SetDash(style.Dashes...)
		r.dc.SetDashOffset(style.DashOffset)
		defer r.dc.ClearDash()
	}

	x, y := r.toDevice(points[0])
	r.dc.MoveTo(x, y)
	for _, p := range points[1:] {
		x, y = r.toDevice(p)
		r.dc.LineTo(x, y)
	}
	return r.dc.Stroke()
}

// DrawText draws text centered on the anchor point, rotated by the given
// angle in degrees counter-clockwise. Multi-line text is split on '\n'
// and stacked by the face line height, the block centered on the anchor.
func (r *Region) DrawText(at ggbrace.Point, s string, rotation float64, style ggbrace.TextStyle) error {
	if r.dc == nil {
		return ErrNilContext
	}
	if r.font == nil {
		return ErrNoFont
	}

	face := r.font.Face(style.Size)
	prev := r.dc.Font()
	r.dc.SetFont(face)
	defer r.dc.SetFont(prev)

	col := style.Color
	if col == nil {
		col = color.Black
	}
	r.dc.SetColor(col)

	ax, ay := r.toDevice(at)

	r.dc.Push()
	defer r.dc.Pop()
	// A counter-clockwise rotation in data space is clockwise on the
	// y-down context.
	r.dc.RotateAbout(-rotation*math.Pi/180, ax, ay)

	lines := strings.Split(s, "\n")
	lh := face.Metrics().LineHeight()
	top := ay - lh*float64(len(lines)-1)/2
	for i, line := range lines {
		r.dc.DrawStringAnchored(line, ax, top+float64(i)*lh, 0.5, 0.5)
	}
	return nil
}
