package ggbrace

// Surface is the interface a host drawing target implements so braces can
// be laid out and drawn on it. Implementations translate data-space
// coordinates into whatever device space the host uses; the geometry
// engine never sees device coordinates.
type Surface interface {
	// PixelExtent returns the width and height of the drawable region in
	// pixels. The extent feeds the pixels-per-unit scale factors that keep
	// brace arcs circular on anisotropic axes.
	PixelExtent() (width, height float64)

	// XAxis returns the horizontal axis limits and scale.
	XAxis() Axis

	// YAxis returns the vertical axis limits and scale.
	YAxis() Axis

	// DrawPolyline strokes a connected line sequence through the given
	// data-space points. Returns an error if the host fails to draw.
	DrawPolyline(points []Point, style LineStyle) error

	// DrawText draws text centered on the given data-space point, rotated
	// counterclockwise by rotation degrees about that point. Returns an
	// error if the host fails to draw.
	DrawText(at Point, text string, rotation float64, style TextStyle) error
}
