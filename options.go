package ggbrace

// DefaultResolution is the number of sample points generated per arc when
// no WithResolution option is given.
const DefaultResolution = 50

// Option configures a single Draw call.
// Use functional options to customize brace geometry, label, and styling.
//
// Example:
//
//	// Default brace, no label
//	ggbrace.Draw(s, p1, p2)
//
//	// Tighter curl with a rotated label
//	ggbrace.Draw(s, p1, p2,
//	    ggbrace.WithCurvature(0.05),
//	    ggbrace.WithLabel("span"),
//	)
type Option func(*drawOptions)

// drawOptions holds the configuration assembled from Draw options.
type drawOptions struct {
	curvature   float64
	autoScale   bool
	label       string
	labelOffset int
	resolution  int
	line        LineStyle
	text        TextStyle
}

// defaultDrawOptions returns the default draw options.
func defaultDrawOptions() drawOptions {
	return drawOptions{
		curvature:   0.1,
		autoScale:   true,
		labelOffset: 2,
		resolution:  DefaultResolution,
		line:        DefaultLineStyle(),
		text:        DefaultTextStyle(),
	}
}

// WithCurvature sets the arc radius as a fraction of the distance between
// the brace endpoints. Larger values curl harder; zero collapses the brace
// to a straight line. Default: 0.1
func WithCurvature(k float64) Option {
	return func(o *drawOptions) {
		o.curvature = k
	}
}

// WithAutoScale controls pixel-aspect compensation. When enabled (the
// default), arc radii are computed in pixel space so arcs stay circular
// even when the axes cover very different ranges. Disable it to compute
// geometry directly in data units.
func WithAutoScale(enabled bool) Option {
	return func(o *drawOptions) {
		o.autoScale = enabled
	}
}

// WithLabel sets the text drawn at the brace summit. The empty string
// (the default) draws no label.
func WithLabel(text string) Option {
	return func(o *drawOptions) {
		o.label = text
	}
}

// WithLabelOffset sets how many blank lines pad the label away from the
// brace summit. Negative offsets are treated as zero. Default: 2
func WithLabelOffset(lines int) Option {
	return func(o *drawOptions) {
		o.labelOffset = lines
	}
}

// WithResolution sets the number of sample points per arc. Values below 2
// are raised to 2 so each arc still has distinct endpoints.
// Default: DefaultResolution
func WithResolution(n int) Option {
	return func(o *drawOptions) {
		o.resolution = n
	}
}

// WithLineStyle sets the stroke style for the brace curve.
func WithLineStyle(s LineStyle) Option {
	return func(o *drawOptions) {
		o.line = s
	}
}

// WithTextStyle sets the text style for the brace label.
func WithTextStyle(s TextStyle) Option {
	return func(o *drawOptions) {
		o.text = s
	}
}
