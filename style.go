package ggbrace

import "image/color"

// FontWeight selects the weight of the label font on surfaces that
// distinguish weights. Surfaces without weighted fonts may ignore it.
type FontWeight int

const (
	// WeightNormal is the regular font weight.
	WeightNormal FontWeight = iota
	// WeightBold is the bold font weight.
	WeightBold
)

// String returns the string representation of a FontWeight.
func (w FontWeight) String() string {
	switch w {
	case WeightNormal:
		return "normal"
	case WeightBold:
		return "bold"
	}
	return "unknown"
}

// LineStyle defines how the brace curve is stroked.
type LineStyle struct {
	// Color is the stroke color. Default: black.
	Color color.Color

	// Width is the stroke width in pixels. Default: 1.0
	Width float64

	// Dashes is the dash pattern in pixels. nil means a solid line.
	Dashes []float64

	// DashOffset is the distance into the dash pattern at which to start.
	DashOffset float64
}

// DefaultLineStyle returns a LineStyle with default settings:
// a solid 1-pixel black line.
func DefaultLineStyle() LineStyle {
	return LineStyle{
		Color: color.Black,
		Width: 1.0,
	}
}

// WithColor returns a copy of the LineStyle with the given color.
func (s LineStyle) WithColor(c color.Color) LineStyle {
	s.Color = c
	return s
}

// WithWidth returns a copy of the LineStyle with the given width.
func (s LineStyle) WithWidth(w float64) LineStyle {
	s.Width = w
	return s
}

// WithDashes returns a copy of the LineStyle with the given dash pattern.
// Pass no lengths to remove dashing and return to solid lines.
func (s LineStyle) WithDashes(lengths ...float64) LineStyle {
	if len(lengths) == 0 {
		s.Dashes = nil
		return s
	}
	s.Dashes = append([]float64(nil), lengths...)
	return s
}

// WithDashOffset returns a copy of the LineStyle with the dash offset set.
func (s LineStyle) WithDashOffset(offset float64) LineStyle {
	s.DashOffset = offset
	return s
}

// IsDashed returns true if this style has a dash pattern.
func (s LineStyle) IsDashed() bool {
	return len(s.Dashes) > 0
}

// TextStyle defines how the brace label is drawn.
type TextStyle struct {
	// Color is the text color. Default: black.
	Color color.Color

	// Size is the font size in points. Default: 12.0
	Size float64

	// Weight is the font weight. Default: WeightNormal
	Weight FontWeight
}

// DefaultTextStyle returns a TextStyle with default settings:
// 12-point normal-weight black text.
func DefaultTextStyle() TextStyle {
	return TextStyle{
		Color:  color.Black,
		Size:   12.0,
		Weight: WeightNormal,
	}
}

// WithColor returns a copy of the TextStyle with the given color.
func (s TextStyle) WithColor(c color.Color) TextStyle {
	s.Color = c
	return s
}

// WithSize returns a copy of the TextStyle with the given font size.
func (s TextStyle) WithSize(size float64) TextStyle {
	s.Size = size
	return s
}

// WithWeight returns a copy of the TextStyle with the given font weight.
func (s TextStyle) WithWeight(w FontWeight) TextStyle {
	s.Weight = w
	return s
}
