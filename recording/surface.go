package recording

import "github.com/gogpu/ggbrace"

// Surface is a ggbrace.Surface that records draw calls as commands instead
// of rendering them. Create one with New; the zero value has no extent and
// degenerate axes.
//
// The Surface is not safe for concurrent use.
type Surface struct {
	width, height float64
	x, y          ggbrace.Axis
	commands      []Command
}

// New creates a recording surface with the given pixel extent and axes.
func New(width, height float64, x, y ggbrace.Axis) *Surface {
	return &Surface{
		width:    width,
		height:   height,
		x:        x,
		y:        y,
		commands: make([]Command, 0, 8),
	}
}

// PixelExtent implements ggbrace.Surface.
func (s *Surface) PixelExtent() (width, height float64) {
	return s.width, s.height
}

// XAxis implements ggbrace.Surface.
func (s *Surface) XAxis() ggbrace.Axis { return s.x }

// YAxis implements ggbrace.Surface.
func (s *Surface) YAxis() ggbrace.Axis { return s.y }

// DrawPolyline implements ggbrace.Surface. The points are copied, so the
// recorded command stays valid if the caller reuses the slice.
func (s *Surface) DrawPolyline(points []ggbrace.Point, style ggbrace.LineStyle) error {
	cp := make([]ggbrace.Point, len(points))
	copy(cp, points)
	s.commands = append(s.commands, PolylineCommand{Points: cp, Style: style})
	return nil
}

// DrawText implements ggbrace.Surface.
func (s *Surface) DrawText(at ggbrace.Point, text string, rotation float64, style ggbrace.TextStyle) error {
	s.commands = append(s.commands, TextCommand{At: at, Text: text, Rotation: rotation, Style: style})
	return nil
}

// Commands returns the recorded commands in draw order.
func (s *Surface) Commands() []Command {
	return s.commands
}

// Polylines returns the recorded polyline commands in draw order.
func (s *Surface) Polylines() []PolylineCommand {
	out := make([]PolylineCommand, 0, len(s.commands))
	for _, cmd := range s.commands {
		if c, ok := cmd.(PolylineCommand); ok {
			out = append(out, c)
		}
	}
	return out
}

// Texts returns the recorded text commands in draw order.
func (s *Surface) Texts() []TextCommand {
	out := make([]TextCommand, 0, len(s.commands))
	for _, cmd := range s.commands {
		if c, ok := cmd.(TextCommand); ok {
			out = append(out, c)
		}
	}
	return out
}

// Reset discards all recorded commands, keeping the extent and axes.
func (s *Surface) Reset() {
	s.commands = s.commands[:0]
}

// Playback replays the recorded commands onto another surface in order.
// It stops at the first error and returns it.
func (s *Surface) Playback(dst ggbrace.Surface) error {
	for _, cmd := range s.commands {
		switch c := cmd.(type) {
		case PolylineCommand:
			if err := dst.DrawPolyline(c.Points, c.Style); err != nil {
				return err
			}
		case TextCommand:
			if err := dst.DrawText(c.At, c.Text, c.Rotation, c.Style); err != nil {
				return err
			}
		}
	}
	return nil
}
