package recording

import "github.com/gogpu/ggbrace"

// CommandType identifies the type of a recorded command.
type CommandType uint8

const (
	// CmdPolyline strokes a connected line sequence.
	CmdPolyline CommandType = iota
	// CmdText draws rotated text.
	CmdText
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdPolyline: "Polyline",
	CmdText:     "Text",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all recorded commands.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// PolylineCommand records one DrawPolyline call.
type PolylineCommand struct {
	// Points are the polyline vertices in data space.
	Points []ggbrace.Point
	// Style is the stroke style the polyline was drawn with.
	Style ggbrace.LineStyle
}

// Type implements Command.
func (PolylineCommand) Type() CommandType { return CmdPolyline }

// TextCommand records one DrawText call.
type TextCommand struct {
	// At is the data-space point the text is centered on.
	At ggbrace.Point
	// Text is the drawn string, including any padding lines.
	Text string
	// Rotation is the counterclockwise rotation in degrees.
	Rotation float64
	// Style is the text style.
	Style ggbrace.TextStyle
}

// Type implements Command.
func (TextCommand) Type() CommandType { return CmdText }
