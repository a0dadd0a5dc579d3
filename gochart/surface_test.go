package gochart

import (
	"image/color"
	"io"
	"math"
	"testing"

	"github.com/gogpu/ggbrace"
	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type fakeText struct {
	body     string
	x, y     int
	rotation float64
}

// fakeRenderer records the drawing calls a Surface issues. Text boxes
// measure 7 pixels per rune and 10 pixels tall.
type fakeRenderer struct {
	strokeColor drawing.Color
	strokeWidth float64
	dashes      []float64
	fontColor   drawing.Color
	fontSize    float64
	font        *truetype.Font

	moves   int
	lines   int
	strokes int
	texts   []fakeText

	rotation         float64
	rotationSet      bool
	rotationsSet     int
	rotationsCleared int
}

func (f *fakeRenderer) ResetStyle()                                  {}
func (f *fakeRenderer) GetDPI() float64                              { return 72 }
func (f *fakeRenderer) SetDPI(float64)                               {}
func (f *fakeRenderer) SetClassName(string)                          {}
func (f *fakeRenderer) SetStrokeColor(c drawing.Color)               { f.strokeColor = c }
func (f *fakeRenderer) SetFillColor(drawing.Color)                   {}
func (f *fakeRenderer) SetStrokeWidth(w float64)                     { f.strokeWidth = w }
func (f *fakeRenderer) SetStrokeDashArray(d []float64)               { f.dashes = d }
func (f *fakeRenderer) MoveTo(x, y int)                              { f.moves++ }
func (f *fakeRenderer) LineTo(x, y int)                              { f.lines++ }
func (f *fakeRenderer) QuadCurveTo(cx, cy, x, y int)                 {}
func (f *fakeRenderer) ArcTo(cx, cy int, rx, ry, start, delta float64) {}
func (f *fakeRenderer) Close()                                       {}
func (f *fakeRenderer) Stroke()                                      { f.strokes++ }
func (f *fakeRenderer) Fill()                                        {}
func (f *fakeRenderer) FillStroke()                                  {}
func (f *fakeRenderer) Circle(radius float64, x, y int)              {}
func (f *fakeRenderer) SetFont(ft *truetype.Font)                    { f.font = ft }
func (f *fakeRenderer) SetFontColor(c drawing.Color)                 { f.fontColor = c }
func (f *fakeRenderer) SetFontSize(s float64)                        { f.fontSize = s }

func (f *fakeRenderer) Text(body string, x, y int) {
	var rot float64
	if f.rotationSet {
		rot = f.rotation
	}
	f.texts = append(f.texts, fakeText{body: body, x: x, y: y, rotation: rot})
}

func (f *fakeRenderer) MeasureText(body string) chart.Box {
	return chart.Box{Right: 7 * len(body), Bottom: 10}
}

func (f *fakeRenderer) SetTextRotation(r float64) {
	f.rotation = r
	f.rotationSet = true
	f.rotationsSet++
}

func (f *fakeRenderer) ClearTextRotation() {
	f.rotationSet = false
	f.rotationsCleared++
}

func (f *fakeRenderer) Save(io.Writer) error { return nil }

func testSurface(f *fakeRenderer) *Surface {
	box := chart.Box{Left: 10, Top: 10, Right: 210, Bottom: 110}
	xrange := &chart.ContinuousRange{Min: 0, Max: 10, Domain: 200}
	yrange := &chart.ContinuousRange{Min: 0, Max: 5, Domain: 100}
	return New(f, box, xrange, yrange)
}

func TestSurface_PixelExtent(t *testing.T) {
	s := testSurface(&fakeRenderer{})
	w, h := s.PixelExtent()
	if w != 200 || h != 100 {
		t.Errorf("PixelExtent() = (%v, %v), want (200, 100)", w, h)
	}
}

func TestAxisFrom(t *testing.T) {
	lin := axisFrom(&chart.ContinuousRange{Min: -2, Max: 7})
	if want := ggbrace.Linear(-2, 7); lin != want {
		t.Errorf("continuous range = %+v, want %+v", lin, want)
	}

	lg := axisFrom(&chart.LogarithmicRange{Min: 1, Max: 1000})
	if want := ggbrace.Log(1, 1000); lg != want {
		t.Errorf("logarithmic range = %+v, want %+v", lg, want)
	}
}

func TestSurface_ToDevice(t *testing.T) {
	s := testSurface(&fakeRenderer{})

	tests := []struct {
		name  string
		p     ggbrace.Point
		wantX int
		wantY int
	}{
		{"origin", ggbrace.Pt(0, 0), 10, 110},
		{"far corner", ggbrace.Pt(10, 5), 210, 10},
		{"center", ggbrace.Pt(5, 2.5), 110, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := s.toDevice(tt.p)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("toDevice(%v) = (%d, %d), want (%d, %d)",
					tt.p, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestSurface_DrawPolyline(t *testing.T) {
	f := &fakeRenderer{}
	s := testSurface(f)

	style := ggbrace.DefaultLineStyle().WithWidth(2).WithDashes(4, 2)
	pts := []ggbrace.Point{ggbrace.Pt(0, 0), ggbrace.Pt(5, 2.5), ggbrace.Pt(10, 5)}
	if err := s.DrawPolyline(pts, style); err != nil {
		t.Fatalf("DrawPolyline: %v", err)
	}

	if f.moves != 1 || f.lines != 2 || f.strokes != 1 {
		t.Errorf("calls = %d moves, %d lines, %d strokes; want 1, 2, 1",
			f.moves, f.lines, f.strokes)
	}
	if f.strokeColor != drawing.ColorBlack {
		t.Errorf("stroke color = %+v, want black", f.strokeColor)
	}
	if f.strokeWidth != 2 {
		t.Errorf("stroke width = %v, want 2", f.strokeWidth)
	}
	if len(f.dashes) != 2 || f.dashes[0] != 4 || f.dashes[1] != 2 {
		t.Errorf("dash array = %v, want [4 2]", f.dashes)
	}

	if err := s.DrawPolyline(pts[:1], style); err != nil {
		t.Errorf("DrawPolyline with one point = %v, want nil", err)
	}
	if f.strokes != 1 {
		t.Error("a single point should not stroke")
	}
}

func TestSurface_DrawText(t *testing.T) {
	f := &fakeRenderer{}
	s := testSurface(f)

	err := s.DrawText(ggbrace.Pt(5, 2.5), "hi", 0, ggbrace.DefaultTextStyle())
	if err != nil {
		t.Fatalf("DrawText: %v", err)
	}

	if len(f.texts) != 1 {
		t.Fatalf("got %d text calls, want 1", len(f.texts))
	}
	// Anchor (110, 60); the 14x10 box centers to a baseline left corner
	// at (-7, +5) from it.
	got := f.texts[0]
	if got.body != "hi" || got.x != 103 || got.y != 65 {
		t.Errorf("text = %+v, want {hi 103 65}", got)
	}
	if f.rotationsSet != 0 {
		t.Errorf("rotation set %d times for horizontal text, want 0", f.rotationsSet)
	}
	if f.font == nil {
		t.Error("default font was not loaded")
	}
	if f.fontSize != 12 {
		t.Errorf("font size = %v, want 12", f.fontSize)
	}
	if f.fontColor != drawing.ColorBlack {
		t.Errorf("font color = %+v, want black", f.fontColor)
	}
}

func TestSurface_DrawText_Rotated(t *testing.T) {
	f := &fakeRenderer{}
	s := testSurface(f)

	err := s.DrawText(ggbrace.Pt(5, 2.5), "a\nb", 90, ggbrace.DefaultTextStyle())
	if err != nil {
		t.Fatalf("DrawText: %v", err)
	}

	if len(f.texts) != 2 {
		t.Fatalf("got %d text calls, want 2", len(f.texts))
	}
	if f.rotationsSet != 2 || f.rotationsCleared != 2 {
		t.Errorf("rotation set %d and cleared %d times, want 2 and 2",
			f.rotationsSet, f.rotationsCleared)
	}
	for i, txt := range f.texts {
		if math.Abs(txt.rotation-(-math.Pi/2)) > 1e-12 {
			t.Errorf("texts[%d].rotation = %v, want -pi/2", i, txt.rotation)
		}
	}
	// Rotating 90 degrees counter-clockwise turns the downward line
	// stacking into rightward screen steps of one line height.
	dx := f.texts[1].x - f.texts[0].x
	dy := f.texts[1].y - f.texts[0].y
	if dx < 14 || dx > 16 {
		t.Errorf("second line offset x = %d, want about 15", dx)
	}
	if dy < -1 || dy > 1 {
		t.Errorf("second line offset y = %d, want about 0", dy)
	}
}

func TestToDrawingColor(t *testing.T) {
	if got := toDrawingColor(nil); got != drawing.ColorBlack {
		t.Errorf("nil = %+v, want black", got)
	}
	if got := toDrawingColor(color.RGBA{R: 255, A: 255}); got != (drawing.Color{R: 255, A: 255}) {
		t.Errorf("red = %+v, want {255 0 0 255}", got)
	}
	if got := toDrawingColor(color.Black); got != (drawing.Color{A: 255}) {
		t.Errorf("black = %+v, want {0 0 0 255}", got)
	}
}
