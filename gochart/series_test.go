package gochart

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/ggbrace"
	chart "github.com/wcharczuk/go-chart/v2"
)

func TestLabelLines(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"zero takes the default", 0, 2},
		{"negative means none", -1, 0},
		{"positive passes through", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := labelLines(tt.in); got != tt.want {
				t.Errorf("labelLines(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestBraceSeries_Accessors(t *testing.T) {
	bs := BraceSeries{
		Name:  "annotation",
		YAxis: chart.YAxisSecondary,
		Style: chart.Style{StrokeWidth: 3},
	}

	if got := bs.GetName(); got != "annotation" {
		t.Errorf("GetName() = %q", got)
	}
	if got := bs.GetYAxis(); got != chart.YAxisSecondary {
		t.Errorf("GetYAxis() = %v", got)
	}
	if got := bs.GetStyle(); got.StrokeWidth != 3 {
		t.Errorf("GetStyle().StrokeWidth = %v, want 3", got.StrokeWidth)
	}
	if err := bs.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestBraceSeries_Render(t *testing.T) {
	f := &fakeRenderer{}
	box := chart.Box{Left: 0, Top: 0, Right: 200, Bottom: 100}
	xrange := &chart.ContinuousRange{Min: 0, Max: 10, Domain: 200}
	yrange := &chart.ContinuousRange{Min: 0, Max: 5, Domain: 100}

	bs := BraceSeries{
		P1:    ggbrace.Pt(2, 4),
		P2:    ggbrace.Pt(8, 4),
		Label: "ab",
	}
	bs.Render(f, box, xrange, yrange, chart.Style{})

	// Four arcs of fifty samples and two connector segments.
	if f.moves != 6 || f.strokes != 6 {
		t.Errorf("got %d moves and %d strokes, want 6 and 6", f.moves, f.strokes)
	}
	if f.lines != 4*49+2 {
		t.Errorf("got %d line segments, want %d", f.lines, 4*49+2)
	}
	if f.strokeWidth != 1 {
		t.Errorf("stroke width = %v, want the default 1", f.strokeWidth)
	}

	// The default two padding lines follow the label.
	if len(f.texts) != 3 {
		t.Fatalf("got %d text calls, want 3", len(f.texts))
	}
	if f.texts[0].body != "ab" || f.texts[1].body != "" || f.texts[2].body != "" {
		t.Errorf("text bodies = %v", f.texts)
	}
	if f.rotationsSet != 0 {
		t.Errorf("rotation set %d times for a horizontal brace, want 0", f.rotationsSet)
	}

	// Summit maps to pixel (100, -4): the brace bulges above the box.
	got := f.texts[0]
	if got.x < 92 || got.x > 94 {
		t.Errorf("label x = %d, want about 93", got.x)
	}
	if got.y < -15 || got.y > -13 {
		t.Errorf("label y = %d, want about -14", got.y)
	}
}

func TestBraceSeries_Render_LogDomainWarns(t *testing.T) {
	var buf bytes.Buffer
	ggbrace.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { ggbrace.SetLogger(nil) })

	f := &fakeRenderer{}
	box := chart.Box{Left: 0, Top: 0, Right: 200, Bottom: 100}
	xrange := &chart.ContinuousRange{Min: 0, Max: 10, Domain: 200}
	yrange := &chart.LogarithmicRange{Min: 1, Max: 100, Domain: 100}

	bs := BraceSeries{Name: "bad", P1: ggbrace.Pt(2, 0), P2: ggbrace.Pt(8, 10)}
	bs.Render(f, box, xrange, yrange, chart.Style{})

	if f.moves != 0 || f.strokes != 0 || len(f.texts) != 0 {
		t.Error("a brace with a bad log domain should draw nothing")
	}
	if !strings.Contains(buf.String(), "brace series not drawn") {
		t.Errorf("expected a warning in the log, got %q", buf.String())
	}
}

func TestBraceSeries_Chart(t *testing.T) {
	graph := chart.Chart{
		Width:  400,
		Height: 300,
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: []float64{0, 2, 4, 6, 8, 10},
				YValues: []float64{1, 3, 2, 4, 3, 5},
			},
			BraceSeries{
				P1:    ggbrace.Pt(2, 4.2),
				P2:    ggbrace.Pt(8, 4.2),
				Label: "plateau",
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("no image produced")
	}
}
