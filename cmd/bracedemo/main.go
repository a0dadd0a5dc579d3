// Command bracedemo draws labeled curly braces over a sample data set.
package main

import (
	"flag"
	"log"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/ggbrace"
	"github.com/gogpu/ggbrace/ggcanvas"
	"golang.org/x/image/font/gofont/goregular"
)

func main() {
	var (
		width     = flag.Int("width", 800, "image width")
		height    = flag.Int("height", 600, "image height")
		output    = flag.String("output", "braces.png", "output file")
		curvature = flag.Float64("curvature", 0.1, "brace curvature")
	)
	flag.Parse()

	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	dc := gg.NewContext(*width, *height)
	dc.ClearWithColor(gg.RGB(1, 1, 1))

	margin := 60.0
	region := ggcanvas.NewRegion(dc,
		margin, margin,
		float64(*width)-2*margin, float64(*height)-2*margin,
		ggcanvas.WithXAxis(ggbrace.Linear(0, 10)),
		ggcanvas.WithYAxis(ggbrace.Linear(0, 5)),
		ggcanvas.WithFont(source),
	)

	drawCurve(region)
	drawBraces(region, *curvature)

	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// drawCurve strokes the sample data the braces annotate.
func drawCurve(region *ggcanvas.Region) {
	curve := make([]ggbrace.Point, 0, 101)
	for i := 0; i <= 100; i++ {
		x := float64(i) / 10
		y := 2.5 + 1.5*math.Sin(x*math.Pi/5)*math.Exp(-x/8)
		curve = append(curve, ggbrace.Pt(x, y))
	}

	style := ggbrace.DefaultLineStyle().WithColor(gg.RGB(0.2, 0.4, 0.8)).WithWidth(2)
	if err := region.DrawPolyline(curve, style); err != nil {
		log.Fatalf("Failed to draw curve: %v", err)
	}
}

// drawBraces annotates three spans of the curve.
func drawBraces(region *ggcanvas.Region, curvature float64) {
	draw := func(p1, p2 ggbrace.Point, opts ...ggbrace.Option) {
		opts = append(opts, ggbrace.WithCurvature(curvature))
		if _, err := ggbrace.Draw(region, p1, p2, opts...); err != nil {
			log.Fatalf("Failed to draw brace: %v", err)
		}
	}

	// Over the first swing, label above.
	draw(ggbrace.Pt(0.5, 4.3), ggbrace.Pt(4.5, 4.3),
		ggbrace.WithLabel("first swing"),
	)

	// Vertical span on the right, read bottom to top.
	draw(ggbrace.Pt(9.3, 0.6), ggbrace.Pt(9.3, 4.4),
		ggbrace.WithLabel("range"),
		ggbrace.WithLabelOffset(1),
	)

	// Dashed brace under the tail. Walking right to left flips the
	// bulge below the curve and the label stays upright.
	draw(ggbrace.Pt(8.5, 1.2), ggbrace.Pt(5.5, 1.2),
		ggbrace.WithLabel("decay"),
		ggbrace.WithLineStyle(ggbrace.DefaultLineStyle().WithDashes(6, 3)),
		ggbrace.WithTextStyle(ggbrace.DefaultTextStyle().WithSize(14)),
	)
}
