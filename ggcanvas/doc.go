// Package ggcanvas renders brace annotations onto a gg drawing context.
//
// A Region ties a rectangle on a gg.Context to data-space axes. Anything
// drawn through the Region is positioned by data coordinates and mapped
// into the rectangle, with the vertical axis flipped to match gg's
// y-down device space.
//
//	dc := gg.NewContext(800, 600)
//	source, err := text.NewFontSource(goregular.TTF)
//	if err != nil {
//		log.Fatal(err)
//	}
//	region := ggcanvas.NewRegion(dc, 60, 40, 680, 520,
//		ggcanvas.WithXAxis(ggbrace.Linear(0, 10)),
//		ggcanvas.WithYAxis(ggbrace.Log(1, 1000)),
//		ggcanvas.WithFont(source),
//	)
//	_, err = ggbrace.Draw(region, ggbrace.Pt(2, 1000), ggbrace.Pt(8, 1000),
//		ggbrace.WithLabel("plateau"))
//
// Labels require a font source. A Region without one returns ErrNoFont
// when a label is drawn; braces without labels never touch the font.
package ggcanvas
