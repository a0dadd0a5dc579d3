// Package recording provides a brace surface that records draw calls.
//
// The recording surface captures polyline and text operations as typed
// command structures instead of rendering them. Commands can be inspected
// in tests or replayed onto a real surface with Playback.
//
// # Example
//
//	rec := recording.New(800, 600, ggbrace.Linear(0, 10), ggbrace.Linear(0, 5))
//
//	_, err := ggbrace.Draw(rec, ggbrace.Pt(2, 1), ggbrace.Pt(8, 1),
//	    ggbrace.WithLabel("window"),
//	)
//	if err != nil {
//	    // handle error
//	}
//
//	for _, cmd := range rec.Commands() {
//	    fmt.Println(cmd.Type())
//	}
//
//	// Replay onto a real surface once one is available.
//	err = rec.Playback(region)
package recording
