// Package ggbrace draws curly braces on charts.
//
// # Overview
//
// ggbrace computes the geometry of a curly brace (a "{" shape) spanning
// two points in chart data space, with an optional rotated label at the
// brace tip. It does not render anything itself: geometry is handed to a
// Surface, a small interface the host chart library implements. Adapters
// for gogpu/gg, gonum/plot and go-chart ship as sub-packages, and the
// recording sub-package captures draw calls for testing.
//
// # Quick Start
//
//	import "github.com/gogpu/ggbrace"
//
//	// s is any ggbrace.Surface, e.g. ggcanvas.NewRegion(...)
//	res, err := ggbrace.Draw(s, ggbrace.Pt(0, 0), ggbrace.Pt(4, 1),
//	    ggbrace.WithLabel("interval"),
//	)
//
// # Geometry
//
// A brace is four quarter-circle arcs joined by two straight runs. The
// arc radius is a fraction of the endpoint distance, set with
// WithCurvature. The brace opens to the left of the direction from p1 to
// p2; swap the endpoints to flip it. The midpoint of the shape, where the
// two inner arcs meet, is the summit and anchors the label.
//
// # Coordinate System
//
// All public coordinates are chart data coordinates with Y increasing
// upward. Surfaces translate to their own device space; adapters for
// Y-down targets flip internally. By default the geometry is computed in
// pixel space so arcs stay circular when the axes span very different
// ranges, and log-scaled axes are handled by working in log space.
// Angles are in radians internally and degrees at the Surface boundary,
// counterclockwise from the positive X axis.
//
// # Concurrency
//
// Draw keeps no package state apart from the logger and performs no
// synchronization: concurrent Draw calls are safe when they target
// different surfaces, and need external locking when they share one.
package ggbrace
