package ggbrace

import (
	"math"
	"strings"
)

// Result holds the geometry computed for one brace. All coordinates are in
// data space, ready to feed back into the host chart.
type Result struct {
	// Theta is the brace orientation in radians, measured from p1 toward
	// p2 in the (possibly pixel-compensated) working space.
	Theta float64

	// Summit is the tip of the brace, where the label is anchored.
	Summit Point

	// Arc1, Arc2, Arc3, Arc4 are the sampled arc polylines in draw order:
	// Arc1 starts at p1, Arc2 ends at the summit, Arc3 starts at the
	// summit side, Arc4 ends at p2.
	Arc1, Arc2, Arc3, Arc4 []Point
}

// Draw computes a curly brace spanning p1 to p2 and draws it on s.
// The brace opens to the left of the direction from p1 to p2, so swapping
// the endpoints flips it to the other side.
//
// Draw validates log-axis domains before touching the surface: if any
// endpoint coordinate or axis limit is non-positive on a log axis, it
// returns an error wrapping ErrLogDomain and draws nothing. Errors from
// the surface are returned as-is, possibly after some geometry has been
// drawn.
//
// Degenerate input is not an error: coincident endpoints or zero curvature
// produce a collapsed brace and draw normally.
func Draw(s Surface, p1, p2 Point, opts ...Option) (*Result, error) {
	if s == nil {
		return nil, ErrNilSurface
	}
	o := defaultDrawOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.resolution < 2 {
		o.resolution = 2
	}
	if o.labelOffset < 0 {
		o.labelOffset = 0
	}

	width, height := s.PixelExtent()
	xaxis, yaxis := s.XAxis(), s.YAxis()

	if err := checkLogDomain(xaxis, yaxis, p1, p2); err != nil {
		return nil, err
	}

	g := computeBrace(width, height, xaxis, yaxis, p1, p2, o)

	Logger().Debug("brace geometry",
		"theta", g.theta,
		"summit_x", g.summit.X,
		"summit_y", g.summit.Y,
	)

	for _, arc := range [4][]Point{g.arc1, g.arc2, g.arc3, g.arc4} {
		if err := s.DrawPolyline(arc, o.line); err != nil {
			return nil, err
		}
	}

	// The two straight runs of the brace connect the outer arcs to the
	// inner ones. The inner endpoints are the second sample, not the
	// first: the first sample overlaps the neighbouring arc.
	seg1 := []Point{g.arc1[len(g.arc1)-1], g.arc2[1]}
	seg2 := []Point{g.arc3[len(g.arc3)-1], g.arc4[1]}
	if err := s.DrawPolyline(seg1, o.line); err != nil {
		return nil, err
	}
	if err := s.DrawPolyline(seg2, o.line); err != nil {
		return nil, err
	}

	if o.label != "" {
		text, rotation := layoutLabel(o.label, o.labelOffset, g.theta)
		if err := s.DrawText(g.summit, text, rotation, o.text); err != nil {
			return nil, err
		}
	}

	return &Result{
		Theta:  g.theta,
		Summit: g.summit,
		Arc1:   g.arc1,
		Arc2:   g.arc2,
		Arc3:   g.arc3,
		Arc4:   g.arc4,
	}, nil
}

// checkLogDomain rejects endpoints and axis limits that a log axis cannot
// represent. Run before any drawing so a failed Draw leaves the surface
// untouched.
func checkLogDomain(xaxis, yaxis Axis, p1, p2 Point) error {
	checks := []struct {
		axis Axis
		name string
		v    float64
	}{
		{xaxis, "p1.X", p1.X},
		{xaxis, "p2.X", p2.X},
		{xaxis, "x axis min", xaxis.Min},
		{xaxis, "x axis max", xaxis.Max},
		{yaxis, "p1.Y", p1.Y},
		{yaxis, "p2.Y", p2.Y},
		{yaxis, "y axis min", yaxis.Min},
		{yaxis, "y axis max", yaxis.Max},
	}
	for _, c := range checks {
		if err := c.axis.checkDomain(c.name, c.v); err != nil {
			return err
		}
	}
	return nil
}

// brace is the computed geometry in data space.
type brace struct {
	theta                  float64
	summit                 Point
	arc1, arc2, arc3, arc4 []Point
}

// computeBrace builds the brace geometry. The shape is four quarter-circle
// arcs: a small curl away from each endpoint and a mirrored pair meeting
// at the summit, joined by two straight runs.
//
// Geometry is computed in a lifted working space: log axes contribute
// ln-transformed coordinates, and when auto-scale is on everything is
// additionally mapped to pixels so the arcs stay circular regardless of
// axis ranges. Samples are mapped back to data space before returning.
func computeBrace(width, height float64, xaxis, yaxis Axis, p1, p2 Point, o drawOptions) brace {
	xmin := xaxis.lift(xaxis.Min)
	xmax := xaxis.lift(xaxis.Max)
	ymin := yaxis.lift(yaxis.Min)
	ymax := yaxis.lift(yaxis.Max)

	xscale, yscale := 1.0, 1.0
	if o.autoScale {
		xscale = width / (xmax - xmin)
		yscale = height / (ymax - ymin)
	}

	n1 := Point{X: (xaxis.lift(p1.X) - xmin) * xscale, Y: (yaxis.lift(p1.Y) - ymin) * yscale}
	n2 := Point{X: (xaxis.lift(p2.X) - xmin) * xscale, Y: (yaxis.lift(p2.Y) - ymin) * yscale}

	theta := n1.Angle(n2)
	r := o.curvature * n1.Distance(n2)

	sin, cos := math.Sincos(theta)
	mid := n1.Midpoint(n2)

	c1 := Point{X: n1.X + r*cos, Y: n1.Y + r*sin}
	c2 := Point{X: mid.X - 2*r*sin - r*cos, Y: mid.Y + 2*r*cos - r*sin}
	c3 := Point{X: mid.X - 2*r*sin + r*cos, Y: mid.Y + 2*r*cos + r*sin}
	c4 := Point{X: n2.X - r*cos, Y: n2.Y - r*sin}

	fwd := arcAngles(theta, o.resolution)
	rev := reversed(fwd)

	arc1 := sampleArc(c1, r, rev, math.Pi/2)
	arc2 := sampleArc(c2, r, fwd, -math.Pi/2)
	arc3 := sampleArc(c3, r, fwd, math.Pi)
	arc4 := sampleArc(c4, r, rev, 0)

	unlift := func(pts []Point) {
		for i := range pts {
			pts[i].X = xaxis.lower(pts[i].X/xscale + xmin)
			pts[i].Y = yaxis.lower(pts[i].Y/yscale + ymin)
		}
	}
	unlift(arc1)
	unlift(arc2)
	unlift(arc3)
	unlift(arc4)

	return brace{
		theta:  theta,
		summit: arc2[len(arc2)-1],
		arc1:   arc1,
		arc2:   arc2,
		arc3:   arc3,
		arc4:   arc4,
	}
}

// arcAngles returns n evenly spaced angles covering the quarter turn from
// start to start+pi/2, inclusive at both ends. The final angle is pinned
// so accumulated step error cannot pull the arc off its anchor point.
func arcAngles(start float64, n int) []float64 {
	out := make([]float64, n)
	step := (math.Pi / 2) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = start + math.Pi/2
	return out
}

// reversed returns the angles in reverse order.
func reversed(a []float64) []float64 {
	out := make([]float64, len(a))
	for i, v := range a {
		out[len(a)-1-i] = v
	}
	return out
}

// sampleArc evaluates a circle of radius r around center at each angle,
// shifted by phase.
func sampleArc(center Point, r float64, angles []float64, phase float64) []Point {
	pts := make([]Point, len(angles))
	for i, a := range angles {
		sin, cos := math.Sincos(a + phase)
		pts[i] = Point{X: center.X + r*cos, Y: center.Y + r*sin}
	}
	return pts
}

// layoutLabel pads the label away from the summit with blank lines and
// picks a rotation that keeps it upright relative to the brace.
//
// The angle branches are intentionally uneven: exactly 90 and exactly 270
// degrees keep the unflipped rotation, while everything strictly between
// them is flipped by 180 with the padding moved to the other side.
func layoutLabel(label string, offset int, theta float64) (text string, rotation float64) {
	pad := strings.Repeat("\n", offset)
	// Dividing by Pi before scaling keeps quadrant angles exact: Atan2
	// returns precise multiples of Pi/2 there, so a vertical brace lands
	// on ang == 90 or ang == 270 rather than a neighbouring float.
	ang := math.Mod(theta/math.Pi*180, 360)
	if ang < 0 {
		ang += 360
	}
	switch {
	case ang <= 90:
		return label + pad, ang
	case ang < 270:
		return pad + label, ang + 180
	default:
		return label + pad, ang
	}
}
