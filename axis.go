package ggbrace

import (
	"fmt"
	"math"
)

// ScaleKind identifies how an axis maps data values onto the canvas.
type ScaleKind int

const (
	// ScaleLinear is the ordinary linear axis scale.
	ScaleLinear ScaleKind = iota
	// ScaleLog is a logarithmic axis scale. Every coordinate put through a
	// log axis must be strictly positive.
	ScaleLog
)

// String returns the string representation of a ScaleKind.
func (k ScaleKind) String() string {
	switch k {
	case ScaleLinear:
		return "linear"
	case ScaleLog:
		return "log"
	}
	return "unknown"
}

// Axis describes one chart axis: its current display limits and scale.
// Surfaces report an Axis per dimension; the geometry engine uses the
// limits together with the surface pixel extent to derive its
// pixels-per-unit scale factors.
type Axis struct {
	Min, Max float64
	Scale    ScaleKind
}

// Linear returns a linear axis with the given limits.
func Linear(min, max float64) Axis {
	return Axis{Min: min, Max: max, Scale: ScaleLinear}
}

// Log returns a logarithmic axis with the given limits.
func Log(min, max float64) Axis {
	return Axis{Min: min, Max: max, Scale: ScaleLog}
}

// Norm returns the position of v within the axis limits, with 0 at Min
// and 1 at Max. Log axes interpolate in log space. The result is not
// clamped: values outside the limits map outside [0, 1].
func (a Axis) Norm(v float64) float64 {
	lo, hi := a.lift(a.Min), a.lift(a.Max)
	return (a.lift(v) - lo) / (hi - lo)
}

// Value is the inverse of Norm: it maps a normalized position back to a
// data coordinate.
func (a Axis) Value(t float64) float64 {
	lo, hi := a.lift(a.Min), a.lift(a.Max)
	return a.lower(lo + t*(hi-lo))
}

// lift maps a data coordinate into the working space the brace geometry is
// computed in: the natural logarithm for log axes, identity otherwise.
func (a Axis) lift(v float64) float64 {
	if a.Scale == ScaleLog {
		return math.Log(v)
	}
	return v
}

// lower maps a working-space coordinate back into data space, undoing lift.
func (a Axis) lower(v float64) float64 {
	if a.Scale == ScaleLog {
		return math.Exp(v)
	}
	return v
}

// checkDomain reports a domain error when a log axis is asked to transform
// a non-positive coordinate. Linear axes accept any value.
func (a Axis) checkDomain(name string, v float64) error {
	if a.Scale == ScaleLog && v <= 0 {
		return fmt.Errorf("%w: %s = %g", ErrLogDomain, name, v)
	}
	return nil
}
