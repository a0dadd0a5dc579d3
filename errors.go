package ggbrace

import "errors"

var (
	// ErrLogDomain indicates a coordinate or axis limit was not strictly
	// positive on a logarithmic axis. Wrapped errors carry the offending
	// name and value; test with errors.Is.
	ErrLogDomain = errors.New("ggbrace: non-positive value on log axis")

	// ErrNilSurface indicates Draw was called with a nil surface.
	ErrNilSurface = errors.New("ggbrace: nil surface")
)
