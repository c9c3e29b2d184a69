package movingband

import "errors"

var (
	// ErrConfiguration reports a malformed request, e.g. the wrong number of triangulation sources
	ErrConfiguration = errors.New("configuration error")
	// ErrNotImplemented reports a request for the dimensions-only auto triangulation
	ErrNotImplemented = errors.New("not implemented")
	// ErrInconsistentInput reports a mesh and air gap triangulation that do not agree with each other
	ErrInconsistentInput = errors.New("inconsistent input")
)
