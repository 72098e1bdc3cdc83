package builder

import "errors"

// Sentinel errors for topology construction. Callers branch with
// errors.Is; messages are never matched by string.
var (
	// ErrTooFewVertices indicates n is below the minimum for the
	// requested topology.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrBadParameter indicates a non-size parameter (e.g. the extra
	// chord count) lies outside its allowed domain.
	ErrBadParameter = errors.New("builder: parameter out of range")
)
