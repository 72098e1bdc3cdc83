// Package dump defines sentinel errors for the text interchange format.
package dump

import "errors"

// Sentinel errors for reading and writing the interchange format.
var (
	// ErrNilGraph is returned when Write receives a nil *core.Graph.
	ErrNilGraph = errors.New("dump: graph is nil")

	// ErrBadHeader indicates a missing or malformed counts line.
	ErrBadHeader = errors.New("dump: malformed header line")

	// ErrBadEdge indicates a malformed "u v" edge entry.
	ErrBadEdge = errors.New("dump: malformed edge entry")

	// ErrTruncated indicates the stream ended before the announced
	// number of edge entries was read.
	ErrTruncated = errors.New("dump: unexpected end of input")
)
