// Package edgecover defines options and sentinel errors for minimum edge
// cover computation.
package edgecover

import (
	"errors"

	"github.com/katalvlaran/lvlcover/matching"
)

// Sentinel errors for cover computation.
var (
	// ErrNilGraph is returned when a nil *core.Graph is supplied.
	ErrNilGraph = errors.New("edgecover: graph is nil")

	// ErrIncompleteCover signals that the composed edge set failed the
	// final coverage self-check. It cannot occur for a graph built by
	// core.New, which rejects isolated vertices.
	ErrIncompleteCover = errors.New("edgecover: composed set is not a cover")
)

// Options configures Solve.
//
// Fields:
//
//	Method string — matching engine to use; one of
//	matching.MethodAugmenting or matching.MethodKuhn.
type Options struct {
	// Method selects the maximum-matching engine.
	Method string
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithMethod returns an Option selecting the matching engine by name.
func WithMethod(method string) Option {
	return func(o *Options) {
		o.Method = method
	}
}

// DefaultOptions returns Options using the augmenting-path engine.
func DefaultOptions() Options {
	return Options{Method: matching.MethodAugmenting}
}
