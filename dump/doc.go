// Package dump reads and writes the plain-text formats the lvlcover
// tooling shares with the outside world.
//
// What:
//
//   - Write / WriteFile: the visualizer interchange format — a header
//     "n totalEdgeCount coverEdgeCount", then all graph edges as "u v"
//     lines in input order, then the cover edges. Consumed by the
//     external visualization script; the layout must not change.
//   - Read: parses that format back into a validated graph and the raw
//     cover edge list.
//   - ReadGraph / ReadGraphFile: the simpler "V E" + edge-lines input
//     format accepted by the demo driver.
//
// Why:
//
//   - The solver core performs no I/O; this package is the single
//     boundary where graphs and covers cross process lines.
//
// Errors:
//
//   - ErrNilGraph: Write received a nil graph.
//   - ErrBadHeader: counts line missing, malformed, or negative.
//   - ErrBadEdge: an edge entry is not a pair of integers.
//   - ErrTruncated: input ended before the announced edge count.
//   - core sentinels propagate (wrapped with %w) when the edge section
//     does not form a valid coverable graph.
package dump
