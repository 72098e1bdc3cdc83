// Package lvlcover computes minimum edge covers of undirected graphs:
// the smallest set of edges touching every vertex at least once.
//
// 🚀 What is lvlcover?
//
//	A small, focused library built from three classical pieces:
//		• Maximum matching: greedy seed + BFS augmenting paths, or Kuhn's DFS
//		• Gallai composition: extend a maximum matching into a minimum cover
//		• Verification: a pure predicate for candidate covers
//
// ✨ Why choose lvlcover?
//
//   - Minimal API — construct a graph, call Solve, done
//   - Fail-fast validation — impossible inputs (isolated vertices,
//     bad indices) are rejected at construction, never mid-algorithm
//   - Deterministic — fixed input and method always yield the same cover
//   - Pure Go — no cgo, no hidden deps
//
// Everything is organized under five subpackages:
//
//	core/      — immutable integer-indexed graph model and validation
//	matching/  — maximum-cardinality matching engines
//	edgecover/ — minimum edge cover composer and verifier
//	builder/   — deterministic example topologies (paths, cycles, K_n, ...)
//	dump/      — text interchange format for the external visualizer
//
// Quick ASCII example:
//
//	    0───1
//	     \ /
//	      2
//
//	a triangle: its maximum matching has one edge, so the minimum
//	edge cover has 3 − 1 = 2 edges.
//
// See cmd/lvlcover for a runnable demo driver.
//
//	go get github.com/katalvlaran/lvlcover
package lvlcover
