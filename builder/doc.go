// Package builder constructs deterministic example graphs for demos,
// tests, and benchmarks.
//
// What:
//
//   - Path(n), Cycle(n), Complete(n), Star(n), BinaryTree(n): classic
//     shapes with documented, stable edge emission order.
//   - RandomConnected(n, extra, seed): a connectivity chain plus seeded
//     random chords; identical output for identical arguments.
//
// Why:
//
//   - Edge cover demos need graphs that are guaranteed coverable; every
//     factory returns a graph already validated by core.New, so no
//     isolated vertices can slip through.
//   - Stable emission order keeps downstream matchings and covers
//     reproducible, which the test suite depends on.
//
// Errors:
//
//   - ErrTooFewVertices: n below the factory's minimum (2 for Path,
//     Star, Complete, BinaryTree; 3 for Cycle).
//   - ErrBadParameter: negative extra chord count.
//   - core sentinels propagate unchanged if construction itself fails.
package builder
