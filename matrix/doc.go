// Package matrix offers dense linear-algebra primitives and Floyd-Warshall
// all-pairs shortest paths over a plain float64 grid.
//
// The matrix package provides:
//
//   - Dense, a bounds-checked two-dimensional float64 array implementing
//     the Matrix interface.
//   - FloydWarshall for in-place all-pairs shortest paths on a square
//     Dense matrix, used by basegraph to precompute sink-to-sink hop
//     distances ahead of the ILP build.
//
// This package does not know about the transit graph or the base grid;
// callers populate a Dense matrix from whatever adjacency they have and
// run FloydWarshall directly.
package matrix
