// Package combgraph defines the combinatorial (abstract) transit graph
// that the octilinear grid-embedding optimizer takes as input: nodes
// with a fixed, preserved circular ordering of incident edges, and
// edges that carry a bundle of child line names.
//
// combgraph is adapted from the teacher's core package: the same
// mutex-guarded map-of-vertices/map-of-edges storage and sentinel-error
// style, but circular incidence order is a first-class, ordered slice
// (never a map) because constraint 8 of the ILP (spec.md 4.E) depends
// on iterating it in a stable, caller-defined sequence. Edges are
// simple (non-multigraph): at most one edge between any pair of nodes.
package combgraph
