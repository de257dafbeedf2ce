// Package fixtures builds the deterministic comb-graph/base-grid pairs
// named by spec.md §8's scenarios S1-S4 (two-node line, triangle,
// forced bend, crossing pair), for tests and documentation examples.
// Built directly on the combgraph/basegraph types, the way
// builder.BuildGraph composes deterministic topologies directly on
// core.Graph rather than through an external file format.
package fixtures
