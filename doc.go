// Package octigrid embeds a comb graph of transit lines into an
// octilinear grid: stations settle onto lattice sinks, edges route
// through 45-degree-stepped major/bend segments, and the whole
// placement is chosen by solving a mixed-integer program rather than
// by a greedy or force-directed heuristic.
//
// The pipeline is:
//
//	basegraph  — builds the Hanan-folded octilinear lattice (sinks,
//	             ports, major and secondary edges, diagonal crossing
//	             registry) that candidate placements live on.
//	combgraph  — the input transit network: stations and edges with
//	             their circular incident ordering and candidate sinks.
//	warmstart  — turns a prior heuristic drawing into variable presets
//	             that seed the solver.
//	ilp        — emits the grid-embedding MILP's variables, objective,
//	             and constraints into a solver.Facade.
//	solver     — the façade interface and pluggable backends
//	             (solver/refsolver ships a reference branch-and-bound
//	             implementation; solver/badgercache backs its solution
//	             cache).
//	decode     — reads a solved model back into ordered edge paths and
//	             settled stations.
//
// Optimize composes all of the above into a single call.
package octigrid
