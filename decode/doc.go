// Package decode turns a solved solver.Facade back into drawing data:
// per spec.md §4.G, for each comb edge it walks the chosen edg(·, f)
// variables from source sink to target sink, reconstructs the ordered
// major grid-edge path, attaches it to the comb edge, and records the
// sink each comb node settled on.
package decode
