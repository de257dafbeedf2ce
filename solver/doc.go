// Package solver defines the optimizer's solver façade (spec.md §6):
// the minimal capability set the ILP builder needs from a MILP
// backend, so the core algorithm never imports a concrete solver.
//
// This module ships one concrete backend, refsolver, a deterministic
// branch-and-bound search over the emitted 0/1 columns intended as a
// reference/testing backend for small and regression-scale instances,
// not a production MILP solver. Backend selection happens by
// solverStr tag through Open.
package solver
