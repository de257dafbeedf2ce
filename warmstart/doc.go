// Package warmstart turns a prior heuristic drawing into variable
// presets the ILP builder can seed a solver with, so a branch-and-bound
// search starts from a known feasible-ish point instead of from
// scratch.
//
// Extract never touches the solver: it only produces a Hints value the
// ilp package folds into variable bounds and start values when it
// builds the model.
package warmstart
