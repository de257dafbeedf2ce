// Package ilp builds the octilinear grid-embedding MILP: variables,
// objective, and the nine constraint families of spec.md §4.E, emitted
// directly into a solver.Facade. There is no intermediate model type —
// per the "the solver façade is the only place that needs dispatch"
// design note, Build calls straight into whatever Facade it is given.
package ilp
