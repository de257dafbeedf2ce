// Package refsolver is the bundled reference solver.Facade backend: a
// deterministic depth-first branch-and-bound search over the model's
// binary and bounded-integer columns, admissible-bounded the way
// tsp.TSPBranchAndBound is (a per-column corner bound rather than an
// LP relaxation), with continuous columns solved algebraically once
// every other column is fixed.
//
// This is a reference/testing backend for small and regression-scale
// instances, not a production MILP solver: it has no cutting planes,
// no LP relaxation, and no presolve. Register makes it available under
// the "ref" solverStr tag.
package refsolver

import "github.com/octiline/octigrid/solver"

func init() {
	solver.Register("ref", func() solver.Facade { return NewModel() })
}
