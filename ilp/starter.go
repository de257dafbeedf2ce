package ilp

import (
	"github.com/octiline/octigrid/combgraph"
	"github.com/octiline/octigrid/warmstart"
)

// Starter expands a warmstart.Hints value into the {name -> value} map
// solver.Facade.SetStarter expects, using this package's own naming
// scheme. BendZero and EdgeZero are expressed per grid edge only
// (Extract has no notion of which comb edge they belong to when the
// preset applies to all of them), so both are expanded across every
// comb edge here, matching spec.md §4.D's "mark all bend variables
// incident to its ports as 0" read literally as "for every comb edge".
// EdgeUseOne is applied last so a comb edge's own routed use of a grid
// edge always wins over the coarser EdgeZero default.
func Starter(cg *combgraph.Graph, hints *warmstart.Hints) map[string]float64 {
	out := make(map[string]float64)

	for key, v := range hints.StatPos {
		out[spName(key.Sink, key.Node)] = float64(v)
	}

	edges := cg.Edges()
	for bendEdge := range hints.BendZero {
		for _, f := range edges {
			out[edgName(bendEdge, f.ID)] = 0
		}
	}
	for gridEdge := range hints.EdgeZero {
		for _, f := range edges {
			out[edgName(gridEdge, f.ID)] = 0
		}
	}

	for key := range hints.EdgeUseOne {
		out[edgName(key.GridEdge, key.CombEdge)] = 1
	}

	return out
}
