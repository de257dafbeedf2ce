package ilp

import (
	"github.com/octiline/octigrid/basegraph"
	"github.com/octiline/octigrid/combgraph"
	"github.com/octiline/octigrid/config"
	"github.com/octiline/octigrid/solver"
)

// addStationVars emits sp(g, v) for every comb node of positive degree
// and every candidate sink whose degree meets v's own (constraint 1's
// summation scope, applied here so no later row has to re-filter). The
// objective coefficient is bg.NdMovePen(v.Pos, g), the station's
// displacement penalty for settling on g instead of its input
// position.
func addStationVars(fac solver.Facade, bg *basegraph.BaseGrid, nodes []*combgraph.CombNode) error {
	for _, v := range nodes {
		if v.Degree() == 0 {
			continue
		}
		for _, g := range v.CandidateSinks() {
			if bg.SinkDegree(g) < v.Degree() {
				continue
			}
			if _, err := fac.AddCol(spName(g, v.ID), solver.Binary, bg.NdMovePen(v.Pos, g), 0, 1); err != nil {
				return err
			}
		}
	}

	return nil
}

// addEdgeUseVars emits edg(e, f) for every comb edge and every grid
// edge in the usable universe, with an objective coefficient of the
// edge's base cost plus any geo-penalty override for its (grid edge,
// direction) pair.
func addEdgeUseVars(fac solver.Facade, bg *basegraph.BaseGrid, u *universe, edges []*combgraph.CombEdge, geoPens map[config.GeoPenKey]float64) error {
	for _, f := range edges {
		for _, eid := range u.edges {
			e := bg.Edge(eid)
			obj := e.Cost + geoPens[config.GeoPenKey{EdgeID: eid, Direction: int(e.Dir)}]
			if _, err := fac.AddCol(edgName(eid, f.ID), solver.Binary, obj, 0, 1); err != nil {
				return err
			}
		}
	}

	return nil
}

// addDirectionVars emits d(v, f), integer 0..7, for every (endpoint,
// comb edge) pair where the endpoint has degree >= 2 — the only case
// spec.md §4.E constraint 7 actually constrains. Degree-1 endpoints
// leave direction unconstrained and nothing downstream references
// their d(v, f), so no variable is created for them.
func addDirectionVars(fac solver.Facade, edges []*combgraph.CombEdge) error {
	for _, f := range edges {
		for _, v := range []*combgraph.CombNode{f.From, f.To} {
			if v.Degree() < 2 {
				continue
			}
			if _, err := fac.AddCol(dName(v.ID, f.ID), solver.Integer, 0, 0, 7); err != nil {
				return err
			}
		}
	}

	return nil
}

// addOrderingVars emits vuln(v, i) for every comb node with degree >=
// 3, one per slot in its circular incidence sequence (constraint 8).
func addOrderingVars(fac solver.Facade, nodes []*combgraph.CombNode) error {
	for _, v := range nodes {
		if v.Degree() < 3 {
			continue
		}
		for i := 0; i < v.Degree(); i++ {
			if _, err := fac.AddCol(vulnName(v.ID, i), solver.Binary, 0, 0, 1); err != nil {
				return err
			}
		}
	}

	return nil
}

// bendPair is one same-line pair of comb edges incident to a shared
// node, in incidence-list order.
type bendPair struct {
	node *combgraph.CombNode
	a, b *combgraph.CombEdge
}

// bendPairs collects every pair of distinct edges incident to v that
// share at least one line, ordered by (a.Index(), b.Index()) so the
// pair is visited exactly once regardless of iteration order.
func bendPairs(nodes []*combgraph.CombNode) []bendPair {
	var out []bendPair
	for _, v := range nodes {
		inc := v.Incident()
		for i := 0; i < len(inc); i++ {
			for j := i + 1; j < len(inc); j++ {
				a, b := inc[i], inc[j]
				if a.Index() > b.Index() {
					a, b = b, a
				}
				if a.SharesLine(b) {
					out = append(out, bendPair{node: v, a: a, b: b})
				}
			}
		}
	}

	return out
}

// addBendVars emits negdist(a, b) and dk(a, b) (k = 1..7) for every
// bend pair (constraint 9).
func addBendVars(fac solver.Facade, bp basegraph.BendPenalties, pairs []bendPair) error {
	for _, p := range pairs {
		if _, err := fac.AddCol(negdistName(p.a.ID, p.b.ID), solver.Binary, 0, 0, 1); err != nil {
			return err
		}
		for k := 1; k <= 7; k++ {
			pen := bendBucketPenalty(bp, k)
			if _, err := fac.AddCol(dkName(p.a.ID, p.b.ID, k), solver.Binary, pen, 0, 1); err != nil {
				return err
			}
		}
	}

	return nil
}

// bendBucketPenalty maps a discretized 45-degree step count k (1..7)
// to a configured bend penalty, folding symmetric steps (k and 8-k)
// and steps sharper than 90 degrees onto the same three levels
// basegraph.BendPenalties.cost uses for intra-sink turns.
func bendBucketPenalty(bp basegraph.BendPenalties, k int) float64 {
	diff := k
	if diff > 4 {
		diff = 8 - diff
	}
	switch {
	case diff == 0:
		return bp.Straight
	case diff == 1:
		return bp.Diag45
	default:
		return bp.Right90
	}
}
