package ilp

import (
	"strconv"

	"github.com/octiline/octigrid/basegraph"
	"github.com/octiline/octigrid/combgraph"
	"github.com/octiline/octigrid/solver"
)

// addRowTerm looks up col by name and, if it exists, adds it to row
// with coef. Missing variables (e.g. a candidate sink that was never
// given an sp column because its degree fell short) simply contribute
// nothing, rather than being an error: the constraint families are
// written against the full theoretical variable set and every family
// already tolerates a sparser one in practice.
func addRowTerm(fac solver.Facade, row int, name string, coef float64) error {
	col, ok := fac.GetVarByName(name)
	if !ok {
		return nil
	}

	return fac.AddColToRow(row, col, coef)
}

// addUniqueStationRows emits constraint 1: every positive-degree comb
// node occupies exactly one candidate sink.
func addUniqueStationRows(fac solver.Facade, nodes []*combgraph.CombNode) error {
	for _, v := range nodes {
		if v.Degree() == 0 {
			continue
		}
		row, err := fac.AddRow("unique_station#"+v.ID, solver.EQ, 1)
		if err != nil {
			return err
		}
		for _, g := range v.CandidateSinks() {
			if err := addRowTerm(fac, row, spName(g, v.ID), 1); err != nil {
				return err
			}
		}
	}

	return nil
}

// addEdgeExclusivityRows emits constraint 2: an undirected major grid
// edge (a forward/reverse pair) is used by at most one comb edge, in
// at most one direction.
func addEdgeExclusivityRows(fac solver.Facade, bg *basegraph.BaseGrid, u *universe, edges []*combgraph.CombEdge) error {
	seen := make(map[[2]int]bool)
	for _, eid := range u.edges {
		e := bg.Edge(eid)
		if e.Secondary {
			continue
		}
		rev, ok := bg.EdgeBetween(e.To, e.From)
		if !ok || !u.has(bg, rev) {
			continue
		}
		key := canonPair(eid, rev)
		if seen[key] {
			continue
		}
		seen[key] = true

		row, err := fac.AddRow("edge_excl#"+itoa(eid)+"#"+itoa(rev), solver.LE, 1)
		if err != nil {
			return err
		}
		for _, f := range edges {
			if err := addRowTerm(fac, row, edgName(eid, f.ID), 1); err != nil {
				return err
			}
			if err := addRowTerm(fac, row, edgName(rev, f.ID), 1); err != nil {
				return err
			}
		}
	}

	return nil
}

func canonPair(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}

	return [2]int{b, a}
}

// addFlowConservationRows emits constraint 3 at every grid node touched
// by the usable universe, for every comb edge (spec.md §4.E's "at every
// grid sink" bullet, read as every grid node given its own non-sink
// case for ports). Grid nodes with no usable incidence are skipped
// entirely, matching the edge-case policy.
//
// The +2/-2 sink trick applies whenever n is structurally a sink
// (bg.Node(n).Sink), independent of whether n happens to be a
// candidate of f's own endpoints — spec.md §4.E constraint 3 states
// this for "a sink grid node", not "a sink that is a candidate for
// this comb edge". Only the -2*sp(vs)/+sp(vt) terms are gated on
// candidacy, since those terms reference a specific comb node's
// station variable and are absent (contribute nothing) when n is not
// a candidate sink for that node.
func addFlowConservationRows(fac solver.Facade, bg *basegraph.BaseGrid, u *universe, edges []*combgraph.CombEdge) error {
	nodeIDs := u.nodeIDs()
	for _, f := range edges {
		vs, vt := f.From, f.To
		for _, n := range nodeIDs {
			isSinkFrom := false
			isSinkTo := false
			row, err := fac.AddRow("flow#"+itoa(n)+"#"+f.ID, solver.LE, 0)
			if err != nil {
				return err
			}

			for _, gCandidate := range vs.CandidateSinks() {
				if gCandidate == n {
					isSinkFrom = true
				}
			}
			for _, gCandidate := range vt.CandidateSinks() {
				if gCandidate == n {
					isSinkTo = true
				}
			}

			outCoef := 1.0
			if gn := bg.Node(n); gn != nil && gn.Sink {
				outCoef = 2.0
			}
			for _, eid := range u.out(n) {
				if err := addRowTerm(fac, row, edgName(eid, f.ID), outCoef); err != nil {
					return err
				}
			}
			for _, eid := range u.in(n) {
				if err := addRowTerm(fac, row, edgName(eid, f.ID), -1); err != nil {
					return err
				}
			}
			if isSinkFrom {
				if err := addRowTerm(fac, row, spName(n, vs.ID), -2); err != nil {
					return err
				}
			}
			if isSinkTo {
				if err := addRowTerm(fac, row, spName(n, vt.ID), 1); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// addSinkEdgeUseRows emits constraint 4: the sink edges activated at g
// for comb edge f sum to sp(g, vs) + sp(g, vt) (redundant with flow
// conservation, kept for solver-side pruning speed as spec.md notes).
func addSinkEdgeUseRows(fac solver.Facade, bg *basegraph.BaseGrid, u *universe, sinks []int, edges []*combgraph.CombEdge) error {
	for _, g := range sinks {
		ports := sinkPortEdges(bg, u, g)
		if len(ports) == 0 {
			continue
		}
		for _, f := range edges {
			row, err := fac.AddRow("sink_edge_use#"+itoa(g)+"#"+f.ID, solver.EQ, 0)
			if err != nil {
				return err
			}
			for _, eid := range ports {
				if err := addRowTerm(fac, row, edgName(eid, f.ID), 1); err != nil {
					return err
				}
			}
			if err := addRowTerm(fac, row, spName(g, f.From.ID), -1); err != nil {
				return err
			}
			if err := addRowTerm(fac, row, spName(g, f.To.ID), -1); err != nil {
				return err
			}
		}
	}

	return nil
}

// addStationOrPassThroughRows emits constraint 5: a sink either hosts
// exactly one station or serves as pass-through for at most one
// combined bend-edge usage, never both.
func addStationOrPassThroughRows(fac solver.Facade, bg *basegraph.BaseGrid, u *universe, sinks []int, nodes []*combgraph.CombNode, edges []*combgraph.CombEdge) error {
	for _, g := range sinks {
		bends := bendEdgesAtSink(bg, u, g)
		row, err := fac.AddRow("station_or_pass#"+itoa(g), solver.LE, 1)
		if err != nil {
			return err
		}
		for _, v := range nodes {
			if err := addRowTerm(fac, row, spName(g, v.ID), 1); err != nil {
				return err
			}
		}
		for _, f := range edges {
			for _, eid := range bends {
				if err := addRowTerm(fac, row, edgName(eid, f.ID), 1); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// addNoCrossingRows emits constraint 6: at most one edge from a
// registered diagonal crossing group is ever used, across every comb
// edge.
func addNoCrossingRows(fac solver.Facade, bg *basegraph.BaseGrid, u *universe, edges []*combgraph.CombEdge) error {
	for gi, group := range bg.AllCrossingGroups() {
		row, err := fac.AddRow("no_crossing#"+itoa(gi), solver.LE, 1)
		if err != nil {
			return err
		}
		for _, eid := range group {
			if !u.has(bg, eid) {
				continue
			}
			for _, f := range edges {
				if err := addRowTerm(fac, row, edgName(eid, f.ID), 1); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// addDirectionLinkageRows emits constraint 7: d(v, f) equals the
// weighted sum of the sink-edge directions f actually uses at v's
// candidate sinks, oriented by whether v is f's From or To endpoint.
func addDirectionLinkageRows(fac solver.Facade, bg *basegraph.BaseGrid, u *universe, edges []*combgraph.CombEdge) error {
	for _, f := range edges {
		if err := addDirectionLinkageRow(fac, bg, u, f, f.From, true); err != nil {
			return err
		}
		if err := addDirectionLinkageRow(fac, bg, u, f, f.To, false); err != nil {
			return err
		}
	}

	return nil
}

func addDirectionLinkageRow(fac solver.Facade, bg *basegraph.BaseGrid, u *universe, f *combgraph.CombEdge, v *combgraph.CombNode, leaving bool) error {
	if v.Degree() < 2 {
		return nil
	}
	dCol, ok := fac.GetVarByName(dName(v.ID, f.ID))
	if !ok {
		return nil
	}

	row, err := fac.AddRow("dir_link#"+v.ID+"#"+f.ID, solver.EQ, 0)
	if err != nil {
		return err
	}
	if err := fac.AddColToRow(row, dCol, -1); err != nil {
		return err
	}

	for _, g := range v.CandidateSinks() {
		n := bg.Node(g)
		if n == nil {
			continue
		}
		for i := 1; i < 8; i++ {
			port := n.Ports[i]
			var eid int
			var ok bool
			if leaving {
				eid, ok = bg.EdgeBetween(g, port)
			} else {
				eid, ok = bg.EdgeBetween(port, g)
			}
			if !ok || !u.has(bg, eid) {
				continue
			}
			if err := addRowTerm(fac, row, edgName(eid, f.ID), float64(i)); err != nil {
				return err
			}
		}
	}

	return nil
}

// addCircularOrderingRows emits constraint 8 for every comb node with
// degree >= 3: consecutive incident edges (wrapping around) must have
// strictly increasing direction values except at exactly one "vuln"
// slot.
func addCircularOrderingRows(fac solver.Facade, nodes []*combgraph.CombNode) error {
	const bigM = 8.0

	for _, v := range nodes {
		if v.Degree() < 3 {
			continue
		}
		inc := v.Incident()
		n := len(inc)

		sumRow, err := fac.AddRow("vuln_sum#"+v.ID, solver.EQ, 1)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addRowTerm(fac, sumRow, vulnName(v.ID, i), 1); err != nil {
				return err
			}
		}

		for i := 0; i < n; i++ {
			a := inc[i]
			b := inc[(i+1)%n]

			row, err := fac.AddRow("circ_order#"+v.ID+"#"+itoa(i), solver.GE, 1)
			if err != nil {
				return err
			}
			if err := addRowTerm(fac, row, dName(v.ID, b.ID), 1); err != nil {
				return err
			}
			if err := addRowTerm(fac, row, dName(v.ID, a.ID), -1); err != nil {
				return err
			}
			if err := addRowTerm(fac, row, vulnName(v.ID, i), bigM); err != nil {
				return err
			}
		}
	}

	return nil
}

// addBendDiscretizationRows emits constraint 9 for every same-line pair
// of incident comb edges: the raw direction difference is folded into
// a non-negative 0..7 range via negdist, then discretized into exactly
// one dk bucket (or none, for a perfectly straight continuation).
func addBendDiscretizationRows(fac solver.Facade, pairs []bendPair) error {
	for _, p := range pairs {
		dA, okA := fac.GetVarByName(dName(p.node.ID, p.a.ID))
		dB, okB := fac.GetVarByName(dName(p.node.ID, p.b.ID))
		if !okA || !okB {
			continue
		}
		negCol, ok := fac.GetVarByName(negdistName(p.a.ID, p.b.ID))
		if !ok {
			continue
		}

		// 0 <= (d(v,a) - d(v,b)) + 8*negdist <= 7
		lowRow, err := fac.AddRow("bend_low#"+p.a.ID+"#"+p.b.ID, solver.GE, 0)
		if err != nil {
			return err
		}
		if err := fac.AddColToRow(lowRow, dA, 1); err != nil {
			return err
		}
		if err := fac.AddColToRow(lowRow, dB, -1); err != nil {
			return err
		}
		if err := fac.AddColToRow(lowRow, negCol, 8); err != nil {
			return err
		}

		highRow, err := fac.AddRow("bend_high#"+p.a.ID+"#"+p.b.ID, solver.LE, 7)
		if err != nil {
			return err
		}
		if err := fac.AddColToRow(highRow, dA, 1); err != nil {
			return err
		}
		if err := fac.AddColToRow(highRow, dB, -1); err != nil {
			return err
		}
		if err := fac.AddColToRow(highRow, negCol, 8); err != nil {
			return err
		}

		// Sum_k k*dk = Delta + 8*negdist
		eqRow, err := fac.AddRow("bend_eq#"+p.a.ID+"#"+p.b.ID, solver.EQ, 0)
		if err != nil {
			return err
		}
		if err := fac.AddColToRow(eqRow, dA, 1); err != nil {
			return err
		}
		if err := fac.AddColToRow(eqRow, dB, -1); err != nil {
			return err
		}
		if err := fac.AddColToRow(eqRow, negCol, 8); err != nil {
			return err
		}
		sumRow, err := fac.AddRow("bend_card#"+p.a.ID+"#"+p.b.ID, solver.LE, 1)
		if err != nil {
			return err
		}
		for k := 1; k <= 7; k++ {
			dkCol, ok := fac.GetVarByName(dkName(p.a.ID, p.b.ID, k))
			if !ok {
				continue
			}
			if err := fac.AddColToRow(eqRow, dkCol, -float64(k)); err != nil {
				return err
			}
			if err := fac.AddColToRow(sumRow, dkCol, 1); err != nil {
				return err
			}
		}
	}

	return nil
}

func itoa(n int) string { return strconv.Itoa(n) }
