package warmstart

import (
	"github.com/octiline/octigrid/basegraph"
	"github.com/octiline/octigrid/combgraph"
)

// Extract builds Hints from a prior heuristic drawing (spec 4.D):
//   - for every comb node, every candidate sink
//     within the cutoff gets a statPos preset: 1 for the node's
//     settled sink, 0 for every other candidate;
//   - the settled sink's bend variables are fixed to 0, since a
//     settled station is entered and left through sink edges, never a
//     pass-through bend;
//   - every candidate sink a node did NOT settle on has its sp(g, v)
//     variable fixed to 0;
//   - every grid edge on the heuristic's routed path for a comb edge
//     gets its edg(e, f) variable preset to 1; every other edg(e, f)
//     is left unset and defaults to 0 in the ILP builder;
//   - every grid edge the heuristic's diagonal choices block as a
//     crossing partner gets its edg(e, f) variable preset to 0 for
//     every comb edge.
//
// Extract settles the drawing's routed paths onto bg (spec 4.C,
// settleEdge) purely to discover which crossing partners those
// diagonals rule out, then releases every reservation it made before
// returning. Releasing reopens the bend edges at each released edge's
// ports and, for a diagonal, unblocks and reopens its crossing
// partners, whatever state they were in before Extract ran.
//
// A node with no settled sink in drawing (degree 0, or simply absent
// from a partial heuristic) gets statPos 0 and a sinkZero entry for
// every candidate sink, and no bendZero presets.
func Extract(bg *basegraph.BaseGrid, nodes []*combgraph.CombNode, drawing Drawing) *Hints {
	h := newHints()

	for _, v := range nodes {
		settledSink, isSettled := drawing.Settled[v.ID]

		for _, sink := range v.CandidateSinks() {
			key := StatKey{Sink: sink, Node: v.ID}

			if isSettled && sink == settledSink {
				h.StatPos[key] = 1
				zeroBendsAt(bg, sink, h)

				continue
			}

			h.StatPos[key] = 0
			h.SinkZero[key] = struct{}{}
		}
	}

	for combEdgeID, path := range drawing.Paths {
		for _, gridEdgeID := range path {
			h.EdgeUseOne[EdgeKey{GridEdge: gridEdgeID, CombEdge: combEdgeID}] = struct{}{}
		}
	}

	reservations := settlePaths(bg, drawing)
	crossingZero(bg, h)
	releasePaths(bg, reservations)

	return h
}

func zeroBendsAt(bg *basegraph.BaseGrid, sink int, h *Hints) {
	n := bg.Node(sink)
	if n == nil {
		return
	}
	for _, port := range n.Ports {
		for _, bendID := range bg.BendEdgesAt(port) {
			h.BendZero[bendID] = struct{}{}
		}
	}
}

// reservation records one edge a settlePaths call reserved, so
// releasePaths can undo exactly what was settled.
type reservation struct {
	combEdgeID string
	a, b       int
}

// settlePaths reserves every grid edge on drawing's routed paths so a
// diagonal path edge's crossing partners get blocked the same way a
// real settle during routing would block them.
func settlePaths(bg *basegraph.BaseGrid, drawing Drawing) []reservation {
	var out []reservation
	for combEdgeID, path := range drawing.Paths {
		for _, gridEdgeID := range path {
			e := bg.Edge(gridEdgeID)
			if e == nil {
				continue
			}
			if err := bg.SettleEdge(e.From, e.To, combEdgeID); err != nil {
				continue
			}
			out = append(out, reservation{combEdgeID, e.From, e.To})
		}
	}

	return out
}

func releasePaths(bg *basegraph.BaseGrid, reservations []reservation) {
	for _, r := range reservations {
		_ = bg.UnSettleEdge(r.a, r.b, r.combEdgeID)
	}
}

// crossingZero adds every grid edge a settled diagonal has blocked to
// EdgeZero: the heuristic's choice of one diagonal at a crossing rules
// out its partner for every comb edge, not just the one it routed.
func crossingZero(bg *basegraph.BaseGrid, h *Hints) {
	for id := 0; id < bg.NumEdges(); id++ {
		e := bg.Edge(id)
		if e == nil || !e.Blocked {
			continue
		}
		h.EdgeZero[id] = struct{}{}
	}
}
