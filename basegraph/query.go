package basegraph

import "github.com/octiline/octigrid/geo"

// Node returns the grid node with the given id, or nil if out of range.
func (bg *BaseGrid) Node(id int) *GridNode { return bg.nodeOrNil(id) }

// Edge returns the grid edge with the given id, or nil if out of range.
func (bg *BaseGrid) Edge(id int) *GridEdge {
	if id < 0 || id >= len(bg.edges) {
		return nil
	}

	return bg.edges[id]
}

// EdgeBetween returns the id of the major or secondary edge from a to
// b, if one exists.
func (bg *BaseGrid) EdgeBetween(a, b int) (int, bool) {
	id, ok := bg.edgeIndex[[2]int{a, b}]

	return id, ok
}

// BendPenalties returns the turn-angle penalty table this grid was
// constructed with.
func (bg *BaseGrid) BendPenalties() BendPenalties { return bg.opts.Bend }

// NumEdges returns the total number of grid edges (major and
// secondary) created for this grid.
func (bg *BaseGrid) NumEdges() int { return len(bg.edges) }

// SinkIDs returns every sink node id, in ascending (deterministic)
// order.
func (bg *BaseGrid) SinkIDs() []int {
	out := make([]int, 0, len(bg.nodes)/9+1)
	for _, n := range bg.nodes {
		if n.Sink {
			out = append(out, n.ID)
		}
	}

	return out
}

// Sink returns the sink node at cell (x, y), if one was created.
func (bg *BaseGrid) Sink(x, y int) (*GridNode, bool) {
	id, ok := bg.sinkAt[[2]int{x, y}]
	if !ok {
		return nil, false
	}

	return bg.nodes[id], true
}

// SinkDegree returns the number of sink's ports that have a major edge
// to a neighbouring sink, whether or not that edge is currently open
// (spec 4.E constraint 1's "degree >= deg(v)" filter).
func (bg *BaseGrid) SinkDegree(sink int) int {
	n := bg.nodeOrNil(sink)
	if n == nil || !n.Sink {
		return 0
	}
	deg := 0
	for _, port := range n.Ports {
		if _, ok := bg.majorFrom[port]; ok {
			deg++
		}
	}

	return deg
}

// BendEdgesAt returns the ids of every intra-sink bend edge incident to
// port (either endpoint), for callers that need to preset bend
// variables around a settled station.
func (bg *BaseGrid) BendEdgesAt(port int) []int {
	out := make([]int, len(bg.bendAt[port]))
	copy(out, bg.bendAt[port])

	return out
}

// CandidatesFor returns every sink within maxGrDist grid cells of pos
// (spec 4.A cutoff) that is also reachable through the lattice from the
// Euclidean-nearest of those sinks, i.e. not an isolated Hanan-fold
// artifact. Hop distances are computed on first use and cached on bg,
// so the first CandidatesFor call on a grid pays the one-time
// Floyd-Warshall cost and every later call reuses it.
func (bg *BaseGrid) CandidatesFor(pos geo.Point, maxGrDist float64) []int {
	if !bg.hopReady {
		bg.PrecomputeHopDistances()
	}

	type hit struct {
		id int
		d  float64
	}
	var within []hit
	for _, n := range bg.nodes {
		if !n.Sink {
			continue
		}
		d := geo.Dist(pos, n.Pos)
		if !geo.WithinCutoff(d, bg.opts.CellSize, maxGrDist) {
			continue
		}
		within = append(within, hit{n.ID, d})
	}
	if len(within) == 0 {
		return nil
	}

	anchor := within[0]
	for _, h := range within[1:] {
		if h.d < anchor.d {
			anchor = h
		}
	}

	out := make([]int, 0, len(within))
	for _, h := range within {
		if h.id == anchor.id {
			out = append(out, h.id)

			continue
		}
		if _, ok := bg.HopDistance(anchor.id, h.id); ok {
			out = append(out, h.id)
		}
	}

	return out
}
