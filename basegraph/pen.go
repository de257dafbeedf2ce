package basegraph

import (
	"math"

	"github.com/octiline/octigrid/geo"
	"github.com/octiline/octigrid/matrix"
)

// penPerHop is the per-hop station displacement budget: an additional
// flat penalty (PEN) plus the worst case, over the three major-edge
// families, of a 90-degree bend penalty plus the cheaper of one edge of
// that family or a detour over the other two families with a 45-degree
// bend, verbatim from the reference octilinear router's ndMovePen (the move
// penalty must exceed the maximum possible saving from creeping a
// station closer to another one, one grid hop at a time, or the
// optimizer would drift stations without bound).
func penPerHop(bend BendPenalties, major MajorPenalties) float64 {
	const pen = 0.5

	diagCost := bend.Right90 + min(major.Diagonal, major.Horizontal+major.Vertical+bend.Diag45)
	vertCost := bend.Right90 + min(major.Vertical, major.Horizontal+major.Diagonal+bend.Diag45)
	horiCost := bend.Right90 + min(major.Horizontal, major.Vertical+major.Diagonal+bend.Diag45)

	return pen + max3(diagCost, vertCost, horiCost)
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}

	return b
}

func max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}

	return m
}

// NdMovePen returns the displacement penalty for placing comb node pos
// at sink: the Euclidean distance between them, normalized to grid
// hops, times the per-hop budget (spec 4.C, ndMovePen).
func (bg *BaseGrid) NdMovePen(pos geo.Point, sink int) float64 {
	n := bg.nodeOrNil(sink)
	if n == nil {
		return SoftInf
	}
	gridD := geo.Dist(pos, n.Pos) / bg.opts.CellSize

	return gridD * penPerHop(bg.opts.Bend, bg.opts.Major)
}

// PrecomputeHopDistances runs Floyd-Warshall once over the sink-level
// adjacency induced by open major edges, giving every pair of sinks
// their shortest hop distance through the lattice. CandidatesFor calls
// this itself on first use to exclude sinks that pass the Euclidean
// cutoff but are not actually reachable through the grid (a sparse
// Hanan lattice can leave gaps a straight-line distance check alone
// would miss). It always recomputes from scratch, so a caller that
// mutates the grid's major-edge topology after candidates have already
// been resolved once may call it again directly to refresh the matrix.
func (bg *BaseGrid) PrecomputeHopDistances() {
	sinks := bg.SinkIDs()
	n := len(sinks)

	bg.sinkIdxOf = make(map[int]int, n)
	for i, id := range sinks {
		bg.sinkIdxOf[id] = i
	}

	if n == 0 {
		bg.hopDist = nil
		bg.hopReady = true

		return
	}

	dense, err := matrix.NewPreparedDense(n, n, matrix.WithAllowInfDistances())
	if err != nil {
		return
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			_ = dense.Set(i, j, math.Inf(1))
		}
	}
	for _, e := range bg.edges {
		if e.Secondary || !e.Open {
			continue
		}
		// Major edges join ports; the adjacency is between their sinks.
		from, to := bg.nodes[e.From], bg.nodes[e.To]
		if from.Sink || to.Sink || from.Parent < 0 || to.Parent < 0 {
			continue
		}
		i, j := bg.sinkIdxOf[from.Parent], bg.sinkIdxOf[to.Parent]
		_ = dense.Set(i, j, 1)
	}

	_ = matrix.APSPInPlace(dense)

	bg.hopDist = make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, n)
		for j := 0; j < n; j++ {
			row[j], _ = dense.At(i, j)
		}
		bg.hopDist[i] = row
	}
	bg.hopReady = true
}

// HopDistance returns the precomputed shortest hop distance between two
// sinks and whether they are reachable at all. PrecomputeHopDistances
// must have been called first; it returns (0, false) otherwise.
func (bg *BaseGrid) HopDistance(a, b int) (float64, bool) {
	if !bg.hopReady {
		return 0, false
	}
	i, ok := bg.sinkIdxOf[a]
	if !ok {
		return 0, false
	}
	j, ok := bg.sinkIdxOf[b]
	if !ok {
		return 0, false
	}
	d := bg.hopDist[i][j]
	if math.IsInf(d, 1) {
		return 0, false
	}

	return d, true
}
