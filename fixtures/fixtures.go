package fixtures

import (
	"github.com/octiline/octigrid/basegraph"
	"github.com/octiline/octigrid/combgraph"
	"github.com/octiline/octigrid/geo"
)

// DefaultOptions returns the base-grid options every scenario in this
// package is built with, taken verbatim from spec.md §8's S1
// description (bend penalties 0/1/2, diagonal 1.5, horizontal/vertical
// 1, cell size 10).
func DefaultOptions() basegraph.Options {
	return basegraph.Options{
		CellSize: 10,
		Bend: basegraph.BendPenalties{
			Straight: 0,
			Diag45:   1,
			Right90:  2,
		},
		Major: basegraph.MajorPenalties{
			Horizontal: 1,
			Vertical:   1,
			Diagonal:   1.5,
		},
	}
}

// openCandidates finds every candidate sink within maxGrDist of v's
// position, records them on v, and opens each as a candidate sink on
// bg so its sink<->port edges become usable ILP variables.
func openCandidates(bg *basegraph.BaseGrid, v *combgraph.CombNode, maxGrDist float64) error {
	cands := bg.CandidatesFor(v.Pos, maxGrDist)
	v.SetCandidateSinks(cands)
	for _, g := range cands {
		if err := bg.OpenCandidateSink(g, 0); err != nil {
			return err
		}
	}

	return nil
}

// Line builds spec.md §8 scenario S1: a two-node comb graph A(0,0) —
// B(10,0) over a base grid of three sinks, at cells (0,0), (1,0) and
// (0,1). It is not a full 3x3 lattice: no Hanan iteration is applied,
// so only the cells of the three input positions become sinks.
func Line() (*basegraph.BaseGrid, *combgraph.Graph, error) {
	positions := []geo.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	bg, err := basegraph.NewBaseGrid(positions, DefaultOptions())
	if err != nil {
		return nil, nil, err
	}

	cg := combgraph.NewGraph()
	a, err := cg.AddNode("A", geo.Point{X: 0, Y: 0})
	if err != nil {
		return nil, nil, err
	}
	b, err := cg.AddNode("B", geo.Point{X: 10, Y: 0})
	if err != nil {
		return nil, nil, err
	}
	if _, err := cg.AddEdge("AB", "A", "B", []string{"L1"}); err != nil {
		return nil, nil, err
	}

	for _, v := range []*combgraph.CombNode{a, b} {
		if err := openCandidates(bg, v, 1.5); err != nil {
			return nil, nil, err
		}
	}

	return bg, cg, nil
}

// Triangle builds spec.md §8 scenario S2: three comb nodes A, B, C
// placed at (0,0), (10,0), (5,10), joined into a triangle, each with a
// circular incident order matching their geographic layout.
func Triangle() (*basegraph.BaseGrid, *combgraph.Graph, error) {
	positions := []geo.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}}
	bg, err := basegraph.NewBaseGrid(positions, DefaultOptions())
	if err != nil {
		return nil, nil, err
	}

	cg := combgraph.NewGraph()
	a, err := cg.AddNode("A", geo.Point{X: 0, Y: 0})
	if err != nil {
		return nil, nil, err
	}
	b, err := cg.AddNode("B", geo.Point{X: 10, Y: 0})
	if err != nil {
		return nil, nil, err
	}
	c, err := cg.AddNode("C", geo.Point{X: 5, Y: 10})
	if err != nil {
		return nil, nil, err
	}

	ab, err := cg.AddEdge("AB", "A", "B", []string{"L1"})
	if err != nil {
		return nil, nil, err
	}
	bc, err := cg.AddEdge("BC", "B", "C", []string{"L1"})
	if err != nil {
		return nil, nil, err
	}
	ca, err := cg.AddEdge("CA", "C", "A", []string{"L1"})
	if err != nil {
		return nil, nil, err
	}

	if err := cg.SetIncidentOrder("A", []string{ab.ID, ca.ID}); err != nil {
		return nil, nil, err
	}
	if err := cg.SetIncidentOrder("B", []string{bc.ID, ab.ID}); err != nil {
		return nil, nil, err
	}
	if err := cg.SetIncidentOrder("C", []string{ca.ID, bc.ID}); err != nil {
		return nil, nil, err
	}

	for _, v := range []*combgraph.CombNode{a, b, c} {
		if err := openCandidates(bg, v, 1.5); err != nil {
			return nil, nil, err
		}
	}

	return bg, cg, nil
}

// ForcedBend builds spec.md §8 scenario S3: a single edge between two
// stations whose direct straight grid path is blocked by a high-cost
// cell, forcing a one-bend detour. Blocking is done by flipping Blocked
// (as SettleEdge does for crossing partners) and raising Cost to
// basegraph.SoftInf on both directions of the direct major edge between
// A's east port and B's west port, since no public constructor accepts
// pre-blocked cells.
func ForcedBend() (*basegraph.BaseGrid, *combgraph.Graph, error) {
	positions := []geo.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	bg, err := basegraph.NewBaseGrid(positions, DefaultOptions())
	if err != nil {
		return nil, nil, err
	}

	cg := combgraph.NewGraph()
	a, err := cg.AddNode("A", geo.Point{X: 0, Y: 0})
	if err != nil {
		return nil, nil, err
	}
	b, err := cg.AddNode("B", geo.Point{X: 10, Y: 0})
	if err != nil {
		return nil, nil, err
	}
	if _, err := cg.AddEdge("AB", "A", "B", []string{"L1"}); err != nil {
		return nil, nil, err
	}

	for _, v := range []*combgraph.CombNode{a, b} {
		if err := openCandidates(bg, v, 1.5); err != nil {
			return nil, nil, err
		}
	}

	sinkA, ok := bg.Sink(0, 0)
	if !ok {
		return nil, nil, basegraph.ErrUnknownSink
	}
	sinkB, ok := bg.Sink(1, 0)
	if !ok {
		return nil, nil, basegraph.ErrUnknownSink
	}
	east, west := sinkA.Ports[basegraph.East], sinkB.Ports[basegraph.West]
	for _, dir := range [][2]int{{east, west}, {west, east}} {
		if eid, ok := bg.EdgeBetween(dir[0], dir[1]); ok {
			e := bg.Edge(eid)
			e.Cost = basegraph.SoftInf
			e.Blocked = true
		}
	}

	return bg, cg, nil
}

// CrossingPair builds spec.md §8 scenario S4: four comb nodes at the
// corners of a square, with two edges (AD and BC) whose natural
// diagonal paths cross at the square's centre, a point between the four
// sinks rather than a grid cell.
func CrossingPair() (*basegraph.BaseGrid, *combgraph.Graph, error) {
	positions := []geo.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}}
	bg, err := basegraph.NewBaseGrid(positions, DefaultOptions())
	if err != nil {
		return nil, nil, err
	}

	cg := combgraph.NewGraph()
	a, err := cg.AddNode("A", geo.Point{X: 0, Y: 0})
	if err != nil {
		return nil, nil, err
	}
	b, err := cg.AddNode("B", geo.Point{X: 10, Y: 0})
	if err != nil {
		return nil, nil, err
	}
	c, err := cg.AddNode("C", geo.Point{X: 0, Y: 10})
	if err != nil {
		return nil, nil, err
	}
	d, err := cg.AddNode("D", geo.Point{X: 10, Y: 10})
	if err != nil {
		return nil, nil, err
	}

	if _, err := cg.AddEdge("AD", "A", "D", []string{"L1"}); err != nil {
		return nil, nil, err
	}
	if _, err := cg.AddEdge("BC", "B", "C", []string{"L2"}); err != nil {
		return nil, nil, err
	}

	for _, v := range []*combgraph.CombNode{a, b, c, d} {
		if err := openCandidates(bg, v, 1.5); err != nil {
			return nil, nil, err
		}
	}

	return bg, cg, nil
}
