package warmstart_test

import (
	"testing"

	"github.com/octiline/octigrid/basegraph"
	"github.com/octiline/octigrid/combgraph"
	"github.com/octiline/octigrid/geo"
	"github.com/octiline/octigrid/warmstart"
)

func buildGrid(t *testing.T) *basegraph.BaseGrid {
	t.Helper()

	positions := []geo.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}
	bg, err := basegraph.NewBaseGrid(positions, basegraph.Options{
		CellSize: 10,
		Bend:     basegraph.BendPenalties{Straight: 0, Diag45: 1, Right90: 2},
		Major:    basegraph.MajorPenalties{Horizontal: 1, Vertical: 1, Diagonal: 1.4},
	})
	if err != nil {
		t.Fatalf("NewBaseGrid error: %v", err)
	}

	return bg
}

// TestExtract_SettledNodePresetsStatPosAndBendZero checks that a
// settled comb node gets a statPos=1 preset for its settled sink,
// statPos=0/sinkZero for its other candidates, and its settled sink's
// bend edges fixed to zero.
func TestExtract_SettledNodePresetsStatPosAndBendZero(t *testing.T) {
	bg := buildGrid(t)
	origin, _ := bg.Sink(0, 0)
	neighbor, _ := bg.Sink(1, 0)

	g := combgraph.NewGraph()
	v, err := g.AddNode("A", geo.Point{X: 1, Y: 0})
	if err != nil {
		t.Fatalf("AddNode error: %v", err)
	}
	v.SetCandidateSinks([]int{origin.ID, neighbor.ID})

	drawing := warmstart.Drawing{
		Settled: map[string]int{"A": origin.ID},
		Paths:   map[string][]int{},
	}

	hints := warmstart.Extract(bg, g.Nodes(), drawing)

	if got := hints.StatPos[warmstart.StatKey{Sink: origin.ID, Node: "A"}]; got != 1 {
		t.Errorf("StatPos[settled] = %d; want 1", got)
	}
	if got := hints.StatPos[warmstart.StatKey{Sink: neighbor.ID, Node: "A"}]; got != 0 {
		t.Errorf("StatPos[other] = %d; want 0", got)
	}
	if _, ok := hints.SinkZero[warmstart.StatKey{Sink: neighbor.ID, Node: "A"}]; !ok {
		t.Errorf("SinkZero missing entry for non-settled candidate")
	}
	if _, ok := hints.SinkZero[warmstart.StatKey{Sink: origin.ID, Node: "A"}]; ok {
		t.Errorf("SinkZero unexpectedly contains the settled sink")
	}

	for _, port := range origin.Ports {
		for _, bendID := range bg.BendEdgesAt(port) {
			if _, ok := hints.BendZero[bendID]; !ok {
				t.Errorf("BendZero missing bend edge %d at settled sink's port %d", bendID, port)
			}
		}
	}
}

// TestExtract_EdgeUseFromPath checks that every grid edge on a
// heuristic path is preset to edg=1.
func TestExtract_EdgeUseFromPath(t *testing.T) {
	bg := buildGrid(t)

	g := combgraph.NewGraph()
	if _, err := g.AddNode("A", geo.Point{X: 0, Y: 0}); err != nil {
		t.Fatalf("AddNode error: %v", err)
	}
	if _, err := g.AddNode("B", geo.Point{X: 10, Y: 0}); err != nil {
		t.Fatalf("AddNode error: %v", err)
	}
	if _, err := g.AddEdge("AB", "A", "B", nil); err != nil {
		t.Fatalf("AddEdge error: %v", err)
	}

	origin, _ := bg.Sink(0, 0)
	neighbor, _ := bg.Sink(1, 0)
	edgeID, ok := bg.EdgeBetween(origin.Ports[basegraph.East], neighbor.Ports[basegraph.West])
	if !ok {
		t.Fatalf("no major edge between origin and neighbor")
	}

	drawing := warmstart.Drawing{
		Settled: map[string]int{},
		Paths:   map[string][]int{"AB": {edgeID}},
	}

	hints := warmstart.Extract(bg, g.Nodes(), drawing)

	if _, ok := hints.EdgeUseOne[warmstart.EdgeKey{GridEdge: edgeID, CombEdge: "AB"}]; !ok {
		t.Errorf("EdgeUseOne missing preset for the heuristic's routed edge")
	}
}
