package decode_test

import (
	"testing"

	"github.com/octiline/octigrid/basegraph"
	"github.com/octiline/octigrid/combgraph"
	"github.com/octiline/octigrid/decode"
	"github.com/octiline/octigrid/geo"
	"github.com/octiline/octigrid/ilp"
	"github.com/octiline/octigrid/solver"
	_ "github.com/octiline/octigrid/solver/refsolver"
)

func testOptions() basegraph.Options {
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
			Diagonal:   1.4,
		},
	}
}

// buildLineFixture reproduces spec.md §8 scenario S1: a two-node comb
// graph on a small base grid, with a single edge that must be routed
// between two adjacent sinks.
func buildLineFixture(t *testing.T) (*basegraph.BaseGrid, *combgraph.Graph) {
	t.Helper()

	positions := []geo.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	bg, err := basegraph.NewBaseGrid(positions, testOptions())
	if err != nil {
		t.Fatalf("NewBaseGrid: %v", err)
	}

	cg := combgraph.NewGraph()
	a, err := cg.AddNode("A", geo.Point{X: 0, Y: 0})
	if err != nil {
		t.Fatalf("AddNode A: %v", err)
	}
	b, err := cg.AddNode("B", geo.Point{X: 10, Y: 0})
	if err != nil {
		t.Fatalf("AddNode B: %v", err)
	}
	if _, err := cg.AddEdge("AB", "A", "B", []string{"L1"}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	for _, v := range []*combgraph.CombNode{a, b} {
		cands := bg.CandidatesFor(v.Pos, 1.5)
		v.SetCandidateSinks(cands)
		for _, g := range cands {
			if err := bg.OpenCandidateSink(g, 0); err != nil {
				t.Fatalf("OpenCandidateSink: %v", err)
			}
		}
	}

	return bg, cg
}

func TestDecode_SolvedLineFixture(t *testing.T) {
	bg, cg := buildLineFixture(t)

	fac, err := solver.Open("ref")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := ilp.Build(fac, bg, cg, nil, nil); err != nil {
		t.Fatalf("Build: %v", err)
	}

	status, err := fac.Solve()
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if status == solver.Infeasible {
		t.Fatal("expected a feasible line fixture, got Infeasible")
	}

	if err := decode.Decode(fac, bg, cg, nil); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	a, err := cg.Node("A")
	if err != nil {
		t.Fatalf("Node A: %v", err)
	}
	b, err := cg.Node("B")
	if err != nil {
		t.Fatalf("Node B: %v", err)
	}

	sinkA, ok := a.SettledSink()
	if !ok {
		t.Fatal("A was not settled on a sink")
	}
	if !contains(a.CandidateSinks(), sinkA) {
		t.Fatalf("A settled on sink %d, not among its candidates %v", sinkA, a.CandidateSinks())
	}

	sinkB, ok := b.SettledSink()
	if !ok {
		t.Fatal("B was not settled on a sink")
	}
	if !contains(b.CandidateSinks(), sinkB) {
		t.Fatalf("B settled on sink %d, not among its candidates %v", sinkB, b.CandidateSinks())
	}

	ab, err := cg.Edge("AB")
	if err != nil {
		t.Fatalf("Edge AB: %v", err)
	}
	if sinkA != sinkB && len(ab.Path()) == 0 {
		t.Fatal("expected a non-empty decoded path for a comb edge between distinct sinks")
	}
	for _, eid := range ab.Path() {
		if e := bg.Edge(eid); e == nil || e.Secondary {
			t.Fatalf("decoded path contains a non-major edge %d", eid)
		}
	}
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}

	return false
}
