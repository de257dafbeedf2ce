package decode

import (
	"fmt"

	"github.com/octiline/octigrid/basegraph"
	"github.com/octiline/octigrid/combgraph"
	"github.com/octiline/octigrid/ilp"
	"github.com/octiline/octigrid/obslog"
	"github.com/octiline/octigrid/octierr"
	"github.com/octiline/octigrid/solver"
)

// Decode reads the solved variable assignment out of fac and writes it
// back into cg: every comb edge gets its decoded major grid-edge path,
// and every comb node its settled sink.
func Decode(fac solver.Facade, bg *basegraph.BaseGrid, cg *combgraph.Graph, log *obslog.Logger) error {
	if log == nil {
		log = obslog.NewNop()
	}

	if err := settleStations(fac, cg); err != nil {
		return err
	}

	for _, f := range cg.Edges() {
		if err := decodeEdge(fac, bg, f); err != nil {
			return err
		}
	}

	log.Phase("decode finished", "edges", len(cg.Edges()))

	return nil
}

// settleStations locates, for every comb node, the sink whose sp
// variable was set to 1, and records it via SetSettledSink.
func settleStations(fac solver.Facade, cg *combgraph.Graph) error {
	for _, v := range cg.Nodes() {
		sink, ok, err := settledSinkFor(fac, v)
		if err != nil {
			return err
		}
		if !ok {
			return octierr.NewInternal("decode.settleStations",
				fmt.Errorf("%w: comb node %s has no sp variable set to 1", octierr.ErrDecodeInvariant, v.ID))
		}
		v.SetSettledSink(sink)
	}

	return nil
}

func settledSinkFor(fac solver.Facade, v *combgraph.CombNode) (int, bool, error) {
	for _, g := range v.CandidateSinks() {
		col, ok := fac.GetVarByName(ilp.SPName(g, v.ID))
		if !ok {
			continue
		}
		val, err := fac.GetVarVal(col)
		if err != nil {
			return 0, false, err
		}
		if val > 0.5 {
			return g, true, nil
		}
	}

	return 0, false, nil
}

// decodeEdge reconstructs f's ordered major grid-edge path by walking
// the edg(·, f) variables set to > 0.5 from f.From's settled sink to
// f.To's settled sink.
func decodeEdge(fac solver.Facade, bg *basegraph.BaseGrid, f *combgraph.CombEdge) error {
	source, ok := f.From.SettledSink()
	if !ok {
		return octierr.NewInternal("decode.decodeEdge", fmt.Errorf("comb node %s was not settled", f.From.ID))
	}
	target, ok := f.To.SettledSink()
	if !ok {
		return octierr.NewInternal("decode.decodeEdge", fmt.Errorf("comb node %s was not settled", f.To.ID))
	}

	next := make(map[int]struct{ edge, to int })
	selected := 0
	for eid := 0; eid < bg.NumEdges(); eid++ {
		e := bg.Edge(eid)
		if e == nil {
			continue
		}
		col, ok := fac.GetVarByName(ilp.EdgName(eid, f.ID))
		if !ok {
			continue
		}
		val, err := fac.GetVarVal(col)
		if err != nil {
			return err
		}
		if val <= 0.5 {
			continue
		}
		if _, dup := next[e.From]; dup {
			return octierr.NewInternal("decode.decodeEdge",
				fmt.Errorf("%w: comb edge %s branches at grid node %d", octierr.ErrDecodeInvariant, f.ID, e.From))
		}
		next[e.From] = struct{ edge, to int }{edge: eid, to: e.To}
		selected++
	}

	// path keeps only the major grid edges, mirroring Drawing.cpp's draw()
	// (`if (!ge->pl().isSecondary())`); hops counts every edge walked,
	// secondary or not, so the stall/cycle checks below see the whole walk.
	path := make([]int, 0, selected)
	hops := 0
	cur := source
	for hops < selected+1 {
		if cur == target {
			break
		}
		hop, ok := next[cur]
		if !ok {
			return octierr.NewInternal("decode.decodeEdge",
				fmt.Errorf("%w: comb edge %s walk stalled at grid node %d before reaching target sink %d",
					octierr.ErrDecodeInvariant, f.ID, cur, target))
		}
		if e := bg.Edge(hop.edge); e != nil && !e.Secondary {
			path = append(path, hop.edge)
		}
		hops++
		cur = hop.to
	}

	if cur != target {
		return octierr.NewInternal("decode.decodeEdge",
			fmt.Errorf("%w: comb edge %s walk ended at grid node %d, want target sink %d",
				octierr.ErrDecodeInvariant, f.ID, cur, target))
	}
	if hops != selected {
		return octierr.NewInternal("decode.decodeEdge",
			fmt.Errorf("%w: comb edge %s recovered %d edges from a walk of length %d",
				octierr.ErrDecodeInvariant, f.ID, selected, hops))
	}

	f.SetPath(path)

	return nil
}
