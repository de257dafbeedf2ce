package ilp

import (
	"github.com/octiline/octigrid/basegraph"
	"github.com/octiline/octigrid/combgraph"
	"github.com/octiline/octigrid/config"
	"github.com/octiline/octigrid/obslog"
	"github.com/octiline/octigrid/solver"
)

// Build emits every variable, constraint, and objective term of
// spec.md §4.E into fac, over cg's nodes/edges and bg's lattice. It
// does not call fac.Update, SetStarter, or Solve — those are the
// caller's responsibility once the model is fully built (see the root
// package's optimize.go).
func Build(fac solver.Facade, bg *basegraph.BaseGrid, cg *combgraph.Graph, geoPens map[config.GeoPenKey]float64, log *obslog.Logger) error {
	if log == nil {
		log = obslog.NewNop()
	}

	nodes := cg.Nodes()
	edges := cg.Edges()
	u := buildUniverse(bg)
	pairs := bendPairs(nodes)
	sinks := bg.SinkIDs()

	log.Counts("universe", "edges", len(u.edges), "nodes", len(nodes), "edges_comb", len(edges))

	if err := addStationVars(fac, bg, nodes); err != nil {
		return err
	}
	if err := addEdgeUseVars(fac, bg, u, edges, geoPens); err != nil {
		return err
	}
	if err := addDirectionVars(fac, edges); err != nil {
		return err
	}
	if err := addOrderingVars(fac, nodes); err != nil {
		return err
	}
	if err := addBendVars(fac, bg.BendPenalties(), pairs); err != nil {
		return err
	}

	log.Phase("variables emitted", "cols", fac.NumCols())

	if err := addUniqueStationRows(fac, nodes); err != nil {
		return err
	}
	if err := addEdgeExclusivityRows(fac, bg, u, edges); err != nil {
		return err
	}
	if err := addFlowConservationRows(fac, bg, u, edges); err != nil {
		return err
	}
	if err := addSinkEdgeUseRows(fac, bg, u, sinks, edges); err != nil {
		return err
	}
	if err := addStationOrPassThroughRows(fac, bg, u, sinks, nodes, edges); err != nil {
		return err
	}
	if err := addNoCrossingRows(fac, bg, u, edges); err != nil {
		return err
	}
	if err := addDirectionLinkageRows(fac, bg, u, edges); err != nil {
		return err
	}
	if err := addCircularOrderingRows(fac, nodes); err != nil {
		return err
	}
	if err := addBendDiscretizationRows(fac, pairs); err != nil {
		return err
	}

	log.Phase("constraints emitted", "rows", fac.NumRows())

	return fac.Update()
}
