package ilp

import (
	"sort"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/octiline/octigrid/basegraph"
)

// universe is the set of grid edges admitted as edg(e, f) variable
// candidates, plus the per-node incidence lists needed to write flow-
// conservation rows. Any GridEdge whose cost is below basegraph.SoftInf
// and is not blocked qualifies (spec.md §4.E edge-case policy);
// sink<->port edges of non-candidate sinks never drop below SoftInf
// (only OpenCandidateSink lowers them), so the cost filter alone also
// enforces "sink edges of non-candidate sinks are omitted" without a
// separate candidate-sink lookup here.
//
// outAt/inAt are redblacktree.Tree, not plain maps, so iterating every
// touched grid node during row construction visits them in ascending
// id order rather than Go's unspecified map order (spec.md §5/§9's
// determinism requirement).
type universe struct {
	edges []int

	outAt *redblacktree.Tree
	inAt  *redblacktree.Tree
}

func buildUniverse(bg *basegraph.BaseGrid) *universe {
	u := &universe{
		outAt: redblacktree.NewWithIntComparator(),
		inAt:  redblacktree.NewWithIntComparator(),
	}

	for id := 0; id < bg.NumEdges(); id++ {
		e := bg.Edge(id)
		if e == nil || e.Blocked || e.Cost >= basegraph.SoftInf {
			continue
		}
		u.edges = append(u.edges, id)
		u.append(u.outAt, e.From, id)
		u.append(u.inAt, e.To, id)
	}
	sort.Ints(u.edges)

	return u
}

func (u *universe) append(tree *redblacktree.Tree, node, edge int) {
	var list []int
	if v, ok := tree.Get(node); ok {
		list = v.([]int)
	}
	tree.Put(node, append(list, edge))
}

// nodeIDs returns every grid node id touched by at least one usable
// edge, ascending.
func (u *universe) nodeIDs() []int {
	seen := redblacktree.NewWithIntComparator()
	for _, k := range u.outAt.Keys() {
		seen.Put(k, struct{}{})
	}
	for _, k := range u.inAt.Keys() {
		seen.Put(k, struct{}{})
	}

	out := make([]int, 0, seen.Size())
	for _, k := range seen.Keys() {
		out = append(out, k.(int))
	}

	return out
}

func (u *universe) out(node int) []int {
	if v, ok := u.outAt.Get(node); ok {
		return v.([]int)
	}

	return nil
}

func (u *universe) in(node int) []int {
	if v, ok := u.inAt.Get(node); ok {
		return v.([]int)
	}

	return nil
}

// has reports whether edge id is part of the usable universe.
func (u *universe) has(bg *basegraph.BaseGrid, edge int) bool {
	e := bg.Edge(edge)

	return e != nil && !e.Blocked && e.Cost < basegraph.SoftInf
}

// sinkPortEdges returns the usable sink<->port edge ids at sink
// (either direction), ascending.
func sinkPortEdges(bg *basegraph.BaseGrid, u *universe, sink int) []int {
	n := bg.Node(sink)
	if n == nil {
		return nil
	}
	var out []int
	for _, port := range n.Ports {
		if id, ok := bg.EdgeBetween(sink, port); ok && u.has(bg, id) {
			out = append(out, id)
		}
		if id, ok := bg.EdgeBetween(port, sink); ok && u.has(bg, id) {
			out = append(out, id)
		}
	}
	sort.Ints(out)

	return out
}

// bendEdgesAtSink returns every usable bend edge id belonging to sink,
// deduplicated (a bend edge is incident to two of the sink's ports) and
// ascending.
func bendEdgesAtSink(bg *basegraph.BaseGrid, u *universe, sink int) []int {
	n := bg.Node(sink)
	if n == nil {
		return nil
	}
	seen := make(map[int]struct{})
	for _, port := range n.Ports {
		for _, id := range bg.BendEdgesAt(port) {
			if u.has(bg, id) {
				seen[id] = struct{}{}
			}
		}
	}
	out := make([]int, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}
