package combgraph

import (
	"math"
	"sort"
)

// OrderByAngle sets node id's circular incidence order to the clockwise
// angular order of its neighbors around Pos, starting from due north
// (matching the base grid's port numbering, where direction 0 is
// north and direction increases clockwise). Ties (coincident neighbor
// positions) are broken by edge ID for determinism.
//
// This is a convenience for callers that only have geographic
// positions and want "the order matching geography" (spec.md scenario
// S2); callers with an explicit desired order should use
// SetIncidentOrder instead.
func (g *Graph) OrderByAngle(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodesByID[id]
	if !ok {
		return ErrNodeNotFound
	}

	type keyed struct {
		e   *CombEdge
		ang float64
	}
	items := make([]keyed, len(n.incident))
	for i, e := range n.incident {
		other := e.Other(n)
		dx := other.Pos.X - n.Pos.X
		dy := other.Pos.Y - n.Pos.Y
		// atan2 measured from north (+Y), clockwise: swap axes and negate.
		ang := math.Atan2(dx, dy)
		if ang < 0 {
			ang += 2 * math.Pi
		}
		items[i] = keyed{e: e, ang: ang}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].ang != items[j].ang {
			return items[i].ang < items[j].ang
		}

		return items[i].e.ID < items[j].e.ID
	})

	ordered := make([]*CombEdge, len(items))
	for i, it := range items {
		ordered[i] = it.e
	}
	n.incident = ordered

	return nil
}
