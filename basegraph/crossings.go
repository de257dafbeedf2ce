package basegraph

// registerCrossings finds, for every pair of one x-y=const diagonal
// segment and one x+y=const diagonal segment, whether they cross in
// their shared interior (a virtual intersection point, not itself a
// grid node) and if so registers the four participating directed edges
// (both directions of both segments) as a crossing group: spec 4.E
// constraint 6 forbids more than one of the four ever being used.
//
// diffSegs run from (x1,y1) to (x2,y2) with x2>x1, y2>y1 (slope +1 in
// cell space); sumSegs run from (x3,y3) to (x4,y4) with x4>x3, y3>y4
// (slope -1). Two such segments cross iff the intersection of their
// carrier lines lies strictly inside both segments' x-ranges.
func (bg *BaseGrid) registerCrossings() {
	for _, d := range bg.diffSegs {
		x1, y1, x2 := float64(d.x1), float64(d.y1), float64(d.x2)
		cDiff := y1 - x1 // line: y = x + cDiff

		for _, s := range bg.sumSegs {
			x3, y3, x4 := float64(s.x1), float64(s.y1), float64(s.x2)
			cSum := x3 + y3 // line: y = -x + cSum

			x0 := (cSum - cDiff) / 2
			if !(x1 < x0 && x0 < x2) || !(x3 < x0 && x0 < x4) {
				continue
			}

			bg.addCrossingGroup([4]int{d.fwd, d.rev, s.fwd, s.rev})
		}
	}

	bg.diffSegs = nil
	bg.sumSegs = nil
}

func (bg *BaseGrid) addCrossingGroup(group [4]int) {
	idx := len(bg.crossings)
	bg.crossings = append(bg.crossings, group)
	for _, e := range group {
		bg.crossingsByEdge[e] = append(bg.crossingsByEdge[e], idx)
	}
}

// CrossingGroups returns the edge ids of every registered crossing that
// edgeID participates in, one group of four per crossing.
func (bg *BaseGrid) CrossingGroups(edgeID int) [][4]int {
	idxs := bg.crossingsByEdge[edgeID]
	out := make([][4]int, len(idxs))
	for i, idx := range idxs {
		out[i] = bg.crossings[idx]
	}

	return out
}

// AllCrossingGroups returns every registered crossing group, in
// registration order (deterministic given deterministic construction).
func (bg *BaseGrid) AllCrossingGroups() [][4]int {
	out := make([][4]int, len(bg.crossings))
	copy(out, bg.crossings)

	return out
}
