package basegraph

import "github.com/octiline/octigrid/geo"

// computeInitialCosts fills in the per-edge cost of every major edge:
// the family penalty times the geometric length in grid hops, less a
// small constant so that short hops stay attractive relative to a
// heuristic detour through an intermediate sink (spec 4.C step 6).
func (bg *BaseGrid) computeInitialCosts() {
	hopBonus := bg.minMajorPenalty() * 0.1

	for _, e := range bg.edges {
		if e.Secondary {
			continue
		}
		from, to := bg.nodes[e.From], bg.nodes[e.To]
		hops := geo.Dist(from.Pos, to.Pos) / bg.opts.CellSize

		cost := bg.familyPenalty(e.Dir)*hops - hopBonus
		if cost < 0 {
			cost = 0
		}
		e.Cost = cost
	}
}

func (bg *BaseGrid) familyPenalty(d Direction) float64 {
	switch {
	case d == North || d == South:
		return bg.opts.Major.Vertical
	case d == East || d == West:
		return bg.opts.Major.Horizontal
	default:
		return bg.opts.Major.Diagonal
	}
}

func (bg *BaseGrid) minMajorPenalty() float64 {
	m := bg.opts.Major.Horizontal
	if bg.opts.Major.Vertical < m {
		m = bg.opts.Major.Vertical
	}
	if bg.opts.Major.Diagonal < m {
		m = bg.opts.Major.Diagonal
	}

	return m
}
