package basegraph

import (
	"sort"

	"github.com/octiline/octigrid/geo"
)

// NewBaseGrid builds the octilinear Hanan lattice induced by positions,
// following spec 4.C's construction steps:
//  1. collect cell coordinates of every input position;
//  2. iterate Options.Iterations rounds of Hanan-intersection folding;
//  3. create a sink with eight ports and all intra-sink bend edges for
//     every resulting cell;
//  4. connect consecutive sinks along each of the four line families
//     with a major directed edge pair;
//  5. register diagonal crossing pairs;
//  6. compute an initial per-edge cost for every major edge.
func NewBaseGrid(positions []geo.Point, opts Options) (*BaseGrid, error) {
	if len(positions) == 0 {
		return nil, ErrNoCoordinates
	}
	if opts.CellSize <= 0 {
		return nil, ErrBadCellSize
	}

	bg := &BaseGrid{
		opts:            opts,
		transform:       geo.NewTransform(opts.Origin, opts.CellSize),
		sinkAt:          make(map[[2]int]int),
		edgeIndex:       make(map[[2]int]int),
		crossingsByEdge: make(map[int][]int),
		reservations:    make(map[[2]int]map[string]struct{}),
		bendAt:          make(map[int][]int),
		majorFrom:       make(map[int]int),
	}

	coords := bg.collectCoords(positions)
	minX, maxX, minY, maxY := boundingBox(coords)
	for i := 0; i < opts.Iterations; i++ {
		coords = haninFold(coords, minX, maxX, minY, maxY)
	}

	bg.createSinks(coords)
	bg.connectFamilies(coords)
	bg.registerCrossings()
	bg.computeInitialCosts()

	return bg, nil
}

// collectCoords maps every input position to its nearest cell.
func (bg *BaseGrid) collectCoords(positions []geo.Point) map[[2]int]struct{} {
	set := make(map[[2]int]struct{}, len(positions))
	for _, p := range positions {
		x, y := bg.transform.Cell(p)
		set[[2]int{x, y}] = struct{}{}
	}

	return set
}

// boundingBox returns the cell-coordinate extent of the initial
// (pre-iteration) coordinate set. The reference implementation
// (OctiHananGraph::init/getIterCoords) establishes its grid's width
// and height once, from the full geographic extent, before any Hanan
// iteration runs, and every iteration's diagonal-family bucket indices
// (`x + (H-1-y)`, `x+y`) are computed against that fixed extent rather
// than against whichever coordinates happen to be active in a given
// round. minX/minY give the 0-based origin the diagonal buckets in
// haninFold are measured from.
func boundingBox(coords map[[2]int]struct{}) (minX, maxX, minY, maxY int) {
	first := true
	for c := range coords {
		if first {
			minX, maxX, minY, maxY = c[0], c[0], c[1], c[1]
			first = false

			continue
		}
		if c[0] < minX {
			minX = c[0]
		}
		if c[0] > maxX {
			maxX = c[0]
		}
		if c[1] < minY {
			minY = c[1]
		}
		if c[1] > maxY {
			maxY = c[1]
		}
	}

	return minX, maxX, minY, maxY
}

// haninFold adds every Hanan intersection (xi, yj) of the coordinates
// currently present in coords, then folds in the two diagonal families
// `x+y` and `x+(H-1-y)` per spec 4.C step 2: any cell lying on a
// diagonal that already carries an active coordinate, and whose
// diagonal crosses another active row, column, or diagonal, is added
// too. H is the fixed height of the original coordinate set's
// bounding box (minY..maxY), established once by the caller before the
// first iteration, matching OctiHananGraph::getIterCoords's fixed
// _grid.getYHeight().
func haninFold(coords map[[2]int]struct{}, minX, maxX, minY, maxY int) map[[2]int]struct{} {
	height := maxY - minY + 1

	xAct := make(map[int]bool)
	yAct := make(map[int]bool)
	xyAct := make(map[int]bool) // bucket x+(H-1-y), the x-y=const family
	yxAct := make(map[int]bool) // bucket x+y, the x+y=const family

	for c := range coords {
		x, y := c[0], c[1]
		xAct[x] = true
		yAct[y] = true
		xyAct[(x-minX)+(height-1-(y-minY))] = true
		yxAct[(x-minX)+(y-minY)] = true
	}

	next := make(map[[2]int]struct{}, len(coords))
	for c := range coords {
		next[c] = struct{}{}
	}

	for x := range xAct {
		for y := range yAct {
			next[[2]int{x, y}] = struct{}{}
		}
	}

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			xi := (x - minX) + (height - 1 - (y - minY))
			yi := (x - minX) + (y - minY)
			onDiff := xyAct[xi]
			onSum := yxAct[yi]
			if (onDiff && (onSum || yAct[y] || xAct[x])) || (onSum && (onDiff || yAct[y] || xAct[x])) {
				next[[2]int{x, y}] = struct{}{}
			}
		}
	}

	return next
}

// sortedCoords returns coords sorted lexicographically by (y, x) so that
// node ids are assigned deterministically.
func sortedCoords(coords map[[2]int]struct{}) [][2]int {
	out := make([][2]int, 0, len(coords))
	for c := range coords {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][1] != out[j][1] {
			return out[i][1] < out[j][1]
		}
		return out[i][0] < out[j][0]
	})

	return out
}

// createSinks allocates a sink and eight ports (plus intra-sink bend
// edges) for every coordinate in coords, in deterministic order.
func (bg *BaseGrid) createSinks(coords map[[2]int]struct{}) {
	for _, c := range sortedCoords(coords) {
		x, y := c[0], c[1]

		sink := bg.newNode(x, y, true, -1)
		bg.sinkAt[c] = sink.ID

		for d := Direction(0); d < 8; d++ {
			port := bg.newNode(x, y, false, sink.ID)
			sink.Ports[d] = port.ID
		}

		for i := Direction(0); i < 8; i++ {
			for j := Direction(0); j < 8; j++ {
				if i == j {
					continue
				}
				bend := bg.addEdge(sink.Ports[i], sink.Ports[j], bg.opts.Bend.cost(i, j), i, true)
				bg.bendAt[sink.Ports[i]] = append(bg.bendAt[sink.Ports[i]], bend.ID)
				bg.bendAt[sink.Ports[j]] = append(bg.bendAt[sink.Ports[j]], bend.ID)
			}
			// Sink<->port edges start closed (SoftInf); OpenCandidateSink
			// lowers them once the sink is a candidate for some node.
			bg.addEdge(sink.ID, sink.Ports[i], SoftInf, i, true)
			bg.addEdge(sink.Ports[i], sink.ID, SoftInf, i.Opposite(), true)
			bg.edges[len(bg.edges)-1].Open = false
			bg.edges[len(bg.edges)-2].Open = false
		}
	}
}

func (bg *BaseGrid) newNode(x, y int, sink bool, parent int) *GridNode {
	n := &GridNode{ID: len(bg.nodes), X: x, Y: y, Sink: sink, Parent: parent}
	n.Pos = bg.transform.World(x, y)
	bg.nodes = append(bg.nodes, n)

	return n
}

func (bg *BaseGrid) addEdge(from, to int, cost float64, dir Direction, secondary bool) *GridEdge {
	e := &GridEdge{ID: len(bg.edges), From: from, To: to, Cost: cost, Dir: dir, Secondary: secondary, Open: true}
	bg.edges = append(bg.edges, e)
	bg.edgeIndex[[2]int{from, to}] = e.ID

	return e
}

// lineFamily identifies one of the four axes major edges are grouped
// along, and how consecutive members within a bucket are connected.
type lineFamily struct {
	// key buckets coordinates that lie on the same line.
	key func(x, y int) int
	// order sorts members of a bucket so consecutive pairs are adjacent
	// along the line.
	order func(a, b [2]int) bool
	fwd   Direction
}

func (bg *BaseGrid) connectFamilies(coords map[[2]int]struct{}) {
	families := []lineFamily{
		{key: func(x, y int) int { return y }, order: byX, fwd: East},
		{key: func(x, y int) int { return x }, order: byY, fwd: South},
		{key: func(x, y int) int { return x - y }, order: byX, fwd: SouthEast},
		{key: func(x, y int) int { return x + y }, order: byX, fwd: NorthEast},
	}

	for _, fam := range families {
		buckets := make(map[int][][2]int)
		for c := range coords {
			k := fam.key(c[0], c[1])
			buckets[k] = append(buckets[k], c)
		}
		keys := make([]int, 0, len(buckets))
		for k := range buckets {
			keys = append(keys, k)
		}
		sort.Ints(keys)

		for _, k := range keys {
			members := buckets[k]
			sort.Slice(members, func(i, j int) bool { return fam.order(members[i], members[j]) })
			for i := 0; i+1 < len(members); i++ {
				bg.connectMajor(members[i], members[i+1], fam.fwd)
			}
		}
	}
}

func byX(a, b [2]int) bool { return a[0] < b[0] }
func byY(a, b [2]int) bool { return a[1] < b[1] }

// connectMajor links consecutive sinks a and b with a forward/reverse
// major edge pair along direction fwd (spec 4.C step 4). Cost is filled
// in later by computeInitialCosts.
func (bg *BaseGrid) connectMajor(a, b [2]int, fwd Direction) {
	sa, sb := bg.sinkAt[a], bg.sinkAt[b]
	pa := bg.nodes[sa].Ports[fwd]
	pb := bg.nodes[sb].Ports[fwd.Opposite()]

	f := bg.addEdge(pa, pb, 0, fwd, false)
	r := bg.addEdge(pb, pa, 0, fwd.Opposite(), false)
	bg.majorFrom[pa] = f.ID
	bg.majorFrom[pb] = r.ID

	switch fwd {
	case SouthEast:
		bg.diffSegs = append(bg.diffSegs, diagSegment{a[0], a[1], b[0], b[1], f.ID, r.ID})
	case NorthEast:
		bg.sumSegs = append(bg.sumSegs, diagSegment{a[0], a[1], b[0], b[1], f.ID, r.ID})
	}
}
