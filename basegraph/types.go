package basegraph

import (
	"github.com/octiline/octigrid/geo"
)

// SoftInf is the sentinel cost standing in for "closed"/"unusable": edges
// at or above this cost are never turned into ILP variables (spec 4.E
// edge-case policy).
const SoftInf = 1e9

// Direction is a compass direction around a sink, 0 = north, increasing
// clockwise in steps of 45 degrees. Ports are indexed by Direction.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Opposite returns the direction 180 degrees from d.
func (d Direction) Opposite() Direction { return (d + 4) % 8 }

// diagonal reports whether d is one of the four diagonal directions.
func (d Direction) diagonal() bool { return d%2 == 1 }

// GridNode is either a sink (a candidate station site, the centre of a
// Hanan cell) or a port (one of a sink's eight compass exits).
type GridNode struct {
	ID   int
	X, Y int
	Pos  geo.Point

	Sink bool

	// Ports holds this sink's eight port node ids, valid only when Sink
	// is true; Ports[d] is the port facing Direction d.
	Ports [8]int

	// Parent is the owning sink's node id; valid only when Sink is
	// false, -1 otherwise.
	Parent int
}

// GridEdge is a directed edge between two grid nodes. Major edges join
// ports of distinct sinks; secondary edges are sink<->port and
// port<->port edges within a single sink's cluster. Forward and reverse
// major edges are always both present and kept in sync.
type GridEdge struct {
	ID   int
	From int
	To   int

	Cost float64
	Dir  Direction

	Secondary bool
	Blocked   bool
	Open      bool
}

// BendPenalties gives the intra-sink turn cost for each of the three
// turn-angle buckets a pair of distinct ports can fall into (spec 3:
// ang(i,j) in {0,1,2} for straight, 45 degrees, 90 degrees or sharper).
type BendPenalties struct {
	Straight float64
	Diag45   float64
	Right90  float64
}

// cost returns the configured penalty for the turn between ports i and j,
// folding turns sharper than 90 degrees into the Right90 bucket: the base
// grid only distinguishes three severities, matching spec 3's stated
// domain for ang(i,j).
func (b BendPenalties) cost(i, j Direction) float64 {
	diff := int(i - j)
	if diff < 0 {
		diff = -diff
	}
	if diff > 4 {
		diff = 8 - diff
	}
	switch {
	case diff == 0:
		return b.Straight
	case diff == 1:
		return b.Diag45
	default:
		return b.Right90
	}
}

// MajorPenalties gives the per-hop cost of the three major-edge families.
type MajorPenalties struct {
	Horizontal float64
	Vertical   float64
	Diagonal   float64
}

// Options configures NewBaseGrid.
type Options struct {
	Origin   geo.Point
	CellSize float64

	// Iterations controls how many rounds of Hanan-intersection folding
	// are applied to the input coordinate set before sinks are created.
	Iterations int

	Bend  BendPenalties
	Major MajorPenalties
}

// BaseGrid is the octilinear Hanan lattice: sinks, ports, major and
// secondary edges, and the diagonal crossing-pair registry.
type BaseGrid struct {
	opts      Options
	transform geo.Transform

	nodes []*GridNode
	edges []*GridEdge

	sinkAt    map[[2]int]int // (x,y) -> sink node id
	edgeIndex map[[2]int]int // (fromNodeID,toNodeID) -> edge id

	// crossings holds, for every registered diagonal crossing, the four
	// participating directed edge ids (both directions of each of the
	// two crossing diagonal segments).
	crossings [][4]int
	// crossingsByEdge maps an edge id to the indices into crossings it
	// participates in.
	crossingsByEdge map[int][]int

	// reservations maps a canonical (min,max) node-id pair to the set of
	// comb-edge ids currently reserving the major edge between them.
	reservations map[[2]int]map[string]struct{}

	// hopDist holds all-pairs sink hop distances, computed lazily by
	// PrecomputeHopDistances via matrix.APSPInPlace.
	hopDist   [][]float64
	sinkIdxOf map[int]int
	hopReady  bool

	// bendAt maps a port node id to the ids of every intra-sink bend
	// edge incident to it (either endpoint), for fast settle/unsettle.
	bendAt map[int][]int

	// majorFrom maps a port node id to the id of the single major edge
	// leaving it, if the port has been connected to a neighbouring sink.
	majorFrom map[int]int

	// diffSegs/sumSegs record the diagonal major-edge segments created
	// during construction (x-y=const and x+y=const respectively), kept
	// around only long enough for registerCrossings to compare them.
	diffSegs []diagSegment
	sumSegs  []diagSegment
}

// diagSegment is one diagonal major-edge segment between two sinks,
// identified by cell coordinates and its forward/reverse edge ids.
type diagSegment struct {
	x1, y1, x2, y2 int
	fwd, rev       int
}
