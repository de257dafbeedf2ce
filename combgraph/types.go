package combgraph

import (
	"errors"
	"sync"

	"github.com/octiline/octigrid/geo"
)

// Sentinel errors for combgraph operations.
var (
	// ErrEmptyID indicates a node or edge was given an empty ID.
	ErrEmptyID = errors.New("combgraph: id is empty")
	// ErrDuplicateNode indicates a node ID was already registered.
	ErrDuplicateNode = errors.New("combgraph: duplicate node id")
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("combgraph: node not found")
	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("combgraph: edge not found")
	// ErrSelfLoop indicates an edge was added from a node to itself.
	ErrSelfLoop = errors.New("combgraph: self-loops are not allowed")
	// ErrMultiEdge indicates a second edge was added between the same pair of nodes.
	ErrMultiEdge = errors.New("combgraph: parallel edges are not allowed")
	// ErrBadOrdering indicates SetIncidentOrder was given a set of edges
	// that does not match the node's actual incident edges.
	ErrBadOrdering = errors.New("combgraph: incident order does not match incident edges")
)

// CombNode is a station in the abstract transit network: a geographic
// position plus the ordered sequence of edges incident to it. The
// order is the circular ordering the optimizer must preserve; index 0
// through len-1 corresponds to clockwise (or any single fixed)
// traversal around the eventual drawing.
type CombNode struct {
	ID  string
	Pos geo.Point

	// idx is a stable, first-seen-order integer id used everywhere a
	// deterministic iteration key is needed instead of the string ID.
	idx int

	// incident holds this node's edges in caller-defined circular order.
	incident []*CombEdge

	// candidateSinks holds base-grid sink ids this node may be placed
	// on; populated by the caller (typically basegraph.CandidatesFor)
	// before the ILP is built.
	candidateSinks []int

	// settledSink is the grid sink the decoder placed this node on,
	// set once by SetSettledSink after a solve.
	settledSink int
	hasSettled  bool
}

// SettledSink returns the grid sink this node was decoded onto, and
// whether SetSettledSink has been called yet.
func (n *CombNode) SettledSink() (int, bool) { return n.settledSink, n.hasSettled }

// SetSettledSink records the grid sink the decoder placed this node
// on.
func (n *CombNode) SetSettledSink(sink int) {
	n.settledSink = sink
	n.hasSettled = true
}

// Index returns the node's stable insertion-order id.
func (n *CombNode) Index() int { return n.idx }

// Degree returns the number of edges incident to n.
func (n *CombNode) Degree() int { return len(n.incident) }

// Incident returns a copy of n's incident edges in circular order.
func (n *CombNode) Incident() []*CombEdge {
	out := make([]*CombEdge, len(n.incident))
	copy(out, n.incident)

	return out
}

// CandidateSinks returns a copy of the grid sink ids this node may occupy.
func (n *CombNode) CandidateSinks() []int {
	out := make([]int, len(n.candidateSinks))
	copy(out, n.candidateSinks)

	return out
}

// SetCandidateSinks replaces n's candidate sink set. Called by the base
// grid graph once candidates have been pruned by the maxGrDist cutoff.
func (n *CombNode) SetCandidateSinks(sinks []int) {
	n.candidateSinks = append(n.candidateSinks[:0:0], sinks...)
}

// CombEdge is a connection between two CombNodes carrying zero or more
// child line segments. Directionality (From -> To) is used only to
// orient the direction variable d(v, f) of spec.md 4.E constraint 7; the
// underlying network is not conceptually directed.
type CombEdge struct {
	ID    string
	From  *CombNode
	To    *CombNode
	Lines []string

	idx int

	// path holds the ordered major grid-edge ids assigned by the
	// decoder once the ILP has been solved; empty until then.
	path []int
}

// Index returns the edge's stable insertion-order id.
func (e *CombEdge) Index() int { return e.idx }

// Other returns the endpoint of e that is not v, or nil if v is not an
// endpoint of e.
func (e *CombEdge) Other(v *CombNode) *CombNode {
	switch v {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		return nil
	}
}

// SharesLine reports whether e and f carry at least one common line.
func (e *CombEdge) SharesLine(f *CombEdge) bool {
	if len(e.Lines) == 0 || len(f.Lines) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(e.Lines))
	for _, l := range e.Lines {
		set[l] = struct{}{}
	}
	for _, l := range f.Lines {
		if _, ok := set[l]; ok {
			return true
		}
	}

	return false
}

// Path returns a copy of e's decoded major grid-edge id sequence, or
// nil if the edge has not yet been decoded.
func (e *CombEdge) Path() []int {
	if e.path == nil {
		return nil
	}
	out := make([]int, len(e.path))
	copy(out, e.path)

	return out
}

// SetPath records e's decoded major grid-edge id sequence.
func (e *CombEdge) SetPath(path []int) {
	e.path = append(e.path[:0:0], path...)
}

// Graph is the mutex-guarded combinatorial graph. Vertices and edges
// are stored both by ID (for lookup) and in insertion-order slices (for
// deterministic iteration), mirroring the teacher's core.Graph split
// between a lookup map and an order-preserving adjacency structure.
type Graph struct {
	mu sync.RWMutex

	nodesByID map[string]*CombNode
	edgesByID map[string]*CombEdge

	// nodeOrder/edgeOrder preserve first-seen order; idx on each node
	// and edge is simply its position in these slices at creation time.
	nodeOrder []*CombNode
	edgeOrder []*CombEdge

	// adjPair tracks which unordered node-ID pairs already have an
	// edge, enforcing the non-multigraph invariant in O(1).
	adjPair map[[2]string]struct{}
}

// NewGraph creates an empty combinatorial graph.
func NewGraph() *Graph {
	return &Graph{
		nodesByID: make(map[string]*CombNode),
		edgesByID: make(map[string]*CombEdge),
		adjPair:   make(map[[2]string]struct{}),
	}
}
