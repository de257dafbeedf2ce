package combgraph

import (
	"github.com/octiline/octigrid/geo"
)

// pairKey normalizes an unordered pair of node IDs for the multi-edge check.
func pairKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}

	return [2]string{a, b}
}

// AddNode registers a new station at pos. Returns ErrEmptyID or
// ErrDuplicateNode on invalid input.
// Complexity: O(1).
func (g *Graph) AddNode(id string, pos geo.Point) (*CombNode, error) {
	if id == "" {
		return nil, ErrEmptyID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodesByID[id]; ok {
		return nil, ErrDuplicateNode
	}

	n := &CombNode{ID: id, Pos: pos, idx: len(g.nodeOrder)}
	g.nodesByID[id] = n
	g.nodeOrder = append(g.nodeOrder, n)

	return n, nil
}

// AddEdge connects fromID to toID with the given child lines, in that
// order (From=fromID, To=toID). Returns ErrNodeNotFound, ErrSelfLoop,
// or ErrMultiEdge on invalid input. The new edge is appended to both
// endpoints' incident lists in insertion order; callers that need a
// specific circular order must follow up with SetIncidentOrder or
// OrderByAngle.
// Complexity: O(1).
func (g *Graph) AddEdge(id, fromID, toID string, lines []string) (*CombEdge, error) {
	if id == "" {
		return nil, ErrEmptyID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	from, ok := g.nodesByID[fromID]
	if !ok {
		return nil, ErrNodeNotFound
	}
	to, ok := g.nodesByID[toID]
	if !ok {
		return nil, ErrNodeNotFound
	}
	if from == to {
		return nil, ErrSelfLoop
	}
	key := pairKey(fromID, toID)
	if _, ok := g.adjPair[key]; ok {
		return nil, ErrMultiEdge
	}

	e := &CombEdge{ID: id, From: from, To: to, Lines: append([]string(nil), lines...), idx: len(g.edgeOrder)}
	g.edgesByID[id] = e
	g.edgeOrder = append(g.edgeOrder, e)
	g.adjPair[key] = struct{}{}
	from.incident = append(from.incident, e)
	to.incident = append(to.incident, e)

	return e, nil
}

// Node looks up a node by ID.
func (g *Graph) Node(id string) (*CombNode, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodesByID[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return n, nil
}

// Edge looks up an edge by ID.
func (g *Graph) Edge(id string) (*CombEdge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edgesByID[id]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Nodes returns all nodes in insertion order. The slice is a copy;
// mutating it does not affect the graph.
func (g *Graph) Nodes() []*CombNode {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*CombNode, len(g.nodeOrder))
	copy(out, g.nodeOrder)

	return out
}

// Edges returns all edges in insertion order. The slice is a copy;
// mutating it does not affect the graph.
func (g *Graph) Edges() []*CombEdge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*CombEdge, len(g.edgeOrder))
	copy(out, g.edgeOrder)

	return out
}

// SetIncidentOrder overrides the circular order of edges around node
// id. edgeIDs must be a permutation of the node's actual incident edge
// IDs; otherwise ErrBadOrdering is returned and the node is unchanged.
func (g *Graph) SetIncidentOrder(id string, edgeIDs []string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodesByID[id]
	if !ok {
		return ErrNodeNotFound
	}
	if len(edgeIDs) != len(n.incident) {
		return ErrBadOrdering
	}

	current := make(map[string]*CombEdge, len(n.incident))
	for _, e := range n.incident {
		current[e.ID] = e
	}

	ordered := make([]*CombEdge, 0, len(edgeIDs))
	for _, id := range edgeIDs {
		e, ok := current[id]
		if !ok {
			return ErrBadOrdering
		}
		ordered = append(ordered, e)
		delete(current, id)
	}
	if len(current) != 0 {
		return ErrBadOrdering
	}

	n.incident = ordered

	return nil
}
