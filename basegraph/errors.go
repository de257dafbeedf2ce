package basegraph

import "errors"

// Sentinel errors for basegraph operations.
var (
	// ErrNoCoordinates indicates NewBaseGrid was given an empty position set.
	ErrNoCoordinates = errors.New("basegraph: no input positions")
	// ErrBadCellSize indicates a non-positive cell size was supplied.
	ErrBadCellSize = errors.New("basegraph: cell size must be positive")
	// ErrUnknownSink indicates a referenced sink coordinate has no node.
	ErrUnknownSink = errors.New("basegraph: unknown sink coordinate")
	// ErrUnknownEdge indicates SettleEdge/UnSettleEdge referenced a pair of
	// ports with no major edge between them.
	ErrUnknownEdge = errors.New("basegraph: no major edge between given ports")
	// ErrNotReserved indicates UnSettleEdge was called for a comb edge that
	// never settled the given major edge.
	ErrNotReserved = errors.New("basegraph: edge is not reserved by the given comb edge")
)
