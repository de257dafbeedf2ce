// Package basegraph builds the octilinear Hanan lattice that candidate
// station positions and routed edges live on.
//
// A BaseGrid is constructed once from the cell coordinates of the input
// comb nodes (optionally iterated to add further Hanan intersections).
// Every resulting cell becomes a sink with eight ports, one per compass
// direction; sinks are linked along four families of lines (horizontal,
// vertical, and the two diagonals) by major grid edges, and diagonal
// edges that cross on the grid are registered as crossing pairs so the
// ILP builder can forbid using both at once.
//
// Reservation state (settled/open/blocked) is mutated by SettleEdge and
// UnSettleEdge during warm-start extraction and reset between the
// warm-start pass and the ILP build via Reset.
package basegraph
