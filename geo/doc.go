// Package geo provides the Euclidean primitives shared by the base grid
// and the combinatorial graph: points, boxes, distances, and the
// cell <-> world coordinate transforms used to place Hanan-grid sinks.
//
// Everything here is a pure function of its inputs; the package holds
// no state and every operation is O(1) except FromPoints, which is
// linear in the number of points.
package geo
