package geo

import "math"

// Point is a location in the world coordinate system (the same units
// as the input comb graph's node positions).
type Point struct {
	X, Y float64
}

// Box is an axis-aligned bounding box, inclusive of both corners.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// Dist returns the Euclidean distance between p and q.
// Complexity: O(1).
func Dist(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// Contains reports whether p lies within b, inclusive of the boundary.
func (b Box) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Union returns the smallest box containing both a and b.
func Union(a, b Box) Box {
	return Box{
		MinX: math.Min(a.MinX, b.MinX),
		MinY: math.Min(a.MinY, b.MinY),
		MaxX: math.Max(a.MaxX, b.MaxX),
		MaxY: math.Max(a.MaxY, b.MaxY),
	}
}

// FromPoints returns the bounding box of a non-empty point set.
// Complexity: O(n).
func FromPoints(pts []Point) Box {
	b := Box{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	for _, p := range pts {
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	}

	return b
}
