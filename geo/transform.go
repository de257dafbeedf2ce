package geo

import "math"

// Transform maps world coordinates to integer Hanan-grid cell coordinates
// and back, anchored at Origin with a uniform CellSize spacing.
//
// getCellX/getCellY of the octilinear-grid literature are Transform's
// CellX/CellY; the round-trip World recovers the sink's drawing
// position from its cell coordinates.
type Transform struct {
	Origin   Point
	CellSize float64
}

// NewTransform builds a Transform anchored at origin with the given
// (strictly positive) cell spacing.
func NewTransform(origin Point, cellSize float64) Transform {
	return Transform{Origin: origin, CellSize: cellSize}
}

// CellX converts a world X coordinate to its nearest cell column.
func (t Transform) CellX(worldX float64) int {
	return int(math.Round((worldX - t.Origin.X) / t.CellSize))
}

// CellY converts a world Y coordinate to its nearest cell row.
func (t Transform) CellY(worldY float64) int {
	return int(math.Round((worldY - t.Origin.Y) / t.CellSize))
}

// Cell converts a world point to its nearest (cellX, cellY) pair.
func (t Transform) Cell(p Point) (int, int) {
	return t.CellX(p.X), t.CellY(p.Y)
}

// World converts a (cellX, cellY) pair back to a world point.
func (t Transform) World(cellX, cellY int) Point {
	return Point{
		X: t.Origin.X + float64(cellX)*t.CellSize,
		Y: t.Origin.Y + float64(cellY)*t.CellSize,
	}
}

// WithinCutoff reports whether dist is an admissible candidate distance
// under the caller-supplied maxGrDist cutoff (spec.md 4.A): a grid sink
// is a candidate for a comb node only if their distance is strictly
// less than cellSize * maxGrDist.
func WithinCutoff(dist, cellSize, maxGrDist float64) bool {
	return dist < cellSize*maxGrDist
}
