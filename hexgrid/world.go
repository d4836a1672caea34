package hexgrid

import "math"

var sqrt3 = math.Sqrt(3)

// AxialCenter returns the center of a in map-local space, before any tilemap
// transform. +y points down.
func AxialCenter(a AxialPos, grid TilemapGridSize, sys HexCoordSystem) (x, y float64) {
	q, r := float64(a.Q), float64(a.R)
	if sys.IsColumn() {
		return 0.75 * grid.X * q, grid.Y * (r + q/2)
	}
	return grid.X * (q + r/2), 0.75 * grid.Y * r
}

// CenterInWorld returns the center of the tile at p in map-local space.
func CenterInWorld(p TilePos, grid TilemapGridSize, sys HexCoordSystem) (x, y float64) {
	return AxialCenter(AxialFromTilePos(p, sys), grid, sys)
}

// FracAxialFromWorld inverts AxialCenter.
func FracAxialFromWorld(x, y float64, grid TilemapGridSize, sys HexCoordSystem) FracAxialPos {
	if grid.X == 0 || grid.Y == 0 {
		return FracAxialPos{}
	}
	if sys.IsColumn() {
		q := x / (0.75 * grid.X)
		return FracAxialPos{Q: q, R: y/grid.Y - q/2}
	}
	r := y / (0.75 * grid.Y)
	return FracAxialPos{Q: x/grid.X - r/2, R: r}
}

// FromWorldPos resolves a map-local point to the tile that contains it. It
// reports false when the point lies outside the map.
func FromWorldPos(x, y float64, size TilemapSize, grid TilemapGridSize, sys HexCoordSystem) (TilePos, bool) {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return TilePos{}, false
	}
	axial := FracAxialFromWorld(x, y, grid, sys).Round()
	pos, ok := axial.TilePos(sys)
	if !ok || !pos.Within(size) {
		return TilePos{}, false
	}
	return pos, true
}

// CenterTransform returns the translation that puts the middle of the map on
// the origin. The middle is taken halfway between the first and last tile
// centers.
func CenterTransform(size TilemapSize, grid TilemapGridSize, sys HexCoordSystem) (x, y float64) {
	if size.X == 0 || size.Y == 0 {
		return 0, 0
	}
	lowX, lowY := CenterInWorld(TilePos{}, grid, sys)
	highX, highY := CenterInWorld(TilePos{X: size.X - 1, Y: size.Y - 1}, grid, sys)
	return -(highX - lowX) / 2, -(highY - lowY) / 2
}

// Corners returns the six vertices of the hexagon centered at (cx, cy),
// ordered by increasing angle.
func Corners(cx, cy float64, grid TilemapGridSize, sys HexCoordSystem) [6][2]float64 {
	var out [6][2]float64
	rx, ry := grid.X/2, grid.Y/sqrt3
	offset := 0.0
	if !sys.IsColumn() {
		rx, ry = grid.X/sqrt3, grid.Y/2
		offset = -30
	}
	for i := range out {
		rad := (60*float64(i) + offset) * math.Pi / 180
		out[i] = [2]float64{cx + rx*math.Cos(rad), cy + ry*math.Sin(rad)}
	}
	return out
}
