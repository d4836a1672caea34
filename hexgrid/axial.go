package hexgrid

import "math"

// AxialPos is a hexagon position in axial coordinates. The implied third cube
// coordinate is -Q-R.
type AxialPos struct {
	Q int
	R int
}

func (a AxialPos) Add(b AxialPos) AxialPos {
	return AxialPos{Q: a.Q + b.Q, R: a.R + b.R}
}

func (a AxialPos) Sub(b AxialPos) AxialPos {
	return AxialPos{Q: a.Q - b.Q, R: a.R - b.R}
}

// Distance returns the number of hex steps between a and b.
func (a AxialPos) Distance(b AxialPos) int {
	d := a.Sub(b)
	return (absInt(d.Q) + absInt(d.R) + absInt(d.Q+d.R)) / 2
}

// AxialFromTilePos converts a storage position into axial coordinates.
func AxialFromTilePos(p TilePos, sys HexCoordSystem) AxialPos {
	col := int(p.X)
	row := int(p.Y)
	switch sys {
	case RowOdd:
		return AxialPos{Q: col - (row-(row&1))/2, R: row}
	case RowEven:
		return AxialPos{Q: col - (row+(row&1))/2, R: row}
	case ColumnOdd:
		return AxialPos{Q: col, R: row - (col-(col&1))/2}
	case ColumnEven:
		return AxialPos{Q: col, R: row - (col+(col&1))/2}
	default:
		return AxialPos{Q: col, R: row}
	}
}

// TilePos converts a back into storage space. It reports false when the
// result would be negative.
func (a AxialPos) TilePos(sys HexCoordSystem) (TilePos, bool) {
	var col, row int
	switch sys {
	case RowOdd:
		col, row = a.Q+(a.R-(a.R&1))/2, a.R
	case RowEven:
		col, row = a.Q+(a.R+(a.R&1))/2, a.R
	case ColumnOdd:
		col, row = a.Q, a.R+(a.Q-(a.Q&1))/2
	case ColumnEven:
		col, row = a.Q, a.R+(a.Q+(a.Q&1))/2
	default:
		col, row = a.Q, a.R
	}
	if col < 0 || row < 0 || int64(col) > math.MaxUint32 || int64(row) > math.MaxUint32 {
		return TilePos{}, false
	}
	return TilePos{X: uint32(col), Y: uint32(row)}, true
}

// FracAxialPos is an axial position that has not been snapped to a hexagon.
type FracAxialPos struct {
	Q float64
	R float64
}

// Round snaps f to the hexagon that contains it using cube rounding.
func (f FracAxialPos) Round() AxialPos {
	x, z := f.Q, f.R
	y := -x - z

	rx, ry, rz := math.Round(x), math.Round(y), math.Round(z)
	dx, dy, dz := math.Abs(rx-x), math.Abs(ry-y), math.Abs(rz-z)

	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dz:
		// y is implied, nothing to fix up.
	default:
		rz = -rx - ry
	}
	return AxialPos{Q: int(rx), R: int(rz)}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
