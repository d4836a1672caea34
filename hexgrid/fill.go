package hexgrid

// GenerateHexagon returns every axial position within radius steps of center,
// ordered by Q then R. The result holds 3*radius*(radius+1)+1 positions.
func GenerateHexagon(center AxialPos, radius uint32) []AxialPos {
	n := int(radius)
	out := make([]AxialPos, 0, 3*n*(n+1)+1)
	for q := -n; q <= n; q++ {
		lo := max(-n, -q-n)
		hi := min(n, -q+n)
		for r := lo; r <= hi; r++ {
			out = append(out, center.Add(AxialPos{Q: q, R: r}))
		}
	}
	return out
}

// FillHexagon returns the storage positions of a hexagon of the given radius
// around origin. Positions that fall outside size are dropped.
func FillHexagon(origin TilePos, radius uint32, sys HexCoordSystem, size TilemapSize) []TilePos {
	axial := GenerateHexagon(AxialFromTilePos(origin, sys), radius)
	out := make([]TilePos, 0, len(axial))
	for _, a := range axial {
		pos, ok := a.TilePos(sys)
		if !ok || !pos.Within(size) {
			continue
		}
		out = append(out, pos)
	}
	return out
}
