package hexgrid

// TilePos is a tile position in storage space. Both components are unsigned;
// positions left of or above the map cannot be represented.
type TilePos struct {
	X uint32
	Y uint32
}

// TilemapSize is the storage size of a tilemap, in tiles.
type TilemapSize struct {
	X uint32
	Y uint32
}

// TilemapTileSize is the pixel size of a single tile texture.
type TilemapTileSize struct {
	X float64
	Y float64
}

// TilemapGridSize is the pixel size of a grid cell. For hex maps this is the
// bounding box of one hexagon (corner to corner along the long axis).
type TilemapGridSize struct {
	X float64
	Y float64
}

// MapSizeForRadius returns the smallest square storage that holds an axial
// hexagon of the given radius centered at (radius, radius).
func MapSizeForRadius(radius uint32) TilemapSize {
	return TilemapSize{X: radius*2 + 1, Y: radius*2 + 1}
}

func (s TilemapSize) Count() int {
	return int(s.X) * int(s.Y)
}

// Within reports whether p lies inside a map of the given size.
func (p TilePos) Within(size TilemapSize) bool {
	return p.X < size.X && p.Y < size.Y
}

// Index returns the row-major storage index of p. The caller must check
// Within first.
func (p TilePos) Index(size TilemapSize) int {
	return int(p.Y)*int(size.X) + int(p.X)
}
