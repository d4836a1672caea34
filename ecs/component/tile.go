package component

import "github.com/milk9111/hexboard/hexgrid"

type TilePos = hexgrid.TilePos

var TilePosComponent = NewComponent[TilePos]()

type TileTextureIndex struct {
	Index int
}

var TileTextureIndexComponent = NewComponent[TileTextureIndex]()

// TileColor multiplies the tile texture. Channels are in [0, 1].
type TileColor struct {
	R, G, B, A float32
}

func WhiteTileColor() TileColor {
	return TileColor{R: 1, G: 1, B: 1, A: 1}
}

// DarkGrayTileColor is the default highlight.
func DarkGrayTileColor() TileColor {
	return TileColor{R: 0.25, G: 0.25, B: 0.25, A: 1}
}

var TileColorComponent = NewComponent[TileColor]()

// TilemapID points a tile at its owning tilemap entity (ecs.Entity is uint64).
type TilemapID struct {
	Entity uint64
}

var TilemapIDComponent = NewComponent[TilemapID]()

type TileVisible struct {
	Visible bool
}

var TileVisibleComponent = NewComponent[TileVisible]()
