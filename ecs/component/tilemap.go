package component

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/hexboard/hexgrid"
)

// Tilemap describes a hex tilemap. Tiles are separate entities that point
// back to it through TilemapID and are indexed by Storage.
type Tilemap struct {
	Size        hexgrid.TilemapSize
	TileSize    hexgrid.TilemapTileSize
	GridSize    hexgrid.TilemapGridSize
	CoordSystem hexgrid.HexCoordSystem
	Storage     *hexgrid.TileStorage

	TextureName string
	Texture     *ebiten.Image
	// FrameCount is the number of TileSize frames laid out horizontally in
	// Texture.
	FrameCount int
}

var TilemapComponent = NewComponent[Tilemap]()
