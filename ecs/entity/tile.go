package entity

import (
	"fmt"

	"github.com/milk9111/hexboard/ecs"
	"github.com/milk9111/hexboard/ecs/component"
	"github.com/milk9111/hexboard/hexgrid"
)

// SpawnTile creates a tile of tilemap at pos and records it in the tilemap
// storage. A tile already stored at pos is destroyed first.
func SpawnTile(w *ecs.World, tilemap ecs.Entity, pos hexgrid.TilePos, textureIndex int) (ecs.Entity, error) {
	tm, ok := ecs.Get(w, tilemap, component.TilemapComponent.Kind())
	if !ok || tm == nil {
		return 0, fmt.Errorf("spawn tile: entity %s has no tilemap", tilemap)
	}
	if tm.Storage == nil || !pos.Within(tm.Storage.Size()) {
		return 0, fmt.Errorf("spawn tile: %v outside tilemap %v", pos, tm.Size)
	}
	if tm.FrameCount > 0 && (textureIndex < 0 || textureIndex >= tm.FrameCount) {
		return 0, fmt.Errorf("spawn tile: texture index %d outside %d frames", textureIndex, tm.FrameCount)
	}

	if old, ok := tm.Storage.Get(pos); ok {
		ecs.DestroyEntity(w, ecs.Entity(old))
	}

	tile := ecs.CreateEntity(w)
	p := pos
	c := component.WhiteTileColor()
	adds := []func() error{
		func() error { return ecs.Add(w, tile, component.TilePosComponent.Kind(), &p) },
		func() error {
			return ecs.Add(w, tile, component.TileTextureIndexComponent.Kind(), &component.TileTextureIndex{Index: textureIndex})
		},
		func() error { return ecs.Add(w, tile, component.TileColorComponent.Kind(), &c) },
		func() error {
			return ecs.Add(w, tile, component.TilemapIDComponent.Kind(), &component.TilemapID{Entity: uint64(tilemap)})
		},
		func() error {
			return ecs.Add(w, tile, component.TileVisibleComponent.Kind(), &component.TileVisible{Visible: true})
		},
	}
	for _, add := range adds {
		if err := add(); err != nil {
			ecs.DestroyEntity(w, tile)
			return 0, fmt.Errorf("spawn tile %v: %w", pos, err)
		}
	}

	tm.Storage.CheckedSet(pos, uint64(tile))
	return tile, nil
}
