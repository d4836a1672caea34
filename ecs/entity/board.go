package entity

import (
	"fmt"

	"github.com/milk9111/hexboard/ecs"
	"github.com/milk9111/hexboard/ecs/component"
	"github.com/milk9111/hexboard/hexgrid"
	"github.com/milk9111/hexboard/prefabs"
)

// Board holds the entities created by SpawnBoard.
type Board struct {
	Camera  ecs.Entity
	Tilemap ecs.Entity
	Tiles   []ecs.Entity
}

// SpawnBoard builds the camera and the tilemap described by spec, fills a
// hexagon of spec.Radius around the board center and centers the tilemap on
// the world origin. The map is sized 2R+1 unless the tilemap spec sets a size;
// tiles that fall outside the map are skipped.
func SpawnBoard(w *ecs.World, spec prefabs.BoardSpec) (Board, error) {
	if w == nil {
		return Board{}, fmt.Errorf("spawn board: world is nil")
	}

	camera, err := NewCamera(w, spec.Camera)
	if err != nil {
		return Board{}, fmt.Errorf("spawn board: %w", err)
	}

	name := spec.Name
	if name == "" {
		name = "board"
	}
	tilemap, err := BuildEntityFromSpec(w, spec.EntityBuildSpec, name)
	if err != nil {
		ecs.DestroyEntity(w, camera)
		return Board{}, fmt.Errorf("spawn board: %w", err)
	}

	fail := func(err error) (Board, error) {
		DespawnBoard(w)
		return Board{}, fmt.Errorf("spawn board %q: %w", name, err)
	}

	tm, ok := ecs.Get(w, tilemap, component.TilemapComponent.Kind())
	if !ok || tm == nil {
		return fail(fmt.Errorf("no tilemap component"))
	}
	if !ecs.Has(w, tilemap, component.TilemapTagComponent.Kind()) {
		if err := ecs.Add(w, tilemap, component.TilemapTagComponent.Kind(), &component.TilemapTag{}); err != nil {
			return fail(err)
		}
	}
	if !ecs.Has(w, tilemap, component.SelectionComponent.Kind()) {
		if err := ecs.Add(w, tilemap, component.SelectionComponent.Kind(), &component.Selection{}); err != nil {
			return fail(err)
		}
	}

	if tm.Size.X == 0 || tm.Size.Y == 0 {
		tm.Size = hexgrid.MapSizeForRadius(spec.Radius)
		tm.Storage = hexgrid.NewTileStorage(tm.Size)
	}
	if tm.Storage == nil {
		tm.Storage = hexgrid.NewTileStorage(tm.Size)
	}

	origin := hexgrid.TilePos{X: spec.Radius, Y: spec.Radius}
	positions := hexgrid.FillHexagon(origin, spec.Radius, tm.CoordSystem, tm.Size)
	tiles := make([]ecs.Entity, 0, len(positions))
	for _, pos := range positions {
		tile, err := SpawnTile(w, tilemap, pos, spec.TextureIndex)
		if err != nil {
			return fail(err)
		}
		tiles = append(tiles, tile)
	}

	t, ok := ecs.Get(w, tilemap, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	cx, cy := hexgrid.CenterTransform(tm.Size, tm.GridSize, tm.CoordSystem)
	t.X = cx * t.ScaleX
	t.Y = cy * t.ScaleY
	if err := ecs.Add(w, tilemap, component.TransformComponent.Kind(), t); err != nil {
		return fail(err)
	}

	return Board{Camera: camera, Tilemap: tilemap, Tiles: tiles}, nil
}

// DespawnBoard destroys every tile, tilemap and camera in w and returns the
// number of entities removed.
func DespawnBoard(w *ecs.World) int {
	if w == nil {
		return 0
	}
	var doomed []ecs.Entity
	doomed = append(doomed, w.Query(component.TilemapIDComponent.Kind())...)
	doomed = append(doomed, w.Query(component.TilemapTagComponent.Kind())...)
	doomed = append(doomed, w.Query(component.TilemapComponent.Kind())...)
	doomed = append(doomed, w.Query(component.CameraTagComponent.Kind())...)

	n := 0
	for _, e := range doomed {
		if ecs.DestroyEntity(w, e) {
			n++
		}
	}
	return n
}
