package system

import (
	"fmt"
	"log"

	"github.com/milk9111/hexboard/ecs"
	"github.com/milk9111/hexboard/ecs/component"
	"github.com/milk9111/hexboard/ecs/entity"
	"github.com/milk9111/hexboard/ecs/render"
	"github.com/milk9111/hexboard/prefabs"
)

// TileSpawnSystem builds the board on startup. Running it again destroys the
// previous board first, which is how hot reload rebuilds it.
type TileSpawnSystem struct {
	// Board is the board spec name, prefabs.DefaultBoard when empty.
	Board string
	// Radius overrides the board file radius when > 0.
	Radius uint32
	// Picker overrides the highlight picker when set.
	Picker string

	board   entity.Board
	texture string
	err     error
}

func NewTileSpawnSystem(board string) *TileSpawnSystem {
	return &TileSpawnSystem{Board: board}
}

func (ts *TileSpawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ts.err = ts.spawn(w)
	if ts.err != nil {
		log.Printf("tile spawn: %v", ts.err)
	}
}

// Err returns the error of the last spawn, if any.
func (ts *TileSpawnSystem) Err() error {
	return ts.err
}

// Current returns the entities of the last spawned board.
func (ts *TileSpawnSystem) Current() entity.Board {
	return ts.board
}

func (ts *TileSpawnSystem) spawn(w *ecs.World) error {
	switch ts.Picker {
	case "", entity.PickerAxial, entity.PickerShape:
	default:
		return fmt.Errorf("unknown picker %q", ts.Picker)
	}

	spec, err := prefabs.LoadBoardSpec(ts.Board)
	if err != nil {
		return err
	}
	if ts.Radius > 0 {
		spec.Radius = ts.Radius
	}

	entity.DespawnBoard(w)
	ts.board = entity.Board{}
	if ts.texture != "" {
		render.ForgetImage(ts.texture)
		ts.texture = ""
	}

	board, err := entity.SpawnBoard(w, spec)
	if err != nil {
		return err
	}
	ts.board = board

	tm, ok := ecs.Get(w, board.Tilemap, component.TilemapComponent.Kind())
	if ok {
		ts.texture = tm.TextureName
	}

	if ts.Picker != "" {
		if h, ok := ecs.Get(w, board.Tilemap, component.HighlightComponent.Kind()); ok {
			h.Picker = ts.Picker
		}
	}

	w.Events().Push(ecs.Event{Type: ecs.EventBoardSpawned, Data: board})
	log.Printf("tile spawn: board %q radius %d with %d tiles", spec.Name, spec.Radius, len(board.Tiles))
	return nil
}
