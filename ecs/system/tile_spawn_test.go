package system

import (
	"testing"

	"github.com/milk9111/hexboard/ecs"
	"github.com/milk9111/hexboard/ecs/component"
	"github.com/milk9111/hexboard/ecs/entity"
)

func TestTileSpawnSystemStartupAndReset(t *testing.T) {
	w := ecs.NewWorld()
	spawn := NewTileSpawnSystem("")
	sched := ecs.NewScheduler(NewCameraSystem(), NewHighlightSystem(), NewTileFadeSystem())
	sched.AddStartup(spawn)

	sched.Update(w)
	if err := spawn.Err(); err != nil {
		t.Fatalf("spawn: %v", err)
	}
	first := spawn.Current()
	if len(first.Tiles) != 91 {
		t.Fatalf("expected 91 tiles, got %d", len(first.Tiles))
	}
	events := w.Events().Drain()
	if len(events) != 1 || events[0].Type != ecs.EventBoardSpawned {
		t.Fatalf("expected board_spawned, got %+v", events)
	}

	sched.Update(w)
	if spawn.Current().Tilemap != first.Tilemap {
		t.Fatal("startup should not run twice")
	}

	sched.Reset()
	sched.Update(w)
	second := spawn.Current()
	if second.Tilemap == first.Tilemap || w.IsAlive(first.Tilemap) || w.IsAlive(first.Tiles[0]) {
		t.Fatal("reset should rebuild the board from scratch")
	}
	if n := len(ecs.Entities(w)); n != 93 {
		t.Fatalf("expected 91 tiles + tilemap + camera, got %d entities", n)
	}
}

func TestTileSpawnSystemOverrides(t *testing.T) {
	cases := []struct {
		name      string
		spawn     *TileSpawnSystem
		wantTiles int
		wantErr   bool
		picker    string
	}{
		{"radius", &TileSpawnSystem{Radius: 2}, 19, false, entity.PickerAxial},
		{"picker", &TileSpawnSystem{Picker: entity.PickerShape}, 91, false, entity.PickerShape},
		{"checker_board", &TileSpawnSystem{Board: "board_checker"}, 169, false, entity.PickerShape},
		{"bad_picker", &TileSpawnSystem{Picker: "lasso"}, 0, true, ""},
		{"missing_board", &TileSpawnSystem{Board: "nope"}, 0, true, ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			c.spawn.Update(w)
			if c.wantErr {
				if c.spawn.Err() == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err := c.spawn.Err(); err != nil {
				t.Fatalf("spawn: %v", err)
			}
			board := c.spawn.Current()
			if len(board.Tiles) != c.wantTiles {
				t.Fatalf("expected %d tiles, got %d", c.wantTiles, len(board.Tiles))
			}
			h, ok := ecs.Get(w, board.Tilemap, component.HighlightComponent.Kind())
			if !ok || h.Picker != c.picker {
				t.Fatalf("expected picker %q, got %+v", c.picker, h)
			}
		})
	}
}

func TestTileSpawnSystemBadPickerKeepsBoard(t *testing.T) {
	w := ecs.NewWorld()
	spawn := NewTileSpawnSystem("")
	spawn.Update(w)
	if err := spawn.Err(); err != nil {
		t.Fatalf("spawn: %v", err)
	}
	first := spawn.Current()

	spawn.Picker = "lasso"
	spawn.Update(w)
	if spawn.Err() == nil {
		t.Fatal("expected an unknown picker error")
	}
	if !w.IsAlive(first.Tilemap) || !w.IsAlive(first.Tiles[0]) {
		t.Fatal("a rejected picker should leave the current board alone")
	}
	if n := len(ecs.Entities(w)); n != 93 {
		t.Fatalf("expected the original 93 entities, got %d", n)
	}
	if got := spawn.Current(); got.Tilemap != first.Tilemap {
		t.Fatalf("expected current board to stay %v, got %v", first.Tilemap, got.Tilemap)
	}
}
