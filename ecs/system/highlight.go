package system

import (
	"log"

	"github.com/milk9111/hexboard/ecs"
	"github.com/milk9111/hexboard/ecs/component"
	"github.com/milk9111/hexboard/ecs/entity"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// HighlightSystem colors the tile under the cursor when the left button is
// pressed.
type HighlightSystem struct {
	axial AxialPicker
	shape *ShapePicker
	rules map[ruleKey]ColorRule
}

type ruleKey struct {
	tilemap ecs.Entity
	script  string
}

func NewHighlightSystem() *HighlightSystem {
	return &HighlightSystem{
		shape: NewShapePicker(),
		rules: make(map[ruleKey]ColorRule),
	}
}

func (hs *HighlightSystem) Update(w *ecs.World) {
	if hs == nil || w == nil {
		return
	}

	camera, view, ok := ActiveCamera(w)
	if !ok {
		return
	}
	input, ok := ecs.Get(w, camera, component.InputComponent.Kind())
	if !ok {
		inputEntity, found := w.First(component.InputComponent.Kind())
		if !found {
			return
		}
		input, _ = ecs.Get(w, inputEntity, component.InputComponent.Kind())
	}
	if input == nil || !input.LeftJustPressed || !input.CursorInside || input.UIHovered {
		return
	}

	wx, wy := view.ViewportToWorld(input.CursorX, input.CursorY)

	for _, tilemap := range w.Query(component.TilemapComponent.Kind(), component.TransformComponent.Kind()) {
		tm, _ := ecs.Get(w, tilemap, component.TilemapComponent.Kind())
		t, _ := ecs.Get(w, tilemap, component.TransformComponent.Kind())
		lx, ly := worldToLocal(t, wx, wy)

		h, ok := ecs.Get(w, tilemap, component.HighlightComponent.Kind())
		if !ok {
			h = &component.Highlight{Color: component.DarkGrayTileColor(), Picker: entity.PickerAxial}
		}

		pos, ok := hs.picker(h.Picker).Pick(tilemap, tm, lx, ly)
		if !ok {
			continue
		}
		raw, ok := tm.Storage.Get(pos)
		if !ok || !w.IsAlive(ecs.Entity(raw)) {
			continue
		}
		tile := ecs.Entity(raw)

		sel, ok := ecs.Get(w, tilemap, component.SelectionComponent.Kind())
		if !ok {
			sel = &component.Selection{}
			if err := ecs.Add(w, tilemap, component.SelectionComponent.Kind(), sel); err != nil {
				log.Printf("highlight: add selection: %v", err)
				continue
			}
		}
		clicks := sel.Clicks + 1

		c, err := hs.rule(tilemap, h).Color(pos, clicks)
		if err != nil {
			log.Printf("highlight: tile %v: %v", pos, err)
			c = h.Color
		}
		if err := applyTileColor(w, tile, c, h.FadeSeconds); err != nil {
			log.Printf("highlight: tile %v: %v", pos, err)
			continue
		}

		sel.Tile = uint64(tile)
		sel.Pos = pos
		sel.HasTile = true
		sel.Clicks = clicks

		w.Events().Push(ecs.Event{Type: ecs.EventTileSelected, Data: ecs.TileSelectedEvent{
			Tilemap: tilemap,
			Tile:    tile,
			Pos:     pos,
			Clicks:  clicks,
		}})
	}

	hs.forget(w)
}

func (hs *HighlightSystem) picker(name string) TilePicker {
	if name == entity.PickerShape {
		return hs.shape
	}
	return hs.axial
}

func (hs *HighlightSystem) rule(tilemap ecs.Entity, h *component.Highlight) ColorRule {
	if h.Script == "" {
		return ConstantColorRule{Value: h.Color}
	}
	if hs.rules == nil {
		hs.rules = make(map[ruleKey]ColorRule)
	}
	key := ruleKey{tilemap: tilemap, script: h.Script}
	if r, ok := hs.rules[key]; ok {
		return r
	}

	var r ColorRule
	script, err := LoadScriptColorRule(h.Script)
	if err != nil {
		log.Printf("highlight: %v; falling back to the constant color", err)
		r = ConstantColorRule{Value: h.Color}
	} else {
		r = script
	}
	hs.rules[key] = r
	return r
}

func (hs *HighlightSystem) forget(w *ecs.World) {
	for key := range hs.rules {
		if !w.IsAlive(key.tilemap) {
			delete(hs.rules, key)
		}
	}
	hs.shape.Forget(w)
}

// applyTileColor sets the tile color at once, or starts a fade towards it.
func applyTileColor(w *ecs.World, tile ecs.Entity, target component.TileColor, fadeSeconds float64) error {
	current, ok := ecs.Get(w, tile, component.TileColorComponent.Kind())
	if !ok {
		current = &component.TileColor{}
		*current = component.WhiteTileColor()
		if err := ecs.Add(w, tile, component.TileColorComponent.Kind(), current); err != nil {
			return err
		}
	}

	if fadeSeconds <= 0 {
		*current = target
		ecs.Remove(w, tile, component.TileFadeComponent.Kind())
		return nil
	}

	d := float32(fadeSeconds)
	return ecs.Add(w, tile, component.TileFadeComponent.Kind(), &component.TileFade{
		Tweens: [4]*gween.Tween{
			gween.New(current.R, target.R, d, ease.Linear),
			gween.New(current.G, target.G, d, ease.Linear),
			gween.New(current.B, target.B, d, ease.Linear),
			gween.New(current.A, target.A, d, ease.Linear),
		},
		Target: target,
	})
}

// ClearHighlights resets every tile of every tilemap to white, cancels fades
// and clears the selections.
func ClearHighlights(w *ecs.World) int {
	if w == nil {
		return 0
	}
	n := 0
	ecs.ForEach(w, component.TileColorComponent.Kind(), func(e ecs.Entity, c *component.TileColor) {
		ecs.Remove(w, e, component.TileFadeComponent.Kind())
		if *c != component.WhiteTileColor() {
			n++
		}
		*c = component.WhiteTileColor()
	})
	ecs.ForEach(w, component.SelectionComponent.Kind(), func(_ ecs.Entity, sel *component.Selection) {
		*sel = component.Selection{}
	})
	w.Events().Push(ecs.Event{Type: ecs.EventBoardCleared, Data: n})
	return n
}

// SelectedTile returns the selection of the first tilemap.
func SelectedTile(w *ecs.World) (component.Selection, bool) {
	if w == nil {
		return component.Selection{}, false
	}
	e, ok := w.First(component.SelectionComponent.Kind())
	if !ok {
		return component.Selection{}, false
	}
	sel, ok := ecs.Get(w, e, component.SelectionComponent.Kind())
	if !ok || !sel.HasTile {
		return component.Selection{}, false
	}
	return *sel, true
}
