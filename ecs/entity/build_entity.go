package entity

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/milk9111/hexboard/ecs"
	"github.com/milk9111/hexboard/ecs/component"
	"github.com/milk9111/hexboard/ecs/render"
	"github.com/milk9111/hexboard/hexgrid"
	"github.com/milk9111/hexboard/prefabs"
)

type entityPrefabSpec = prefabs.EntityBuildSpec

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"camera_tag":   addCameraTag,
	"tilemap_tag":  addTilemapTag,
	"transform":    addTransform,
	"camera":       addCamera,
	"tilemap":      addTilemap,
	"highlight":    addHighlight,
	"selection":    addSelection,
	"render_layer": addRenderLayer,
	"input":        addInput,
}

var componentBuildOrder = []string{
	"camera_tag",
	"tilemap_tag",
	"transform",
	"camera",
	"tilemap",
	"highlight",
	"selection",
	"render_layer",
	"input",
}

// Picker names accepted by the highlight component.
const (
	PickerAxial = "axial"
	PickerShape = "shape"
)

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return BuildEntityFromSpec(w, spec, prefabPath)
}

// BuildEntityFromSpec builds an entity from an already decoded spec. source
// only labels errors.
func BuildEntityFromSpec(w *ecs.World, spec entityPrefabSpec, source string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", source)
	}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		if _, ok := componentRegistry[k]; !ok {
			return 0, fmt.Errorf("build entity: %q: no builder for component %q", source, k)
		}
		remaining[k] = v
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: source}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", source, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if err := componentRegistry[name](w, e, remaining[name], ctx); err != nil {
				ecs.DestroyEntity(w, e)
				return 0, fmt.Errorf("build entity: %q: add %q: %w", source, name, err)
			}
		}
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	t.Rotation = rotation
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

func addTilemapTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.TilemapTagComponent.Kind(), &component.TilemapTag{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

func addSelection(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.SelectionComponent.Kind(), &component.Selection{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		Z:        spec.Z,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	if spec.Zoom < 0 {
		return fmt.Errorf("camera zoom must not be negative, got %v", spec.Zoom)
	}
	if spec.Zoom == 0 {
		spec.Zoom = 1
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{Zoom: spec.Zoom})
}

type tilemapSpec = prefabs.TilemapComponentSpec

func addTilemap(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[tilemapSpec](raw)
	if err != nil {
		return fmt.Errorf("decode tilemap spec: %w", err)
	}
	if spec.TileSize.X <= 0 || spec.TileSize.Y <= 0 {
		return fmt.Errorf("tilemap tile_size must be positive, got %vx%v", spec.TileSize.X, spec.TileSize.Y)
	}
	if spec.GridSize.X == 0 && spec.GridSize.Y == 0 {
		spec.GridSize = spec.TileSize
	}
	if spec.GridSize.X <= 0 || spec.GridSize.Y <= 0 {
		return fmt.Errorf("tilemap grid_size must be positive, got %vx%v", spec.GridSize.X, spec.GridSize.Y)
	}

	coords := hexgrid.Column
	if spec.CoordSystem != nil {
		coords = *spec.CoordSystem
	}

	tm := &component.Tilemap{
		TileSize:    hexgrid.TilemapTileSize{X: spec.TileSize.X, Y: spec.TileSize.Y},
		GridSize:    hexgrid.TilemapGridSize{X: spec.GridSize.X, Y: spec.GridSize.Y},
		CoordSystem: coords,
		TextureName: spec.Texture,
		FrameCount:  spec.Frames,
	}
	if spec.Size != nil {
		tm.Size = hexgrid.TilemapSize{X: spec.Size.X, Y: spec.Size.Y}
		tm.Storage = hexgrid.NewTileStorage(tm.Size)
	}

	if spec.Texture != "" {
		img, err := render.LoadImage(spec.Texture)
		if err != nil {
			return fmt.Errorf("load tilemap texture: %w", err)
		}
		tm.Texture = img
		if n := render.FrameCount(img, int(spec.TileSize.X), int(spec.TileSize.Y)); tm.FrameCount <= 0 || tm.FrameCount > n {
			tm.FrameCount = n
		}
	}

	return ecs.Add(w, e, component.TilemapComponent.Kind(), tm)
}

type highlightSpec = prefabs.HighlightComponentSpec

func addHighlight(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[highlightSpec](raw)
	if err != nil {
		return fmt.Errorf("decode highlight spec: %w", err)
	}
	if spec.FadeSeconds < 0 {
		return fmt.Errorf("highlight fade_seconds must not be negative, got %v", spec.FadeSeconds)
	}

	picker := spec.Picker
	switch picker {
	case "":
		picker = PickerAxial
	case PickerAxial, PickerShape:
	default:
		return fmt.Errorf("unknown highlight picker %q", spec.Picker)
	}

	c := component.DarkGrayTileColor()
	if spec.Color != nil && spec.Color.Color != nil {
		c = tileColorFrom(spec.Color.Color)
	}

	return ecs.Add(w, e, component.HighlightComponent.Kind(), &component.Highlight{
		Color:       c,
		FadeSeconds: spec.FadeSeconds,
		Picker:      picker,
		Script:      spec.Script,
	})
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

func tileColorFrom(c color.Color) component.TileColor {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return component.TileColor{
		R: float32(n.R) / 255,
		G: float32(n.G) / 255,
		B: float32(n.B) / 255,
		A: float32(n.A) / 255,
	}
}
