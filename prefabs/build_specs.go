package prefabs

import (
	"github.com/milk9111/hexboard/hexgrid"
	"gopkg.in/yaml.v3"
)

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type Vec2Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type SizeSpec struct {
	X uint32 `yaml:"x"`
	Y uint32 `yaml:"y"`
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Z        float64 `yaml:"z"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type CameraComponentSpec struct {
	Zoom float64 `yaml:"zoom"`
}

type TilemapComponentSpec struct {
	Size        *SizeSpec               `yaml:"size"`
	TileSize    Vec2Spec                `yaml:"tile_size"`
	GridSize    Vec2Spec                `yaml:"grid_size"`
	CoordSystem *hexgrid.HexCoordSystem `yaml:"coord_system"`
	Texture     string                  `yaml:"texture"`
	Frames      int                     `yaml:"frames"`
}

type HighlightComponentSpec struct {
	Color       *YAMLColor `yaml:"color"`
	FadeSeconds float64    `yaml:"fade_seconds"`
	Picker      string     `yaml:"picker"`
	Script      string     `yaml:"script"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}
