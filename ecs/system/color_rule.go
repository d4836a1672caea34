package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/hexboard/ecs/component"
	"github.com/milk9111/hexboard/hexgrid"
	"github.com/milk9111/hexboard/prefabs"
)

// ColorRule picks the highlight color for a tile. clicks is the number of
// selections made on the tilemap so far, including this one.
type ColorRule interface {
	Color(pos hexgrid.TilePos, clicks int) (component.TileColor, error)
}

// ConstantColorRule always returns the same color.
type ConstantColorRule struct {
	Value component.TileColor
}

func (r ConstantColorRule) Color(hexgrid.TilePos, int) (component.TileColor, error) {
	return r.Value, nil
}

// ScriptColorRule runs a tengo script that defines
//
//	color := func(x, y, clicks) { return [r, g, b, a] }
//
// Channels are floats in [0, 1]; a three element result means opaque.
type ScriptColorRule struct {
	Path     string
	compiled *tengo.Compiled
}

const colorRuleDispatchScript = `
__result := color(__x, __y, __clicks)
`

// LoadScriptColorRule compiles the named script from prefabs/scripts.
func LoadScriptColorRule(path string) (*ScriptColorRule, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("color rule: load %q: %w", path, err)
	}
	return NewScriptColorRule(path, src)
}

// NewScriptColorRule compiles src. path only labels errors.
func NewScriptColorRule(path string, src []byte) (*ScriptColorRule, error) {
	script := tengo.NewScript([]byte(string(src) + "\n" + colorRuleDispatchScript))
	_ = script.Add("__x", 0)
	_ = script.Add("__y", 0)
	_ = script.Add("__clicks", 0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("color rule: compile %q: %w", path, err)
	}
	return &ScriptColorRule{Path: path, compiled: compiled}, nil
}

func (r *ScriptColorRule) Color(pos hexgrid.TilePos, clicks int) (component.TileColor, error) {
	if r == nil || r.compiled == nil {
		return component.TileColor{}, fmt.Errorf("color rule: not compiled")
	}
	if err := r.compiled.Set("__x", int(pos.X)); err != nil {
		return component.TileColor{}, err
	}
	if err := r.compiled.Set("__y", int(pos.Y)); err != nil {
		return component.TileColor{}, err
	}
	if err := r.compiled.Set("__clicks", clicks); err != nil {
		return component.TileColor{}, err
	}
	if err := r.compiled.Run(); err != nil {
		return component.TileColor{}, fmt.Errorf("color rule: run %q: %w", r.Path, err)
	}

	result := r.compiled.Get("__result")
	values, ok := result.Value().([]any)
	if !ok || (len(values) != 3 && len(values) != 4) {
		return component.TileColor{}, fmt.Errorf("color rule: %q returned %s, want [r, g, b] or [r, g, b, a]", r.Path, strings.TrimSpace(result.String()))
	}

	channels := [4]float32{1, 1, 1, 1}
	for i, v := range values {
		f, ok := scriptNumber(v)
		if !ok {
			return component.TileColor{}, fmt.Errorf("color rule: %q channel %d is %T", r.Path, i, v)
		}
		channels[i] = clamp01(f)
	}
	return component.TileColor{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}, nil
}

func scriptNumber(v any) (float32, bool) {
	switch n := v.(type) {
	case float64:
		return float32(n), true
	case int64:
		return float32(n), true
	case int:
		return float32(n), true
	}
	return 0, false
}

func clamp01(v float32) float32 {
	return max(0, min(v, 1))
}
