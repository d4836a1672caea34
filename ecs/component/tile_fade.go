package component

import "github.com/tanema/gween"

// TileFade animates TileColor towards a target. One tween per channel.
type TileFade struct {
	Tweens [4]*gween.Tween
	Target TileColor
}

var TileFadeComponent = NewComponent[TileFade]()
