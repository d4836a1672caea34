package component

// Highlight configures how the tilemap reacts to clicks.
type Highlight struct {
	Color       TileColor
	FadeSeconds float64
	// Picker is "axial" or "shape".
	Picker string
	// Script is an optional tengo color rule, relative to prefabs/scripts.
	Script string
}

var HighlightComponent = NewComponent[Highlight]()

// Selection records the most recent tile picked on a tilemap.
type Selection struct {
	Tile    uint64
	Pos     TilePos
	HasTile bool
	Clicks  int
}

var SelectionComponent = NewComponent[Selection]()
