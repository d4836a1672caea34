package component

// Input stores per-frame pointer state for an entity.
type Input struct {
	CursorX         float64
	CursorY         float64
	CursorInside    bool
	LeftJustPressed bool
	// UIHovered is set while the HUD owns the pointer; board clicks are
	// ignored then.
	UIHovered bool
}

var InputComponent = NewComponent[Input]()
