package system

import (
	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/hexboard/ecs"
	"github.com/milk9111/hexboard/ecs/component"
)

type InputSystem struct{}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	cx, cy := ebiten.CursorPosition()
	pressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	hovered := ebuiinput.UIHovered
	focused := ebiten.IsFocused()

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		input.CursorX = float64(cx)
		input.CursorY = float64(cy)
		input.LeftJustPressed = pressed
		input.UIHovered = hovered
		input.CursorInside = focused && cursorInside(w, e, input.CursorX, input.CursorY)
	})
}

// cursorInside checks the cursor against the viewport of the camera on the
// same entity. Without a sized viewport every position counts as inside.
func cursorInside(w *ecs.World, e ecs.Entity, x, y float64) bool {
	cam, ok := ecs.Get(w, e, component.CameraComponent.Kind())
	if !ok || cam.ViewportW <= 0 || cam.ViewportH <= 0 {
		return true
	}
	return x >= 0 && y >= 0 && x < cam.ViewportW && y < cam.ViewportH
}
