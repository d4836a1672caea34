package main

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/hexboard/ecs"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

const noSelectionLabel = "Tile: none"

// HUD is the overlay in the top-left corner: the last selected tile, the
// click count and a button that clears the board.
type HUD struct {
	ui     *ebitenui.UI
	tile   *widget.Text
	clicks *widget.Text
	status *widget.Text
}

// NewHUD builds the overlay. onClear runs when the Clear button is pressed.
func NewHUD(onClear func()) *HUD {
	face := hudFace()

	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 180})
	btnImg := &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}),
		Hover:   imageui.NewNineSliceColor(color.NRGBA{R: 0x48, G: 0x48, B: 0x48, A: 0xff}),
		Pressed: imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}),
	}
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	dim := color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}

	h := &HUD{}
	h.tile = widget.NewText(widget.TextOpts.Text(noSelectionLabel, &face, white))
	h.clicks = widget.NewText(widget.TextOpts.Text(clicksLabel(0), &face, white))
	h.status = widget.NewText(widget.TextOpts.Text("", &face, dim))

	clearBtn := widget.NewButton(
		widget.ButtonOpts.Image(btnImg),
		widget.ButtonOpts.Text("Clear", &face, &widget.ButtonTextColor{Idle: white}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClear != nil {
				onClear()
			}
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	panel.AddChild(h.tile)
	panel.AddChild(h.clicks)
	panel.AddChild(clearBtn)
	panel.AddChild(h.status)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(8)))),
	)
	root.AddChild(panel)

	h.ui = &ebitenui.UI{Container: root}
	return h
}

func hudFace() text.Face {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return text.NewGoXFace(basicfont.Face7x13)
	}
	return &text.GoTextFace{Source: s, Size: 15}
}

func (h *HUD) Update() {
	if h == nil || h.ui == nil {
		return
	}
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.ui == nil {
		return
	}
	h.ui.Draw(screen)
}

// HandleEvent refreshes the labels from a world event.
func (h *HUD) HandleEvent(evt ecs.Event) {
	if h == nil {
		return
	}
	switch evt.Type {
	case ecs.EventTileSelected:
		if sel, ok := evt.Data.(ecs.TileSelectedEvent); ok {
			h.tile.Label = selectionLabel(sel.Pos.X, sel.Pos.Y)
			h.clicks.Label = clicksLabel(sel.Clicks)
		}
	case ecs.EventBoardCleared:
		h.Reset()
	case ecs.EventBoardSpawned:
		h.Reset()
	}
}

// Reset shows the empty selection.
func (h *HUD) Reset() {
	if h == nil {
		return
	}
	h.tile.Label = noSelectionLabel
	h.clicks.Label = clicksLabel(0)
}

// SetStatus shows a one-line message under the button.
func (h *HUD) SetStatus(msg string) {
	if h == nil {
		return
	}
	h.status.Label = msg
}

func selectionLabel(x, y uint32) string {
	return fmt.Sprintf("Tile: (%d, %d)", x, y)
}

func clicksLabel(n int) string {
	return fmt.Sprintf("Clicks: %d", n)
}
