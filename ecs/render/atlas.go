package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

type frameKey struct {
	key   string
	index int
	w, h  int
}

var frames = map[frameKey]*ebiten.Image{}

// FrameCount returns how many w x h frames fit in img, row by row.
func FrameCount(img *ebiten.Image, w, h int) int {
	if img == nil || w <= 0 || h <= 0 {
		return 0
	}
	b := img.Bounds()
	return (b.Dx() / w) * (b.Dy() / h)
}

// FrameRect returns the source rectangle of frame index in a sheet of the
// given size. Frames are laid out left to right, then top to bottom.
// Out-of-range indices clamp to the first or last frame.
func FrameRect(sheet image.Rectangle, w, h, index int) image.Rectangle {
	cols := sheet.Dx() / w
	rows := sheet.Dy() / h
	total := cols * rows
	if total <= 0 {
		return sheet
	}
	index = max(0, min(index, total-1))
	x := sheet.Min.X + (index%cols)*w
	y := sheet.Min.Y + (index/cols)*h
	return image.Rect(x, y, x+w, y+h)
}

// Frame returns the sub-image for frame index of the sheet cached under key.
func Frame(key string, sheet *ebiten.Image, w, h, index int) *ebiten.Image {
	if sheet == nil || w <= 0 || h <= 0 {
		return sheet
	}
	k := frameKey{key: key, index: index, w: w, h: h}
	if img, ok := frames[k]; ok {
		return img
	}
	sub, ok := sheet.SubImage(FrameRect(sheet.Bounds(), w, h, index)).(*ebiten.Image)
	if !ok {
		return sheet
	}
	if key != "" {
		frames[k] = sub
	}
	return sub
}
