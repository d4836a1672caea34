package render

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestFrameRect(t *testing.T) {
	sheet := image.Rect(0, 0, 232, 50)
	cases := []struct {
		name  string
		index int
		want  image.Rectangle
	}{
		{"first", 0, image.Rect(0, 0, 58, 50)},
		{"second", 1, image.Rect(58, 0, 116, 50)},
		{"last", 3, image.Rect(174, 0, 232, 50)},
		{"clamp_high", 9, image.Rect(174, 0, 232, 50)},
		{"clamp_low", -2, image.Rect(0, 0, 58, 50)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := FrameRect(sheet, 58, 50, c.index); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}

	grid := image.Rect(0, 0, 20, 20)
	if got := FrameRect(grid, 10, 10, 3); got != image.Rect(10, 10, 20, 20) {
		t.Fatalf("expected row wrap, got %v", got)
	}
}

func TestFrameCaching(t *testing.T) {
	sheet := ebiten.NewImage(232, 50)
	if n := FrameCount(sheet, 58, 50); n != 4 {
		t.Fatalf("expected 4 frames, got %d", n)
	}

	RegisterImage("test-sheet", sheet)
	a := Frame("test-sheet", sheet, 58, 50, 2)
	b := Frame("test-sheet", sheet, 58, 50, 2)
	if a != b {
		t.Fatal("expected cached frame")
	}
	if a.Bounds() != image.Rect(116, 0, 174, 50) {
		t.Fatalf("unexpected frame bounds %v", a.Bounds())
	}

	ForgetImage("test-sheet")
	if GetImage("test-sheet") != nil {
		t.Fatal("image should be forgotten")
	}
	if c := Frame("test-sheet", sheet, 58, 50, 2); c == a {
		t.Fatal("frame cache should be dropped with the image")
	}
}
