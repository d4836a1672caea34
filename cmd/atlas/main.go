// Command atlas previews the frames of a tile atlas, one hexagon at a time,
// with the whole strip underneath.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/hexboard/assets"
	"github.com/milk9111/hexboard/ecs/render"
	"github.com/milk9111/hexboard/hexgrid"
)

const (
	screenSize = 512
	zoom       = 4
)

type atlasGame struct {
	sheetName  string
	sheet      *ebiten.Image
	frameW     int
	frameH     int
	frameCount int
	current    int
	tick       int
	ticksPerFr int
	coords     hexgrid.HexCoordSystem
}

func (g *atlasGame) Update() error {
	if g.frameCount <= 1 {
		return nil
	}
	g.tick++
	if g.tick >= g.ticksPerFr {
		g.tick = 0
		g.current = (g.current + 1) % g.frameCount
	}
	return nil
}

func (g *atlasGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	if g.frameCount == 0 {
		return
	}

	frame := render.Frame(g.sheetName, g.sheet, g.frameW, g.frameH, g.current)
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	op.GeoM.Scale(zoom, zoom)
	op.GeoM.Translate(float64(screenSize-g.frameW*zoom)/2, 40)
	screen.DrawImage(frame, op)

	// strip of every frame, current one outlined
	stripY := float64(60 + g.frameH*zoom)
	stripX := (float64(screenSize) - float64(g.frameCount*(g.frameW+8))) / 2
	grid := hexgrid.TilemapGridSize{X: float64(g.frameW), Y: float64(g.frameH)}
	for i := 0; i < g.frameCount; i++ {
		x := stripX + float64(i*(g.frameW+8))
		op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
		op.GeoM.Translate(x, stripY)
		screen.DrawImage(render.Frame(g.sheetName, g.sheet, g.frameW, g.frameH, i), op)
		if i != g.current {
			continue
		}
		corners := hexgrid.Corners(x+float64(g.frameW)/2, stripY+float64(g.frameH)/2, grid, g.coords)
		for j := range corners {
			a, b := corners[j], corners[(j+1)%len(corners)]
			vector.StrokeLine(screen, float32(a[0]), float32(a[1]), float32(b[0]), float32(b[1]), 1, color.RGBA{0xff, 0xd7, 0x40, 0xff}, true)
		}
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  frame %d/%d  (%dx%d)", g.sheetName, g.current+1, g.frameCount, g.frameW, g.frameH))
}

func (g *atlasGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenSize, screenSize
}

func main() {
	sheet := flag.String("sheet", assets.TilesSheet, "atlas image, looked up on disk first, then in the embedded assets")
	frameW := flag.Int("w", 58, "frame width")
	frameH := flag.Int("h", 50, "frame height")
	fps := flag.Int("fps", 2, "frames shown per second")
	coords := flag.String("coords", "column", "hex coord system used for the outline")
	flag.Parse()

	sys, err := hexgrid.ParseHexCoordSystem(*coords)
	if err != nil {
		log.Fatal(err)
	}
	img, err := render.LoadImage(*sheet)
	if err != nil {
		log.Fatal(err)
	}

	ticks := 1
	if *fps > 0 {
		ticks = max(1, ebiten.DefaultTPS / *fps)
	}

	g := &atlasGame{
		sheetName:  *sheet,
		sheet:      img,
		frameW:     *frameW,
		frameH:     *frameH,
		frameCount: render.FrameCount(img, *frameW, *frameH),
		ticksPerFr: ticks,
		coords:     sys,
	}
	ebiten.SetWindowSize(screenSize, screenSize)
	ebiten.SetWindowTitle("hexboard atlas")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
