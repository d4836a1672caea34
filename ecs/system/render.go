package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/hexboard/ecs"
	"github.com/milk9111/hexboard/ecs/component"
	"github.com/milk9111/hexboard/ecs/render"
	"github.com/milk9111/hexboard/hexgrid"
)

var outlineColor = color.NRGBA{R: 0xff, G: 0xd7, B: 0x40, A: 0xff}

type RenderSystem struct {
	// Outline strokes the selected tile of each tilemap.
	Outline bool
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Update(*ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	_, view, ok := ActiveCamera(w)
	if !ok {
		return
	}
	if view.ViewportW <= 0 || view.ViewportH <= 0 {
		b := screen.Bounds()
		view.ViewportW, view.ViewportH = float64(b.Dx()), float64(b.Dy())
	}

	tilemaps := w.Query(component.TilemapComponent.Kind(), component.TransformComponent.Kind())
	sort.SliceStable(tilemaps, func(i, j int) bool {
		li, zi := drawOrder(w, tilemaps[i])
		lj, zj := drawOrder(w, tilemaps[j])
		if li != lj {
			return li < lj
		}
		if zi != zj {
			return zi < zj
		}
		return uint64(tilemaps[i]) < uint64(tilemaps[j])
	})

	for _, e := range tilemaps {
		tm, _ := ecs.Get(w, e, component.TilemapComponent.Kind())
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		r.drawTilemap(w, screen, view, tm, t)
		if r.Outline {
			if sel, ok := ecs.Get(w, e, component.SelectionComponent.Kind()); ok && sel.HasTile {
				strokeTile(screen, view, tm, t, sel.Pos)
			}
		}
	}
}

func drawOrder(w *ecs.World, e ecs.Entity) (int, float64) {
	layer := 0
	if l, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		layer = l.Index
	}
	z := 0.0
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		z = t.Z
	}
	return layer, z
}

func (r *RenderSystem) drawTilemap(w *ecs.World, screen *ebiten.Image, view CameraView, tm *component.Tilemap, t *component.Transform) {
	if tm == nil || tm.Texture == nil || tm.Storage == nil {
		return
	}
	tw, th := int(tm.TileSize.X), int(tm.TileSize.Y)

	tm.Storage.Each(func(pos hexgrid.TilePos, raw uint64) {
		tile := ecs.Entity(raw)
		if vis, ok := ecs.Get(w, tile, component.TileVisibleComponent.Kind()); ok && !vis.Visible {
			return
		}
		index := 0
		if idx, ok := ecs.Get(w, tile, component.TileTextureIndexComponent.Kind()); ok {
			index = idx.Index
		}
		img := render.Frame(tm.TextureName, tm.Texture, tw, th, index)

		cx, cy := hexgrid.CenterInWorld(pos, tm.GridSize, tm.CoordSystem)

		op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
		op.GeoM.Translate(cx-tm.TileSize.X/2, cy-tm.TileSize.Y/2)
		applyTilemapTransform(&op.GeoM, t)
		applyCamera(&op.GeoM, view)

		if c, ok := ecs.Get(w, tile, component.TileColorComponent.Kind()); ok {
			op.ColorScale.Scale(c.R, c.G, c.B, c.A)
		}
		screen.DrawImage(img, op)
	})
}

func applyTilemapTransform(g *ebiten.GeoM, t *component.Transform) {
	if t == nil {
		return
	}
	sx, sy := t.ScaleX, t.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	g.Scale(sx, sy)
	g.Rotate(t.Rotation)
	g.Translate(t.X, t.Y)
}

func applyCamera(g *ebiten.GeoM, view CameraView) {
	g.Translate(-view.X, -view.Y)
	g.Scale(view.Zoom, view.Zoom)
	g.Translate(view.ViewportW/2, view.ViewportH/2)
}

func strokeTile(screen *ebiten.Image, view CameraView, tm *component.Tilemap, t *component.Transform, pos hexgrid.TilePos) {
	cx, cy := hexgrid.CenterInWorld(pos, tm.GridSize, tm.CoordSystem)
	corners := hexgrid.Corners(cx, cy, tm.GridSize, tm.CoordSystem)

	var g ebiten.GeoM
	applyTilemapTransform(&g, t)
	applyCamera(&g, view)

	for i := range corners {
		a, b := corners[i], corners[(i+1)%len(corners)]
		ax, ay := g.Apply(a[0], a[1])
		bx, by := g.Apply(b[0], b[1])
		vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), 2, outlineColor, true)
	}
}
