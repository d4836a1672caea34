package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/hexboard/ecs"
	"github.com/milk9111/hexboard/ecs/component"
	"github.com/milk9111/hexboard/hexgrid"
)

// TilePicker resolves a tilemap-local point to a tile position.
type TilePicker interface {
	Pick(tilemap ecs.Entity, tm *component.Tilemap, x, y float64) (hexgrid.TilePos, bool)
}

// AxialPicker inverts the hex layout and rounds to the nearest hexagon.
type AxialPicker struct{}

func (AxialPicker) Pick(_ ecs.Entity, tm *component.Tilemap, x, y float64) (hexgrid.TilePos, bool) {
	if tm == nil {
		return hexgrid.TilePos{}, false
	}
	return hexgrid.FromWorldPos(x, y, tm.Size, tm.GridSize, tm.CoordSystem)
}

// ShapePicker queries a chipmunk space holding one static hexagon per stored
// tile. Spaces are built lazily and rebuilt when the tilemap storage changes.
type ShapePicker struct {
	spaces map[ecs.Entity]*tileSpace
}

type tileSpace struct {
	storage *hexgrid.TileStorage
	count   int
	space   *cp.Space
	shapes  map[*cp.Shape]hexgrid.TilePos
}

func NewShapePicker() *ShapePicker {
	return &ShapePicker{spaces: make(map[ecs.Entity]*tileSpace)}
}

func (sp *ShapePicker) Pick(tilemap ecs.Entity, tm *component.Tilemap, x, y float64) (hexgrid.TilePos, bool) {
	if sp == nil || tm == nil || tm.Storage == nil {
		return hexgrid.TilePos{}, false
	}
	if sp.spaces == nil {
		sp.spaces = make(map[ecs.Entity]*tileSpace)
	}

	ts, ok := sp.spaces[tilemap]
	if !ok || ts.storage != tm.Storage || ts.count != tm.Storage.Len() {
		ts = buildTileSpace(tm)
		sp.spaces[tilemap] = ts
	}

	info := ts.space.PointQueryNearest(cp.Vector{X: x, Y: y}, 0, cp.SHAPE_FILTER_ALL)
	if info == nil || info.Shape == nil {
		return hexgrid.TilePos{}, false
	}
	pos, ok := ts.shapes[info.Shape]
	return pos, ok
}

// Forget drops cached spaces of tilemaps that are no longer alive.
func (sp *ShapePicker) Forget(w *ecs.World) {
	if sp == nil {
		return
	}
	for e := range sp.spaces {
		if !w.IsAlive(e) {
			delete(sp.spaces, e)
		}
	}
}

func buildTileSpace(tm *component.Tilemap) *tileSpace {
	ts := &tileSpace{
		storage: tm.Storage,
		count:   tm.Storage.Len(),
		space:   cp.NewSpace(),
		shapes:  make(map[*cp.Shape]hexgrid.TilePos, tm.Storage.Len()),
	}
	tm.Storage.Each(func(pos hexgrid.TilePos, _ uint64) {
		cx, cy := hexgrid.CenterInWorld(pos, tm.GridSize, tm.CoordSystem)
		corners := hexgrid.Corners(cx, cy, tm.GridSize, tm.CoordSystem)
		verts := make([]cp.Vector, 0, len(corners))
		for _, c := range corners {
			verts = append(verts, cp.Vector{X: c[0], Y: c[1]})
		}
		shape := cp.NewPolyShapeRaw(ts.space.StaticBody, len(verts), verts, 0)
		ts.space.AddShape(shape)
		ts.shapes[shape] = pos
	})
	return ts
}
