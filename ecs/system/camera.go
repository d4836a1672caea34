package system

import (
	"math"

	"github.com/milk9111/hexboard/ecs"
	"github.com/milk9111/hexboard/ecs/component"
)

// CameraSystem keeps every camera viewport in sync with the layout size. The
// camera itself stays where its prefab put it.
type CameraSystem struct {
	width  float64
	height float64
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// SetViewport records the logical screen size reported by Layout.
func (cs *CameraSystem) SetViewport(width, height int) {
	cs.width = float64(width)
	cs.height = float64(height)
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil || cs.width <= 0 || cs.height <= 0 {
		return
	}
	ecs.ForEach(w, component.CameraComponent.Kind(), func(_ ecs.Entity, cam *component.Camera) {
		cam.ViewportW = cs.width
		cam.ViewportH = cs.height
	})
}

// CameraView is the resolved state of the active camera.
type CameraView struct {
	X, Y      float64
	Zoom      float64
	ViewportW float64
	ViewportH float64
}

// ActiveCamera returns the first tagged camera with a transform.
func ActiveCamera(w *ecs.World) (ecs.Entity, CameraView, bool) {
	if w == nil {
		return 0, CameraView{}, false
	}
	e, ok := w.First(component.CameraTagComponent.Kind())
	if !ok {
		return 0, CameraView{}, false
	}
	cam, ok := ecs.Get(w, e, component.CameraComponent.Kind())
	if !ok {
		return 0, CameraView{}, false
	}
	view := CameraView{Zoom: cam.Zoom, ViewportW: cam.ViewportW, ViewportH: cam.ViewportH}
	if view.Zoom <= 0 {
		view.Zoom = 1
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		view.X, view.Y = t.X, t.Y
	}
	return e, view, true
}

// WorldToScreen projects a world point into viewport pixels. The camera
// position is drawn at the center of the viewport.
func (v CameraView) WorldToScreen(x, y float64) (float64, float64) {
	return (x-v.X)*v.Zoom + v.ViewportW/2, (y-v.Y)*v.Zoom + v.ViewportH/2
}

// ViewportToWorld is the inverse of WorldToScreen.
func (v CameraView) ViewportToWorld(sx, sy float64) (float64, float64) {
	zoom := v.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return (sx-v.ViewportW/2)/zoom + v.X, (sy-v.ViewportH/2)/zoom + v.Y
}

// worldToLocal applies the inverse of a tilemap transform.
func worldToLocal(t *component.Transform, x, y float64) (float64, float64) {
	if t == nil {
		return x, y
	}
	dx, dy := x-t.X, y-t.Y
	if t.Rotation != 0 {
		sin, cos := math.Sincos(-t.Rotation)
		dx, dy = dx*cos-dy*sin, dx*sin+dy*cos
	}
	sx, sy := t.ScaleX, t.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return dx / sx, dy / sy
}
