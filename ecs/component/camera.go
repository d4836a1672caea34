package component

// Camera is a 2D orthographic camera. The owning entity's Transform is the
// world point drawn at the center of the viewport.
type Camera struct {
	Zoom      float64
	ViewportW float64
	ViewportH float64
}

var CameraComponent = NewComponent[Camera]()
